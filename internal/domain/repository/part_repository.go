package repository

import (
	"context"

	"github.com/sorawitt/spareparts-api/internal/domain/entity"
)

// PartRepository is the persistence port for the part catalog.
// Get methods return (nil, nil) when the part does not exist.
type PartRepository interface {
	List(ctx context.Context) ([]*entity.Part, error)
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	GetByCode(ctx context.Context, code string) (*entity.Part, error)
	Create(ctx context.Context, part *entity.Part) error
	Update(ctx context.Context, part *entity.Part) error
	Delete(ctx context.Context, id string) error

	// SetQuantity is the single quantity mutation primitive, used only by the
	// stock ledger. Fails with domain.ErrNotFound for an unknown id and
	// domain.ErrInvalidQuantity for a negative quantity.
	SetQuantity(ctx context.Context, id string, quantity int) (*entity.Part, error)

	// GetForUpdate reads a part and locks its row for the duration of the
	// surrounding transaction, serializing concurrent movements per part.
	GetForUpdate(ctx context.Context, id string) (*entity.Part, error)
}
