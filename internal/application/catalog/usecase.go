// Package catalog implements part catalog management: create, edit and
// delete part records, plus the filtered, canonically ordered listing used
// by the inventory view. Quantities change only through the stock ledger.
package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
	"github.com/sorawitt/spareparts-api/internal/domain/stock"
)

// UseCase manages part records.
type UseCase struct {
	parts repository.PartRepository
}

// NewUseCase builds the catalog use case.
func NewUseCase(parts repository.PartRepository) *UseCase {
	return &UseCase{parts: parts}
}

// CreatePartInput fields for a new part.
type CreatePartInput struct {
	Code              string
	Name              string
	Description       string
	MachineType       string
	Category          string
	QuantityInStock   int
	MinimumStockLevel int
	StorageLocation   string
	UnitPrice         decimal.Decimal
	ServiceLifeMonths int
	ImageURL          string
}

// UpdatePartInput fields editable after creation. Quantity is absent on
// purpose: it belongs to the ledger.
type UpdatePartInput struct {
	Name              string
	Description       string
	MachineType       string
	Category          string
	MinimumStockLevel int
	StorageLocation   string
	UnitPrice         decimal.Decimal
	ServiceLifeMonths int
	ImageURL          string
}

func validateCommon(name, category string, minimum int, price decimal.Decimal, serviceLife int) error {
	if strings.TrimSpace(name) == "" || !entity.ValidCategory(category) {
		return domain.ErrInvalidInput
	}
	if minimum < 0 || price.IsNegative() || serviceLife < 1 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create validates and persists a new part.
func (uc *UseCase) Create(ctx context.Context, in CreatePartInput) (*entity.Part, error) {
	if strings.TrimSpace(in.Code) == "" || in.QuantityInStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateCommon(in.Name, in.Category, in.MinimumStockLevel, in.UnitPrice, in.ServiceLifeMonths); err != nil {
		return nil, err
	}
	existing, err := uc.parts.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	part := &entity.Part{
		ID:                uuid.New().String(),
		Code:              in.Code,
		Name:              in.Name,
		Description:       in.Description,
		MachineType:       in.MachineType,
		Category:          in.Category,
		QuantityInStock:   in.QuantityInStock,
		MinimumStockLevel: in.MinimumStockLevel,
		StorageLocation:   in.StorageLocation,
		UnitPrice:         in.UnitPrice,
		ServiceLifeMonths: in.ServiceLifeMonths,
		ImageURL:          in.ImageURL,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.parts.Create(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

// Get returns a part by id.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Part, error) {
	part, err := uc.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return part, nil
}

// Update edits a part's catalog fields.
func (uc *UseCase) Update(ctx context.Context, id string, in UpdatePartInput) (*entity.Part, error) {
	if err := validateCommon(in.Name, in.Category, in.MinimumStockLevel, in.UnitPrice, in.ServiceLifeMonths); err != nil {
		return nil, err
	}
	part, err := uc.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}

	part.Name = in.Name
	part.Description = in.Description
	part.MachineType = in.MachineType
	part.Category = in.Category
	part.MinimumStockLevel = in.MinimumStockLevel
	part.StorageLocation = in.StorageLocation
	part.UnitPrice = in.UnitPrice
	part.ServiceLifeMonths = in.ServiceLifeMonths
	part.ImageURL = in.ImageURL
	part.UpdatedAt = time.Now()

	if err := uc.parts.Update(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

// Delete removes a part. Ledger entries referencing it become orphans; the
// report aggregator flags them instead of failing.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	part, err := uc.parts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.parts.Delete(ctx, id)
}

// List returns the catalog filtered by search term and category, in the
// canonical storage-location order.
func (uc *UseCase) List(ctx context.Context, term, category string) ([]*entity.Part, error) {
	all, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Part, 0, len(all))
	for _, p := range all {
		if stock.Matches(p, term, category) {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return stock.CompareLocation(filtered[i].StorageLocation, filtered[j].StorageLocation) < 0
	})
	return filtered, nil
}
