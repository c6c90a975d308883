package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, code, name, description, machine_type, category,
	quantity_in_stock, minimum_stock_level, storage_location, unit_price,
	service_life_months, image_url, created_at, updated_at`

// PartRepo implements PartRepository over PostgreSQL (usable with pool or tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository builds the part persistence adapter. Pass a pool or tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.MachineType, &p.Category,
		&p.QuantityInStock, &p.MinimumStockLevel, &p.StorageLocation, &p.UnitPrice,
		&p.ServiceLifeMonths, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every part. Canonical ordering is applied in the catalog
// use case, not here.
func (r *PartRepo) List(ctx context.Context) ([]*entity.Part, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partColumns+` FROM spare_parts`)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID returns a part by id, or (nil, nil) when absent.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	p, err := scanPart(r.q.QueryRow(ctx, `SELECT `+partColumns+` FROM spare_parts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// GetByCode returns a part by its unique code, or (nil, nil) when absent.
func (r *PartRepo) GetByCode(ctx context.Context, code string) (*entity.Part, error) {
	p, err := scanPart(r.q.QueryRow(ctx, `SELECT `+partColumns+` FROM spare_parts WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part by code: %w", err)
	}
	return p, nil
}

// Create persists a new part.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO spare_parts (id, code, name, description, machine_type, category,
			quantity_in_stock, minimum_stock_level, storage_location, unit_price,
			service_life_months, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		part.ID, part.Code, part.Name, part.Description, part.MachineType, part.Category,
		part.QuantityInStock, part.MinimumStockLevel, part.StorageLocation, part.UnitPrice,
		part.ServiceLifeMonths, part.ImageURL, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// Update edits catalog fields. Quantity is excluded: it only changes through
// SetQuantity, driven by the ledger.
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE spare_parts
		SET name = $2, description = $3, machine_type = $4, category = $5,
			minimum_stock_level = $6, storage_location = $7, unit_price = $8,
			service_life_months = $9, image_url = $10, updated_at = $11
		WHERE id = $1`,
		part.ID, part.Name, part.Description, part.MachineType, part.Category,
		part.MinimumStockLevel, part.StorageLocation, part.UnitPrice,
		part.ServiceLifeMonths, part.ImageURL, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a part by id.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM spare_parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

// SetQuantity writes the new quantity. The non-negative guard runs before the
// statement; the table's CHECK constraint is the backstop.
func (r *PartRepo) SetQuantity(ctx context.Context, id string, quantity int) (*entity.Part, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	p, err := scanPart(r.q.QueryRow(ctx, `
		UPDATE spare_parts SET quantity_in_stock = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+partColumns, id, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set quantity: %w", err)
	}
	return p, nil
}

// GetForUpdate reads a part and locks its row until the surrounding
// transaction ends, serializing concurrent movements per part.
func (r *PartRepo) GetForUpdate(ctx context.Context, id string) (*entity.Part, error) {
	p, err := scanPart(r.q.QueryRow(ctx, `SELECT `+partColumns+` FROM spare_parts WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part for update: %w", err)
	}
	return p, nil
}
