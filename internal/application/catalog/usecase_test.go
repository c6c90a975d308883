package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawitt/spareparts-api/internal/application/catalog"
	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

type fakePartRepo struct {
	repository.PartRepository
	parts map[string]*entity.Part
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	f := &fakePartRepo{parts: make(map[string]*entity.Part)}
	for _, p := range parts {
		f.parts[p.ID] = p
	}
	return f
}

func (f *fakePartRepo) List(context.Context) ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(f.parts))
	for _, p := range f.parts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	return f.parts[id], nil
}

func (f *fakePartRepo) GetByCode(_ context.Context, code string) (*entity.Part, error) {
	for _, p := range f.parts {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePartRepo) Create(_ context.Context, part *entity.Part) error {
	f.parts[part.ID] = part
	return nil
}

func (f *fakePartRepo) Update(_ context.Context, part *entity.Part) error {
	f.parts[part.ID] = part
	return nil
}

func (f *fakePartRepo) Delete(_ context.Context, id string) error {
	delete(f.parts, id)
	return nil
}

func validCreate() catalog.CreatePartInput {
	return catalog.CreatePartInput{
		Code:              "BRG-6204",
		Name:              "Deep Groove Bearing",
		MachineType:       "Conveyor",
		Category:          entity.CategoryMechanical,
		QuantityInStock:   10,
		MinimumStockLevel: 5,
		StorageLocation:   "1-A3",
		UnitPrice:         decimal.RequireFromString("45.00"),
		ServiceLifeMonths: 24,
	}
}

func TestCreatePart(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)

	part, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.NotEmpty(t, part.ID)
	assert.Equal(t, "BRG-6204", part.Code)
	assert.False(t, part.CreatedAt.IsZero())
}

func TestCreatePartDuplicateCode(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)
	_, err = uc.Create(ctx, validCreate())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreatePartValidation(t *testing.T) {
	uc := catalog.NewUseCase(newFakePartRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*catalog.CreatePartInput)
	}{
		{"blank code", func(in *catalog.CreatePartInput) { in.Code = " " }},
		{"blank name", func(in *catalog.CreatePartInput) { in.Name = "" }},
		{"unknown category", func(in *catalog.CreatePartInput) { in.Category = "Imaginary" }},
		{"negative quantity", func(in *catalog.CreatePartInput) { in.QuantityInStock = -1 }},
		{"negative minimum", func(in *catalog.CreatePartInput) { in.MinimumStockLevel = -1 }},
		{"negative price", func(in *catalog.CreatePartInput) { in.UnitPrice = decimal.NewFromInt(-5) }},
		{"zero service life", func(in *catalog.CreatePartInput) { in.ServiceLifeMonths = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdatePartKeepsQuantity(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)
	ctx := context.Background()

	part, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	updated, err := uc.Update(ctx, part.ID, catalog.UpdatePartInput{
		Name:              "Sealed Bearing",
		MachineType:       "Conveyor",
		Category:          entity.CategoryMechanical,
		MinimumStockLevel: 8,
		StorageLocation:   "2-B1",
		UnitPrice:         decimal.NewFromInt(50),
		ServiceLifeMonths: 36,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sealed Bearing", updated.Name)
	assert.Equal(t, 10, updated.QuantityInStock, "catalog edits never touch quantity")
}

func TestDeleteUnknownPart(t *testing.T) {
	uc := catalog.NewUseCase(newFakePartRepo())
	err := uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListFiltersAndOrders(t *testing.T) {
	repo := newFakePartRepo(
		&entity.Part{ID: "1", Code: "BRG-1", Name: "Bearing", MachineType: "Conveyor", Category: entity.CategoryMechanical, StorageLocation: "2-01"},
		&entity.Part{ID: "2", Code: "BRG-2", Name: "Bearing XL", MachineType: "Press", Category: entity.CategoryMechanical, StorageLocation: "1-01"},
		&entity.Part{ID: "3", Code: "FUS-1", Name: "Fuse", MachineType: "Press", Category: entity.CategoryElectrical, StorageLocation: "A-9"},
	)
	uc := catalog.NewUseCase(repo)
	ctx := context.Background()

	all, err := uc.List(ctx, "", "all")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1-01", all[0].StorageLocation)
	assert.Equal(t, "2-01", all[1].StorageLocation)
	assert.Equal(t, "A-9", all[2].StorageLocation, "non-numeric locator sorts last")

	bearings, err := uc.List(ctx, "bearing", "all")
	require.NoError(t, err)
	assert.Len(t, bearings, 2)

	electrical, err := uc.List(ctx, "", entity.CategoryElectrical)
	require.NoError(t, err)
	require.Len(t, electrical, 1)
	assert.Equal(t, "FUS-1", electrical[0].Code)

	press, err := uc.List(ctx, "press", entity.CategoryMechanical)
	require.NoError(t, err)
	require.Len(t, press, 1, "search and category are conjoined")
	assert.Equal(t, "BRG-2", press[0].Code)
}
