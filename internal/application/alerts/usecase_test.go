package alerts_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawitt/spareparts-api/internal/application/alerts"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

// fakePartRepo serves a fixed snapshot; only List is exercised here.
type fakePartRepo struct {
	repository.PartRepository
	parts []*entity.Part
}

func (f *fakePartRepo) List(context.Context) ([]*entity.Part, error) {
	return f.parts, nil
}

func snapshot() []*entity.Part {
	return []*entity.Part{
		{ID: "a", Code: "A", QuantityInStock: 0, MinimumStockLevel: 10, UnitPrice: decimal.NewFromInt(100)},
		{ID: "b", Code: "B", QuantityInStock: 3, MinimumStockLevel: 10, UnitPrice: decimal.NewFromInt(50)},
		{ID: "c", Code: "C", QuantityInStock: 15, MinimumStockLevel: 10, UnitPrice: decimal.NewFromInt(200)},
	}
}

func TestBuildAlertBuckets(t *testing.T) {
	uc := alerts.NewUseCase(&fakePartRepo{parts: snapshot()})

	report, err := uc.Build(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, report.OutOfStock.Count)
	assert.Equal(t, "A", report.OutOfStock.Items[0].Code)
	assert.True(t, decimal.NewFromInt(1000).Equal(report.OutOfStock.Value),
		"out-of-stock bucket valued at price x minimum")

	require.Equal(t, 1, report.LowStock.Count)
	assert.Equal(t, "B", report.LowStock.Items[0].Code)
	assert.True(t, decimal.NewFromInt(150).Equal(report.LowStock.Value),
		"low-stock bucket valued at price x quantity")

	assert.True(t, decimal.NewFromInt(1150).Equal(report.TotalValue))

	for _, item := range append(report.OutOfStock.Items, report.LowStock.Items...) {
		assert.NotEqual(t, "C", item.Code, "healthy parts appear in neither bucket")
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	uc := alerts.NewUseCase(&fakePartRepo{})

	report, err := uc.Build(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.OutOfStock.Count)
	assert.Zero(t, report.LowStock.Count)
	assert.True(t, report.TotalValue.IsZero())
}

func TestDashboard(t *testing.T) {
	uc := alerts.NewUseCase(&fakePartRepo{parts: snapshot()})

	res, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalParts)
	assert.Equal(t, 2, res.LowStockItems)
	// 0*100 + 3*50 + 15*200
	assert.True(t, decimal.NewFromInt(3150).Equal(res.InventoryValue))
}
