// Package alerts derives the low-stock/out-of-stock alert report and the
// dashboard headline figures from a snapshot of the part catalog.
package alerts

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sorawitt/spareparts-api/internal/application/dto"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
	"github.com/sorawitt/spareparts-api/internal/domain/stock"
)

// UseCase builds alert and dashboard reports.
type UseCase struct {
	parts repository.PartRepository
}

// NewUseCase builds the alerts use case.
func NewUseCase(parts repository.PartRepository) *UseCase {
	return &UseCase{parts: parts}
}

// Build partitions the catalog into the out-of-stock and low-stock buckets.
// Parts above their minimum are excluded entirely. Each bucket sums its own
// valuation: replenishment cost for out-of-stock, exposed value for low-stock.
func (uc *UseCase) Build(ctx context.Context) (*dto.AlertReportResponse, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.AlertReportResponse{
		OutOfStock: dto.AlertBucket{Value: decimal.Zero},
		LowStock:   dto.AlertBucket{Value: decimal.Zero},
		TotalValue: decimal.Zero,
	}
	for _, p := range parts {
		status := stock.PartStatus(p)
		if status == stock.StatusInStock {
			continue
		}
		item := dto.AlertItem{
			PartID:          p.ID,
			Code:            p.Code,
			Name:            p.Name,
			QuantityInStock: p.QuantityInStock,
			MinimumStock:    p.MinimumStockLevel,
			UnitPrice:       p.UnitPrice,
			Value:           stock.ShortfallValue(p),
		}
		switch status {
		case stock.StatusOutOfStock:
			report.OutOfStock.Items = append(report.OutOfStock.Items, item)
			report.OutOfStock.Value = report.OutOfStock.Value.Add(item.Value)
		case stock.StatusLowStock:
			report.LowStock.Items = append(report.LowStock.Items, item)
			report.LowStock.Value = report.LowStock.Value.Add(item.Value)
		}
		report.TotalValue = report.TotalValue.Add(item.Value)
	}
	report.OutOfStock.Count = len(report.OutOfStock.Items)
	report.LowStock.Count = len(report.LowStock.Items)
	return report, nil
}

// Dashboard returns the headline figures: part count, parts at or below
// minimum, and the value of the whole inventory.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	res := &dto.DashboardResponse{
		TotalParts:     len(parts),
		InventoryValue: decimal.Zero,
	}
	for _, p := range parts {
		if stock.PartStatus(p) != stock.StatusInStock {
			res.LowStockItems++
		}
		res.InventoryValue = res.InventoryValue.Add(stock.LineValue(p))
	}
	return res, nil
}
