// Package stock holds the pure stock-level logic: status derivation,
// valuation, the canonical storage-location ordering and the catalog search
// filter. Nothing here mutates state or touches I/O.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/sorawitt/spareparts-api/internal/domain/entity"
)

// Status classifies a part's stock level. Never persisted; always derived
// from the current quantity and minimum stock level.
type Status string

const (
	StatusOutOfStock Status = "out-of-stock"
	StatusLowStock   Status = "low-stock"
	StatusInStock    Status = "in-stock"
)

// StatusOf derives the stock status from quantity and minimum stock level.
func StatusOf(quantity, minimum int) Status {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= minimum:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// PartStatus derives the status of a part.
func PartStatus(p *entity.Part) Status {
	return StatusOf(p.QuantityInStock, p.MinimumStockLevel)
}

// LineValue is the monetary value of a part's current stock:
// unit price × quantity in stock.
func LineValue(p *entity.Part) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.QuantityInStock)))
}

// ShortfallValue is the valuation used by the alert report. The two statuses
// value differently on purpose: an out-of-stock part is valued at the cost to
// replenish back to minimum (unit price × minimum stock level), a low-stock
// part at its current exposed value (unit price × quantity in stock).
// Parts above minimum have no shortfall.
func ShortfallValue(p *entity.Part) decimal.Decimal {
	switch PartStatus(p) {
	case StatusOutOfStock:
		return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.MinimumStockLevel)))
	case StatusLowStock:
		return LineValue(p)
	default:
		return decimal.Zero
	}
}
