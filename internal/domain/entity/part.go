package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part categories (fixed enumeration).
const (
	CategoryMechanical = "Mechanical"
	CategoryElectrical = "Electrical"
	CategoryHydraulic  = "Hydraulic"
	CategoryPneumatic  = "Pneumatic"
	CategoryElectronic = "Electronic"
	CategoryConsumable = "Consumable"
)

// Categories lists every valid part category, in display order.
var Categories = []string{
	CategoryMechanical,
	CategoryElectrical,
	CategoryHydraulic,
	CategoryPneumatic,
	CategoryElectronic,
	CategoryConsumable,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Part is a spare-part catalog entry. QuantityInStock is mutated only by the
// stock ledger; every other field belongs to catalog management.
// StorageLocation has the form "<number>-<rest>" and drives the canonical
// inventory ordering.
type Part struct {
	ID                string
	Code              string // unique, human-assigned
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
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
