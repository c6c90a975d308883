package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/stock"
)

// CreatePartRequest body for POST /api/parts.
type CreatePartRequest struct {
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	MachineType       string          `json:"machine_type"`
	Category          string          `json:"category"`
	QuantityInStock   int             `json:"quantity_in_stock"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	StorageLocation   string          `json:"storage_location"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	ServiceLifeMonths int             `json:"service_life_months"`
	ImageURL          string          `json:"image_url,omitempty"`
}

// UpdatePartRequest body for PUT /api/parts/:id. Quantity is intentionally
// absent: it only changes through movements.
type UpdatePartRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	MachineType       string          `json:"machine_type"`
	Category          string          `json:"category"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	StorageLocation   string          `json:"storage_location"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	ServiceLifeMonths int             `json:"service_life_months"`
	ImageURL          string          `json:"image_url,omitempty"`
}

// PartResponse is a part as returned by the API, with the derived status.
type PartResponse struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	MachineType       string          `json:"machine_type"`
	Category          string          `json:"category"`
	QuantityInStock   int             `json:"quantity_in_stock"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	StorageLocation   string          `json:"storage_location"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	ServiceLifeMonths int             `json:"service_life_months"`
	ImageURL          string          `json:"image_url,omitempty"`
	Status            string          `json:"status"`
	LineValue         decimal.Decimal `json:"line_value"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PartToResponse maps an entity to its API representation, deriving status
// and line value on the way out (status is never stored).
func PartToResponse(p *entity.Part) PartResponse {
	return PartResponse{
		ID:                p.ID,
		Code:              p.Code,
		Name:              p.Name,
		Description:       p.Description,
		MachineType:       p.MachineType,
		Category:          p.Category,
		QuantityInStock:   p.QuantityInStock,
		MinimumStockLevel: p.MinimumStockLevel,
		StorageLocation:   p.StorageLocation,
		UnitPrice:         p.UnitPrice,
		ServiceLifeMonths: p.ServiceLifeMonths,
		ImageURL:          p.ImageURL,
		Status:            string(stock.PartStatus(p)),
		LineValue:         stock.LineValue(p),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
