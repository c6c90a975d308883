package dto

import "github.com/shopspring/decimal"

// AlertItem is one part inside an alert bucket.
type AlertItem struct {
	PartID          string          `json:"part_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	QuantityInStock int             `json:"quantity_in_stock"`
	MinimumStock    int             `json:"minimum_stock_level"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Value           decimal.Decimal `json:"value"`
}

// AlertBucket groups parts sharing a stock status, with the bucket's summed
// valuation.
type AlertBucket struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
	Items []AlertItem     `json:"items"`
}

// AlertReportResponse partitions the catalog into the two alert buckets.
// Parts above their minimum stock level appear in neither.
type AlertReportResponse struct {
	OutOfStock AlertBucket     `json:"out_of_stock"`
	LowStock   AlertBucket     `json:"low_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// DashboardResponse headline figures for the dashboard.
type DashboardResponse struct {
	TotalParts     int             `json:"total_parts"`
	LowStockItems  int             `json:"low_stock_items"` // low or out of stock
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
