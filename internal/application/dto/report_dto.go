package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is one ledger entry joined with its part.
// UnitPrice is the part's price at report time, not at transaction time;
// historical price changes are not preserved per transaction.
type ReportRow struct {
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	PartCode      string          `json:"part_code"`
	PartName      string          `json:"part_name"`
	Quantity      int             `json:"quantity"`
	MachineID     string          `json:"machine_id"`
	OperatorName  string          `json:"operator_name"`
	Notes         string          `json:"notes,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// TransactionReportResponse is a time-ranged, direction-filtered report over
// the ledger, newest first. Orphaned lists ledger entries whose part has been
// deleted; they are excluded from Rows and Total but never silently dropped.
type TransactionReportResponse struct {
	Direction string          `json:"direction"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Rows      []ReportRow     `json:"rows"`
	Total     decimal.Decimal `json:"total"`
	Orphaned  []string        `json:"orphaned_transaction_ids,omitempty"`
}
