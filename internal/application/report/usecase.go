// Package report aggregates the movement ledger into time-ranged,
// direction-filtered reports joined with the part catalog.
package report

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sorawitt/spareparts-api/internal/application/dto"
	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

// DateLayout is the wire format for report date bounds.
const DateLayout = "2006-01-02"

// UseCase builds transaction reports.
type UseCase struct {
	parts        repository.PartRepository
	transactions repository.StockTransactionRepository
	log          zerolog.Logger
}

// NewUseCase builds the report use case.
func NewUseCase(parts repository.PartRepository, transactions repository.StockTransactionRepository, log zerolog.Logger) *UseCase {
	return &UseCase{parts: parts, transactions: transactions, log: log}
}

// Build selects transactions of the given direction created within
// [startDate 00:00:00, endDate 23:59:59], newest first, joined with each
// part's code, name and current unit price. Transactions whose part has been
// deleted are excluded from rows and total but flagged in Orphaned.
func (uc *UseCase) Build(ctx context.Context, direction, startDate, endDate string) (*dto.TransactionReportResponse, error) {
	if !entity.ValidDirection(direction) {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.ParseInLocation(DateLayout, startDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.ParseInLocation(DateLayout, endDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	// End of day, inclusive.
	end = end.Add(24*time.Hour - time.Second)

	txs, err := uc.transactions.Query(ctx, direction, start, end)
	if err != nil {
		return nil, err
	}

	res := &dto.TransactionReportResponse{
		Direction: direction,
		StartDate: startDate,
		EndDate:   endDate,
		Total:     decimal.Zero,
	}
	partCache := make(map[string]*entity.Part)
	for _, tx := range txs {
		part, ok := partCache[tx.PartID]
		if !ok {
			part, err = uc.parts.GetByID(ctx, tx.PartID)
			if err != nil {
				return nil, err
			}
			partCache[tx.PartID] = part
		}
		if part == nil {
			// Exclusion-with-flag: the row is dropped from the report but its
			// id is surfaced, never silently.
			res.Orphaned = append(res.Orphaned, tx.ID)
			uc.log.Warn().
				Str("transaction_id", tx.ID).
				Str("part_id", tx.PartID).
				Msg("orphaned transaction excluded from report")
			continue
		}
		lineTotal := part.UnitPrice.Mul(decimal.NewFromInt(int64(tx.Quantity)))
		res.Rows = append(res.Rows, dto.ReportRow{
			TransactionID: tx.ID,
			CreatedAt:     tx.CreatedAt,
			PartCode:      part.Code,
			PartName:      part.Name,
			Quantity:      tx.Quantity,
			MachineID:     tx.MachineID,
			OperatorName:  tx.OperatorName,
			Notes:         tx.Notes,
			UnitPrice:     part.UnitPrice,
			LineTotal:     lineTotal,
		})
		res.Total = res.Total.Add(lineTotal)
	}
	return res, nil
}
