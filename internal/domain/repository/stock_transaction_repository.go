package repository

import (
	"context"
	"time"

	"github.com/sorawitt/spareparts-api/internal/domain/entity"
)

// StockTransactionRepository is the persistence port for the append-only
// movement ledger.
type StockTransactionRepository interface {
	Append(ctx context.Context, tx *entity.StockTransaction) error

	// Query returns transactions of the given direction created within
	// [from, to] inclusive, newest first.
	Query(ctx context.Context, direction string, from, to time.Time) ([]*entity.StockTransaction, error)

	// SumDeltas replays the ledger for one part and returns the summed signed
	// quantity effect. Used for the ledger/quantity consistency check.
	SumDeltas(ctx context.Context, partID string) (int, error)
}
