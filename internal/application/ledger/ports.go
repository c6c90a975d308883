package ledger

import (
	"context"

	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

// TxRunner runs fn inside one storage transaction, handing it repositories
// bound to that transaction. The quantity write and the ledger append commit
// or roll back together; a failure of either step leaves no partial state.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parts repository.PartRepository,
		transactions repository.StockTransactionRepository,
	) error) error
}
