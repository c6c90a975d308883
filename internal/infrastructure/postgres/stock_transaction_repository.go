package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implements the ledger port over PostgreSQL. The table
// is append-only; there is no UPDATE or DELETE statement in this file on
// purpose.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository builds the ledger adapter. Pass a pool or tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Append persists one ledger entry.
func (r *StockTransactionRepo) Append(ctx context.Context, tx *entity.StockTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	createdBy := (*string)(nil)
	if tx.CreatedBy != "" {
		createdBy = &tx.CreatedBy
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_transactions (id, part_id, transaction_type, quantity,
			machine_id, operator_name, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tx.ID, tx.PartID, tx.Direction, tx.Quantity,
		tx.MachineID, tx.OperatorName, tx.Notes, createdBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append stock transaction: %w", err)
	}
	return nil
}

// Query returns transactions of one direction created within [from, to]
// inclusive, newest first.
func (r *StockTransactionRepo) Query(ctx context.Context, direction string, from, to time.Time) ([]*entity.StockTransaction, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, part_id, transaction_type, quantity, machine_id, operator_name,
			notes, COALESCE(created_by, ''), created_at
		FROM stock_transactions
		WHERE transaction_type = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC`,
		direction, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.PartID, &t.Direction, &t.Quantity,
			&t.MachineID, &t.OperatorName, &t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumDeltas replays the ledger for one part: +quantity for in, -quantity for out.
func (r *StockTransactionRepo) SumDeltas(ctx context.Context, partID string) (int, error) {
	var sum int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'in' THEN quantity ELSE -quantity END), 0)
		FROM stock_transactions WHERE part_id = $1`,
		partID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum ledger deltas: %w", err)
	}
	return sum, nil
}
