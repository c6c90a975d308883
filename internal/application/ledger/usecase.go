// Package ledger implements the stock ledger: the only legitimate business
// path for changing a part's quantity. Every applied movement mutates the
// part row and appends one immutable transaction, atomically.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
	"github.com/sorawitt/spareparts-api/internal/domain/repository"
)

// UseCase applies stock movements transactionally.
type UseCase struct {
	txRunner     TxRunner
	parts        repository.PartRepository
	transactions repository.StockTransactionRepository
}

// NewUseCase builds the ledger use case.
func NewUseCase(txRunner TxRunner, parts repository.PartRepository, transactions repository.StockTransactionRepository) *UseCase {
	return &UseCase{txRunner: txRunner, parts: parts, transactions: transactions}
}

// ApplyMovementInput describes one stock-in or stock-out request.
// ActorID is the acting user, passed in explicitly by the caller; the core
// reads no ambient session state.
type ApplyMovementInput struct {
	PartID       string
	Direction    string
	Quantity     int
	MachineID    string
	OperatorName string
	Notes        string
	ActorID      string
}

// MovementResult is returned on success.
type MovementResult struct {
	TransactionID string
	NewQuantity   int
}

// ApplyMovement validates the request, then runs the quantity update and the
// ledger append as one unit of work. The part row is locked for the duration
// of the read-modify-write, so concurrent movements against the same part
// serialize while different parts proceed independently.
//
// A stock-out that would drive the quantity negative fails with
// domain.ErrInsufficientStock and changes nothing.
func (uc *UseCase) ApplyMovement(ctx context.Context, in ApplyMovementInput) (*MovementResult, error) {
	if !entity.ValidDirection(in.Direction) || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.MachineID) == "" || strings.TrimSpace(in.OperatorName) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()
	var result *MovementResult

	err := uc.txRunner.Run(ctx, func(
		parts repository.PartRepository,
		transactions repository.StockTransactionRepository,
	) error {
		part, err := parts.GetForUpdate(ctx, in.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}

		delta := in.Quantity
		if in.Direction == entity.DirectionOut {
			delta = -delta
		}
		newQty := part.QuantityInStock + delta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}

		if _, err := parts.SetQuantity(ctx, in.PartID, newQty); err != nil {
			return err
		}
		if err := transactions.Append(ctx, &entity.StockTransaction{
			ID:           txID,
			PartID:       in.PartID,
			Direction:    in.Direction,
			Quantity:     in.Quantity,
			MachineID:    in.MachineID,
			OperatorName: in.OperatorName,
			Notes:        in.Notes,
			CreatedBy:    in.ActorID,
			CreatedAt:    now,
		}); err != nil {
			return err
		}

		result = &MovementResult{TransactionID: txID, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Consistency is the outcome of replaying the ledger for one part.
type Consistency struct {
	PartID         string
	PartQuantity   int
	LedgerQuantity int
	Consistent     bool
}

// CheckConsistency replays the part's ledger from an initial quantity of zero
// via signed deltas and compares the result with the authoritative part row.
func (uc *UseCase) CheckConsistency(ctx context.Context, partID string) (*Consistency, error) {
	part, err := uc.parts.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := uc.transactions.SumDeltas(ctx, partID)
	if err != nil {
		return nil, err
	}
	return &Consistency{
		PartID:         partID,
		PartQuantity:   part.QuantityInStock,
		LedgerQuantity: sum,
		Consistent:     part.QuantityInStock == sum,
	}, nil
}
