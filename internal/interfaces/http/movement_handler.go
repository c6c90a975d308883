package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sorawitt/spareparts-api/internal/application/dto"
	"github.com/sorawitt/spareparts-api/internal/application/ledger"
	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/infrastructure/metrics"
)

// LedgerService is the slice of the ledger use case the handler needs.
type LedgerService interface {
	ApplyMovement(ctx context.Context, in ledger.ApplyMovementInput) (*ledger.MovementResult, error)
	CheckConsistency(ctx context.Context, partID string) (*ledger.Consistency, error)
}

// MovementHandler handles stock movements and the consistency check.
type MovementHandler struct {
	uc LedgerService
}

// NewMovementHandler builds the handler.
func NewMovementHandler(uc LedgerService) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Apply records a stock-in or stock-out against a part. The acting user
// comes from the token; operator_name in the body names the person who
// physically handled the stock and may differ.
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	operator := in.OperatorName
	if operator == "" {
		operator = GetOperator(c)
	}
	result, err := h.uc.ApplyMovement(c.Context(), ledger.ApplyMovementInput{
		PartID:       c.Params("id"),
		Direction:    in.Direction,
		Quantity:     in.Quantity,
		MachineID:    in.MachineID,
		OperatorName: operator,
		Notes:        in.Notes,
		ActorID:      GetUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.MovementFailed("validation")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid movement data"})
		case errors.Is(err, domain.ErrNotFound):
			metrics.MovementFailed("not_found")
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			metrics.MovementFailed("insufficient_stock")
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock would go negative"})
		case errors.Is(err, domain.ErrInvalidQuantity):
			metrics.MovementFailed("invalid_quantity")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "quantity write rejected"})
		default:
			metrics.MovementFailed("internal")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	metrics.MovementApplied(in.Direction)
	return c.Status(fiber.StatusCreated).JSON(dto.ApplyMovementResponse{
		TransactionID: result.TransactionID,
		NewQuantity:   result.NewQuantity,
	})
}

// Consistency replays the part's ledger and compares it with the stored
// quantity.
func (h *MovementHandler) Consistency(c *fiber.Ctx) error {
	res, err := h.uc.CheckConsistency(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ConsistencyResponse{
		PartID:         res.PartID,
		PartQuantity:   res.PartQuantity,
		LedgerQuantity: res.LedgerQuantity,
		Consistent:     res.Consistent,
	})
}
