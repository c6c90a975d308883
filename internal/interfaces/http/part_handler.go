package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sorawitt/spareparts-api/internal/application/catalog"
	"github.com/sorawitt/spareparts-api/internal/application/dto"
	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
)

// CatalogService is the slice of the catalog use case the handler needs.
type CatalogService interface {
	Create(ctx context.Context, in catalog.CreatePartInput) (*entity.Part, error)
	Get(ctx context.Context, id string) (*entity.Part, error)
	Update(ctx context.Context, id string, in catalog.UpdatePartInput) (*entity.Part, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, term, category string) ([]*entity.Part, error)
}

// PartHandler handles the part catalog endpoints.
type PartHandler struct {
	uc CatalogService
}

// NewPartHandler builds the handler.
func NewPartHandler(uc CatalogService) *PartHandler {
	return &PartHandler{uc: uc}
}

// List returns the catalog filtered by ?q= and ?category=, ordered by
// storage location.
func (h *PartHandler) List(c *fiber.Ctx) error {
	term := c.Query("q")
	category := c.Query("category")

	parts, err := h.uc.List(c.Context(), term, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, dto.PartToResponse(p))
	}
	return c.JSON(fiber.Map{"total": len(out), "parts": out})
}

// GetByID returns one part with its derived status.
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	part, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PartToResponse(part))
}

// Create registers a new part in the catalog.
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	part, err := h.uc.Create(c.Context(), catalog.CreatePartInput{
		Code:              in.Code,
		Name:              in.Name,
		Description:       in.Description,
		MachineType:       in.MachineType,
		Category:          in.Category,
		QuantityInStock:   in.QuantityInStock,
		MinimumStockLevel: in.MinimumStockLevel,
		StorageLocation:   in.StorageLocation,
		UnitPrice:         in.UnitPrice,
		ServiceLifeMonths: in.ServiceLifeMonths,
		ImageURL:          in.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid part data"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "part code already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PartToResponse(part))
}

// Update edits the descriptive fields of a part. Quantity is not editable
// here; it only moves through the ledger.
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	part, err := h.uc.Update(c.Context(), c.Params("id"), catalog.UpdatePartInput{
		Name:              in.Name,
		Description:       in.Description,
		MachineType:       in.MachineType,
		Category:          in.Category,
		MinimumStockLevel: in.MinimumStockLevel,
		StorageLocation:   in.StorageLocation,
		UnitPrice:         in.UnitPrice,
		ServiceLifeMonths: in.ServiceLifeMonths,
		ImageURL:          in.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid part data"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.PartToResponse(part))
}

// Delete removes a part. Its ledger entries stay behind and show up as
// orphaned in reports.
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
