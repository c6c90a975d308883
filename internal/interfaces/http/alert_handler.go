package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sorawitt/spareparts-api/internal/application/dto"
)

// AlertService is the slice of the alerts use case the handler needs.
type AlertService interface {
	Build(ctx context.Context) (*dto.AlertReportResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

// AlertHandler serves the alert report and dashboard figures.
type AlertHandler struct {
	uc AlertService
}

// NewAlertHandler builds the handler.
func NewAlertHandler(uc AlertService) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Alerts returns the out-of-stock and low-stock buckets with their
// valuations.
func (h *AlertHandler) Alerts(c *fiber.Ctx) error {
	report, err := h.uc.Build(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// Dashboard returns the headline inventory figures.
func (h *AlertHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(d)
}
