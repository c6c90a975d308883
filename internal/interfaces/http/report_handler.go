package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sorawitt/spareparts-api/internal/application/dto"
	"github.com/sorawitt/spareparts-api/internal/application/report"
	"github.com/sorawitt/spareparts-api/internal/domain"
	"github.com/sorawitt/spareparts-api/internal/infrastructure/metrics"
)

// ReportService is the slice of the report use case the handler needs.
type ReportService interface {
	Build(ctx context.Context, direction, startDate, endDate string) (*dto.TransactionReportResponse, error)
}

// ReportHandler serves the time-ranged transaction report, as JSON or PDF.
type ReportHandler struct {
	uc  ReportService
	pdf report.PDFGenerator
}

// NewReportHandler builds the handler. pdf may be nil, in which case
// format=pdf is rejected.
func NewReportHandler(uc ReportService, pdf report.PDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Transactions builds a movement report for ?direction=&start=&end=
// (dates as YYYY-MM-DD, end inclusive). ?format=pdf renders the same report
// as a printable document.
func (h *ReportHandler) Transactions(c *fiber.Ctx) error {
	direction := c.Query("direction")
	start := c.Query("start")
	end := c.Query("end")
	format := c.Query("format", "json")

	began := time.Now()
	rep, err := h.uc.Build(c.Context(), direction, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direction must be in|out and dates YYYY-MM-DD with start <= end"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.ReportBuilt(time.Since(began))

	if format == "pdf" {
		if h.pdf == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pdf output not available"})
		}
		doc, err := h.pdf.Generate(c.Context(), rep)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=transactions-%s-%s-%s.pdf", rep.Direction, rep.StartDate, rep.EndDate))
		return c.Send(doc)
	}
	return c.JSON(rep)
}
