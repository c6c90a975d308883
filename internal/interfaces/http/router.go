package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sorawitt/spareparts-api/internal/application/report"
	"github.com/sorawitt/spareparts-api/pkg/jwt"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CatalogUC CatalogService
	LedgerUC  LedgerService
	AlertUC   AlertService
	ReportUC  ReportService
	PDF       report.PDFGenerator
	JWTSecret string
}

// Router registers the API routes. Everything under /api requires a Bearer
// token; deleting parts additionally requires a manager role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.CatalogUC)
	parts.Get("/", partHandler.List)
	parts.Post("/", partHandler.Create)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", RequireRole(jwt.RoleWarehouseManager, jwt.RoleMaintenanceSupervisor), partHandler.Delete)

	movementHandler := NewMovementHandler(deps.LedgerUC)
	parts.Post("/:id/movements", movementHandler.Apply)
	parts.Get("/:id/consistency", movementHandler.Consistency)

	alertHandler := NewAlertHandler(deps.AlertUC)
	api.Get("/alerts", alertHandler.Alerts)
	api.Get("/dashboard", alertHandler.Dashboard)

	reportHandler := NewReportHandler(deps.ReportUC, deps.PDF)
	api.Get("/reports/transactions", reportHandler.Transactions)
}
