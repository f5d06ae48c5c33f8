package http

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health       *Handler
	Employees    *EmployeeHandler
	Applications *ApplicationHandler
	Products     *ProductHandler
	Documents    *DocumentHandler
	Reports      *ReportHandler
	Admin        *AdminHandler
}

// Register mounts every route on e. mw wraps the whole API, e.g. the
// idempotency middleware.
func Register(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	api := e.Group("", mw...)
	api.GET("/dashboard", h.Reports.Dashboard)
	api.GET("/reports/employees", h.Reports.Employees)

	api.GET("/employees", h.Employees.List)
	api.POST("/employees", h.Employees.Create)
	api.PUT("/employees/:id", h.Employees.Update)
	api.DELETE("/employees/:id", h.Employees.Delete)

	api.GET("/applications", h.Applications.List)
	api.POST("/applications", h.Applications.Create)
	api.POST("/applications/import", h.Applications.Import)
	api.GET("/applications/:id", h.Applications.Get)
	api.PUT("/applications/:id", h.Applications.Update)

	api.GET("/loan-products", h.Products.List)
	api.POST("/loan-products", h.Products.Create)
	api.DELETE("/loan-products/:id", h.Products.Delete)

	api.GET("/documents", h.Documents.List)
	api.POST("/documents", h.Documents.Upload)
	api.GET("/documents/:id/file", h.Documents.Download)

	api.POST("/setup-admin", h.Admin.SetupAdmin)
}
