package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"hrapi/internal/service"
)

// Services bundles the injected use-case layer for route registration.
type Services struct {
	Documents service.DocumentService
	Employees service.EmployeeService
	Org       service.OrgService
	Leaves    service.LeaveService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parse, delegate, translate errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Legacy document store contract used by the web client.
	app.Post("/api/upload/document", UploadDocument(svcs.Documents))
	app.Delete("/api/upload/document", DeleteUploadedDocument(svcs.Documents))

	app.Get("/employees", ListEmployees(svcs.Employees))
	app.Post("/employees", CreateEmployee(svcs.Employees))
	app.Get("/employees/:id", GetEmployee(svcs.Employees))
	app.Put("/employees/:id", UpdateEmployee(svcs.Employees))
	app.Patch("/employees/:id/status", UpdateEmployeeStatus(svcs.Employees))
	app.Delete("/employees/:id", DeleteEmployee(svcs.Employees))

	app.Get("/employees/:id/documents", ListEmployeeDocuments(svcs.Documents))
	app.Post("/employees/:id/documents", AttachDocument(svcs.Documents))
	app.Delete("/documents/:id", DetachDocument(svcs.Documents))

	app.Put("/employees/:id/leave", UpsertLeave(svcs.Leaves))
	app.Get("/employees/:id/leave", GetLeave(svcs.Leaves))
	app.Delete("/employees/:id/leave", DeleteLeave(svcs.Leaves))

	app.Get("/departments", ListDepartments(svcs.Org))
	app.Post("/departments", CreateDepartment(svcs.Org))
	app.Put("/departments/:id", RenameDepartment(svcs.Org))
	app.Delete("/departments/:id", DeleteDepartment(svcs.Org))

	app.Get("/designations", ListDesignations(svcs.Org))
	app.Post("/designations", CreateDesignation(svcs.Org))
	app.Put("/designations/:id", RenameDesignation(svcs.Org))
	app.Delete("/designations/:id", DeleteDesignation(svcs.Org))
}
