package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

// LivenessProbe проверяет, что приложение работает
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe проверяет, что каталог доступен
func (h *GeneratorHandler) ReadinessProbe(c fiber.Ctx) error {
	if err := h.catalog.Ping(c.Context()); err != nil {
		log.Printf("[GENERATOR] Catalog ping failed: %v", err)
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
	})
}

// Home отдаёт страницу со списком эндпоинтов.
func Home(c fiber.Ctx) error {
	page := `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Outlet Plate Generator API</title>
  <style>
    body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
    .endpoint { background: #f5f5f5; padding: 10px; margin: 10px 0; border-radius: 5px; }
    .method { color: #007bff; font-weight: bold; }
  </style>
</head>
<body>
<h1>Outlet Plate Generator API</h1>
<div class="endpoint"><span class="method">GET</span> <code>/health/live</code>, <code>/health/ready</code></div>
<div class="endpoint"><span class="method">GET</span> <code>/api/outlet-types</code><br><small>Supported socket types</small></div>
<div class="endpoint"><span class="method">GET</span> <code>/api/products?type=NEMA_5-15R</code><br><small>Product card and specifications</small></div>
<div class="endpoint"><span class="method">GET</span> <code>/api/arrangements</code><br><small>single, double, triple, quad</small></div>
<div class="endpoint"><span class="method">POST</span> <code>/api/generate</code><br><small>{"outlet_type", "arrangement", "session_id", "custom_options": {"depth", "wall_thickness", "segments", "connector_cavity"}}</small></div>
<div class="endpoint"><span class="method">GET</span> <code>/api/download/:session/:file</code><br><small>Binary STL</small></div>
</body>
</html>`

	c.Type("html")
	return c.SendString(page)
}

// ============================================================
// Routes
// ============================================================

// Register вешает маршруты генератора на приложение.
func (h *GeneratorHandler) Register(app *fiber.App) {
	app.Get("/", Home)
	app.Get("/health/live", LivenessProbe)
	app.Get("/health/ready", h.ReadinessProbe)

	api := app.Group("/api")
	api.Get("/outlet-types", h.ListOutletTypes)
	api.Get("/products", h.GetProduct)
	api.Get("/arrangements", h.ListArrangements)
	api.Post("/generate", h.Generate)
	api.Get("/download/:session/:file", h.Download)
}
