package handlers

import (
	"log"
	"net/http"

	"outlet-forge/internal/gateway/proxy"

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

// ReadinessProbe готов, только если генератор отвечает на /health/ready
func ReadinessProbe(p *proxy.Proxy) fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := p.Ping(c.Context()); err != nil {
			log.Printf("[GATEWAY] Generator not ready: %v", err)
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status":    "unavailable",
				"generator": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	}
}

// StartupProbe проверяет, что приложение успешно запустилось
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}

// ============================================================
// Routes
// ============================================================

// Register вешает /api/v1/* на сервис генератора.
func Register(app *fiber.App, p *proxy.Proxy) {
	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Outlet Generator API v1",
			"status":  "ok",
		})
	})

	api.Get("/outlet-types", p.To("/api/outlet-types"))
	api.Get("/products", p.To("/api/products"))
	api.Get("/arrangements", p.To("/api/arrangements"))
	api.Post("/generate", p.To("/api/generate"))
	api.Get("/download/:session/:file", p.Download)
}
