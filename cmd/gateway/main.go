package main

import (
	"fmt"
	"log"
	"time"

	"outlet-forge/internal/common/config"
	"outlet-forge/internal/common/middleware"
	"outlet-forge/internal/gateway/handlers"
	"outlet-forge/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	p := proxy.New(cfg.GeneratorURL, time.Duration(cfg.WriteTimeout)*time.Second)

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(p))
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Generator Routes (Proxy)
	// ============================================================

	handlers.Register(app, p)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.GatewayPort)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying /api/v1 to %s", cfg.GeneratorURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
