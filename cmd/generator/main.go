package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"outlet-forge/internal/catalog/repository"
	"outlet-forge/internal/common/config"
	"outlet-forge/internal/common/middleware"
	"outlet-forge/internal/generator/handlers"
	"outlet-forge/internal/generator/service"
	"outlet-forge/internal/geometry"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Generator Service
// ============================================================

func main() {
	cfg := config.Load()

	db, err := repository.OpenSQLite(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	storage := service.NewFileStorage(cfg.GeneratedDir)
	svc := service.New(geometry.NewResolver(repo), geometry.DefaultRegistry(), storage, cfg.MeshSegments)
	generatorHandler := handlers.NewGeneratorHandler(repo, svc)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		BodyLimit:    cfg.BodyLimit,
		AppName:      "Outlet Generator Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Routes
	// ============================================================

	generatorHandler.Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Generator Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
