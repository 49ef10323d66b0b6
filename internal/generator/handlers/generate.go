package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"outlet-forge/internal/catalog/models"
	"outlet-forge/internal/catalog/repository"
	"outlet-forge/internal/generator/service"
	"outlet-forge/internal/geometry"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Generator Handler
// ============================================================

// Catalog: то, что нужно хендлерам от хранилища розеток.
type Catalog interface {
	Ping(ctx context.Context) error
	ListOutletTypes(ctx context.Context) ([]models.OutletTypeSummary, error)
	GetProduct(ctx context.Context, outletType string) (*models.Outlet, error)
	GetSpecification(ctx context.Context, outletType string) (*models.Specification, error)
}

type GeneratorHandler struct {
	catalog Catalog
	service *service.Service
}

func NewGeneratorHandler(catalog Catalog, svc *service.Service) *GeneratorHandler {
	return &GeneratorHandler{
		catalog: catalog,
		service: svc,
	}
}

type generateRequest struct {
	OutletType    string          `json:"outlet_type"`
	Arrangement   string          `json:"arrangement"`
	SessionID     string          `json:"session_id"`
	CustomOptions service.Options `json:"custom_options"`
}

type generateResponse struct {
	Success     bool            `json:"success"`
	Result      *service.Result `json:"result"`
	DownloadURL string          `json:"download_url"`
}

// Generate строит STL по типу розетки и раскладке.
func (h *GeneratorHandler) Generate(c fiber.Ctx) error {
	log.Printf("[GENERATOR] Generate request")

	var req generateRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}
	}
	if req.SessionID == "" {
		req.SessionID = service.NewSessionID()
	}

	result, err := h.service.Generate(c.Context(), service.Request{
		SessionID:   req.SessionID,
		OutletType:  req.OutletType,
		Arrangement: req.Arrangement,
		Options:     req.CustomOptions,
	})
	if err != nil {
		log.Printf("[GENERATOR] Generate error: %v", err)
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(generateResponse{
		Success:     true,
		Result:      result,
		DownloadURL: "/api/download/" + result.SessionID + "/" + result.Filename,
	})
}

// Download отдаёт сгенерированный STL.
func (h *GeneratorHandler) Download(c fiber.Ctx) error {
	path, err := h.service.Storage().Lookup(c.Params("session"), c.Params("file"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidSession) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid session"})
		}
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	}

	c.Set("Content-Type", "model/stl")
	return c.Download(path, c.Params("file"))
}

// ListOutletTypes возвращает поддерживаемые типы розеток.
func (h *GeneratorHandler) ListOutletTypes(c fiber.Ctx) error {
	types, err := h.catalog.ListOutletTypes(c.Context())
	if err != nil {
		log.Printf("[GENERATOR] List outlet types error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"outlet_types": types})
}

// GetProduct возвращает карточку и спецификацию типа (?type=CEE_7/4).
func (h *GeneratorHandler) GetProduct(c fiber.Ctx) error {
	outletType := c.Query("type")
	if outletType == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "type required"})
	}

	product, err := h.catalog.GetProduct(c.Context(), outletType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "outlet type not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	spec, err := h.catalog.GetSpecification(c.Context(), outletType)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"product":        product,
		"specifications": spec,
	})
}

// ListArrangements возвращает таблицу раскладок.
func (h *GeneratorHandler) ListArrangements(c fiber.Ctx) error {
	var out []geometry.ArrangementConfig
	for _, name := range geometry.Arrangements() {
		out = append(out, geometry.Plan(name))
	}
	return c.JSON(fiber.Map{"arrangements": out})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, geometry.ErrValidation), errors.Is(err, service.ErrInvalidSession):
		return http.StatusBadRequest
	case errors.Is(err, geometry.ErrUpstreamLookup):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
