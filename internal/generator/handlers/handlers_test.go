package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outlet-forge/internal/catalog/models"
	"outlet-forge/internal/catalog/repository"
	"outlet-forge/internal/generator/handlers"
	"outlet-forge/internal/generator/service"
	"outlet-forge/internal/geometry"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	pingErr error
}

func (f *fakeCatalog) Ping(context.Context) error { return f.pingErr }

func (f *fakeCatalog) ListOutletTypes(context.Context) ([]models.OutletTypeSummary, error) {
	return []models.OutletTypeSummary{{Type: "NEMA_5-15R", Name: "NEMA 5-15R Standard Socket"}}, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, outletType string) (*models.Outlet, error) {
	if outletType != "NEMA_5-15R" {
		return nil, repository.ErrNotFound
	}
	return &models.Outlet{OutletType: outletType, Name: "NEMA 5-15R Standard Socket"}, nil
}

func (f *fakeCatalog) GetSpecification(_ context.Context, outletType string) (*models.Specification, error) {
	if outletType != "NEMA_5-15R" {
		return nil, repository.ErrNotFound
	}
	return &models.Specification{OutletType: outletType, Dimensions: models.Dimensions{Width: 114.3, Height: 69.9, Depth: 44.5}}, nil
}

func newApp(t *testing.T, catalog handlers.Catalog) *fiber.App {
	t.Helper()
	svc := service.New(
		geometry.NewResolver(geometry.StaticProfiles{}),
		geometry.DefaultRegistry(),
		service.NewFileStorage(t.TempDir()),
		geometry.DefaultSegments,
	)
	app := fiber.New()
	handlers.NewGeneratorHandler(catalog, svc).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

type generateResponse struct {
	Success     bool           `json:"success"`
	Result      service.Result `json:"result"`
	DownloadURL string         `json:"download_url"`
}

func TestGenerateAndDownload(t *testing.T) {
	app := newApp(t, &fakeCatalog{})

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"outlet_type":"NEMA_5-15R","arrangement":"single"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := do(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out generateResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.True(t, out.Success)
	require.NoError(t, service.ValidateSession(out.Result.SessionID))
	require.Equal(t, 72, out.Result.TriangleCount)
	require.Equal(t, "/api/download/"+out.Result.SessionID+"/NEMA_5-15R_single.stl", out.DownloadURL)

	resp, data := do(t, app, httptest.NewRequest(http.MethodGet, out.DownloadURL, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, data, 3684)
	require.Contains(t, resp.Header.Get("Content-Disposition"), "NEMA_5-15R_single.stl")
}

func TestGenerate_EmptyBodyUsesDefaults(t *testing.T) {
	app := newApp(t, &fakeCatalog{})

	resp, body := do(t, app, httptest.NewRequest(http.MethodPost, "/api/generate", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out generateResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.True(t, out.Result.Fallback)
	require.Equal(t, geometry.DefaultOutletType, out.Result.OutletType)
	require.Equal(t, "single", out.Result.Arrangement.Name)
}

func TestGenerate_BadRequests(t *testing.T) {
	app := newApp(t, &fakeCatalog{})

	cases := map[string]string{
		"invalid json":    `{"outlet_type":`,
		"invalid session": `{"session_id":"../../etc"}`,
		"negative wall":   `{"custom_options":{"wall_thickness":-1}}`,
		"zero depth":      `{"custom_options":{"depth":0}}`,
		"huge segments":   `{"custom_options":{"segments":1000000000}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			resp, body := do(t, app, req)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
		})
	}
}

func TestDownload_Errors(t *testing.T) {
	app := newApp(t, &fakeCatalog{})

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/download/not-a-session/x.stl", nil))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/download/"+service.NewSessionID()+"/x.stl", nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	app := newApp(t, &fakeCatalog{})

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/outlet-types", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `"type":"NEMA_5-15R"`)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/products?type=NEMA_5-15R", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `"specifications"`)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/products?type=NOPE", nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/arrangements", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var arr struct {
		Arrangements []geometry.ArrangementConfig `json:"arrangements"`
	}
	require.NoError(t, json.Unmarshal(body, &arr))
	require.Len(t, arr.Arrangements, 4)
	require.Equal(t, geometry.Plan("quad"), arr.Arrangements[3])
}

func TestHealth(t *testing.T) {
	resp, _ := do(t, newApp(t, &fakeCatalog{}), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	app := newApp(t, &fakeCatalog{pingErr: errors.New("db closed")})
	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "/api/generate")
}
