package proxy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Proxy Handler
// ============================================================

// Proxy пробрасывает запросы gateway в сервис генератора.
type Proxy struct {
	upstream string
	client   *http.Client
}

func New(upstream string, timeout time.Duration) *Proxy {
	return &Proxy{
		upstream: upstream,
		client:   &http.Client{Timeout: timeout},
	}
}

// To проксирует на фиксированный путь апстрима, query string сохраняется.
func (p *Proxy) To(path string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return p.forward(c, p.upstream+path)
	}
}

// Download проксирует скачивание файла сессии.
func (p *Proxy) Download(c fiber.Ctx) error {
	return p.forward(c, p.upstream+"/api/download/"+c.Params("session")+"/"+c.Params("file"))
}

// Ping проверяет готовность апстрима.
func (p *Proxy) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.upstream+"/health/ready", nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	return nil
}

func (p *Proxy) forward(c fiber.Ctx, targetURL string) error {
	if qs := c.Request().URI().QueryString(); len(qs) > 0 {
		targetURL += "?" + string(qs)
	}
	log.Printf("[PROXY] Request: %s %s -> %s (%d bytes)", c.Method(), c.Path(), targetURL, len(c.Body()))

	req, err := http.NewRequestWithContext(c.Context(), c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		log.Printf("[PROXY] build request error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "proxy failed"})
	}
	if contentType := c.Get("Content-Type"); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[PROXY] Error: %v", err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "failed to reach generator service"})
	}
	defer resp.Body.Close()

	return copyResponse(c, resp)
}

func copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[PROXY] Read response error: %v", err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "invalid upstream response"})
	}

	for _, key := range []string{"Content-Type", "Content-Disposition"} {
		if v := resp.Header.Get(key); v != "" {
			c.Set(key, v)
		}
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}
