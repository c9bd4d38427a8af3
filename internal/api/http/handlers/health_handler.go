package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	version string
	dataDir string
}

// NewHealthHandler builds the handler.
func NewHealthHandler(version, dataDir string) *HealthHandler {
	return &HealthHandler{version: version, dataDir: dataDir}
}

// Live reports process liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": h.version})
}

// Ready reports whether the data directory is writable.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	probe := filepath.Join(h.dataDir, ".ready")
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	_ = os.Remove(probe)
	return c.JSON(fiber.Map{"status": "ready"})
}
