package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"stocktrace/internal/config"
	"stocktrace/internal/locate"
	"stocktrace/internal/validation"
)

// DashboardHandler renders the operator-facing lookup pages.
type DashboardHandler struct {
	engine *locate.Engine
	cfg    *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(engine *locate.Engine, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{engine: engine, cfg: cfg}
}

// Index renders the lookup form.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":     "Locate an asset",
		"SiteTitle": h.cfg.SiteTitle,
	})
}

// Trace runs a lookup and renders the ranked hypotheses.
func (h *DashboardHandler) Trace(c fiber.Ctx) error {
	id := validation.NormalizeIdentifier(c.Params("id"))
	if !validation.ValidateIdentifier(id) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid asset identifier")
	}

	report, err := h.engine.Lookup(c.Context(), id, locate.DefaultTopN)
	if err != nil {
		slog.Error("dashboard lookup failed", "asset_id", id, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "lookup failed")
	}

	return c.Render("trace", fiber.Map{
		"Title":     "Trace " + id,
		"SiteTitle": h.cfg.SiteTitle,
		"Report":    report,
	})
}
