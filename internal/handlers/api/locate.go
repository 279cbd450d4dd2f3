package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"stocktrace/internal/config"
	"stocktrace/internal/locate"
	"stocktrace/internal/metrics"
	"stocktrace/internal/validation"
)

// LocateHandler exposes the location-hypothesis engine over JSON.
type LocateHandler struct {
	engine *locate.Engine
	cfg    *config.Config
	cache  fiber.Storage
}

// NewLocateHandler creates a new locate handler. cache may be nil to
// disable response caching.
func NewLocateHandler(engine *locate.Engine, cfg *config.Config, cache fiber.Storage) *LocateHandler {
	return &LocateHandler{engine: engine, cfg: cfg, cache: cache}
}

// Locate ranks the most likely current locations for an asset.
// GET /api/locate/:id?top=5
func (h *LocateHandler) Locate(c fiber.Ctx) error {
	start := time.Now()

	id := validation.NormalizeIdentifier(c.Params("id"))
	if !validation.ValidateIdentifier(id) {
		return jsonError(c, fiber.StatusBadRequest, "invalid asset identifier")
	}

	topN := fiber.Query(c, "top", locate.DefaultTopN)
	if topN < 1 || topN > 50 {
		return jsonError(c, fiber.StatusBadRequest, "top must be between 1 and 50")
	}

	cacheKey := fmt.Sprintf("locate:%s:%d", id, topN)
	if h.cache != nil {
		if payload, err := h.cache.Get(cacheKey); err == nil && len(payload) > 0 {
			metrics.RecordLookup("cached", time.Since(start))
			return jsonCached(c, payload)
		}
	}

	report, err := h.engine.Lookup(c.Context(), id, topN)
	if err != nil {
		// Only invariant violations surface here; source failures are
		// diagnostics inside the report.
		slog.Error("lookup failed", "asset_id", id, "error", err)
		metrics.RecordLookup("error", time.Since(start))
		return jsonError(c, fiber.StatusInternalServerError, "lookup failed")
	}

	metrics.RecordSourceFailures(report.Degraded)
	for _, f := range report.Degraded {
		slog.Warn("record source degraded", "asset_id", id, "source", f.Source, "error", f.Err)
	}

	outcome := "ok"
	if len(report.Results) == 0 {
		outcome = "empty"
	}
	metrics.RecordLookup(outcome, time.Since(start))

	if h.cache != nil && len(report.Degraded) == 0 {
		if payload, err := json.Marshal(fiber.Map{"status": "ok", "data": report}); err == nil {
			if err := h.cache.Set(cacheKey, payload, h.cfg.CacheTTL); err != nil {
				slog.Warn("failed to cache lookup", "asset_id", id, "error", err)
			}
		}
	}

	return jsonSuccess(c, report)
}
