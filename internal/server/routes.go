package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stocktrace/internal/db"
	"stocktrace/internal/handlers"
	"stocktrace/internal/handlers/api"
	"stocktrace/internal/locate"
	"stocktrace/internal/middleware"
)

// RegisterRoutes registers all application routes. cache may be nil.
func (s *Server) RegisterRoutes(database *db.DB, engine *locate.Engine, cache fiber.Storage) {
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg.APIToken)

	locateHandler := api.NewLocateHandler(engine, s.Cfg, cache)
	healthHandler := api.NewHealthHandler(database)
	dashboardHandler := handlers.NewDashboardHandler(engine, s.Cfg)

	apiGroup := s.App.Group("/api", authMiddleware.RequireToken)
	apiGroup.Get("/locate/:id", locateHandler.Locate)
	apiGroup.Get("/health", healthHandler.Check)

	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Dashboard pages
	s.App.Get("/", dashboardHandler.Index)
	s.App.Get("/trace/:id", dashboardHandler.Trace)
}
