package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tacticlens/internal/datastore"
	"tacticlens/internal/handlers"
	"tacticlens/internal/handlers/api"
	"tacticlens/internal/middleware"
	"tacticlens/internal/models"
)

// RegisterRoutes registers all application routes. defaults is the seed
// tactic list new sessions start from.
func (s *Server) RegisterRoutes(ctx context.Context, data *datastore.Store, defaults []models.Tactic) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(s.Cfg, data, defaults)
	datasetHandler := handlers.NewDatasetHandler(s.Cfg, data)
	tacticHandler := handlers.NewTacticHandler(s.Cfg, defaults)
	classifyHandler := handlers.NewClassifyHandler(s.Cfg, data, defaults)
	apiTacticHandler := api.NewTacticHandler(defaults)
	apiClassifyHandler := api.NewClassifyHandler(defaults)
	apiHealthHandler := api.NewHealthHandler()

	// Auth routes - only registered when OIDC is configured; otherwise the
	// app runs open.
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Login page (always available)
	s.App.Get("/login", pageHandler.Login)

	// Main flow
	s.App.Get("/", authMiddleware.RequireAuth, pageHandler.Index)
	s.App.Post("/upload", authMiddleware.RequireAuth, datasetHandler.Upload)
	s.App.Post("/classify", authMiddleware.RequireAuth, classifyHandler.Run)
	s.App.Get("/download", authMiddleware.RequireAuth, datasetHandler.Download)

	// Dictionary editor
	s.App.Get("/tactics", authMiddleware.RequireAuth, tacticHandler.List)
	s.App.Post("/tactics", authMiddleware.RequireAuth, tacticHandler.Add)
	s.App.Put("/tactics/:name", authMiddleware.RequireAuth, tacticHandler.Update)
	s.App.Delete("/tactics/:name", authMiddleware.RequireAuth, tacticHandler.Remove)
	s.App.Post("/tactics/reset", authMiddleware.RequireAuth, tacticHandler.Reset)

	// JSON API
	s.App.Get("/api/tactics", authMiddleware.RequireAuth, apiTacticHandler.List)
	s.App.Put("/api/tactics", authMiddleware.RequireAuth, apiTacticHandler.Replace)
	s.App.Post("/api/tactics", authMiddleware.RequireAuth, apiTacticHandler.Add)
	s.App.Delete("/api/tactics/:name", authMiddleware.RequireAuth, apiTacticHandler.Remove)
	s.App.Post("/api/classify", authMiddleware.RequireAuth, apiClassifyHandler.Run)
	s.App.Get("/api/healthz", apiHealthHandler.Healthz)

	// Prometheus metrics
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
