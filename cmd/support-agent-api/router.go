// Package main provides the support agent API server.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"supportagent/cmd/support-agent-api/handlers"
	"supportagent/cmd/support-agent-api/middleware"
	"supportagent/internal/chat"
	"supportagent/internal/config"
	"supportagent/internal/genai"
	"supportagent/internal/ingest"
	"supportagent/internal/observability"
)

// NewRouter creates the API router with all routes configured. When the
// Gemini API key is absent the ingest and chat endpoints stay registered but
// report the missing credential; search works regardless.
func NewRouter(logger *observability.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.WriteTimeout.Std()))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"support-agent"}`))
	})

	var ingestor handlers.Ingestor
	var responder handlers.Responder

	if cfg.Gemini.APIKey != "" {
		client, err := genai.NewClient(genai.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.Gemini.Timeout.Std(),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Failed to create Gemini client")
		} else {
			ingestor = ingest.NewPipeline(logger, client, ingest.PipelineConfig{
				FetchTimeout: cfg.Ingestion.FetchTimeout.Std(),
				UserAgent:    cfg.Ingestion.UserAgent,
				PollInterval: cfg.Ingestion.PollInterval.Std(),
				PollCeiling:  cfg.Ingestion.PollCeiling.Std(),
			})
			responder = chat.NewResponder(logger, client)
		}
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, ingest and chat endpoints disabled")
	}

	searchHandler := handlers.NewSearchHandler(logger)
	ingestionHandler := handlers.NewIngestionHandler(logger, ingestor)
	chatHandler := handlers.NewChatHandler(logger, responder)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", searchHandler.Search)
		r.Get("/search", searchHandler.Search)

		r.Post("/ingest", ingestionHandler.Ingest)
		r.Get("/ingest", ingestionHandler.Ingest)

		r.Post("/chat", chatHandler.Chat)
		r.Get("/chat", chatHandler.Chat)
	})

	return r
}
