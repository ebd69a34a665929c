package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
)

// TokenVerifier turns a bearer token into the calling principal.
type TokenVerifier interface {
	Verify(raw string) (domain.Principal, error)
}

// Options wires the handler. Verifier may be nil, in which case every
// authenticated route answers 401. Health may be nil.
type Options struct {
	Ads            port.AdUseCase
	Marketplace    port.MarketplaceUseCase
	Verifier       TokenVerifier
	Health         func(ctx context.Context) error
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Handler is the inbound HTTP adapter. The ad and tracking routes are
// public and CORS-open because they are called from pages embedding the
// frames; listing and campaign management requires a bearer token.
type Handler struct {
	ads      port.AdUseCase
	market   port.MarketplaceUseCase
	verifier TokenVerifier
	health   func(ctx context.Context) error
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	h := &Handler{
		ads:      opts.Ads,
		market:   opts.Marketplace,
		verifier: opts.Verifier,
		health:   opts.Health,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(h.requestID)
	r.Use(middleware.Recoverer)
	r.Use(h.observe)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/ads/{listingId}/{frameId}", h.handleDecide)
	r.Post("/impressions", h.handleImpression)
	r.Post("/clicks", h.handleClick)
	r.Get("/r/{campaignId}/{frameId}", h.handleClickThrough)
	r.Get("/analytics/{campaignId}", h.handleAnalytics)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/listings", h.handleCreateListing)
		r.Get("/listings/{listingId}", h.handleGetListing)
		r.Put("/listings/{listingId}/frames/{frameId}", h.handleUpsertFrame)
		r.Get("/listings/{listingId}/earnings", h.handleEarnings)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{campaignId}", h.handleGetCampaign)
		r.Post("/campaigns/{campaignId}/approve", h.handleDecideCampaign(true))
		r.Post("/campaigns/{campaignId}/reject", h.handleDecideCampaign(false))
		r.Post("/campaigns/{campaignId}/archive", h.handleArchiveCampaign)
		r.Post("/campaigns/{campaignId}/restore", h.handleRestoreCampaign)
		r.Delete("/campaigns/{campaignId}", h.handleDeleteCampaign)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health(r.Context()); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
