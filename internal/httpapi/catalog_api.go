package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/lucidmotion/showreel/internal/auth"
	"github.com/lucidmotion/showreel/internal/catalog"
	"github.com/lucidmotion/showreel/internal/logging"
	"github.com/lucidmotion/showreel/internal/models"
)

const (
	defaultFeaturedLimit = 5
	maxFeaturedLimit     = 20

	// catalogTimeout bounds one full traversal of the provider folder tree.
	catalogTimeout = 60 * time.Second
)

type catalogProvider interface {
	Catalog(ctx context.Context) models.CatalogResponse
	Refresh(ctx context.Context) models.CatalogResponse
}

// CatalogAPI serves the catalog contract consumed by the site's hero and
// projects grid.
type CatalogAPI struct {
	svc           catalogProvider
	admin         *auth.Middleware
	publicBaseURL string
	logger        *logging.Logger
}

// NewCatalogAPI creates the catalog API handler. admin may be nil, which
// leaves the refresh endpoint unregistered.
func NewCatalogAPI(svc catalogProvider, admin *auth.Middleware, publicBaseURL string, logger *logging.Logger) *CatalogAPI {
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogAPI{
		svc:           svc,
		admin:         admin,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// RegisterRoutes registers catalog routes on the given mux.
func (api *CatalogAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/catalog", corsMiddleware(api.handleCatalog))
	mux.HandleFunc("/api/catalog/featured", corsMiddleware(api.handleFeatured))
	if api.admin != nil {
		mux.HandleFunc("/api/catalog/refresh", corsMiddleware(api.admin.RequireAdmin(api.handleRefresh)))
	} else {
		api.logger.Warn("catalog refresh endpoint not registered: no admin secret configured")
	}
	if api.publicBaseURL != "" {
		mux.HandleFunc("/sitemap.xml", api.handleSitemap)
	}
	mux.HandleFunc("/healthz", api.handleHealth)
}

// handleCatalog always answers 200; ok:false in the body signals upstream
// failure and an empty list means "temporarily unavailable", never "empty".
func (api *CatalogAPI) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	api.writeJSON(w, http.StatusOK, api.svc.Catalog(ctx))
}

func (api *CatalogAPI) handleFeatured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultFeaturedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxFeaturedLimit {
		limit = maxFeaturedLimit
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	response := api.svc.Catalog(ctx)
	slides := catalog.Slides(catalog.SelectFeatured(response.Items, limit))

	api.writeJSON(w, http.StatusOK, models.FeaturedResponse{
		OK:     response.OK,
		Count:  len(slides),
		Slides: slides,
	})
}

func (api *CatalogAPI) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	api.logger.Info("catalog refresh requested")
	api.writeJSON(w, http.StatusOK, api.svc.Refresh(ctx))
}

func (api *CatalogAPI) handleHealth(w http.ResponseWriter, r *http.Request) {
	api.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (api *CatalogAPI) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		api.logger.Error("failed to encode response", logging.WithField("error", err.Error()))
	}
}
