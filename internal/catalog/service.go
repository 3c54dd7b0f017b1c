// Package catalog turns the raw provider video list into the stable JSON
// contract the site consumes, and owns featured selection for the hero.
package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/lucidmotion/showreel/internal/cache"
	"github.com/lucidmotion/showreel/internal/logging"
	"github.com/lucidmotion/showreel/internal/models"
	"github.com/lucidmotion/showreel/internal/titles"
)

const cacheKey = "catalog:v1"

type fetcher interface {
	FetchCatalog(ctx context.Context, rootFolderID string) ([]models.Video, error)
}

// Service aggregates and decorates the catalog. It never returns an error to
// its caller: any upstream failure becomes an ok:false response with an empty
// item list, and consumers apply their own fallback content.
type Service struct {
	client       fetcher
	rootFolderID string
	store        cache.Store // nil disables caching
	ttl          time.Duration
	logger       *logging.Logger
}

// NewService creates the catalog service. store may be nil, in which case
// every request re-derives the full catalog.
func NewService(client fetcher, rootFolderID string, store cache.Store, ttl time.Duration, logger *logging.Logger) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		client:       client,
		rootFolderID: rootFolderID,
		store:        store,
		ttl:          ttl,
		logger:       logger,
	}
}

// Catalog returns the aggregated catalog, served from cache when available.
func (s *Service) Catalog(ctx context.Context) models.CatalogResponse {
	if s.store != nil {
		if data, ok := s.store.Get(ctx, cacheKey); ok {
			var cached models.CatalogResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
			s.store.Delete(ctx, cacheKey)
		}
	}
	return s.fetch(ctx)
}

// Refresh drops any cached catalog and re-derives it.
func (s *Service) Refresh(ctx context.Context) models.CatalogResponse {
	if s.store != nil {
		s.store.Delete(ctx, cacheKey)
	}
	return s.fetch(ctx)
}

func (s *Service) fetch(ctx context.Context) models.CatalogResponse {
	videos, err := s.client.FetchCatalog(ctx, s.rootFolderID)
	if err != nil {
		s.logger.Error("catalog fetch failed", logging.WithFields(map[string]interface{}{
			"root_folder": s.rootFolderID,
			"error":       err.Error(),
		}))
		return models.CatalogResponse{OK: false, Count: 0, Items: []models.CatalogItem{}}
	}

	items := make([]models.CatalogItem, 0, len(videos))
	for _, video := range videos {
		items = append(items, Decorate(video))
	}

	response := models.CatalogResponse{OK: true, Count: len(items), Items: items}

	if s.store != nil {
		if data, err := json.Marshal(response); err == nil {
			s.store.Set(ctx, cacheKey, data, s.ttl)
		}
	}

	s.logger.Info("catalog aggregated", logging.WithField("count", len(items)))
	return response
}

// Decorate runs the title parser over a provider video and computes the
// display title and resolved year.
func Decorate(video models.Video) models.CatalogItem {
	parsed := titles.Parse(video.RawTitle)

	item := models.CatalogItem{
		ID:              video.ID,
		Title:           displayTitle(parsed, video.RawTitle),
		RawTitle:        video.RawTitle,
		Client:          parsed.Client,
		Kind:            string(parsed.Kind),
		Year:            resolveYear(parsed, video),
		Summary:         video.Summary,
		DurationSeconds: video.Duration,
		ThumbnailURL:    video.Thumbnail,
		EmbedURL:        video.EmbedURL,
		FeaturedOrder:   parsed.FeaturedOrder,
	}
	if !video.CreatedAt.IsZero() {
		created := video.CreatedAt
		item.CreatedAt = &created
	}
	return item
}

// displayTitle is always non-empty: "{client} — {title}" when both parsed,
// then the parsed title, then the raw title, then "Untitled".
func displayTitle(parsed models.ParsedTitle, rawTitle string) string {
	switch {
	case parsed.Client != "" && parsed.Title != "":
		return parsed.Client + " — " + parsed.Title
	case parsed.Title != "":
		return parsed.Title
	case strings.TrimSpace(rawTitle) != "":
		return strings.TrimSpace(rawTitle)
	default:
		return "Untitled"
	}
}

func resolveYear(parsed models.ParsedTitle, video models.Video) int {
	if parsed.Year != 0 {
		return parsed.Year
	}
	if !video.CreatedAt.IsZero() {
		return video.CreatedAt.Year()
	}
	return 0
}
