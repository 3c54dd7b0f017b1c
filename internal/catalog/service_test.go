package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucidmotion/showreel/internal/cache"
	"github.com/lucidmotion/showreel/internal/logging"
	"github.com/lucidmotion/showreel/internal/models"
)

type fakeFetcher struct {
	videos []models.Video
	err    error
	calls  int
}

func (f *fakeFetcher) FetchCatalog(ctx context.Context, rootFolderID string) ([]models.Video, error) {
	f.calls++
	return f.videos, f.err
}

func TestCatalogNeverFails(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("upstream returned 500")}
	svc := NewService(fetcher, "root", nil, time.Minute, logging.Nop())

	response := svc.Catalog(context.Background())

	if response.OK {
		t.Error("OK = true, want false on upstream failure")
	}
	if response.Count != 0 {
		t.Errorf("Count = %d, want 0", response.Count)
	}
	if response.Items == nil {
		t.Error("Items = nil, want empty non-nil slice")
	}
	if len(response.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(response.Items))
	}
}

func TestCatalogDecoratesItems(t *testing.T) {
	created := time.Date(2023, 9, 12, 8, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{videos: []models.Video{
		{ID: "1", RawTitle: "2024_Nike_Air Max Launch_AD", CreatedAt: created, Duration: 30},
		{ID: "2", RawTitle: "Loose title", CreatedAt: created},
		{ID: "3", RawTitle: ""},
	}}
	svc := NewService(fetcher, "root", nil, time.Minute, logging.Nop())

	response := svc.Catalog(context.Background())

	if !response.OK {
		t.Fatal("OK = false, want true")
	}
	if response.Count != 3 {
		t.Fatalf("Count = %d, want 3", response.Count)
	}

	first := response.Items[0]
	if first.Title != "Nike — Air Max Launch" {
		t.Errorf("Items[0].Title = %q, want %q", first.Title, "Nike — Air Max Launch")
	}
	if first.Year != 2024 {
		t.Errorf("Items[0].Year = %d, want 2024 (parsed year beats created year)", first.Year)
	}
	if first.Kind != "AD" {
		t.Errorf("Items[0].Kind = %q, want %q", first.Kind, "AD")
	}

	second := response.Items[1]
	if second.Title != "Loose title" {
		t.Errorf("Items[1].Title = %q, want the raw title", second.Title)
	}
	if second.Year != 2023 {
		t.Errorf("Items[1].Year = %d, want 2023 (derived from created time)", second.Year)
	}

	third := response.Items[2]
	if third.Title != "Untitled" {
		t.Errorf("Items[2].Title = %q, want %q", third.Title, "Untitled")
	}
	if third.Year != 0 {
		t.Errorf("Items[2].Year = %d, want unset", third.Year)
	}
	if third.CreatedAt != nil {
		t.Errorf("Items[2].CreatedAt = %v, want nil", third.CreatedAt)
	}
}

func TestCatalogUsesCache(t *testing.T) {
	store := cache.NewMemory()
	defer store.Stop()

	fetcher := &fakeFetcher{videos: []models.Video{{ID: "1", RawTitle: "Reel"}}}
	svc := NewService(fetcher, "root", store, time.Minute, logging.Nop())

	first := svc.Catalog(context.Background())
	second := svc.Catalog(context.Background())

	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1 (second served from cache)", fetcher.calls)
	}
	if first.Count != second.Count {
		t.Errorf("cached response diverged: %d vs %d items", first.Count, second.Count)
	}
}

func TestCatalogDoesNotCacheFailures(t *testing.T) {
	store := cache.NewMemory()
	defer store.Stop()

	fetcher := &fakeFetcher{err: errors.New("boom")}
	svc := NewService(fetcher, "root", store, time.Minute, logging.Nop())

	svc.Catalog(context.Background())
	svc.Catalog(context.Background())

	if fetcher.calls != 2 {
		t.Errorf("fetcher called %d times, want 2 (failures are not cached)", fetcher.calls)
	}
}

func TestRefreshInvalidatesCache(t *testing.T) {
	store := cache.NewMemory()
	defer store.Stop()

	fetcher := &fakeFetcher{videos: []models.Video{{ID: "1", RawTitle: "Reel"}}}
	svc := NewService(fetcher, "root", store, time.Minute, logging.Nop())

	svc.Catalog(context.Background())
	svc.Refresh(context.Background())

	if fetcher.calls != 2 {
		t.Errorf("fetcher called %d times, want 2 (refresh bypasses cache)", fetcher.calls)
	}
}

func TestDisplayTitleRules(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"client and title", "2024_Nike_Air Max Launch_AD", "Nike — Air Max Launch"},
		{"title only via three tokens", "x_y_Some Piece", "y — Some Piece"},
		{"raw fallback", "A plain name", "A plain name"},
		{"untitled", "", "Untitled"},
		{"whitespace untitled", "   ", "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Decorate(models.Video{ID: "v", RawTitle: tt.raw})
			if item.Title != tt.expected {
				t.Errorf("Decorate(%q).Title = %q, want %q", tt.raw, item.Title, tt.expected)
			}
		})
	}
}
