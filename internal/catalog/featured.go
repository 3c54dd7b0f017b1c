package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lucidmotion/showreel/internal/models"
)

const (
	defaultSlideSeconds = 15
	minSlideMillis      = 5000
)

// featuredWordPattern matches the standalone word "featured" in a raw title;
// it must not fire inside a larger token like "unfeatured".
var featuredWordPattern = regexp.MustCompile(`(?i)\bfeatured\b`)

// SelectFeatured returns the bounded featured subset for the landing hero.
// An item qualifies by carrying an explicit rank or by the word "featured"
// in its raw title. Explicit ranks order first (ascending), unranked
// qualifiers follow, newest first. Fewer qualifiers than limit is not an
// error; the result is simply shorter.
func SelectFeatured(items []models.CatalogItem, limit int) []models.CatalogItem {
	if limit <= 0 {
		return []models.CatalogItem{}
	}

	qualified := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.FeaturedOrder != nil || featuredWordPattern.MatchString(item.RawTitle) {
			qualified = append(qualified, item)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		ri, rj := rank(qualified[i]), rank(qualified[j])
		if ri != rj {
			return ri < rj
		}
		return createdAfter(qualified[i], qualified[j])
	})

	if len(qualified) > limit {
		qualified = qualified[:limit]
	}
	return qualified
}

// rank treats a missing explicit order as +infinity so ranked items always
// sort ahead of word-matched ones.
func rank(item models.CatalogItem) int {
	if item.FeaturedOrder == nil {
		return int(^uint(0) >> 1)
	}
	return *item.FeaturedOrder
}

func createdAfter(a, b models.CatalogItem) bool {
	if a.CreatedAt == nil {
		return false
	}
	if b.CreatedAt == nil {
		return true
	}
	return a.CreatedAt.After(*b.CreatedAt)
}

// Slides normalizes selected items into playable hero slides: a source URL,
// an accessible label and a display duration floored at 5 seconds so a
// missing or tiny duration never produces a flash-cut.
func Slides(items []models.CatalogItem) []models.Slide {
	slides := make([]models.Slide, 0, len(items))
	for _, item := range items {
		label := item.Title
		if label == "" {
			label = strings.TrimSpace(item.RawTitle)
		}
		if label == "" {
			label = "Untitled"
		}

		seconds := item.DurationSeconds
		if seconds <= 0 {
			seconds = defaultSlideSeconds
		}
		millis := seconds * 1000
		if millis < minSlideMillis {
			millis = minSlideMillis
		}

		slides = append(slides, models.Slide{
			ID:         item.ID,
			SourceURL:  item.EmbedURL,
			Label:      label,
			DurationMS: millis,
		})
	}
	return slides
}
