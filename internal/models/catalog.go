package models

import "time"

// TitleKind is the fixed vocabulary of deliverable types encoded in the
// provider's file naming convention (YEAR_CLIENT_TITLE..._TYPE).
type TitleKind string

const (
	KindFull      TitleKind = "FULL"
	KindAd        TitleKind = "AD"
	KindMV        TitleKind = "MV"
	KindSnippet   TitleKind = "SNIPPET"
	KindClip      TitleKind = "CLIP"
	KindCut       TitleKind = "CUT"
	KindBreakdown TitleKind = "BREAKDOWN"
)

// Video is a single video as returned by the hosting provider, before any
// decoration. CreatedAt is the zero time when the provider omitted it.
type Video struct {
	ID        string
	RawTitle  string
	Summary   string
	CreatedAt time.Time
	Duration  int // seconds, 0 when unknown
	Thumbnail string
	EmbedURL  string
	FolderID  string // folder the video was first collected from
}

// ParsedTitle holds the structured fields recovered from a raw provider
// title. Unset fields stay at their zero value; FeaturedOrder is a pointer
// because an explicit rank of any value must be distinguishable from none.
type ParsedTitle struct {
	Year          int
	Client        string
	Title         string
	Kind          TitleKind
	FeaturedOrder *int
}

// CatalogItem is the output contract served to the presentation layer:
// the provider fields passed through plus the computed display title and
// resolved year.
type CatalogItem struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	RawTitle        string     `json:"rawTitle,omitempty"`
	Client          string     `json:"client,omitempty"`
	Kind            string     `json:"kind,omitempty"`
	Year            int        `json:"year,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	DurationSeconds int        `json:"durationSeconds,omitempty"`
	ThumbnailURL    string     `json:"thumbnailUrl,omitempty"`
	EmbedURL        string     `json:"embedUrl,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	FeaturedOrder   *int       `json:"featuredOrder,omitempty"`
}

// CatalogResponse is the stable envelope of GET /api/catalog. OK is false
// when the upstream fetch failed; consumers treat an empty list as
// "temporarily unavailable", never as an empty catalog.
type CatalogResponse struct {
	OK    bool          `json:"ok"`
	Count int           `json:"count"`
	Items []CatalogItem `json:"items"`
}

// Slide is a hero slideshow entry derived from a featured catalog item.
type Slide struct {
	ID         string `json:"id"`
	SourceURL  string `json:"sourceUrl"`
	Label      string `json:"label"`
	DurationMS int    `json:"durationMs"`
}

// FeaturedResponse is the envelope of GET /api/catalog/featured.
type FeaturedResponse struct {
	OK     bool    `json:"ok"`
	Count  int     `json:"count"`
	Slides []Slide `json:"slides"`
}
