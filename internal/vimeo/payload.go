package vimeo

import (
	"fmt"
	"path"
	"time"

	"github.com/lucidmotion/showreel/internal/models"
	"github.com/lucidmotion/showreel/internal/titles"
)

const summaryMaxLen = 280

type pictureSize struct {
	Width int    `json:"width"`
	Link  string `json:"link"`
}

type videoPayload struct {
	URI         string `json:"uri"` // "/videos/123456789"
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedTime string `json:"created_time"`
	Duration    int    `json:"duration"`
	Player      string `json:"player_embed_url"`
	Pictures    struct {
		Sizes []pictureSize `json:"sizes"`
	} `json:"pictures"`
}

func (p videoPayload) toVideo(folderID string) models.Video {
	id := path.Base(p.URI)

	var created time.Time
	if p.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, p.CreatedTime); err == nil {
			created = t.UTC()
		}
	}

	embed := p.Player
	if embed == "" && isDigits(id) {
		embed = fmt.Sprintf(playerURLTemplate, id)
	}

	return models.Video{
		ID:        id,
		RawTitle:  p.Name,
		Summary:   titles.Summarize(p.Description, summaryMaxLen),
		CreatedAt: created,
		Duration:  p.Duration,
		Thumbnail: largestPicture(p.Pictures.Sizes),
		EmbedURL:  embed,
		FolderID:  folderID,
	}
}

// largestPicture picks the widest variant, falling back to the first entry.
// The provider usually returns sizes smallest-first but that is not
// guaranteed, so widths are compared explicitly.
func largestPicture(sizes []pictureSize) string {
	if len(sizes) == 0 {
		return ""
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.Width > best.Width {
			best = s
		}
	}
	if best.Link == "" {
		return sizes[0].Link
	}
	return best.Link
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// folderEntry tolerates the two envelope shapes child folders arrive in:
// the generic items endpoint wraps the folder object, the dedicated
// sub-folders endpoint returns it bare.
type folderEntry struct {
	Type   string `json:"type"`
	URI    string `json:"uri"`
	Folder *struct {
		URI string `json:"uri"`
	} `json:"folder"`
}

func (e folderEntry) folderID() string {
	uri := e.URI
	if e.Folder != nil && e.Folder.URI != "" {
		uri = e.Folder.URI
	}
	if uri == "" {
		return ""
	}
	id := path.Base(uri)
	if id == "." || id == "/" {
		return ""
	}
	return id
}
