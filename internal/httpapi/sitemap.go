package httpapi

import (
	"context"
	"encoding/xml"
	"net/http"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapIndex struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// handleSitemap renders a sitemap for the static pages plus one entry per
// catalog item, rooted at the configured public base URL.
func (api *CatalogAPI) handleSitemap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	index := sitemapIndex{
		XMLNS: sitemapNamespace,
		URLs: []sitemapURL{
			{Loc: api.publicBaseURL + "/"},
			{Loc: api.publicBaseURL + "/projects"},
			{Loc: api.publicBaseURL + "/contact"},
		},
	}

	response := api.svc.Catalog(ctx)
	for _, item := range response.Items {
		entry := sitemapURL{Loc: api.publicBaseURL + "/projects/" + item.ID}
		if item.CreatedAt != nil {
			entry.LastMod = item.CreatedAt.Format(time.RFC3339)
		}
		index.URLs = append(index.URLs, entry)
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(index); err != nil {
		api.logger.Error("failed to encode sitemap")
	}
}
