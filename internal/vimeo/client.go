// Package vimeo implements the catalog client for the studio's video hosting
// provider: authenticated paginated listing, recursive folder traversal,
// de-duplication and deterministic ordering.
package vimeo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucidmotion/showreel/internal/logging"
	"github.com/lucidmotion/showreel/internal/models"
	"github.com/lucidmotion/showreel/internal/ratelimit"
)

const (
	defaultBaseURL = "https://api.vimeo.com"

	// pageSize bounds round-trips per listing; the provider caps at 100.
	pageSize = 100

	// playerURLTemplate synthesizes an embed URL when the provider omits one.
	playerURLTemplate = "https://player.vimeo.com/video/%s"

	errorBodyLimit = 4 << 10
)

// ErrMissingToken is returned when no API credential is configured.
var ErrMissingToken = errors.New("vimeo: missing API token")

// RemoteAPIError is a non-success HTTP status from the provider.
type RemoteAPIError struct {
	Status  int
	Message string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("vimeo: upstream status %d: %s", e.Status, e.Message)
}

// Config carries the provider connection settings.
type Config struct {
	Token   string
	TeamID  string        // optional, enables team-scoped fallback paths
	BaseURL string        // override for tests; defaults to the public API
	Timeout time.Duration // per-request deadline
}

// Client talks to the provider API. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	teamID     string
	limiter    ratelimit.Limiter
	logger     *logging.Logger
}

// NewClient creates a provider client. limiter may be nil to disable
// outbound throttling.
func NewClient(cfg Config, limiter ratelimit.Limiter, logger *logging.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      cfg.Token,
		teamID:     cfg.TeamID,
		limiter:    limiter,
		logger:     logger,
	}
}

func (c *Client) host() string {
	if u, err := url.Parse(c.baseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return c.baseURL
}

func (c *Client) throttle(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	for !c.limiter.Allow(c.host()) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return nil
}

// getJSON performs one authenticated GET. target may be a path relative to
// the base URL or an absolute URL (the provider's next-page pointers come in
// both shapes).
func (c *Client) getJSON(ctx context.Context, target string, dst interface{}) error {
	if err := c.throttle(ctx); err != nil {
		return err
	}

	fullURL := target
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		if !strings.HasPrefix(target, "/") {
			target = "/" + target
		}
		fullURL = c.baseURL + target
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("vimeo: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vimeo: request %s: %w", fullURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &RemoteAPIError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("vimeo: decode response from %s: %w", fullURL, err)
	}
	return nil
}

// withPageSize appends the per_page parameter to a listing path.
func withPageSize(path string) string {
	if strings.Contains(path, "?") {
		return fmt.Sprintf("%s&per_page=%d", path, pageSize)
	}
	return fmt.Sprintf("%s?per_page=%d", path, pageSize)
}

type pagingInfo struct {
	Next     string `json:"next"`
	NextHref string `json:"next_href"`
}

func (p pagingInfo) next() string {
	if p.Next != "" {
		return p.Next
	}
	return p.NextHref
}

type videoPage struct {
	Data   []videoPayload `json:"data"`
	Paging pagingInfo     `json:"paging"`
}

type folderPage struct {
	Data   []folderEntry `json:"data"`
	Paging pagingInfo    `json:"paging"`
}

// drainVideos follows the next-page chain from path until exhausted,
// accumulating items in arrival order.
func (c *Client) drainVideos(ctx context.Context, folderID, path string) ([]models.Video, error) {
	var videos []models.Video
	target := withPageSize(path)
	for target != "" {
		var page videoPage
		if err := c.getJSON(ctx, target, &page); err != nil {
			return nil, err
		}
		for _, payload := range page.Data {
			videos = append(videos, payload.toVideo(folderID))
		}
		target = page.Paging.next()
	}
	return videos, nil
}

// drainFolderIDs follows the next-page chain collecting child folder ids.
func (c *Client) drainFolderIDs(ctx context.Context, path string) ([]string, error) {
	var ids []string
	target := withPageSize(path)
	for target != "" {
		var page folderPage
		if err := c.getJSON(ctx, target, &page); err != nil {
			return nil, err
		}
		for _, entry := range page.Data {
			if id := entry.folderID(); id != "" {
				ids = append(ids, id)
			}
		}
		target = page.Paging.next()
	}
	return ids, nil
}
