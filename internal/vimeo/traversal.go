package vimeo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lucidmotion/showreel/internal/logging"
	"github.com/lucidmotion/showreel/internal/models"
)

// FetchCatalog walks the folder tree rooted at rootFolderID and returns the
// flattened catalog: every reachable video, de-duplicated by id
// (first-seen wins) and sorted by creation time descending with a collated
// title tie-break.
//
// A listing failure at the root aborts the fetch; the same failure deeper in
// the tree only drops that subtree's contribution.
func (c *Client) FetchCatalog(ctx context.Context, rootFolderID string) ([]models.Video, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}
	if rootFolderID == "" {
		return nil, errors.New("vimeo: missing root folder id")
	}

	t := &traversal{
		client:  c,
		visited: make(map[string]bool),
		byID:    make(map[string]models.Video),
	}
	if err := t.walk(ctx, rootFolderID); err != nil {
		return nil, fmt.Errorf("vimeo: fetch catalog from folder %s: %w", rootFolderID, err)
	}

	sortVideos(t.videos)
	return t.videos, nil
}

// traversal owns the shared state of one catalog walk. Folder fan-out runs
// children concurrently, so the visited set and the accumulator are
// mutex-guarded; a folder is claimed before its children are scheduled so two
// branches can never both recurse into it.
type traversal struct {
	client *Client

	mu      sync.Mutex
	visited map[string]bool
	byID    map[string]models.Video
	videos  []models.Video
}

// claim marks folderID as visited, reporting whether this call won the claim.
func (t *traversal) claim(folderID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.visited[folderID] {
		return false
	}
	t.visited[folderID] = true
	return true
}

func (t *traversal) walk(ctx context.Context, folderID string) error {
	if !t.claim(folderID) {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	videos, err := t.client.listVideos(ctx, folderID)
	if err != nil {
		return err
	}
	t.collect(folderID, videos)

	children := t.client.listChildFolders(ctx, folderID)
	if len(children) == 0 {
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, child := range children {
		child := child
		group.Go(func() error {
			if err := t.walk(groupCtx, child); err != nil {
				if groupCtx.Err() != nil {
					return err
				}
				// A failing subtree drops its own contribution only;
				// siblings keep going.
				t.client.logger.Warn("skipping folder subtree", logging.WithFields(map[string]interface{}{
					"folder": child,
					"parent": folderID,
					"error":  err.Error(),
				}))
			}
			return nil
		})
	}
	return group.Wait()
}

// collect merges one folder's videos into the accumulator, dropping ids seen
// before. A duplicate whose metadata disagrees with the first-seen copy is
// worth flagging: it means the same video carries different metadata on
// different paths.
func (t *traversal) collect(folderID string, videos []models.Video) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, video := range videos {
		previous, exists := t.byID[video.ID]
		if exists {
			if previous.RawTitle != video.RawTitle || !previous.CreatedAt.Equal(video.CreatedAt) {
				t.client.logger.Warn("duplicate video with conflicting metadata", logging.WithFields(map[string]interface{}{
					"id":           video.ID,
					"kept_folder":  previous.FolderID,
					"other_folder": folderID,
				}))
			}
			continue
		}
		t.byID[video.ID] = video
		t.videos = append(t.videos, video)
	}
}

func sortVideos(videos []models.Video) {
	coll := collate.New(language.English)
	sort.SliceStable(videos, func(i, j int) bool {
		vi, vj := videos[i], videos[j]
		if !vi.CreatedAt.Equal(vj.CreatedAt) {
			return vi.CreatedAt.After(vj.CreatedAt)
		}
		return coll.CompareString(vi.RawTitle, vj.RawTitle) < 0
	})
}
