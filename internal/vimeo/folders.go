package vimeo

import (
	"context"
	"fmt"

	"github.com/lucidmotion/showreel/internal/logging"
	"github.com/lucidmotion/showreel/internal/models"
)

// childStrategy is one way of discovering a folder's sub-folders. The
// provider has grown several shapes over time and not every account sees all
// of them, so discovery tries each in order and unions the results.
type childStrategy struct {
	name string
	path func(folderID string) string
}

func (c *Client) childStrategies() []childStrategy {
	strategies := []childStrategy{
		{
			name: "items",
			path: func(id string) string {
				return fmt.Sprintf("/me/projects/%s/items?type=project", id)
			},
		},
		{
			name: "projects",
			path: func(id string) string {
				return fmt.Sprintf("/me/projects/%s/projects", id)
			},
		},
	}
	if c.teamID != "" {
		strategies = append(strategies,
			childStrategy{
				name: "team-items",
				path: func(id string) string {
					return fmt.Sprintf("/users/%s/projects/%s/items?type=project", c.teamID, id)
				},
			},
			childStrategy{
				name: "team-projects",
				path: func(id string) string {
					return fmt.Sprintf("/users/%s/projects/%s/projects", c.teamID, id)
				},
			},
		)
	}
	return strategies
}

// listChildFolders discovers the sub-folders of folderID. Individual strategy
// failures are tolerated; when every strategy fails the folder is treated as
// a leaf rather than an error.
func (c *Client) listChildFolders(ctx context.Context, folderID string) []string {
	strategies := c.childStrategies()

	seen := make(map[string]bool)
	var children []string
	failures := 0

	for _, strategy := range strategies {
		ids, err := c.drainFolderIDs(ctx, strategy.path(folderID))
		if err != nil {
			failures++
			c.logger.Debug("child folder discovery strategy failed", logging.WithFields(map[string]interface{}{
				"folder":   folderID,
				"strategy": strategy.name,
				"error":    err.Error(),
			}))
			continue
		}
		for _, id := range ids {
			if id == folderID || seen[id] {
				continue
			}
			seen[id] = true
			children = append(children, id)
		}
	}

	if failures == len(strategies) {
		c.logger.Warn("all child discovery strategies failed, treating folder as leaf",
			logging.WithField("folder", folderID))
	}
	return children
}

// listVideos lists the videos directly inside folderID, trying the
// user-scoped path first and falling back to the team-scoped path when a
// team id is configured. Both failing is a real error: content is missing.
func (c *Client) listVideos(ctx context.Context, folderID string) ([]models.Video, error) {
	videos, err := c.drainVideos(ctx, folderID, fmt.Sprintf("/me/projects/%s/videos", folderID))
	if err == nil {
		return videos, nil
	}
	if c.teamID == "" {
		return nil, err
	}

	c.logger.Warn("user-scoped video listing failed, trying team scope", logging.WithFields(map[string]interface{}{
		"folder": folderID,
		"error":  err.Error(),
	}))

	videos, teamErr := c.drainVideos(ctx, folderID,
		fmt.Sprintf("/users/%s/projects/%s/videos", c.teamID, folderID))
	if teamErr != nil {
		// Surface the primary path's failure; the fallback is secondary.
		return nil, err
	}
	return videos, nil
}
