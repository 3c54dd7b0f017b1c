package vimeo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lucidmotion/showreel/internal/logging"
)

func newDiscoveryClient(t *testing.T, handler http.HandlerFunc, teamID string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		Token:   "tok",
		TeamID:  teamID,
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, nil, logging.Nop())
}

func folderListJSON(ids ...string) string {
	body := `{"data":[`
	for i, id := range ids {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"uri":"/me/projects/%s"}`, id)
	}
	return body + `],"paging":{"next":null}}`
}

func TestListChildFoldersFirstStrategySucceeds(t *testing.T) {
	client := newDiscoveryClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/projects/f/items":
			fmt.Fprint(w, folderListJSON("1", "2"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}, "")

	children := client.listChildFolders(context.Background(), "f")
	if len(children) != 2 {
		t.Fatalf("listChildFolders() = %v, want [1 2]", children)
	}
}

func TestListChildFoldersOnlyLastStrategySucceeds(t *testing.T) {
	client := newDiscoveryClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/team1/projects/f/projects":
			fmt.Fprint(w, folderListJSON("9"))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}, "team1")

	children := client.listChildFolders(context.Background(), "f")
	if len(children) != 1 || children[0] != "9" {
		t.Fatalf("listChildFolders() = %v, want [9]", children)
	}
}

func TestListChildFoldersUnionsStrategies(t *testing.T) {
	client := newDiscoveryClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/projects/f/items":
			fmt.Fprint(w, folderListJSON("1", "2"))
		case "/me/projects/f/projects":
			// Overlaps with the items result; union keeps one copy.
			fmt.Fprint(w, folderListJSON("2", "3"))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}, "")

	children := client.listChildFolders(context.Background(), "f")
	if len(children) != 3 {
		t.Fatalf("listChildFolders() = %v, want three unique ids", children)
	}
}

func TestListChildFoldersAllStrategiesFail(t *testing.T) {
	client := newDiscoveryClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}, "team1")

	children := client.listChildFolders(context.Background(), "f")
	if len(children) != 0 {
		t.Fatalf("listChildFolders() = %v, want none (degrades to leaf)", children)
	}
}

func TestListChildFoldersExcludesSelf(t *testing.T) {
	client := newDiscoveryClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/projects/f/items":
			fmt.Fprint(w, folderListJSON("f", "child"))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}, "")

	children := client.listChildFolders(context.Background(), "f")
	if len(children) != 1 || children[0] != "child" {
		t.Fatalf("listChildFolders() = %v, want [child]", children)
	}
}
