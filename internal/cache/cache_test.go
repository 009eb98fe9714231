package cache

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := shared.NewDatabase(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return NewStore(db)
}

// shellServer serves every shell asset path with a body derived from the path.
func shellServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		switch {
		case r.URL.Path == "/":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>home</html>"))
		case strings.HasPrefix(r.URL.Path, "/static/"):
			w.Write([]byte("asset:" + r.URL.Path))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestInstall(t *testing.T) {
	t.Run("Populates Every Shell Asset", func(t *testing.T) {
		store := newTestStore(t)
		server := shellServer(t, nil)
		defer server.Close()

		c := New(Opts{Store: store, BaseURL: server.URL, Version: "v1"})
		if err := c.Install(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		count, err := store.Count("v1")
		if err != nil {
			t.Fatal(err)
		}
		if count != len(ShellAssets) {
			t.Errorf("expected %d entries, got %d", len(ShellAssets), count)
		}
		if c.State() != Activating {
			t.Errorf("expected Activating state, got %v", c.State())
		}
	})

	t.Run("Upstream Failure Propagates", func(t *testing.T) {
		store := newTestStore(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		c := New(Opts{Store: store, BaseURL: server.URL, Version: "v1"})
		if err := c.Install(context.Background()); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
		if c.State() != Installing {
			t.Errorf("expected state to remain Installing, got %v", c.State())
		}
	})
}

func TestActivate(t *testing.T) {
	t.Run("Prunes Other Generations", func(t *testing.T) {
		store := newTestStore(t)
		server := shellServer(t, nil)
		defer server.Close()

		for _, g := range []string{"v1", "v2"} {
			old := New(Opts{Store: store, BaseURL: server.URL, Version: g})
			if err := old.Install(context.Background()); err != nil {
				t.Fatalf("install %s failed: %v", g, err)
			}
		}

		c := New(Opts{Store: store, BaseURL: server.URL, Version: "v3"})
		if err := c.Install(context.Background()); err != nil {
			t.Fatalf("install failed: %v", err)
		}
		if err := c.Activate(context.Background()); err != nil {
			t.Fatalf("activate failed: %v", err)
		}

		generations, err := store.Generations()
		if err != nil {
			t.Fatal(err)
		}
		if len(generations) != 1 || generations[0] != "v3" {
			t.Errorf("expected only v3 to survive, got %v", generations)
		}
		if c.State() != Active {
			t.Errorf("expected Active state, got %v", c.State())
		}
	})
}

func TestRoundTrip(t *testing.T) {
	activate := func(t *testing.T, store *Store, baseURL string) *AssetCache {
		t.Helper()
		c := New(Opts{Store: store, BaseURL: baseURL, Version: "v1", RevalidatePerSec: 1000})
		if err := c.Install(context.Background()); err != nil {
			t.Fatalf("install failed: %v", err)
		}
		if err := c.Activate(context.Background()); err != nil {
			t.Fatalf("activate failed: %v", err)
		}
		return c
	}

	t.Run("Serves Cached Asset And Revalidates", func(t *testing.T) {
		store := newTestStore(t)
		var hits atomic.Int32
		server := shellServer(t, &hits)
		defer server.Close()

		c := activate(t, store, server.URL)
		installHits := hits.Load()

		body, err := c.Fetch(context.Background(), "/static/style.css")
		if err != nil {
			t.Fatalf("expected cached response, got %v", err)
		}
		if string(body) != "asset:/static/style.css" {
			t.Errorf("unexpected body %q", body)
		}

		c.Wait()
		if hits.Load() != installHits+1 {
			t.Errorf("expected one background revalidation, got %d extra", hits.Load()-installHits)
		}
	})

	t.Run("Cached Hit Survives Dead Upstream", func(t *testing.T) {
		store := newTestStore(t)
		server := shellServer(t, nil)

		c := activate(t, store, server.URL)
		server.Close()

		body, err := c.Fetch(context.Background(), "/static/script.js")
		if err != nil {
			t.Fatalf("expected stale response, got %v", err)
		}
		if string(body) != "asset:/static/script.js" {
			t.Errorf("unexpected body %q", body)
		}
		c.Wait()
	})

	t.Run("API Paths Bypass The Cache", func(t *testing.T) {
		store := newTestStore(t)
		var apiHits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				apiHits.Add(1)
			}
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		c := activate(t, store, server.URL)

		for range 2 {
			req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/history", nil)
			resp, err := c.RoundTrip(req)
			if err != nil {
				t.Fatalf("expected live response, got %v", err)
			}
			resp.Body.Close()
		}

		if apiHits.Load() != 2 {
			t.Errorf("expected every API call live, got %d hits", apiHits.Load())
		}
	})

	t.Run("Non-GET Bypasses The Cache", func(t *testing.T) {
		store := newTestStore(t)
		var posts atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				posts.Add(1)
			}
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		c := activate(t, store, server.URL)

		req, _ := http.NewRequest(http.MethodPost, server.URL+"/", nil)
		resp, err := c.RoundTrip(req)
		if err != nil {
			t.Fatalf("expected live response, got %v", err)
		}
		resp.Body.Close()

		if posts.Load() != 1 {
			t.Error("expected POST to reach upstream")
		}
	})

	t.Run("Offline Navigation Falls Back To Home", func(t *testing.T) {
		store := newTestStore(t)
		server := shellServer(t, nil)

		c := activate(t, store, server.URL)
		server.Close()

		body, err := c.Fetch(context.Background(), "/some/uncached/page")
		if err != nil {
			t.Fatalf("expected home fallback, got %v", err)
		}
		if string(body) != "<html>home</html>" {
			t.Errorf("expected cached home document, got %q", body)
		}
	})

	t.Run("Offline Subresource Miss Fails", func(t *testing.T) {
		store := newTestStore(t)
		server := shellServer(t, nil)

		c := activate(t, store, server.URL)
		server.Close()

		if _, err := c.Fetch(context.Background(), "/static/uncached.png"); err == nil {
			t.Error("expected error for uncached subresource while offline")
		}
	})

	t.Run("As Client Transport Caches Subresources", func(t *testing.T) {
		store := newTestStore(t)
		server := shellServer(t, nil)

		c := New(Opts{Store: store, BaseURL: server.URL, Version: "v1", RevalidatePerSec: 1000})
		if err := c.Activate(context.Background()); err != nil {
			t.Fatalf("activate failed: %v", err)
		}

		client := &http.Client{Transport: c}
		get := func() string {
			t.Helper()
			resp, err := client.Get(server.URL + "/static/preview.mp3")
			if err != nil {
				t.Fatalf("expected response, got %v", err)
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			return string(body)
		}

		if body := get(); body != "asset:/static/preview.mp3" {
			t.Fatalf("unexpected live body %q", body)
		}

		server.Close()
		if body := get(); body != "asset:/static/preview.mp3" {
			t.Errorf("expected cached body after upstream death, got %q", body)
		}
		c.Wait()
	})

	t.Run("Inactive Cache Passes Through", func(t *testing.T) {
		store := newTestStore(t)
		var hits atomic.Int32
		server := shellServer(t, &hits)
		defer server.Close()

		c := New(Opts{Store: store, BaseURL: server.URL, Version: "v1"})

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/", nil)
		resp, err := c.RoundTrip(req)
		if err != nil {
			t.Fatalf("expected live response, got %v", err)
		}
		resp.Body.Close()

		if hits.Load() != 1 {
			t.Error("expected request to pass through before activation")
		}
	})
}

func TestIsNavigation(t *testing.T) {
	tc := []struct {
		path string
		want bool
	}{
		{path: "/", want: true},
		{path: "/about.html", want: true},
		{path: "/some/page", want: true},
		{path: "/static/style.css", want: false},
		{path: "/static/favicon.png", want: false},
	}

	for _, tt := range tc {
		t.Run(tt.path, func(t *testing.T) {
			if got := isNavigation(tt.path); got != tt.want {
				t.Errorf("isNavigation(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestStore(t *testing.T) {
	t.Run("Get Miss", func(t *testing.T) {
		store := newTestStore(t)
		if _, err := store.Get("v1", "/"); !errors.Is(err, shared.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("Put Upserts", func(t *testing.T) {
		store := newTestStore(t)

		entry := &Entry{Generation: "v1", URL: "/", Status: 200, ContentType: "text/html", Body: []byte("one")}
		if err := store.Put(entry); err != nil {
			t.Fatalf("first put failed: %v", err)
		}

		entry.Body = []byte("two")
		if err := store.Put(entry); err != nil {
			t.Fatalf("second put failed: %v", err)
		}

		got, err := store.Get("v1", "/")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(got.Body) != "two" {
			t.Errorf("expected upserted body, got %q", got.Body)
		}

		count, err := store.Count("v1")
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("expected single row after upsert, got %d", count)
		}
	})
}
