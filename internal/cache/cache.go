// Package cache implements the offline asset cache for the MoodTunes client.
//
// The cache mirrors a service worker's lifecycle as three explicit states:
// Install populates the current generation with the app shell, Activate prunes
// every other generation, and once Active the cache intercepts GET traffic as
// an [http.RoundTripper] with stale-while-revalidate semantics. Live API calls
// are never intercepted, cache writes are best-effort, and a navigation
// request that misses both network and cache falls back to the cached home
// document.
package cache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// ShellAssets is the fixed asset list cached on install: home document,
// stylesheet, script bundle, icon, and web-app manifest.
var ShellAssets = []string{
	"/",
	"/static/style.css",
	"/static/script.js",
	"/static/favicon.png",
	"/static/manifest.json",
}

const homeDocument = "/"

// State is the cache lifecycle state.
type State int

const (
	Installing State = iota
	Activating
	Active
)

func (s State) String() string {
	switch s {
	case Installing:
		return "installing"
	case Activating:
		return "activating"
	case Active:
		return "active"
	default:
		return ""
	}
}

// AssetCache serves cached responses for static assets while revalidating them
// in the background.
//
// It implements [http.RoundTripper]; wrap it in an [http.Client] to route
// artwork and preview fetches through the cache.
type AssetCache struct {
	store   *Store
	baseURL string
	version string
	inner   http.RoundTripper
	logger  *log.Logger
	limiter *rate.Limiter

	mu    sync.Mutex
	state State

	// pending tracks in-flight background revalidations so tests and
	// shutdown can wait for them.
	pending sync.WaitGroup
}

var _ http.RoundTripper = (*AssetCache)(nil)

// Opts contains construction options for an AssetCache.
type Opts struct {
	Store   *Store
	BaseURL string            // Backend base URL the shell assets live under
	Version string            // Current generation tag
	Inner   http.RoundTripper // Upstream transport, defaults to http.DefaultTransport
	Logger  *log.Logger
	// RevalidatePerSec caps background refreshes; zero means 1/sec.
	RevalidatePerSec float64
}

// New creates an AssetCache in the Installing state.
func New(opts Opts) *AssetCache {
	if opts.Inner == nil {
		opts.Inner = http.DefaultTransport
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.RevalidatePerSec <= 0 {
		opts.RevalidatePerSec = 1
	}

	return &AssetCache{
		store:   opts.Store,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		version: opts.Version,
		inner:   opts.Inner,
		logger:  opts.Logger,
		limiter: rate.NewLimiter(rate.Limit(opts.RevalidatePerSec), 1),
		state:   Installing,
	}
}

// State returns the current lifecycle state.
func (c *AssetCache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Version returns the current generation tag.
func (c *AssetCache) Version() string { return c.version }

// Install populates the current generation with the shell asset list.
//
// Idempotent; a fully populated generation is refreshed in place. Unlike
// steady-state writes, install failures propagate so the caller knows the
// shell is incomplete.
func (c *AssetCache) Install(ctx context.Context) error {
	for _, path := range ShellAssets {
		entry, err := c.fetchUpstream(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to install %s: %w", path, err)
		}
		if err := c.store.Put(entry); err != nil {
			return fmt.Errorf("failed to cache %s: %w", path, err)
		}
	}

	c.mu.Lock()
	c.state = Activating
	c.mu.Unlock()

	c.logger.Info("app shell cached", "generation", c.version, "assets", len(ShellAssets))
	return nil
}

// Activate deletes every generation whose tag differs from the current
// version, leaving at most one live generation, and takes over fetch
// interception immediately.
func (c *AssetCache) Activate(ctx context.Context) error {
	generations, err := c.store.Generations()
	if err != nil {
		return fmt.Errorf("failed to enumerate generations: %w", err)
	}

	for _, g := range generations {
		if g == c.version {
			continue
		}
		if err := c.store.DeleteGeneration(g); err != nil {
			return fmt.Errorf("failed to prune generation %s: %w", g, err)
		}
		c.logger.Info("deleted old cache generation", "generation", g)
	}

	c.mu.Lock()
	c.state = Active
	c.mu.Unlock()

	return nil
}

// RoundTrip implements the steady-state fetch interception.
//
// Only GET requests against the backend are intercepted; API calls, /logout,
// other hosts, and all other methods go straight to the upstream transport.
// Cached responses are served immediately with a rate-limited background
// revalidation; misses hit the network and are stored best-effort. A
// navigation request that fails on the network resolves with the cached home
// document when one exists.
func (c *AssetCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if !c.intercepts(req) {
		return c.inner.RoundTrip(req)
	}

	path := req.URL.Path

	if cached, err := c.store.Get(c.version, path); err == nil {
		c.revalidate(path)
		return cached.response(req), nil
	}

	entry, err := c.fetchUpstream(req.Context(), path)
	if err != nil {
		if isNavigation(path) {
			if home, homeErr := c.store.Get(c.version, homeDocument); homeErr == nil {
				c.logger.Debug("network failed, serving cached homepage", "path", path)
				return home.response(req), nil
			}
		}
		return nil, err
	}

	// Best-effort write. A failed store never fails the response.
	if putErr := c.store.Put(entry); putErr != nil {
		c.logger.Debug("cache write failed", "path", path, "error", putErr)
	}

	return entry.response(req), nil
}

// Fetch retrieves one asset path through the cache and returns its body.
func (c *AssetCache) Fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// Wait blocks until all in-flight background revalidations settle.
func (c *AssetCache) Wait() {
	c.pending.Wait()
}

// intercepts reports whether the request is subject to cache handling.
func (c *AssetCache) intercepts(req *http.Request) bool {
	if c.State() != Active {
		return false
	}
	if req.Method != http.MethodGet {
		return false
	}
	if !strings.HasPrefix(req.URL.String(), c.baseURL+"/") && req.URL.String() != c.baseURL {
		return false
	}
	path := req.URL.Path
	if strings.HasPrefix(path, "/api/") || path == "/logout" {
		return false
	}
	return true
}

// revalidate refreshes a cached entry in the background, rate-limited.
// Failures are swallowed; the caller never waits on the result.
func (c *AssetCache) revalidate(path string) {
	if !c.limiter.Allow() {
		return
	}

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		entry, err := c.fetchUpstream(context.Background(), path)
		if err != nil {
			c.logger.Debug("background revalidation failed", "path", path, "error", err)
			return
		}
		if err := c.store.Put(entry); err != nil {
			c.logger.Debug("cache write failed", "path", path, "error", err)
		}
	}()
}

// fetchUpstream fetches path from the network and returns it as a cache entry.
// Non-2xx responses count as failures so they never overwrite a good entry.
func (c *AssetCache) fetchUpstream(ctx context.Context, path string) (*Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.inner.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d for %s", shared.ErrAPIRequest, resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Entry{
		Generation:  c.version,
		URL:         path,
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// isNavigation reports whether a path requests an HTML document rather than a
// subresource. The home document and extensionless paths count as navigations.
func isNavigation(path string) bool {
	if path == homeDocument || strings.HasSuffix(path, ".html") {
		return true
	}
	last := path[strings.LastIndex(path, "/")+1:]
	return !strings.Contains(last, ".")
}

// response converts a stored entry into an [http.Response] for the request.
func (e *Entry) response(req *http.Request) *http.Response {
	header := make(http.Header)
	if e.ContentType != "" {
		header.Set("Content-Type", e.ContentType)
	}

	return &http.Response{
		StatusCode:    e.Status,
		Status:        http.StatusText(e.Status),
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}
