package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

const defaultBaseURL = "http://localhost:8000"

// Client provides typed access to the MoodTunes backend API.
//
// The underlying [http.Client] carries a cookie jar so the backend session
// cookie set at login rides along on credentialed calls (save-playlist).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL.
//
// A nil httpClient gets a default with a cookie jar and a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if httpClient == nil {
		jar, _ := cookiejar.New(nil)
		httpClient = &http.Client{Timeout: 30 * time.Second, Jar: jar}
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// BaseURL returns the backend base URL the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// HTTPClient returns the underlying HTTP client, shared with the asset cache
// so preview and artwork fetches reuse the same transport.
func (c *Client) HTTPClient() *http.Client { return c.httpClient }

// apiError is the backend's error body shape.
type apiError struct {
	Detail string `json:"detail"`
}

// doRequest performs an HTTP request against the backend and decodes the JSON response into result.
//
// A non-2xx status yields an error wrapping [shared.ErrAPIRequest] that carries
// the backend's detail field when present.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Detail != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// GenerateFromText requests a playlist from a free-text mood/activity description.
//
// The text is trimmed before dispatch; whitespace-only input is rejected
// locally with [shared.ErrEmptyInput] and no network call is made. Omitted
// filter fields carry the documented defaults.
func (c *Client) GenerateFromText(ctx context.Context, text string, filters Filters) (*PlaylistResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", shared.ErrEmptyInput)
	}

	payload := textInput{Text: text, Filters: filters.withDefaults()}

	var result PlaylistResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/generate-from-text", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Generate requests a playlist from the structured mood form.
//
// Omitted fields carry the documented defaults.
func (c *Client) Generate(ctx context.Context, mood MoodInput) (*PlaylistResponse, error) {
	var result PlaylistResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/generate", mood.withDefaults(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// History fetches the backend-held generation history, most recent first.
//
// The backend returns entries oldest first; they are reversed here so every
// caller renders the newest search at the top. Any failure is treated as
// "no history" and never propagated.
func (c *Client) History(ctx context.Context) []HistoryEntry {
	var result struct {
		History []HistoryEntry `json:"history"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/history", nil, &result); err != nil {
		return nil
	}

	for i, j := 0, len(result.History)-1; i < j; i, j = i+1, j-1 {
		result.History[i], result.History[j] = result.History[j], result.History[i]
	}
	return result.History
}

// ClearHistory requests full deletion of the backend history.
//
// Callers clear their local view regardless of the returned error.
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/history", nil, nil)
}

// Me probes the backend session state.
//
// Any failure, network or malformed response alike, resolves to logged-out.
func (c *Client) Me(ctx context.Context) AuthState {
	var state AuthState
	if err := c.doRequest(ctx, http.MethodGet, "/api/me", nil, &state); err != nil {
		return AuthState{}
	}

	return state
}

// SavePlaylist exports the given tracks as a named playlist on the listener's
// streaming account. Requires a logged-in backend session.
func (c *Client) SavePlaylist(ctx context.Context, name string, trackIDs []string) (*SaveResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}
	if len(trackIDs) == 0 {
		return nil, fmt.Errorf("%w: no tracks to save", shared.ErrInvalidInput)
	}

	payload := savePlaylistInput{PlaylistName: name, TrackIDs: trackIDs}

	var result SaveResult
	if err := c.doRequest(ctx, http.MethodPost, "/api/save-playlist", payload, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSaveFailed, err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: backend declined the save", shared.ErrSaveFailed)
	}

	return &result, nil
}

// Options fetches the filter values the backend accepts, falling back to the
// embedded defaults when /api/config is unreachable.
func (c *Client) Options(ctx context.Context) FilterOptions {
	var opts FilterOptions
	if err := c.doRequest(ctx, http.MethodGet, "/api/config", nil, &opts); err != nil {
		return DefaultFilterOptions()
	}
	if len(opts.Languages) == 0 || len(opts.Genres) == 0 || len(opts.Eras) == 0 {
		return DefaultFilterOptions()
	}

	return opts
}

// Activities fetches the backend's activity preset names, falling back to the
// embedded preset list when /api/activities is unreachable.
func (c *Client) Activities(ctx context.Context) []string {
	var result struct {
		Activities []string `json:"activities"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/activities", nil, &result); err != nil || len(result.Activities) == 0 {
		presets := DefaultPresets()
		names := make([]string, len(presets))
		for i, p := range presets {
			names[i] = p.Value
		}
		return names
	}

	return result.Activities
}

// LoginURL returns the browser navigation target for the backend login flow.
func (c *Client) LoginURL() string { return c.baseURL + "/login" }

// LogoutURL returns the browser navigation target that ends the backend session.
func (c *Client) LogoutURL() string { return c.baseURL + "/logout" }
