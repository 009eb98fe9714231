package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// LoginResult contains the result of a backend login round trip.
type LoginResult struct {
	State services.AuthState
	err   error
}

func (l *LoginResult) Error() error {
	return l.err
}

// CallbackHandler consumes the query parameters the backend appends to the
// post-login redirect: logged_in (user id), name (display name), and error.
//
// The parameters are trusted as-is, which saves a network probe right after
// login. The error parameter is diagnostic only; it is logged, never shown.
// Implements the Handler interface for registration with a router.
type CallbackHandler struct {
	resultChan  chan LoginResult
	logger      *log.Logger
	once        sync.Once
	callbackHit bool
	mu          sync.Mutex
}

// NewCallbackHandler creates a login callback handler.
func NewCallbackHandler(logger *log.Logger) *CallbackHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CallbackHandler{
		resultChan: make(chan LoginResult, 1),
		logger:     logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *CallbackHandler) Routes() []string {
	return []string{"/callback"}
}

// ServeHTTP handles the login redirect request.
//
// Consumes the redirect parameters exactly once and sends the resulting auth
// state through the result channel.
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only handle the callback once
	h.mu.Lock()
	if h.callbackHit {
		h.mu.Unlock()
		http.Error(w, "Callback already processed", http.StatusBadRequest)
		return
	}
	h.callbackHit = true
	h.mu.Unlock()

	query := r.URL.Query()

	if errParam := query.Get("error"); errParam != "" {
		h.logger.Debug("login callback carried error", "error", errParam)
		h.Send(LoginResult{err: fmt.Errorf("%w: %s", shared.ErrAuthFailed, errParam)})
		http.Error(w, "Login failed", http.StatusBadRequest)
		return
	}

	userID := query.Get("logged_in")
	if userID == "" {
		h.Send(LoginResult{err: fmt.Errorf("%w: missing logged_in parameter", shared.ErrAuthFailed)})
		http.Error(w, "Login failed", http.StatusBadRequest)
		return
	}

	state := services.AuthState{
		LoggedIn:    true,
		UserID:      userID,
		DisplayName: query.Get("name"),
	}
	h.Send(LoginResult{State: state})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Login Successful</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #1DB954; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✓ Logged In</h1>
        <p>You can close this window and return to the terminal.</p>
    </div>
</body>
</html>
`)
}

// Send sends the login result through the channel (only once).
func (h *CallbackHandler) Send(result LoginResult) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the result channel for receiving login completion.
//
// Channel will receive exactly one result and then be closed.
func (h *CallbackHandler) Result() <-chan LoginResult {
	return h.resultChan
}
