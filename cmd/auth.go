package main

import (
	"context"
	"fmt"
	"time"

	"github.com/garg116611-debug/ai-playlist-generator/internal/server"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin opens the backend's Spotify login page in the browser and waits
// for the redirect back to the loopback callback listener.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	timeout := time.Duration(cmd.Int("timeout")) * time.Second

	handler := server.NewCallbackHandler(r.logger)
	router := server.NewBasicRouter()
	router.Handler(handler)

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(serveCtx, r.config.Backend.CallbackAddr, router)
	}()

	loginURL := r.api.LoginURL()
	r.logger.Info("opening browser for Spotify login", "url", loginURL)
	if err := shared.OpenBrowser(loginURL); err != nil {
		r.logger.Warn("could not open browser, visit the URL manually", "error", err)
		r.writePlain("Open this URL to log in: %s\n", loginURL)
	}

	select {
	case result := <-handler.Result():
		cancel()
		if err := result.Error(); err != nil {
			return err
		}
		name := result.State.DisplayName
		if name == "" {
			name = result.State.UserID
		}
		return r.writePlain("✓ Logged in as %s\n", name)
	case err := <-serveErr:
		return fmt.Errorf("callback listener failed: %w", err)
	case <-time.After(timeout):
		return fmt.Errorf("%w: no login callback received within %s", shared.ErrTimeout, timeout)
	}
}

// AuthStatus probes the backend session and reports the login state.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	state := r.api.Me(ctx)

	if cmd.Bool("json") {
		return r.writeJSON(state, cmd.Bool("pretty"))
	}

	if !state.LoggedIn {
		return r.writePlain("✗ Not logged in\n")
	}

	name := state.DisplayName
	if name == "" {
		name = state.UserID
	}
	return r.writePlain("✓ Logged in as %s\n", name)
}

// AuthLogout ends the backend session in the browser.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	logoutURL := r.api.LogoutURL()
	if err := shared.OpenBrowser(logoutURL); err != nil {
		r.logger.Warn("could not open browser", "error", err)
		return r.writePlain("Open this URL to log out: %s\n", logoutURL)
	}
	return r.writePlain("✓ Logged out\n")
}
