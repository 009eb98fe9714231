package main

import (
	"context"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/garg116611-debug/ai-playlist-generator/internal/player"
	"github.com/garg116611-debug/ai-playlist-generator/internal/session"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/garg116611-debug/ai-playlist-generator/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for playlist generation.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/moodtunes-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	if !player.AudioAvailable {
		fileLogger.Warn("audio playback unavailable on this platform, previews disabled")
	}

	// Route preview and artwork fetches through the offline asset cache so
	// same-origin subresources are cached opportunistically.
	previewClient := r.api.HTTPClient()
	if assets, db, err := r.openCache(); err != nil {
		fileLogger.Warn("offline cache unavailable, previews fetch direct", "error", err)
	} else {
		defer db.Close()
		defer assets.Wait()
		if err := assets.Activate(ctx); err != nil {
			fileLogger.Warn("cache activation failed", "error", err)
		}
		previewClient = &http.Client{Transport: assets, Timeout: previewClient.Timeout}
	}

	backend := player.NewSpeakerBackend(previewClient, r.config.Player.Volume)
	ctrl := player.NewController(backend, fileLogger)
	defer ctrl.Stop()

	model := ui.NewModel(ctx, r.api, ctrl, session.New())
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
