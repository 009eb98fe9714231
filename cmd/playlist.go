package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/garg116611-debug/ai-playlist-generator/internal/formatter"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistCopy generates a playlist and places the shareable text on the clipboard.
func (r *Runner) PlaylistCopy(ctx context.Context, cmd *cli.Command) error {
	resp, err := r.generateFromText(ctx, cmd)
	if err != nil {
		return err
	}

	if err := r.renderPlaylist(resp); err != nil {
		return err
	}

	text := formatter.ClipboardText(resp.Songs)
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return r.writePlain("✓ Playlist copied to clipboard\n")
}

// PlaylistSave generates a playlist and saves it to the user's Spotify account.
func (r *Runner) PlaylistSave(ctx context.Context, cmd *cli.Command) error {
	state := r.api.Me(ctx)
	if !state.LoggedIn {
		return fmt.Errorf("%w: run 'moodtunes auth login' first", shared.ErrNotLoggedIn)
	}

	resp, err := r.generateFromText(ctx, cmd)
	if err != nil {
		return err
	}

	name := cmd.String("name")
	if name == "" {
		name = "MoodTunes: " + resp.Query
	}

	trackIDs := make([]string, 0, len(resp.Songs))
	for _, song := range resp.Songs {
		if song.ID != "" {
			trackIDs = append(trackIDs, song.ID)
		}
	}

	result, err := r.api.SavePlaylist(ctx, name, trackIDs)
	if err != nil {
		return err
	}

	if err := r.writePlain("✓ Playlist saved: %s\n", name); err != nil {
		return err
	}
	if result.PlaylistURL != "" {
		return r.writePlain("%s\n", result.PlaylistURL)
	}
	return nil
}

// PlaylistExport generates a playlist and writes it to a file or stdout.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	resp, err := r.generateFromText(ctx, cmd)
	if err != nil {
		return err
	}

	format := strings.ToLower(cmd.String("format"))
	var data []byte
	switch format {
	case "text", "txt":
		data = formatter.ExportToText(resp.Query, resp.Songs)
	case "markdown", "md":
		data = formatter.ExportToMarkdown(resp.Query, resp.Songs)
	case "csv":
		if data, err = formatter.ExportToCSV(resp.Songs); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown format %q (want text, markdown, or csv)", shared.ErrInvalidFlag, format)
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		_, err := r.output.Write(data)
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return r.writePlain("✓ Exported %d songs to %s\n", len(resp.Songs), outputPath)
}
