package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/garg116611-debug/ai-playlist-generator/internal/formatter"
	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/urfave/cli/v3"
)

// filtersFromFlags builds generation filters from flags, falling back to the
// configured defaults for anything left unset.
func (r *Runner) filtersFromFlags(cmd *cli.Command) services.Filters {
	filters := services.Filters{
		Language:  cmd.String("language"),
		Genre:     cmd.String("genre"),
		Era:       cmd.String("era"),
		SongCount: int(cmd.Int("count")),
	}
	if filters.Language == "" {
		filters.Language = r.config.Defaults.Language
	}
	if filters.Genre == "" {
		filters.Genre = r.config.Defaults.Genre
	}
	if filters.Era == "" {
		filters.Era = r.config.Defaults.Era
	}
	if filters.SongCount == 0 {
		filters.SongCount = r.config.Defaults.SongCount
	}
	return filters
}

// generateFromText runs one text generation request and returns the response.
func (r *Runner) generateFromText(ctx context.Context, cmd *cli.Command) (*services.PlaylistResponse, error) {
	text := strings.TrimSpace(cmd.StringArg("text"))
	if text == "" {
		return nil, fmt.Errorf("%w: describe your mood, e.g. moodtunes generate \"rainy sunday coding\"", shared.ErrMissingArgument)
	}

	r.logger.Info("generating playlist", "text", text)
	return r.api.GenerateFromText(ctx, text, r.filtersFromFlags(cmd))
}

// Generate creates a playlist from a free-text mood description.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	resp, err := r.generateFromText(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return r.renderPlaylist(resp)
}

// GenerateMood creates a playlist from the structured mood form.
func (r *Runner) GenerateMood(ctx context.Context, cmd *cli.Command) error {
	filters := r.filtersFromFlags(cmd)
	mood := services.MoodInput{
		MindSpeed:   cmd.String("mind-speed"),
		Lyrics:      cmd.String("lyrics"),
		Context:     cmd.String("context"),
		Distraction: cmd.String("distraction"),
		Language:    filters.Language,
		Genre:       filters.Genre,
		Era:         filters.Era,
		SongCount:   filters.SongCount,
	}

	r.logger.Info("generating playlist from mood form",
		"mind_speed", mood.MindSpeed, "lyrics", mood.Lyrics,
		"context", mood.Context, "distraction", mood.Distraction)

	resp, err := r.api.Generate(ctx, mood)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return r.renderPlaylist(resp)
}

// Options prints the filter values and activity presets the backend accepts.
func (r *Runner) Options(ctx context.Context, cmd *cli.Command) error {
	opts := r.api.Options(ctx)
	activities := r.api.Activities(ctx)

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"languages":   opts.Languages,
			"genres":      opts.Genres,
			"eras":        opts.Eras,
			"song_counts": opts.SongCounts,
			"activities":  activities,
		}, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Generation Options")
	r.writePlain("Languages: %s\n", strings.Join(opts.Languages, ", "))
	r.writePlain("Genres: %s\n", strings.Join(opts.Genres, ", "))
	r.writePlain("Eras: %s\n", strings.Join(opts.Eras, ", "))
	r.writePlain("Activities: %s\n", strings.Join(activities, ", "))
	return nil
}

// renderPlaylist prints a result set as a numbered list.
func (r *Runner) renderPlaylist(resp *services.PlaylistResponse) error {
	r.writePlainHeader(fmt.Sprintf("Search: %q", resp.Query))

	for i, song := range resp.Songs {
		marker := "🚫"
		if song.HasPreview() {
			marker = "▶"
		}

		line := fmt.Sprintf("%d. %s - %s", i+1, formatter.Sanitize(song.Name), formatter.Sanitize(song.Artist))
		if duration := shared.FormatDuration(song.DurationMS); duration != "" {
			line = fmt.Sprintf("%s [%s]", line, duration)
		}
		if err := r.writePlain("%s %s\n", line, marker); err != nil {
			return err
		}
		if song.SpotifyURL != "" {
			if err := r.writePlain("   %s\n", song.SpotifyURL); err != nil {
				return err
			}
		}
	}

	return r.writePlainln("%d songs", len(resp.Songs))
}
