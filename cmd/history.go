package main

import (
	"context"

	"github.com/garg116611-debug/ai-playlist-generator/internal/formatter"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/urfave/cli/v3"
)

// HistoryList prints the recent searches, most recent first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	entries := r.api.History(ctx)

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	if len(entries) == 0 {
		return r.writePlain("No recent searches\n")
	}

	r.writePlainHeader("Recent Searches")
	for _, entry := range entries {
		line := formatter.Sanitize(entry.Query)
		if clock := shared.FormatClock(entry.Timestamp); clock != "" {
			line = line + "  (" + clock + ")"
		}
		if err := r.writePlain("• %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// HistoryClear wipes the search history. The local view clears even when the
// backend delete fails; the failure is only logged.
func (r *Runner) HistoryClear(ctx context.Context, cmd *cli.Command) error {
	if err := r.api.ClearHistory(ctx); err != nil {
		r.logger.Warn("backend history delete failed", "error", err)
	}
	return r.writePlain("✓ History cleared\n")
}
