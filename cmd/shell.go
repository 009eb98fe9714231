package main

import (
	"context"
	"os"

	"github.com/garg116611-debug/ai-playlist-generator/internal/cache"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/urfave/cli/v3"
)

// ShellInstall downloads every app shell asset into the configured generation.
func (r *Runner) ShellInstall(ctx context.Context, cmd *cli.Command) error {
	assets, db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("installing app shell", "version", assets.Version())
	if err := assets.Install(ctx); err != nil {
		return err
	}

	return r.writePlain("✓ Installed %d shell assets (%s)\n", len(cache.ShellAssets), assets.Version())
}

// ShellActivate prunes stale generations so only the configured one remains.
func (r *Runner) ShellActivate(ctx context.Context, cmd *cli.Command) error {
	assets, db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := assets.Install(ctx); err != nil {
		return err
	}
	if err := assets.Activate(ctx); err != nil {
		return err
	}

	return r.writePlain("✓ Cache generation %s active\n", assets.Version())
}

// ShellStatus lists cached generations and their entry counts.
func (r *Runner) ShellStatus(ctx context.Context, cmd *cli.Command) error {
	db, err := shared.OpenCacheDatabase(r.config.Cache)
	if err != nil {
		return err
	}
	defer db.Close()

	store := cache.NewStore(db)
	generations, err := store.Generations()
	if err != nil {
		return err
	}

	type generationStatus struct {
		Generation string `json:"generation"`
		Entries    int    `json:"entries"`
		Active     bool   `json:"active"`
	}

	statuses := make([]generationStatus, 0, len(generations))
	for _, generation := range generations {
		count, err := store.Count(generation)
		if err != nil {
			return err
		}
		statuses = append(statuses, generationStatus{
			Generation: generation,
			Entries:    count,
			Active:     generation == r.config.Cache.Version,
		})
	}

	if cmd.Bool("json") {
		return r.writeJSON(statuses, cmd.Bool("pretty"))
	}

	if len(statuses) == 0 {
		return r.writePlain("No cached generations. Run 'moodtunes shell install' first.\n")
	}

	r.writePlainHeader("Offline Shell Cache")
	for _, status := range statuses {
		marker := " "
		if status.Active {
			marker = "✓"
		}
		if err := r.writePlain("%s %s (%d entries)\n", marker, status.Generation, status.Entries); err != nil {
			return err
		}
	}
	return nil
}

// ShellFetch fetches one asset through the cache, serving a stale copy when
// the backend is unreachable.
func (r *Runner) ShellFetch(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		path = "/"
	}

	assets, db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := assets.Install(ctx); err != nil {
		r.logger.Warn("shell install incomplete, serving from cache", "error", err)
	}
	if err := assets.Activate(ctx); err != nil {
		return err
	}

	body, err := assets.Fetch(ctx, path)
	if err != nil {
		return err
	}
	defer assets.Wait()

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, body, 0644); err != nil {
			return err
		}
		return r.writePlain("✓ Wrote %d bytes to %s\n", len(body), outputPath)
	}

	_, err = r.output.Write(body)
	return err
}
