package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	// The jar carries the backend session cookie set at login.
	jar, _ := cookiejar.New(nil)
	httpClient := &http.Client{
		Jar:     jar,
		Timeout: time.Duration(config.Backend.TimeoutSecs) * time.Second,
	}
	api := services.NewClient(config.Backend.BaseURL, httpClient)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		API:        api,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "moodtunes",
		Usage:    "Generate AI playlists from your mood",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
