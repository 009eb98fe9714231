// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "language",
			Usage: "Preferred language (default: any)",
		},
		&cli.StringFlag{
			Name:  "genre",
			Usage: "Preferred genre (default: any)",
		},
		&cli.StringFlag{
			Name:  "era",
			Usage: "Preferred era (default: any)",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "Number of songs to generate",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

// setupCommand initializes the cache database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize cache database and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.SetupDatabase,
	}
}

// generateCommand handles playlist generation
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate a playlist from a mood description",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "text"},
		},
		Flags:  append(filterFlags(), outputFlags()...),
		Action: r.Generate,
		Commands: []*cli.Command{
			{
				Name:  "mood",
				Usage: "Generate a playlist from a structured mood form",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "mind-speed",
						Usage: "How fast your mind is racing (slow, normal, fast)",
					},
					&cli.StringFlag{
						Name:  "lyrics",
						Usage: "Lyrics preference (never, sometimes, always)",
					},
					&cli.StringFlag{
						Name:  "context",
						Usage: "Listening context (alone, friends, working, commuting)",
					},
					&cli.StringFlag{
						Name:  "distraction",
						Usage: "How distracting the music may be (low, medium, high)",
					},
				}, append(filterFlags(), outputFlags()...)...),
				Action: r.GenerateMood,
			},
		},
	}
}

// optionsCommand shows accepted filter values and activity presets
func optionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "options",
		Usage:  "Show accepted filter values and activity presets",
		Flags:  outputFlags(),
		Action: r.Options,
	}
}

// historyCommand handles recent searches
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "history",
		Aliases: []string{"hist"},
		Usage:   "Recent search operations",
		Flags:   outputFlags(),
		Action:  r.HistoryList,
		Commands: []*cli.Command{
			{
				Name:   "clear",
				Usage:  "Clear search history",
				Action: r.HistoryClear,
			},
		},
	}
}

// authCommand handles backend authentication
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Spotify authentication via the MoodTunes backend",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with Spotify in the browser",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "timeout",
						Usage: "Seconds to wait for the login callback",
						Value: 120,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show current login state",
				Flags:  outputFlags(),
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Log out of the backend session",
				Action: r.AuthLogout,
			},
		},
	}
}

// playlistCommand handles export of the last generated playlist
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Copy, save, or export a generated playlist",
		Commands: []*cli.Command{
			{
				Name:  "copy",
				Usage: "Generate and copy the playlist to the clipboard",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "text"},
				},
				Flags:  filterFlags(),
				Action: r.PlaylistCopy,
			},
			{
				Name:  "save",
				Usage: "Generate and save the playlist to Spotify",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "text"},
				},
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Playlist name (default: MoodTunes: <text>)",
					},
				}, filterFlags()...),
				Action: r.PlaylistSave,
			},
			{
				Name:  "export",
				Usage: "Generate and export the playlist to a file",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "text"},
				},
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: text, markdown, csv",
						Value: "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				}, filterFlags()...),
				Action: r.PlaylistExport,
			},
		},
	}
}

// shellCommand handles the offline app shell cache
func shellCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Offline app shell cache operations",
		Commands: []*cli.Command{
			{
				Name:   "install",
				Usage:  "Download the app shell into a new cache generation",
				Action: r.ShellInstall,
			},
			{
				Name:   "activate",
				Usage:  "Prune old cache generations and activate the current one",
				Action: r.ShellActivate,
			},
			{
				Name:   "status",
				Usage:  "Show cached generations and entry counts",
				Flags:  outputFlags(),
				Action: r.ShellStatus,
			},
			{
				Name:  "fetch",
				Usage: "Fetch an asset through the cache (stale-while-revalidate)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the asset body to a file instead of stdout",
					},
				},
				Action: r.ShellFetch,
			},
		},
	}
}

// tuiCommand launches the interactive interface
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal interface",
		Action: r.TUI,
	}
}
