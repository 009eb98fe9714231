package main

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/garg116611-debug/ai-playlist-generator/internal/cache"
	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	api        *services.Client
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	API        *services.Client
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		// The jar carries the backend session cookie set at login.
		jar, _ := cookiejar.New(nil)
		opts.HTTPClient = &http.Client{
			Jar:     jar,
			Timeout: time.Duration(opts.Config.Backend.TimeoutSecs) * time.Second,
		}
	}
	if opts.API == nil {
		opts.API = services.NewClient(opts.Config.Backend.BaseURL, opts.HTTPClient)
	}

	return &Runner{
		config:     opts.Config,
		api:        opts.API,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. to a file logger while the TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, generateCommand, optionsCommand, historyCommand, authCommand, playlistCommand, shellCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openCache opens the cache database and builds the offline asset cache over it.
// The returned closer releases the database handle.
func (r *Runner) openCache() (*cache.AssetCache, *sql.DB, error) {
	db, err := shared.OpenCacheDatabase(r.config.Cache)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	assets := cache.New(cache.Opts{
		Store:   cache.NewStore(db),
		BaseURL: r.config.Backend.BaseURL,
		Version: r.config.Cache.Version,
		Inner:   r.httpClient.Transport,
		Logger:  r.logger,
	})
	return assets, db, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
