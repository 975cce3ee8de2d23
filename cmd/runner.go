package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mhollis/trackledger/internal/reports"
	"github.com/mhollis/trackledger/internal/shared"
	"github.com/mhollis/trackledger/internal/snapshot"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
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

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, reportCommand, exportCommand, checkCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveConfig returns the config from the command's --config flag when one
// is given and loadable, falling back to the runner's config.
func (r *Runner) resolveConfig(cmd *cli.Command) *shared.Config {
	path := cmd.String("config")
	if path == "" {
		return r.config
	}
	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("failed to load config, using current settings", "path", path, "error", err)
		return r.config
	}
	return config
}

// loadSnapshot opens the configured database and reads a validated snapshot.
// The connection is closed before returning; reports never touch the database.
func (r *Runner) loadSnapshot(ctx context.Context, config *shared.Config) (*snapshot.Snapshot, error) {
	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Debug("loading snapshot", "path", config.Database.Path)
	snap, err := snapshot.Load(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return snap, nil
}

// loadEngine builds a report engine over a freshly loaded snapshot.
func (r *Runner) loadEngine(ctx context.Context, cmd *cli.Command) (*reports.Engine, error) {
	snap, err := r.loadSnapshot(ctx, r.resolveConfig(cmd))
	if err != nil {
		return nil, err
	}
	return reports.NewEngine(snap, r.logger), nil
}

// reportParams reads the report parameters from the command's flags, keeping
// the defaults for flags the command doesn't set.
func reportParams(cmd *cli.Command) (reports.Params, error) {
	params := reports.DefaultParams()
	if n := cmd.Int("n"); n != 0 {
		if n < 0 {
			return params, fmt.Errorf("%w: --n must be positive, got %d", shared.ErrInvalidFlag, n)
		}
		params.N = n
	}
	if genre := cmd.String("genre"); genre != "" {
		params.Genre = genre
	}
	return params, nil
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
