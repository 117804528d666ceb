package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/votesim/config"
	"github.com/katalvlaran/votesim/logging"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	ConfigPath string
	Format     string // "text" | "json"
	LogLevel   string
	LogFormat  string

	Voters     int
	Candidates int
	Seed       int64
	Graph      string
	Semantics  string
}

// validFormats defines the allowed output formats.
var validFormats = []string{"text", "json"}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "votesim",
		Short: "Social-choice voting simulator",
		Long: `votesim draws a seeded electorate (voter scores and a social graph),
then compares the plurality winner with Instant-Runoff and with the outcome
of voters imitating their neighbours' first choices.

Configuration is read from --config or ~/.votesim/config.yaml, then
VOTESIM_* environment variables, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.votesim/config.yaml if present)")
	pf.StringVar(&opts.Format, "format", "text", "output format (text|json)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (warn|info|debug|trace)")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (text|json)")
	pf.IntVar(&opts.Voters, "voters", 0, "number of voters")
	pf.IntVar(&opts.Candidates, "candidates", 0, "number of candidates")
	pf.Int64Var(&opts.Seed, "seed", 0, "random seed")
	pf.StringVar(&opts.Graph, "graph", "", "social graph model (degree|sparse|regular|ring|star|complete|empty)")
	pf.StringVar(&opts.Semantics, "semantics", "", "strategic round semantics (early-break|batched)")

	cmd.AddCommand(
		newRunCmd(opts),
		newIRVCmd(opts),
		newStrategicCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

// loadConfig resolves the effective configuration: file, environment, then
// any flag the user set explicitly.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("voters") {
		cfg.Voters = opts.Voters
	}
	if flags.Changed("candidates") {
		cfg.Candidates = opts.Candidates
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("graph") {
		cfg.Graph.Model = opts.Graph
	}
	if flags.Changed("semantics") {
		cfg.Strategic.Semantics = opts.Semantics
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = opts.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newLogger writes operational logs to the command's stderr.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
}
