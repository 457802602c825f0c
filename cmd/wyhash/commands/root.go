// Package commands implements the wyhash CLI commands.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.dw1.io/x/wyhash/internal/config"
	"go.dw1.io/x/wyhash/internal/logging"
)

// Build metadata, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app carries state shared by every subcommand once the root pre-run has
// resolved the configuration.
type app struct {
	configPath string
	format     string
	logLevel   string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand builds the wyhash command tree reading from in and writing
// results to out and diagnostics to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:   "wyhash",
		Short: "wyhash hashing, secret generation and wyrand tools",
		Long: `wyhash exposes the wyhash final4 hash, its secret generator and the
wyrand generator from the command line.

Commands:
  sum      Hash files, strings or stdin
  hash64   Hash two 64-bit words
  secret   Derive hash secrets from seeds
  rand     Draw from wyrand
  verify   Check the implementation against the conformance corpus
  bench    Measure hashing throughput`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./wyhash.yaml or ~/.config/wyhash/wyhash.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: text, json or table")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newSumCommand(a))
	rootCmd.AddCommand(newHash64Command(a))
	rootCmd.AddCommand(newSecretCommand(a))
	rootCmd.AddCommand(newRandCommand(a))
	rootCmd.AddCommand(newVerifyCommand(a))
	rootCmd.AddCommand(newBenchCommand(a))
	rootCmd.AddCommand(newVersionCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = a.noColor
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return fmt.Errorf("invalid configuration: %w", validateErr)
	}

	if cfg.Output.NoColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	logger, err := logging.New(a.errOut, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With("command", cmd.Name())
	a.logger.Debug("configuration resolved",
		"config", a.configPath,
		"format", cfg.Output.Format,
		"max_key_size", cfg.Hash.MaxKeySize,
	)

	return nil
}

func (a *app) printer() printer {
	return printer{format: a.cfg.Output.Format, w: a.out}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "wyhash %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
