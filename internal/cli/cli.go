// Package cli implements the quartal command-line interface.
//
// The CLI exposes rhythm analysis, the quartal algebra, rotation clustering
// and Hadamard matrices over the library packages. It is built using cobra
// and logs with charmbracelet/log.
//
// # Commands
//
//   - analyze: descriptors of one binary rhythm
//   - op, not, rotate, expand, convolve: quartal algebra on sequences
//   - cluster: rotation-equivalence clustering of binary rhythms
//   - distance: dynamic time warping distance between two rhythms
//   - hadamard: Sylvester Hadamard matrices, optionally in Walsh order
//
// # Configuration
//
// Defaults come from an optional TOML file (--config); --alphabet, --format
// and --verbose override it when set.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quartal/alphabet"
)

const appName = "quartal"

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds the flag values and the configuration resolved before every
// subcommand runs.
type app struct {
	configPath string
	alphabet   string
	format     string
	verbose    bool

	cfg Config
	abc *alphabet.Alphabet
}

// NewRootCommand builds the command tree. Output goes to the command's
// OutOrStdout, logs to its ErrOrStderr.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               appName,
		Short:             "Quartal analyses cyclic binary rhythms written as positional numerals",
		Long:              `Quartal reads rhythms as bit strings or as groups of four digits in a binary, octal or hexadecimal alphabet, and computes rhythm descriptors, a bitwise algebra, rotation clusters and Hadamard matrices.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML file with CLI defaults")
	pf.StringVar(&a.alphabet, "alphabet", "", "digit alphabet: binary, octal or hexadecimal (default hexadecimal)")
	pf.StringVar(&a.format, "format", "", "output format: text or yaml (default text)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(a.analyzeCommand())
	root.AddCommand(a.opCommand())
	root.AddCommand(a.notCommand())
	root.AddCommand(a.rotateCommand())
	root.AddCommand(a.expandCommand())
	root.AddCommand(a.convolveCommand())
	root.AddCommand(a.clusterCommand())
	root.AddCommand(a.distanceCommand())
	root.AddCommand(a.hadamardCommand())

	return root
}

// Execute runs the CLI with os.Args and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup loads the config file, applies explicitly set flags, and attaches
// the logger to the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("alphabet") {
		cfg.Alphabet = a.alphabet
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	a.cfg = cfg
	a.abc = cfg.digitAlphabet()
	logger.Debug("configured", "command", cmd.Name(), "alphabet", a.abc.Name(), "format", cfg.Format, "config", a.configPath)

	return nil
}
