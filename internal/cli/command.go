package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/nospace/internal/config"
	"github.com/idelchi/nospace/internal/dirstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// flags holds the raw command-line flag values.
type flags struct {
	configPath string
	output     string
	top        int
	depth      int
	logLevel   string
	quiet      bool
	sample     bool
	version    bool
}

// register binds the flags to fs.
func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	fs.StringVarP(&f.output, "output", "o", config.DefaultOutput, "Output format: table, json or yaml")
	fs.IntVarP(&f.top, "top", "t", dirstat.DefaultTopN, "Number of largest directories to display")
	fs.IntVarP(&f.depth, "depth", "d", 0, "Maximum depth of the printed tree (0=unlimited)")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Suppress per-line trace output (same as --log-level=warn)")
	fs.BoolVar(&f.sample, "sample", false, "Analyze the embedded example transcript")
	fs.BoolVarP(&f.version, "version", "v", false, "Show version and exit")

	fs.SortFlags = false
}

// apply overrides cfg with every flag set explicitly on the command line.
func (f *flags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("output") {
		cfg.Output = f.output
	}

	if fs.Changed("top") {
		cfg.Top = f.top
	}

	if fs.Changed("depth") {
		cfg.Depth = f.depth
	}

	if fs.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}

	if f.quiet {
		cfg.Logging.Level = "warn"
	}
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "nospace [flags] <transcript>",
		Short: "Rebuild a directory tree from a shell transcript and report directory sizes",
		Long: heredoc.Doc(`
			nospace replays a transcript of 'cd' and 'ls' commands, rebuilds the
			directory tree they describe and reports:

			  - the total size of the tree
			  - the sum of all directories of at most 100,000 bytes
			  - the smallest directory whose deletion frees enough space for a
			    30,000,000 byte update on a 70,000,000 byte device

			Every processed line is traced at info level; use --quiet to hide it.

			Settings may also come from a config file (--config) or from
			NOSPACE_* environment variables, e.g. NOSPACE_OUTPUT=json.
		`),
		Example: heredoc.Doc(`
			nospace input.txt
			nospace --quiet --output json input.txt
			nospace --sample --depth 1
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.version {
				return nil
			}

			if f.sample {
				return cobra.NoArgs(cmd, args)
			}

			if len(args) != 1 {
				return errors.New("exactly one transcript path is required (or --sample)")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return err
			}

			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}

			f.apply(cmd.Flags(), cfg)
			config.ApplyDefaults(cfg)

			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("validating config: %w", err)
			}

			options := dirstat.Options{
				Sample: f.sample,
				TopN:   cfg.Top,
			}

			if !f.sample {
				options.Path = args[0]
			}

			return logic(cmd.Context(), cmd.OutOrStdout(), cfg, options)
		},
	}

	f.register(cmd.Flags())

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
