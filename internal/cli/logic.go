package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/idelchi/nospace/internal/config"
	"github.com/idelchi/nospace/internal/dirstat"
	"github.com/idelchi/nospace/internal/logging"
)

func logic(ctx context.Context, out io.Writer, cfg *config.Config, options dirstat.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.LogOutput(),
	}

	// Trace lines on stdout go through out so they stay ordered with the report.
	var (
		log *zap.Logger
		err error
	)

	if logCfg.Output == "stdout" {
		log, err = logging.NewWithWriter(logCfg, out)
	} else {
		log, err = logging.New(logCfg)
	}

	if err != nil {
		return err
	}

	defer log.Sync() //nolint:errcheck // Sync on a terminal fails harmlessly

	// Progress shares the terminal with trace lines, so only show it when they are off.
	enableProgress := cfg.Output == config.DefaultOutput &&
		!log.Core().Enabled(zap.InfoLevel) &&
		isatty.IsTerminal(os.Stderr.Fd())

	var progressHook func(lines, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(lines, bytes int64) {
			msg := fmt.Sprintf("Replaying… %d lines, %s",
				lines, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := dirstat.Run(ctx, options, log, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch cfg.Output {
	case "json":
		return PrintJSON(stats, out)
	case "yaml":
		return PrintYAML(stats, out)
	case "table":
		return PrintTable(stats, cfg.Depth, out)
	default:
		return fmt.Errorf("unknown output format: %s", cfg.Output)
	}
}
