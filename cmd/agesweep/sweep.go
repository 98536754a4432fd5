package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aatumaykin/agesweep/internal/cleanup"
	"github.com/aatumaykin/agesweep/internal/config"
	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/aatumaykin/agesweep/internal/logger"
	"github.com/aatumaykin/agesweep/internal/messages"
	"github.com/aatumaykin/agesweep/internal/prompt"
	"github.com/spf13/cobra"
)

func runSweep(cmd *cobra.Command, flags *sweepFlags) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprint(stderr, messages.FormatConfigLoadError(err))
		return err
	}

	if err := applyFlags(cmd, cfg, flags); err != nil {
		return err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprint(stderr, messages.FormatValidationErrors(errs))
		return fmt.Errorf("%w: %d configuration error(s)", cleanup.ErrInvalidArgument, len(errs))
	}

	if flags.verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := newLogger(cfg.Logging, stdout, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	opts := cleanup.Options{
		Days:            cfg.Days,
		DryRun:          flags.dryRun,
		Verbose:         flags.verbose,
		Force:           flags.force,
		RemoveEmptyDirs: cfg.RemoveEmptyDirs,
		Roots:           cfg.Roots,
		Exclude:         cfg.Exclude,
		Protect:         cfg.Protect,
	}

	runner, err := cleanup.NewRunner(opts, confirmFunc(cmd.InOrStdin(), stdout), stdout, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := runner.Run(ctx)

	if cfg.Metrics.Textfile != "" && !stats.Declined {
		metrics := cleanup.NewMetrics(constants.DefaultMetricsNamespace)
		metrics.Observe(stats, time.Now())
		if werr := metrics.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			log.Warn("failed to write metrics", logger.Field{Key: "error", Value: werr})
		}
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, constants.MsgInterrupted)
	}
	return err
}

// newLogger sends stdout and stderr output to the command's streams and
// file output through the rotating file logger.
func newLogger(lc config.LoggingConfig, stdout, stderr io.Writer) (*logger.Logger, error) {
	cfg := logger.Config{
		Level:      lc.Level,
		Format:     lc.Format,
		Output:     lc.Output,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
	}

	switch strings.ToLower(lc.Output) {
	case "", "stderr":
		return logger.NewWithWriter(cfg, stderr)
	case "stdout":
		return logger.NewWithWriter(cfg, stdout)
	default:
		return logger.New(cfg)
	}
}

// loadConfig reads an explicit config path strictly. The default path is optional.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.LoadOptional(constants.DefaultConfigPath)
	return cfg, err
}

// applyFlags overlays explicitly set flags on cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *sweepFlags) error {
	if cmd.Flags().Changed("days") {
		cfg.Days = flags.days
	}
	if flags.removeEmptyDirs {
		cfg.RemoveEmptyDirs = true
	}

	if len(flags.roots) > 0 {
		roots := make([]string, 0, len(flags.roots))
		for _, r := range flags.roots {
			abs, err := filepath.Abs(config.ExpandHome(r))
			if err != nil {
				return fmt.Errorf("%w: root %q: %v", cleanup.ErrInvalidArgument, r, err)
			}
			roots = append(roots, abs)
		}
		cfg.Roots = roots
	}

	cfg.Exclude = append(cfg.Exclude, flags.exclude...)
	return nil
}

// confirmFunc prompts on a real terminal, or reads answers from a non-file
// reader such as one injected by tests.
func confirmFunc(in io.Reader, out io.Writer) cleanup.ConfirmFunc {
	if f, ok := in.(*os.File); ok {
		return prompt.TerminalConfirm(f, out)
	}
	return prompt.Reader(in, out)
}
