package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/JonMunkholm/csvclean/internal/config"
	"github.com/JonMunkholm/csvclean/internal/core"
	"github.com/JonMunkholm/csvclean/internal/history"
	"github.com/JonMunkholm/csvclean/internal/history/postgres"
	"github.com/JonMunkholm/csvclean/internal/logging"
	"github.com/JonMunkholm/csvclean/internal/report"
)

func main() {
	os.Exit(newApp(os.Stdout, os.Stderr).run(context.Background(), os.Args))
}

type historyOpener func(ctx context.Context, cfg config.HistoryConfig) (history.Store, error)

type app struct {
	stdout      io.Writer
	stderr      io.Writer
	openHistory historyOpener
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:      stdout,
		stderr:      stderr,
		openHistory: openPostgresHistory,
	}
}

func openPostgresHistory(ctx context.Context, cfg config.HistoryConfig) (history.Store, error) {
	return postgres.Open(ctx, cfg.URL, cfg.Table)
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "column",
			Aliases:  []string{"c"},
			Usage:    "the name of the column whose whitespace is normalized",
			Required: true,
		},
		&cli.BoolFlag{
			Name:    "deduplicate",
			Aliases: []string{"d"},
			Usage:   "remove duplicate rows from the CSV",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to an optional YAML configuration file",
			EnvVars: []string{"CSVCLEAN_CONFIG"},
		},
	}
}

// run parses args and executes one cleaning run, returning the process exit
// code.
func (a *app) run(ctx context.Context, args []string) int {
	// Load .env file if it exists; variables already set take precedence
	envErr := godotenv.Load()

	code := exitOK
	cliApp := &cli.App{
		Name: "csvclean",
		Usage: "Clean up messy CSV data by removing duplicates and " +
			"correcting formatting issues.",
		ArgsUsage:   "input_file output_file",
		HideVersion: true,
		Writer:      a.stdout,
		ErrWriter:   a.stderr,
		Flags:       flags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf(
					"expected input_file and output_file, got %d argument(s)",
					c.NArg(),
				)
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			logging.Setup(a.stderr, cfg.Logging.Level, cfg.Logging.Format)
			if envErr != nil {
				slog.Debug("no .env file found, using environment variables")
			} else {
				slog.Debug("loaded .env file")
			}
			slog.Debug("configuration loaded", "config", cfg.String())

			code = a.clean(c.Context, cfg, core.Options{
				Input:       c.Args().Get(0),
				Output:      c.Args().Get(1),
				Column:      c.String("column"),
				Deduplicate: c.Bool("deduplicate"),
				MaxFileSize: cfg.Cleaner.MaxFileSize,
			})
			return nil
		},
	}

	if err := cliApp.RunContext(ctx, reorderArgs(args, cliApp.Flags)); err != nil {
		fmt.Fprintf(a.stderr, "csvclean: %v\n", err)
		return exitUsage
	}
	return code
}

// clean runs the pipeline for opts, prints its status line, and records the
// run in history when enabled.
func (a *app) clean(ctx context.Context, cfg *config.Config, opts core.Options) int {
	runID := uuid.New()
	ctx = logging.NewContext(ctx, runID.String())
	logger := logging.FromContext(ctx)
	started := time.Now()
	notify := report.NewNotifier(a.stdout)

	// The input is checked before the pipeline runs so that nothing is
	// written for a missing file.
	if _, err := os.Stat(opts.Input); errors.Is(err, fs.ErrNotExist) {
		msg := notify.InputMissing(opts.Input)
		logger.Warn("input file does not exist",
			"input", opts.Input,
			"code", core.KindFileMissing.Code(),
		)
		a.record(ctx, cfg, history.Run{
			ID:          runID,
			StartedAt:   started,
			Duration:    time.Since(started),
			Input:       opts.Input,
			Output:      opts.Output,
			Column:      opts.Column,
			Deduplicate: opts.Deduplicate,
			Outcome:     history.OutcomeInputMissing,
			Code:        core.KindFileMissing.Code(),
			Message:     msg,
		})
		return exitCode(cfg, core.KindFileMissing)
	}

	res, err := core.Run(ctx, opts)
	msg := notify.Result(opts, res, err)
	if err != nil {
		kind := core.KindOf(err)
		logger.Error("cleaning failed",
			"kind", kind.String(),
			"code", kind.Code(),
			"error", err,
		)
	}

	a.record(ctx, cfg, history.NewRun(runID, started, opts, res, err, msg))

	if err != nil {
		return exitCode(cfg, core.KindOf(err))
	}
	return exitOK
}

// record stores run in the configured history. Failures are logged and do
// not change the outcome of the run.
func (a *app) record(ctx context.Context, cfg *config.Config, run history.Run) {
	if !cfg.History.Enabled() {
		return
	}
	logger := logging.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, cfg.History.Timeout)
	defer cancel()

	store, err := a.openHistory(ctx, cfg.History)
	if err != nil {
		logger.Warn("opening run history failed", "error", err)
		return
	}
	defer store.Close()

	if err := store.Record(ctx, run); err != nil {
		logger.Warn("recording run history failed", "error", err)
		return
	}
	logger.Debug("run recorded", "table", cfg.History.Table, "outcome", run.Outcome)
}
