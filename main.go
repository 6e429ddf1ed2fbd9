package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/bored/internal/activity"
	"github.com/hay-kot/bored/internal/commands"
	"github.com/hay-kot/bored/internal/core/config"
	"github.com/hay-kot/bored/internal/printer"
	"github.com/hay-kot/bored/internal/store/jsonfile"
	"github.com/hay-kot/bored/internal/upstream/bored"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with the given arguments and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := setupLogger("info", "", stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	var (
		p     = printer.New(stderr)
		flags = &commands.Flags{}
	)
	ctx = printer.NewContext(ctx, p)

	suggestCmd := commands.NewSuggestCmd(flags)

	app := &cli.Command{
		Name:      "bored",
		Usage:     "Suggest something to do when you're bored",
		UsageText: "bored [global options] [command [command options]]",
		Description: `Picks a participant count from the configured range and asks the Bored
API for a matching activity.

Run 'bored' with no arguments to get a suggestion. The maximum participant
count is exclusive and never selected.`,
		Version:        build(),
		Writer:         stdout,
		ErrWriter:      stderr,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("BORED_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("BORED_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BORED_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("BORED_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// No subcommand means the suggestion flow, which needs a valid config.
			// Subcommands such as 'config validate' report problems themselves.
			isSuggest := c.Args().Len() == 0

			if err := setupLogger(flags.LogLevel, flags.LogFile, stderr); err != nil {
				return ctx, err
			}
			flags.Logger = log.Logger

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			cfg.Apply(flags.Overrides(c))
			flags.Config = cfg

			if isSuggest {
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid config: %w", err)
				}
			}

			for _, w := range cfg.Warnings() {
				log.Warn().Str("category", w.Category).Str("item", w.Item).Msg(w.Message)
			}

			flags.Client = bored.New(cfg.BoredClient, log.With().Str("component", "bored").Logger())
			flags.Service = activity.NewService(flags.Client, log.With().Str("component", "activity").Logger())
			flags.HistoryStore = jsonfile.NewHistoryStore(cfg.HistoryFile(), cfg.History.MaxEntries)
			flags.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

			return ctx, nil
		},
	}

	app.Flags = append(app.Flags, flags.OverrideFlags()...)
	app.Flags = append(app.Flags, suggestCmd.Flags()...)

	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewHistoryCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'bored --help' for usage", c.Args().First())
		}
		return suggestCmd.Run(ctx, c)
	}

	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			p.Errorf("%s", msg)
		}
		return exitErr.ExitCode()
	}

	_, _ = fmt.Fprintln(stderr)
	printer.Ctx(ctx).FatalError(err)
	return 1
}

func setupLogger(level string, logFile string, stderr io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		// Write to both console and file
		output = io.MultiWriter(output, file)
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
