package commands

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/bored/internal/activity"
	"github.com/hay-kot/bored/internal/core/config"
	"github.com/hay-kot/bored/internal/core/history"
	"github.com/hay-kot/bored/internal/upstream/bored"
)

// Names of the global flags that override config file values.
const (
	FlagMinParticipants = "min-participants"
	FlagMaxParticipants = "max-participants"
	FlagMock            = "mock"
	FlagBaseURL         = "base-url"
	FlagTimeout         = "timeout"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Override values; only applied when the flag or its env var is set.
	MinParticipants int
	MaxParticipants int
	UseMock         bool
	BaseURL         string
	Timeout         time.Duration

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Client is the upstream client selected by the config
	Client bored.Client

	// Service fetches activities through Client
	Service *activity.Service

	// HistoryStore records each suggestion run
	HistoryStore history.Store

	// Rand picks the participant count
	Rand *rand.Rand

	Logger zerolog.Logger
}

// OverrideFlags returns the global flags that take precedence over the
// config file. Environment variables take precedence over the file, and
// command-line values over both.
func (f *Flags) OverrideFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        FlagMinParticipants,
			Usage:       "minimum number of participants (inclusive)",
			Sources:     cli.EnvVars("BORED_MIN_PARTICIPANTS"),
			Destination: &f.MinParticipants,
		},
		&cli.IntFlag{
			Name:        FlagMaxParticipants,
			Usage:       "maximum number of participants (exclusive, never selected)",
			Sources:     cli.EnvVars("BORED_MAX_PARTICIPANTS"),
			Destination: &f.MaxParticipants,
		},
		&cli.BoolFlag{
			Name:        FlagMock,
			Usage:       "use the mock client instead of calling the Bored API",
			Sources:     cli.EnvVars("BORED_USE_MOCK"),
			Destination: &f.UseMock,
		},
		&cli.StringFlag{
			Name:        FlagBaseURL,
			Usage:       "Bored API base URL",
			Sources:     cli.EnvVars("BORED_BASE_URL"),
			Destination: &f.BaseURL,
		},
		&cli.DurationFlag{
			Name:        FlagTimeout,
			Usage:       "upstream request timeout",
			Sources:     cli.EnvVars("BORED_TIMEOUT"),
			Destination: &f.Timeout,
		},
	}
}

// Overrides collects the override flags that were explicitly set on c,
// either on the command line or through their environment variable.
func (f *Flags) Overrides(c *cli.Command) config.Overrides {
	var o config.Overrides
	if c.IsSet(FlagMinParticipants) {
		o.MinParticipants = &f.MinParticipants
	}
	if c.IsSet(FlagMaxParticipants) {
		o.MaxParticipants = &f.MaxParticipants
	}
	if c.IsSet(FlagMock) {
		o.UseMock = &f.UseMock
	}
	if c.IsSet(FlagBaseURL) {
		o.BaseURL = &f.BaseURL
	}
	if c.IsSet(FlagTimeout) {
		o.Timeout = &f.Timeout
	}
	return o
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "bored", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "bored")
}
