// Package config handles configuration loading and validation for bored.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the public Bored API endpoint.
const DefaultBaseURL = "https://www.boredapi.com/api"

// Config holds the application configuration.
type Config struct {
	ActivityParams ActivityParams `yaml:"activity_params"`
	BoredClient    BoredClient    `yaml:"bored_client"`
	History        HistoryConfig  `yaml:"history"`
	DataDir        string         `yaml:"-"` // set by caller, not from config file
}

// ActivityParams bounds the randomly selected participant count.
type ActivityParams struct {
	MinParticipants int `yaml:"min_participants"`
	// MaxParticipants is exclusive: the selected count is always below it.
	MaxParticipants int `yaml:"max_participants"`
}

// BoredClient configures the upstream activity client.
type BoredClient struct {
	UseMock bool          `yaml:"use_mock"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// HistoryConfig controls the run history file.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ActivityParams: ActivityParams{
			MinParticipants: 1,
			MaxParticipants: 5,
		},
		BoredClient: BoredClient{
			UseMock: false,
			BaseURL: DefaultBaseURL,
			Timeout: 10 * time.Second,
		},
		History: HistoryConfig{
			MaxEntries: 100,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
// Validation is left to the caller so overrides can be applied first.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BoredClient.BaseURL == "" {
		c.BoredClient.BaseURL = defaults.BoredClient.BaseURL
	}
	if c.BoredClient.Timeout == 0 {
		c.BoredClient.Timeout = defaults.BoredClient.Timeout
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}
}

// Validate checks that the configuration is valid. Field problems are
// returned as criterio.FieldErrors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("cannot be empty"))
	}

	params := c.ActivityParams
	if params.MaxParticipants <= params.MinParticipants {
		errs = errs.Append("activity_params.max_participants",
			fmt.Errorf("must be greater than min_participants (%d), got %d", params.MinParticipants, params.MaxParticipants))
	}

	if !c.BoredClient.UseMock {
		if params.MinParticipants < 1 {
			errs = errs.Append("activity_params.min_participants",
				fmt.Errorf("must be at least 1 when the real client is used, got %d", params.MinParticipants))
		}
		if c.BoredClient.BaseURL == "" {
			errs = errs.Append("bored_client.base_url", fmt.Errorf("cannot be empty"))
		}
	}

	if c.BoredClient.Timeout <= 0 {
		errs = errs.Append("bored_client.timeout", fmt.Errorf("must be positive, got %s", c.BoredClient.Timeout))
	}

	if c.History.MaxEntries < 0 {
		errs = errs.Append("history.max_entries", fmt.Errorf("cannot be negative"))
	}

	return errs.ToError()
}

// Warnings returns non-fatal issues with an otherwise usable configuration.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	params := c.ActivityParams
	if params.MaxParticipants == params.MinParticipants+1 {
		warnings = append(warnings, ValidationWarning{
			Category: "Activity Params",
			Item:     "max_participants",
			Message: fmt.Sprintf("max_participants is exclusive; every run will use %d participant(s)",
				params.MinParticipants),
		})
	}

	if c.BoredClient.UseMock && c.BoredClient.BaseURL != DefaultBaseURL {
		warnings = append(warnings, ValidationWarning{
			Category: "Bored Client",
			Item:     "base_url",
			Message:  "base_url is ignored while use_mock is enabled",
		})
	}

	return warnings
}

// HistoryFile returns the path to the run history JSON file.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "history.json")
}

// Overrides holds values from the environment or command line that take
// precedence over the config file. Nil fields are left untouched.
type Overrides struct {
	MinParticipants *int
	MaxParticipants *int
	UseMock         *bool
	BaseURL         *string
	Timeout         *time.Duration
}

// Apply copies every set override onto the configuration.
func (c *Config) Apply(o Overrides) {
	if o.MinParticipants != nil {
		c.ActivityParams.MinParticipants = *o.MinParticipants
	}
	if o.MaxParticipants != nil {
		c.ActivityParams.MaxParticipants = *o.MaxParticipants
	}
	if o.UseMock != nil {
		c.BoredClient.UseMock = *o.UseMock
	}
	if o.BaseURL != nil {
		c.BoredClient.BaseURL = *o.BaseURL
	}
	if o.Timeout != nil {
		c.BoredClient.Timeout = *o.Timeout
	}
}
