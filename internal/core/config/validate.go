package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this also checks the config file, data directory and
// base URL syntax.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	if err := c.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = errs.Append(fe.Field, fe.Err)
		}
	}

	errs = c.validateFileAccess(errs, configPath)
	errs = c.validateBaseURL(errs)

	return errs.ToError()
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(errs criterio.FieldErrorsBuilder, configPath string) criterio.FieldErrorsBuilder {
	if configPath != "" {
		info, err := os.Stat(configPath)
		switch {
		case err == nil && info.IsDir():
			errs = errs.Append("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
		case err != nil && !os.IsNotExist(err):
			errs = errs.Append("config_file", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if c.DataDir != "" {
		info, err := os.Stat(c.DataDir)
		switch {
		case err == nil && !info.IsDir():
			errs = errs.Append("data_dir", fmt.Errorf("%s exists but is not a directory", c.DataDir))
		case err != nil && !os.IsNotExist(err):
			errs = errs.Append("data_dir", fmt.Errorf("cannot access %s: %w", c.DataDir, err))
		}
	}

	return errs
}

// validateBaseURL checks the upstream URL is absolute http(s). Skipped in mock mode.
func (c *Config) validateBaseURL(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if c.BoredClient.UseMock || c.BoredClient.BaseURL == "" {
		return errs
	}

	u, err := url.Parse(c.BoredClient.BaseURL)
	if err != nil {
		return errs.Append("bored_client.base_url", fmt.Errorf("invalid url: %w", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errs.Append("bored_client.base_url", fmt.Errorf("scheme must be http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return errs.Append("bored_client.base_url", fmt.Errorf("missing host"))
	}

	return errs
}
