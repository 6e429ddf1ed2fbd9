package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func hasField(fieldErrs criterio.FieldErrors, field string) bool {
	for _, e := range fieldErrs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidate_RangeMustNotBeEmpty(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{name: "equal bounds", min: 3, max: 3},
		{name: "inverted bounds", min: 5, max: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			cfg.ActivityParams = ActivityParams{MinParticipants: tt.min, MaxParticipants: tt.max}

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.True(t, hasField(fieldErrs, "activity_params.max_participants"))
		})
	}
}

func TestValidate_MinParticipantsForRealClient(t *testing.T) {
	cfg := validConfig(t)
	cfg.ActivityParams = ActivityParams{MinParticipants: 0, MaxParticipants: 3}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "activity_params.min_participants", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "at least 1")
}

func TestValidate_MockAllowsZeroMinimum(t *testing.T) {
	cfg := validConfig(t)
	cfg.BoredClient.UseMock = true
	cfg.ActivityParams = ActivityParams{MinParticipants: 0, MaxParticipants: 3}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Timeout(t *testing.T) {
	cfg := validConfig(t)
	cfg.BoredClient.Timeout = -time.Second

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.True(t, hasField(fieldErrs, "bored_client.timeout"))
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := validConfig(t)
	cfg.DataDir = ""

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.True(t, hasField(fieldErrs, "data_dir"))
}

func TestValidateDeep_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "wrong scheme", baseURL: "ftp://example.com", want: "scheme"},
		{name: "no host", baseURL: "https://", want: "missing host"},
		{name: "relative", baseURL: "/api", want: "scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			cfg.BoredClient.BaseURL = tt.baseURL

			err := cfg.ValidateDeep("")

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, "bored_client.base_url", fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.want)
		})
	}
}

func TestValidateDeep_MockSkipsBaseURL(t *testing.T) {
	cfg := validConfig(t)
	cfg.BoredClient.UseMock = true
	cfg.BoredClient.BaseURL = "not a url"

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "notadir")
	require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0o644))

	cfg := validConfig(t)
	cfg.DataDir = tmpFile

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.True(t, hasField(fieldErrs, "data_dir"), "expected error about data dir")
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.True(t, hasField(fieldErrs, "config_file"), "expected error about config file being a directory")
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
}

func TestWarnings_SingleValueRange(t *testing.T) {
	cfg := validConfig(t)
	cfg.ActivityParams = ActivityParams{MinParticipants: 2, MaxParticipants: 3}

	require.NoError(t, cfg.Validate())

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Activity Params", warnings[0].Category)
	assert.True(t, strings.Contains(warnings[0].Message, "2 participant(s)"))
}

func TestWarnings_MockWithCustomBaseURL(t *testing.T) {
	cfg := validConfig(t)
	cfg.BoredClient.UseMock = true
	cfg.BoredClient.BaseURL = "http://localhost:8080"

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "base_url", warnings[0].Item)
}

func TestWarnings_None(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())
}
