package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value      string
		production bool
		want       zerolog.Level
	}{
		{"", false, zerolog.InfoLevel},
		{"", true, zerolog.WarnLevel},
		{"debug", false, zerolog.DebugLevel},
		{"DEBUG", true, zerolog.DebugLevel},
		{"warning", false, zerolog.WarnLevel},
		{"warn", false, zerolog.WarnLevel},
		{"error", false, zerolog.ErrorLevel},
		{"disabled", false, zerolog.Disabled},
		{"loud", false, zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.value, tt.production))
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SPREADSHEET_ID", "GOOGLE_CREDENTIALS_FILE", "SHEETS_API_KEY", "CACHE_DIR", "OUT_DIR", "SQLITE_PATH"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, Config{
		SpreadsheetID:   DefaultSpreadsheetID,
		CredentialsFile: "credentials.json",
		CacheDir:        "cache",
		OutDir:          "out",
	}, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "abc")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "sa.json")
	t.Setenv("SHEETS_API_KEY", "key")
	t.Setenv("CACHE_DIR", "/tmp/cache")
	t.Setenv("OUT_DIR", "/tmp/out")
	t.Setenv("SQLITE_PATH", "/tmp/data.db")

	assert.Equal(t, Config{
		SpreadsheetID:   "abc",
		CredentialsFile: "sa.json",
		APIKey:          "key",
		CacheDir:        "/tmp/cache",
		OutDir:          "/tmp/out",
		SQLitePath:      "/tmp/data.db",
	}, LoadConfig())
}
