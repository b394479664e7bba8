package app

import (
	"context"
	"os"
	"strings"
	"time"

	"acnh_sheet_data/internal/sheets"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	production := os.Getenv("ENV") == "production"
	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	zerolog.SetGlobalLevel(parseLevel(os.Getenv("LOGLEVEL"), production))

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// parseLevel maps LOGLEVEL to a zerolog level. Unset means warn in
// production and info elsewhere; unknown values fall back to info.
func parseLevel(value string, production bool) zerolog.Level {
	levelStr := strings.ToLower(strings.TrimSpace(value))
	switch levelStr {
	case "":
		if production {
			return zerolog.WarnLevel
		}
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
		return zerolog.InfoLevel
	}
	return level
}

// WithRunID tags every following log line with the run id.
func WithRunID(runID string) {
	log.Logger = log.With().Str("run_id", runID).Logger()
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadConfig reads the run configuration from the environment.
func LoadConfig() Config {
	return Config{
		SpreadsheetID:   GetEnvWithDefault("SPREADSHEET_ID", DefaultSpreadsheetID),
		CredentialsFile: GetEnvWithDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		APIKey:          os.Getenv("SHEETS_API_KEY"),
		CacheDir:        GetEnvWithDefault("CACHE_DIR", "cache"),
		OutDir:          GetEnvWithDefault("OUT_DIR", "out"),
		SQLitePath:      os.Getenv("SQLITE_PATH"),
	}
}

// InitializeSheetsClient creates the Google Sheets client, preferring an API
// key over a credentials file when both are configured.
func InitializeSheetsClient(ctx context.Context, cfg Config) *sheets.Client {
	log.Debug().Msg("Initializing sheets client")

	var (
		client *sheets.Client
		err    error
	)
	if cfg.APIKey != "" {
		client, err = sheets.NewClientWithAPIKey(ctx, cfg.APIKey)
	} else {
		client, err = sheets.NewClient(ctx, cfg.CredentialsFile)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}

	log.Debug().Bool("api_key", cfg.APIKey != "").Msg("Sheets client initialized successfully")
	return client
}
