package app

// DefaultSpreadsheetID is the community-maintained game data spreadsheet.
const DefaultSpreadsheetID = "1deO9EM5GOVSzUbOt4N25WQxAKqce9FAuRU4tyGuV5p4"

// Config holds everything the run reads from the environment.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string // used when APIKey is empty
	APIKey          string
	CacheDir        string
	OutDir          string
	SQLitePath      string // export is skipped when empty
}
