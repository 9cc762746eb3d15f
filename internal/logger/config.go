package logger

import "os"

// LogConfig controls logger behavior. Values are read once at Init.
type LogConfig struct {
	Level      string // trace|debug|info|warn|error
	Format     string // text|json
	Output     string // stdout|file|both
	LogPath    string // Directory for log files (relative to project root)
	AppFile    string // Main application log
	SyncFile   string // Sync/webhook ingestion log
	ErrorFile  string // Error log
	MaxSize    int    // MB per file before rotation
	MaxBackups int    // Rotated files kept
	MaxAge     int    // Days kept
	Compress   bool   // Compress rotated files
}

// DefaultConfig returns the default logging configuration, overridable
// through LOG_LEVEL / LOG_FORMAT / LOG_OUTPUT environment variables.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		SyncFile:   "sync.log",
		ErrorFile:  "error.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}

	return cfg
}
