// Package logging builds the hclog loggers used by bytekit commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Prefix marks human-readable log lines.
const Prefix = "🔑 "

// NewLogger creates a new hclog logger with standard settings.
//
// level may be spelled "json" or "json:<level>" to force JSON output;
// BYTEKIT_JSON_LOG=1 does the same for any level.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv("BYTEKIT_JSON_LOG") == "1"
	if strings.HasPrefix(level, "json") {
		jsonFormat = true
		if _, rest, ok := strings.Cut(level, ":"); ok {
			level = rest
		} else {
			level = "info"
		}
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter(Prefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("BYTEKIT_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return level
}

// Output returns the log destination and a func that releases it.
// BYTEKIT_LOG_PATH is opened for append when set; if it cannot be opened,
// or is unset, logs go to stderr and release is a no-op.
func Output() (io.Writer, func() error) {
	if logPath := os.Getenv("BYTEKIT_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return file, file.Close
		}
	}
	return os.Stderr, func() error { return nil }
}
