// Package logging provides leveled logging for the server on top of
// zerolog. All output goes to stderr so that stdio mode keeps stdout
// reserved for MCP protocol traffic.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Initialize sets the global verbosity from the numeric 0-9 level used
// by the --log-level flag and the log_level config key.
func Initialize(level int) {
	zerolog.SetGlobalLevel(zerologLevel(level))
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// zerologLevel maps the 0-9 numeric level to a zerolog level:
// 0 errors only, 1-2 warnings, 3-4 info, 5-9 debug.
func zerologLevel(level int) zerolog.Level {
	switch {
	case level >= 5:
		return zerolog.DebugLevel
	case level >= 3:
		return zerolog.InfoLevel
	case level >= 1:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Debug logs at debug level.
func Debug(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

// Warn logs at warning level.
func Warn(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}
