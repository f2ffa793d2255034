package logger

import "sync"

// Levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	global *Logger
	once   sync.Once
)

// Get returns the process-wide logger, initializing it at the given
// level on first use. Later calls return the same instance and ignore
// the level argument.
func Get(level string) *Logger {
	once.Do(func() {
		global = newZapLogger(level)
	})
	return global
}
