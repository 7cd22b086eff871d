// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Adapts structured field maps onto logrus entries

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface on top of logrus.
type Logger struct {
	log *logrus.Logger
}

// New creates a logger writing text-formatted entries to stdout at the
// given level ("debug", "info", "warn", "error"; unknown values fall back
// to info).
func New(level string) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// NewWithLogrus wraps an existing logrus instance. Used by tests to attach
// hooks.
func NewWithLogrus(log *logrus.Logger) *Logger {
	return &Logger{log: log}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
