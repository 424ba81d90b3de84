// Package logging provides the shared structured logger and the standard
// field names used across the application.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// GetLogger returns the process-wide logger, creating it on first use with
// settings from the environment.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		Configure(logger, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	})
	return logger
}

// Configure applies a level and format to an existing logger. Unparseable
// levels fall back to info, unknown formats to full-timestamp text.
func Configure(l *logrus.Logger, level, format string) {
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		l.Warnf("Invalid log level '%s', using 'info'", level)
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}
