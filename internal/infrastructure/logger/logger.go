// Package logger builds the structured logger shared by all game systems.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a logger with the given level and format ("json" or "text").
// LOG_LEVEL and LOG_FORMAT environment variables override the arguments.
func New(level, format string) *logrus.Logger {
	log := logrus.New()

	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(os.Stderr)
	return log
}

// Discard returns a logger that writes nowhere (tests, headless replays)
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Component returns an entry tagged with the owning component name
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
