// Package logging builds the application logger from configuration.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger configured with the given level and format.
// An unknown level falls back to info; format "json" selects the JSON
// formatter, anything else full-timestamp text.
func New(level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
