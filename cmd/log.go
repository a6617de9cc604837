package cmd

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger returns a stderr logger at the configured level.
// verbose forces debug.
func NewLogger(out io.Writer, level string, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if verbose {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.SetLevel(log.WarnLevel)
		logger.Warnf("invalid log level %s, defaulting to warn", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}
