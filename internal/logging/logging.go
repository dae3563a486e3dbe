package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger with the given level and format.
// If w is nil, os.Stderr is used. Format must be "text" or "json".
func Init(level log.Level, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	logger := log.StandardLogger()
	logger.SetOutput(writer)
	logger.SetLevel(level)

	switch format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
}

// New returns a logger with a "component" field for module-scoped logging.
func New(component string) *log.Entry {
	return log.WithField("component", component)
}

// ParseLevel accepts logrus level names ("debug", "info", "warn", ...).
func ParseLevel(name string) (log.Level, error) {
	return log.ParseLevel(name)
}
