// Package logging builds the diagnostic logger. User-facing output never
// goes through it.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable consulted when no level flag is given.
const EnvLevel = "NOTATION_LOG_LEVEL"

// DefaultLevel keeps the logger quiet unless something goes wrong.
const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to out at the given level. An empty
// level falls back to $NOTATION_LOG_LEVEL, then DefaultLevel.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

// ParseLevel resolves the effective log level.
func ParseLevel(level string) (logrus.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = strings.TrimSpace(os.Getenv(EnvLevel))
	}

	switch strings.ToLower(level) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return DefaultLevel, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", level)
	}
}
