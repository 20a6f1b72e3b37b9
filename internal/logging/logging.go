package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the application logger. Non-fatal posting conditions
// (unknown ledgers, malformed rows, orphaned parents) are reported here
// at WARN so reports always complete.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
