package observability

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

func NewLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
