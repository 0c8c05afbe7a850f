package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a structured logger writing to w at the configured
// level. An unknown level falls back to info.
func NewLogger(w io.Writer, cfg Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
