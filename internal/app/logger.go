package app

import (
	"os"

	"fastkart-parcels/internal/config"
	"fastkart-parcels/internal/logx"
)

// NewLogger returns the JSON process logger at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel).With(logx.String("env", cfg.Env))
}
