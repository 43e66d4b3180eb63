// Package main is the entry point for the Landforge landscape viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nvollmar/landforge/internal/config"
	"github.com/nvollmar/landforge/internal/editor"
	"github.com/nvollmar/landforge/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Landforge ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ed, err := editor.New(cfg)
	if err != nil {
		logger.Error("failed to create editor", zap.Error(err))
		os.Exit(1)
	}
	defer ed.Close()

	if err := ed.Run(); err != nil {
		logger.Error("editor error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("editor closed normally")
}
