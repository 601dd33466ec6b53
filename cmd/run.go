package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/app"
	"github.com/dayne-app/dayne/internal/logger"
	"github.com/dayne-app/dayne/internal/study"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return launch(cmd, 0, "")
}

// launch starts the TUI, optionally straight into studying a stored upload.
func launch(cmd *cobra.Command, uploadID int, mode study.Mode) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := logger.Setup(cfg.LogLevel, "json", logFile)

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	p, gw, err := newPipeline(ctx, cfg, st, log)
	if err != nil {
		return err
	}
	if cfg.SessionToken != "" && gw.Session(ctx) == nil {
		warnf("Session token rejected; uploads will not be saved.")
	}

	return app.Run(ctx, app.Deps{
		Pipeline:    p,
		Gateway:     gw,
		Language:    cfg.Language,
		Logger:      log,
		StartUpload: uploadID,
		StartMode:   mode,
		Splash:      true,
	})
}
