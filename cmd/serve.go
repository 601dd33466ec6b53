package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/logger"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation proxy",
	Long: `Run an HTTP proxy that holds the AI credential.

Clients set DAYNE_PROXY_URL to this server's address and generate
questions without a local API key. Requests carrying a valid session
token have their file uploads saved for that user.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides DAYNE_SERVER_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.ServerPort = port
	}
	// The proxy must never call itself.
	cfg.ProxyURL = ""

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gen, err := newGenerator(ctx, cfg, st.EventRepo(), log)
	if err != nil {
		return err
	}
	gw, err := newGateway(cfg, st, auth.ContextSource{}, log)
	if err != nil {
		return err
	}
	p := pipeline.New(extract.New(extract.WithLogger(log)), gen, gw, log)

	var verifier *auth.Verifier
	if cfg.AuthKey != "" {
		verifier = auth.NewVerifier(cfg.AuthKey)
	} else {
		log.Warn().Msg("DAYNE_AUTH_KEY not set; all requests are anonymous")
	}

	srv := server.New(p, verifier, server.Config{
		GinMode:        cfg.GinMode,
		AllowedOrigins: cfg.AllowedOrigins,
	}, log)

	log.Info().
		Str("port", cfg.ServerPort).
		Str("provider", cfg.LLM.Provider).
		Bool("object_storage", cfg.UsesObjectStorage()).
		Msg("starting proxy")
	return srv.Run(ctx, ":"+cfg.ServerPort)
}
