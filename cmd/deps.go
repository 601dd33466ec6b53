package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/blob"
	"github.com/dayne-app/dayne/internal/config"
	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/persist"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/store"
)

// newGenerator returns a proxy client when DAYNE_PROXY_URL is set, and a
// local provider-backed generator otherwise. A missing credential only
// surfaces when the first generation runs.
func newGenerator(ctx context.Context, cfg *config.Config, events store.EventRepo, logger zerolog.Logger) (questiongen.Generator, error) {
	if cfg.ProxyURL != "" {
		var opts []questiongen.RemoteOption
		if cfg.SessionToken != "" {
			opts = append(opts, questiongen.WithBearerToken(cfg.SessionToken))
		}
		logger.Info().Str("proxy", cfg.ProxyURL).Msg("generating through proxy")
		return questiongen.NewRemote(cfg.ProxyURL, opts...), nil
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, events, logger)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	return questiongen.New(provider, questiongen.DefaultConfig(), logger), nil
}

// newBlobStore picks object storage when an endpoint is configured and a
// local directory otherwise.
func newBlobStore(cfg *config.Config) (blob.Store, error) {
	if cfg.UsesObjectStorage() {
		return blob.NewMinioStore(cfg.Storage)
	}
	return blob.NewLocalStore(cfg.BlobDir), nil
}

// newGateway wires persistence for the signed-in user. Without a session
// token every call is skipped.
func newGateway(cfg *config.Config, st *store.Store, sessions auth.SessionSource, logger zerolog.Logger) (*persist.Gateway, error) {
	blobs, err := newBlobStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("blob storage: %w", err)
	}
	return persist.New(sessions, st.UploadRepo(), st.StudySessionRepo(), blobs, logger), nil
}

// tokenSessions verifies DAYNE_SESSION_TOKEN with DAYNE_AUTH_KEY. It is
// nil when no token is configured.
func tokenSessions(cfg *config.Config) auth.SessionSource {
	if cfg.SessionToken == "" {
		return nil
	}
	return auth.NewTokenSource(cfg.SessionToken, auth.NewVerifier(cfg.AuthKey))
}

// newPipeline builds the generation pipeline for local use.
func newPipeline(ctx context.Context, cfg *config.Config, st *store.Store, logger zerolog.Logger) (*pipeline.Pipeline, *persist.Gateway, error) {
	gen, err := newGenerator(ctx, cfg, st.EventRepo(), logger)
	if err != nil {
		return nil, nil, err
	}
	gw, err := newGateway(cfg, st, tokenSessions(cfg), logger)
	if err != nil {
		return nil, nil, err
	}
	ext := extract.New(extract.WithLogger(logger))
	return pipeline.New(ext, gen, gw, logger), gw, nil
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
