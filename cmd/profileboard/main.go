package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	adapthttp "profileboard/internal/adapter/http"
	"profileboard/internal/adapter/memory"
	adaptredis "profileboard/internal/adapter/redis"
	"profileboard/internal/app"
	"profileboard/internal/config"
	"profileboard/internal/domain"
	"profileboard/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	var (
		kv   domain.KeyValueStore
		repo domain.ProfileRepository
	)
	if cfg.RedisURL != "" {
		store, err := adaptredis.Open(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Error("redis open", "error", err)
			os.Exit(1)
		}
		defer func() { _ = store.Close() }()
		kv = store
		repo = store.NewProfileRepo()
	} else {
		store := memory.New()
		kv = store
		repo = store.NewProfileRepo()
		logger.Warn("REDIS_URL not set, using in-memory store; data will not survive restarts")
	}

	renderer, err := render.New()
	if err != nil {
		logger.Error("templates", "error", err)
		os.Exit(1)
	}

	sessions := app.NewSessionManager(kv, cfg.SessionDuration())
	auth := app.NewAuthService(credentials(cfg), sessions)
	profiles := app.NewProfileService(repo)

	srv := adapthttp.New(profiles, auth, renderer, logger, adapthttp.Options{
		SessionDuration: cfg.SessionDuration(),
		MaxRequestBytes: cfg.MaxRequestBytes,
	})

	logger.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

// credentials picks the bcrypt verifier when a hash is configured, falling
// back to the plaintext pair.
func credentials(cfg config.Config) app.CredentialVerifier {
	if cfg.AdminPasswordHash != "" {
		return app.BcryptCredentials{
			Username:     cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
		}
	}
	return app.StaticCredentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
