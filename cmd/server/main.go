package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/voluntariados/backend/internal/app"
	"github.com/voluntariados/backend/internal/pkg/config"
	"github.com/voluntariados/backend/pkg/logger"
)

// @title          Voluntariados API
// @version        1.0
// @description    CRUD de usuarios y voluntariados.
// @BasePath       /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "voluntariados",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("backend", cfg.Backend).
		Msg("starting")

	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server error")
		stop()
		os.Exit(1)
	}
}
