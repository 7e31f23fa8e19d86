package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"f2computers/site/internal/config"
	"f2computers/site/internal/handlers"
	"f2computers/site/internal/jobs"
	"f2computers/site/internal/log"
	"f2computers/site/internal/server"
	"f2computers/site/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	st := store.New()
	if cfg.SeedDemoData {
		st.SeedDemoData()
		users, messages, _ := st.Counts()
		logger.Info().Int("users", users).Int("messages", messages).Msg("demo data seeded")
	}

	handlerSet := handlers.NewHandlerSet(logger, st, cfg)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(st, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	logStartupBanner(logger, cfg)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler)
}

func logStartupBanner(logger zerolog.Logger, cfg *config.AppConfig) {
	base := fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)

	logger.Info().Str("url", base).Msg("server running")
	logger.Info().Str("url", base+"/admin").Msg("admin panel")
	logger.Info().Str("url", base+"/api/test").Msg("test endpoint")
	if cfg.SeedDemoData {
		logger.Info().Str("email", "test@example.com").Str("password", "123456").Msg("demo login")
		logger.Info().Str("email", "admin@f2computers.com").Str("password", "admin123").Msg("demo admin login")
	}
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	if scheduler != nil {
		cancel := scheduler.Stop()
		cancel()
	}

	logger.Info().Msg("server exited cleanly")
}
