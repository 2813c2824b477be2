package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/cache"
	"github.com/connect4/server/internal/config"
	"github.com/connect4/server/internal/game"
	transporthttp "github.com/connect4/server/internal/transport/http"
	transportws "github.com/connect4/server/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment")
	}

	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	engine := game.New(game.Config{
		Columns:   cfg.Columns,
		Rows:      cfg.Rows,
		WinLength: cfg.WinLength,
		MaxDepth:  cfg.MaxDepth,
	})
	selector := bot.NewSelector(engine, nil)

	// Move cache is optional: without Redis the strong tier just
	// recomputes every position.
	var moves cache.MoveCache = cache.Noop{}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTLMin)*time.Minute)
		if err != nil {
			log.Warn().Err(err).Msg("redis unreachable, move cache disabled")
		} else {
			log.Info().Str("addr", cfg.RedisURL).Msg("move cache connected")
			moves = redisCache
		}
	}
	defer moves.Close()

	httpServer := transporthttp.NewServer(engine, selector, moves, cfg.StateSecret, cfg.AllowedOrigins)
	wsHandler := transportws.NewHandler(engine, selector, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpServer.Router(wsHandler),
	}

	go func() {
		log.Info().Str("port", cfg.Port).
			Int("columns", engine.Columns).Int("rows", engine.Rows).
			Int("win_length", engine.WinLength).Int("depth", engine.MaxDepth).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited gracefully")
}
