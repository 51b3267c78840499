package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordcalc/internal/app"
	"wordcalc/internal/config"
	"wordcalc/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	wire, err := app.NewWire(app.Config{
		Home:      cfg.Home,
		LogLevel:  cfg.LogLevel,
		LogPretty: cfg.LogPretty,
		Speech:    cfg.Speech,
	})
	if err != nil {
		os.Stderr.WriteString("wire: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := wire.Log

	srv := server.New(server.Config{
		Addr:       cfg.Addr,
		Calculator: wire.Calculator,
		History:    wire.History,
		Log:        log,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
