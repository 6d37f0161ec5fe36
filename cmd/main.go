package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentahome/internal/auth"
	"rentahome/internal/config"
	"rentahome/internal/router"
	"rentahome/internal/storage/postgres"
	"rentahome/internal/storage/redis"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		return err
	}

	database, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Db.Close()

	cache, err := redis.New(cfg.RedisAddr, cfg.BrowseCacheTTL)
	if err != nil {
		return err
	}
	defer cache.Client.Close()

	sessions := auth.NewSessionIssuer(cfg.JWTSecret, cfg.SessionTTL, database)
	verifier := auth.NewGoogleVerifier(cfg.GoogleClientIDs)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.New(database, cache, sessions, verifier, router.Config{
			BcryptCost:  cfg.BcryptCost,
			CORSOrigins: cfg.CORSOrigins,
		}),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", slog.Any("err", err))
		}
		close(done)
	}()

	slog.Info("starting server", slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-done
	return nil
}
