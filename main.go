package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wordthink/config"
	"wordthink/config/database"
	"wordthink/internal/dictionary"
	"wordthink/middleware"
	"wordthink/pkg/logger"
	"wordthink/router"
	"wordthink/socket"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Log.Info("Server exiting")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db.DB); err != nil {
		return err
	}

	hub := socket.NewHub(socket.WithOriginCheck(middleware.OriginChecker(cfg.CORS.AllowedOrigins)))
	dict := dictionary.NewClient(cfg.Dictionary)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(cfg, db, hub, dict),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	eg, groupCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		hub.Run(groupCtx)
		return nil
	})

	eg.Go(func() error {
		logger.Log.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-groupCtx.Done()
		logger.Log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Server shutdown failed", zap.Error(err))
			return err
		}
		return nil
	})

	return eg.Wait()
}
