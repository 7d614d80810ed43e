package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gamereview/backend/internal/config"
	"gamereview/backend/internal/database"
	"gamereview/backend/internal/handler"
	"gamereview/backend/internal/logger"
	"gamereview/backend/internal/router"
	"gamereview/backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	// Swagger imports
	_ "gamereview/backend/docs" // This is important for swag to find the generated docs
)

// @title           Game Review API
// @version         1.0
// @description     CRUD API for games, their reviews and the users who write them.
// @host            localhost:5555
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Production)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	db, err := database.Connect(cfg, zl)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zl.Warn("failed to close database", zap.Error(err))
		}
	}()

	if cfg.AutoMigrate {
		if err := database.Migrate(db, zl); err != nil {
			return err
		}
	}

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	h := handler.New(store.New(db), zl)
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.New(h, zl, router.Options{Swagger: cfg.SwaggerEnabled}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zl.Info("Server is running", zap.String("addr", srv.Addr))
		if cfg.SwaggerEnabled {
			zl.Info("Swagger UI is available at http://localhost" + srv.Addr + "/swagger/index.html")
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
