//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/regime-co/regime-api/apps/api/server"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load("../../.env"); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	// Initialize logger first
	logger.InitLogger(helpers.StageLocal)
	defer func() { _ = logger.Sync() }()

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)
	defer server.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	server.StartBackgroundJobs(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", server.Port()),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}
