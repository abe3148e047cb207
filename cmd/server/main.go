// Package main runs the auction landing backend HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nos-auction/backend/config"
	"github.com/nos-auction/backend/internal/bids"
	"github.com/nos-auction/backend/internal/downloads"
	"github.com/nos-auction/backend/internal/middleware"
	"github.com/nos-auction/backend/internal/registrations"
	"github.com/nos-auction/backend/internal/session"
	"github.com/nos-auction/backend/pkg/response"
	"github.com/nos-auction/backend/pkg/sheets"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	store, err := sheets.NewClient(ctx, sheets.Config{
		ServiceAccountEmail: cfg.Sheets.ServiceAccountEmail,
		PrivateKey:          cfg.Sheets.PrivateKey,
		SpreadsheetID:       cfg.Sheets.SpreadsheetID,
	}, logger)
	if err != nil {
		logger.Fatal("sheets client", zap.Error(err))
	}
	store.EnsureTabs(ctx)

	sessions := session.NewService(
		cfg.Session.Secret,
		time.Duration(cfg.Session.TTLDays)*24*time.Hour,
		cfg.Session.SecureCookies,
	)

	registrationHandler := registrations.NewHandler(store, sessions, logger)
	bidHandler := bids.NewHandler(store, logger)
	downloadHandler := downloads.NewHandler(store, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Public: registration issues the session
	router.POST("/register", registrationHandler.Register)

	// Session-gated: everything the access page needs
	authed := router.Group("")
	authed.Use(middleware.Session(sessions))
	{
		authed.GET("/session", registrationHandler.Session)
		authed.GET("/catalogues", downloadHandler.List)
		authed.POST("/bids", bidHandler.Submit)
		authed.GET("/track/download", downloadHandler.Track)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
