package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vorolab/site/internal/config"
	"github.com/vorolab/site/internal/logging"
	"github.com/vorolab/site/internal/server"
	"github.com/vorolab/site/internal/service"
	"github.com/vorolab/site/internal/telemetry"
	"github.com/vorolab/site/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger configuration
	logConfig := logging.DefaultConfig()
	logConfig.Level = cfg.LogLevel
	logConfig.File = cfg.LogFile
	logConfig.LogRequests = cfg.LogRequests

	logging.Configure(logConfig)
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting vorolab-site %s in %s mode", version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}

	// Missing secrets are not fatal; each submission reports them
	if cfg.Telegram.BotToken == "" {
		logger.Warn("TELEGRAM_BOT_TOKEN is not set; inquiries will be rejected")
	}
	if cfg.Telegram.ChatID == "" {
		logger.Warn("TELEGRAM_CHAT_ID is not set; inquiries will be rejected")
	}

	telegram := service.NewTelegramService(cfg.Telegram.APIURL, cfg.Telegram.BotToken, nil)
	inquiryService := service.NewInquiryService(service.RelayConfig{
		BotToken: cfg.Telegram.BotToken,
		ChatID:   cfg.Telegram.ChatID,
	}, telegram, logger)

	srv, err := server.NewServer(cfg, inquiryService, logger)
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Failed to start server: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Received shutdown signal, draining requests...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("Tracer shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}
