package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/media-relay-go/api"
	"github.com/yourusername/media-relay-go/internal/app"
	"github.com/yourusername/media-relay-go/internal/infrastructure"
	"github.com/yourusername/media-relay-go/pkg/logger"
)

var configPath = flag.String("config", "", "Path to config file")

func main() {
	flag.Parse()

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if config.Telegram.Token == "" {
		fmt.Fprintln(os.Stderr, "Telegram bot token not configured (MEDIARELAY_TELEGRAM_TOKEN)")
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		OutputPath: config.Logging.OutputPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var events *logger.MultiLogger
	if config.Logging.EventsDir != "" {
		events, err = logger.NewMultiLogger(logger.MultiLoggerConfig{
			Level:   config.Logging.Level,
			LogsDir: config.Logging.EventsDir,
		})
		if err != nil {
			log.Fatal("Failed to initialize event logger", zap.Error(err))
		}
		defer events.Close()
	}

	log.Info("Starting media relay",
		zap.String("version", "1.0.0"),
		zap.String("host", config.Server.Host),
		zap.Int("port", config.Server.Port))

	if err := os.MkdirAll(filepath.Dir(config.History.DatabasePath), 0755); err != nil {
		log.Fatal("Failed to create history directory", zap.Error(err))
	}

	repo, err := infrastructure.NewSQLiteFetchRepository(config.History.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize history repository", zap.Error(err))
	}
	defer repo.Close()

	bot, err := infrastructure.NewTelegramBot(&config.Telegram, log)
	if err != nil {
		log.Fatal("Failed to connect to Telegram", zap.Error(err))
	}

	runner := infrastructure.NewCommandRunner(log)
	fetcher := infrastructure.NewYTDLPFetcher(&config.Fetcher, &config.Platforms, runner, log)
	registry := app.BuildRegistry(&config.Platforms, fetcher)
	if len(registry) == 0 {
		log.Fatal("No platforms enabled")
	}

	comments := app.LoadComments(config.Comments.Path, config.Comments.Disclaimer, log)

	pipeline := app.NewPipeline(registry, bot, repo, comments,
		config.Telegram.FailureMessage, log, events)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := api.SetupRouter(pipeline, repo, log)
	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	go func() {
		if err := bot.Listen(ctx, pipeline); err != nil && err != context.Canceled {
			log.Error("Update loop stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown failed", zap.Error(err))
	}
}
