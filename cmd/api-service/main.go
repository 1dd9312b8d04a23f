package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-news-brief/internal/brief/config"
	delivery "stock-news-brief/internal/brief/delivery/http"
	"stock-news-brief/internal/brief/repository"
	"stock-news-brief/internal/brief/service"
	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/logger"
	"stock-news-brief/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the brief API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Brief API Service", logger.Field("name", cfg.App.Name))

	// Session-scoped cache shared by the news, chart and brief services
	sessionCache := cache.New(common.CacheDefaultExpiration, common.CacheCleanupInterval)

	// Initialize repositories
	newsRepo := repository.NewYahooNewsRepository(cfg, appLogger)
	rssRepo := repository.NewYahooRSSRepository(cfg, appLogger)
	chartRepo := repository.NewYahooChartRepository(cfg, appLogger)
	contentRepo := repository.NewArticleContentRepository(appLogger)

	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
	}
	aiRepo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
	}

	// Telegram notifier is optional
	var telegramNotifier telegram.Notifier
	if cfg.Telegram.Enabled {
		telegramNotifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize services
	newsSvc := service.NewNewsService(cfg, appLogger, newsRepo, rssRepo, sessionCache)
	chartSvc := service.NewChartService(appLogger, chartRepo, sessionCache)
	briefSvc := service.NewBriefService(cfg, appLogger, newsSvc, aiRepo, contentRepo, telegramNotifier, sessionCache)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	newsHandler := delivery.NewNewsHandler(newsSvc, appLogger)
	newsHandler.RegisterRoutes(apiV1.Group("/news"))

	chartHandler := delivery.NewChartHandler(chartSvc, appLogger)
	chartHandler.RegisterRoutes(apiV1.Group("/charts"))

	briefHandler := delivery.NewBriefHandler(briefSvc, appLogger)
	briefHandler.RegisterRoutes(apiV1.Group("/briefs"))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
