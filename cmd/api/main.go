// @title QuizCraft API
// @version 1.0
// @description Adaptive quiz-generation backend: strategy selection, batch decomposition and a degradation ladder in front of a remote AI generation service.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizcraft/internal/adapter"
	"quizcraft/internal/adapter/aiclient"
	"quizcraft/internal/cache"
	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/handler"
	"quizcraft/internal/logger"
	"quizcraft/internal/middleware"
	"quizcraft/internal/service"
	"quizcraft/internal/validation"

	_ "quizcraft/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize the generation backend
	var generationClient domain.GenerationClient
	switch cfg.Generator.Source {
	case "remote":
		appLogger.Info("Initializing remote generation client", zap.String("base_url", cfg.Generator.Remote.BaseURL))
		generationClient, err = aiclient.NewHTTPGenerationClient(cfg.Generator.Remote.BaseURL, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create remote generation client", zap.Error(err))
		}
	case "ollama":
		appLogger.Info("Initializing ollama generation client",
			zap.String("server_url", cfg.Generator.Ollama.ServerURL),
			zap.String("model", cfg.Generator.Ollama.Model),
		)
		generationClient, err = aiclient.NewOllamaGenerationClient(cfg.Generator.Ollama.ServerURL, cfg.Generator.Ollama.Model, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create ollama generation client", zap.Error(err))
		}
	default:
		appLogger.Fatal("Unsupported generator source. Please check generator.source in config.",
			zap.String("source", cfg.Generator.Source))
	}

	// Initialize the result cache. Redis being down only disables
	// caching; generation still works.
	var resultCache service.ResultCacheService
	if redisClient, err := cache.NewRedisClient(cfg.Redis); err != nil {
		appLogger.Warn("Redis unavailable, result caching disabled", zap.Error(err))
	} else {
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
		resultCache = service.NewResultCacheService(cacheAdapter, cfg.Cache.ResultTTL)
	}

	// Initialize services
	executor := service.NewStrategyExecutor(generationClient)
	fallback := service.NewFallbackTemplateGenerator()
	generationService := service.NewGenerationService(executor, fallback, resultCache, service.NewLogProgressReporter())
	appLogger.Info("GenerationService initialized")

	healthMonitor := service.NewHealthMonitor(generationClient, nil)
	if err := healthMonitor.Start(cfg.Health.Interval); err != nil {
		appLogger.Fatal("Failed to start health monitor", zap.Error(err))
	}
	defer healthMonitor.Stop()

	// Initialize handlers
	generationHandler := handler.NewGenerationHandler(generationService, validation.NewValidator())
	healthHandler := handler.NewHealthHandler(healthMonitor)
	cacheHandler := handler.NewCacheHandler(generationClient, resultCache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Post("/generate", generationHandler.Generate)
	apiGroup.Get("/health", healthHandler.GetHealth)
	apiGroup.Post("/cache/clear", cacheHandler.ClearCache)
	apiGroup.Get("/cache/stats", cacheHandler.GetCacheStats)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
