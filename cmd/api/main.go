// @title Quizcraft API
// @version 1.0
// @description Generates deduplicated, optionally bilingual quiz questions from a generative language model.
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizcraft/internal/adapter/genai"
	"quizcraft/internal/adapter/seenstore"
	"quizcraft/internal/adapter/translate"
	"quizcraft/internal/cache"
	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/handler"
	"quizcraft/internal/logger"
	"quizcraft/internal/middleware"
	"quizcraft/internal/service"

	_ "quizcraft/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

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

	ctx := context.Background()

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GenAI.APIKey),
		googleai.WithDefaultModel(cfg.GenAI.Model),
	)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator := genai.NewGenerator(llm, cfg.GenAI)
	appLogger.Info("Generation client initialized", zap.String("model", cfg.GenAI.Model))

	var store domain.SeenStore
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = seenstore.NewRedisStore(redisClient, cfg.Quiz.SeenTTL)
		appLogger.Info("Redis seen-store initialized", zap.String("address", cfg.Redis.Address))
	case "memory":
		store = seenstore.NewMemoryStore(cfg.Quiz.SeenTTL)
		appLogger.Info("In-memory seen-store initialized", zap.Duration("ttl", cfg.Quiz.SeenTTL))
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported cache backend: %s", cfg.Cache.Backend))
	}

	translator := translate.NewGoogleClient(cfg.Translator)
	translationService := service.NewTranslationService(translator)
	generationService := service.NewGenerationService(generator, store, translationService, cfg.Quiz)

	quizHandler := handler.NewQuizHandler(generationService)
	healthHandler := handler.NewHealthHandler(store)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", healthHandler.Check)

	// The legacy client posts to the bare path; new integrations use /api.
	app.Post("/generateQuestions", quizHandler.GenerateQuestions)
	app.Group("/api").Post("/generateQuestions", quizHandler.GenerateQuestions)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		appLogger.Info("Starting server", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
}
