// @title Readum API
// @version 1.0
// @description Turns reading notes or articles into multiple-choice quizzes and tracks each attempt until it is scored and shared.
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

	_ "readum/cmd/api/docs"
	"readum/internal/adapter"
	"readum/internal/adapter/quizapi"
	"readum/internal/cache"
	"readum/internal/config"
	"readum/internal/handler"
	"readum/internal/logger"
	"readum/internal/middleware"
	"readum/internal/service"
	"readum/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
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

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Quiz generation and submission go to base_url; result reads may be
	// served by a different host.
	quizClient, err := quizapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to create quiz backend client", zap.Error(err))
	}
	resultClient, err := quizapi.NewClient(cfg.Backend.ServerBaseURL, cfg.Backend.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to create result backend client", zap.Error(err))
	}
	appLogger.Info("Quiz backend clients initialized",
		zap.String("base_url", cfg.Backend.BaseURL),
		zap.String("server_base_url", cfg.Backend.ServerBaseURL))

	requestValidator := validation.NewValidator()
	builder, err := validation.NewQuizRequestBuilder(requestValidator, cfg.Quiz)
	if err != nil {
		appLogger.Fatal("Invalid quiz configuration", zap.Error(err))
	}

	attemptStore := service.NewAttemptStore(cacheAdapter, cfg.CacheTTLs.Attempt)
	dispatcher := service.NewSubmissionDispatcher(quizClient, cfg.Backend.Timeout)
	quizService := service.NewQuizService(builder, quizClient, attemptStore, dispatcher)
	resultService := service.NewResultService(resultClient, cacheAdapter, cfg.CacheTTLs.Result)

	quizHandler := handler.NewQuizHandler(quizService, requestValidator)
	resultHandler := handler.NewResultHandler(resultService)
	healthHandler := handler.NewHealthHandler(cacheAdapter)

	app := fiber.New(fiber.Config{
		AppName:      "readum",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, quizHandler, resultHandler, healthHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
