package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/career-pathfinder/internal/config"
	"alfredoptarigan/career-pathfinder/internal/handlers"
	"alfredoptarigan/career-pathfinder/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := cfg.Validate(); err != nil {
		zapLogger.Fatal("❌ Invalid configuration", zap.Error(err))
	}
	zapLogger.Info("✅ Config loaded successfully",
		zap.String("project", cfg.Vertex.ProjectID),
		zap.String("location", cfg.Vertex.Location),
		zap.String("model", cfg.Vertex.Model),
	)

	// Initialize Gemini on Vertex AI
	geminiService, err := services.NewGeminiService(context.Background(), cfg.Vertex, zapLogger)
	if err != nil {
		zapLogger.Fatal("❌ Failed to initialize Gemini AI", zap.Error(err))
	}
	zapLogger.Info("✅ Gemini AI initialized successfully")

	// Initialize services
	invoker := services.NewRemoteInvoker(
		geminiService,
		cfg.Retry.MaxAttempts,
		cfg.Retry.InitialDelay,
		zapLogger,
	)
	careerService := services.NewCareerService(invoker, zapLogger)
	zapLogger.Info("✅ Services initialized successfully")

	// Initialize Handlers
	careersHandler := handlers.NewCareersHandler(careerService, cfg.Server.GenerationTimeout)
	roadmapHandler := handlers.NewRoadmapHandler(careerService, cfg.Server.GenerationTimeout)
	zapLogger.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Pathfinder API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Server.GenerationTimeout + 10*time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/careers", careersHandler.HandleSuggest)
	api.Get("/roadmap/:career", roadmapHandler.HandleGetRoadmap)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Pathfinder API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/careers",
				"GET /api/v1/roadmap/:career",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
