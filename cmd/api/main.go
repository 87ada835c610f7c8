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
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"plotforma/admissions-guide/internal/catalog"
	"plotforma/admissions-guide/internal/config"
	"plotforma/admissions-guide/internal/handlers"
	"plotforma/admissions-guide/internal/logger"
	"plotforma/admissions-guide/internal/repositories"
	"plotforma/admissions-guide/internal/services"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zl.Sync()

	if !cfg.EnvFileLoaded {
		zl.Info("no .env file found, using environment and defaults")
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zl.Fatal("failed to load catalog", zap.Error(err))
	}
	zl.Info("catalog loaded",
		zap.Int("universities", len(cat.Universities)),
		zap.Int("scholarships", len(cat.Scholarships)),
		zap.Int("deadlines", len(cat.Deadlines)))

	db, err := config.InitDatabase(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize database", zap.Error(err))
	}

	profileRepo := repositories.NewProfileRepository(db)
	scoreRepo := repositories.NewTestScoreRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	deadlineRepo := repositories.NewDeadlineRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zl.Fatal("failed to create upload directory", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	searchService := newSearchService(ctx, cfg, zl)

	processor := services.NewDocumentProcessor(docRepo, services.NewPDFParserService(), notificationRepo, zl)
	worker := services.NewWorker(docRepo, processor, services.WorkerOptions{
		Concurrency:  cfg.Worker.Concurrency,
		PollInterval: cfg.Worker.PollInterval,
		BatchSize:    cfg.Worker.BatchSize,
	}, zl)
	worker.Start(ctx)

	h := &handlers.Handlers{
		Chat: handlers.NewChatHandler(services.NewResponseMatcher(cat.Universities), chatRepo, zl),
		Evaluation: handlers.NewEvaluationHandler(
			services.NewProfileScorer(),
			evalRepo,
			profileRepo,
			scoreRepo,
			activityRepo,
			notificationRepo,
			zl,
		),
		Profile: handlers.NewProfileHandler(profileRepo, scoreRepo, activityRepo, zl),
		Upload:  handlers.NewUploadHandler(docRepo, storageService, worker, cfg.Storage.MaxFileSize, zl),
		Catalog: handlers.NewCatalogHandler(cat),
		Search:  handlers.NewSearchHandler(searchService, zl),

		Deadlines:     handlers.NewDeadlineHandler(deadlineRepo, zl),
		Notifications: handlers.NewNotificationHandler(notificationRepo, zl),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Plotforma Admissions Guide API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + handlers.UserIDHeader,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app.Group("/api/v1"), h)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Plotforma Admissions Guide API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/chat",
				"POST /api/v1/evaluate",
				"GET /api/v1/universities",
				"GET /api/v1/universities/compare?left=&right=",
				"GET /api/v1/scholarships",
				"GET /api/v1/deadlines",
				"GET /api/v1/search/programs?q=",
				"GET /api/v1/me/profile",
				"POST /api/v1/me/documents",
				"GET /api/v1/me/deadlines",
				"GET /api/v1/me/notifications",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("shutting down server")
		worker.Stop()
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Server.Env))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}

// newSearchService leaves semantic search disabled when a backend is missing or unreachable.
func newSearchService(ctx context.Context, cfg *config.Config, zl *zap.Logger) services.ProgramSearchService {
	if !cfg.SearchEnabled() {
		zl.Info("semantic program search disabled")
		return services.NewProgramSearchService(nil, nil, zl)
	}

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, zl)
	if err != nil {
		zl.Warn("gemini unavailable, semantic search disabled", zap.Error(err))
		return services.NewProgramSearchService(nil, nil, zl)
	}

	index, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, zl)
	if err != nil {
		zl.Warn("qdrant unavailable, semantic search disabled", zap.Error(err))
		return services.NewProgramSearchService(nil, nil, zl)
	}

	zl.Info("semantic program search enabled", zap.String("collection", cfg.Qdrant.Collection))
	return services.NewProgramSearchService(gemini, index, zl)
}
