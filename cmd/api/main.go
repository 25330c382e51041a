package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hrapi/internal/config"
	"hrapi/internal/database"
	"hrapi/internal/database/migration"
	handlers "hrapi/internal/http/handler"
	"hrapi/internal/http/middleware"
	"hrapi/internal/otel"
	"hrapi/internal/repository/postgres"
	"hrapi/internal/service"
	"hrapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize the FTP-backed document store. Sessions are opened per call,
	// so this does not dial yet.
	store, err := storage.NewFTP(cfg.FTP)
	if err != nil {
		log.Fatalf("failed to initialize document store: %v", err)
	}
	paths := storage.Paths{BaseDir: cfg.FTP.BaseDir}

	// Initialize repositories and services
	docRepo := postgres.NewDocumentPostgres(db)
	empRepo := postgres.NewEmployeePostgres(db)
	depRepo := postgres.NewDepartmentPostgres(db)
	desRepo := postgres.NewDesignationPostgres(db)
	leaveRepo := postgres.NewLeavePostgres(db)

	svcs := handlers.Services{
		Documents: service.NewDocumentService(store, paths, docRepo, cfg.Upload.PublicBaseURL),
		Employees: service.NewEmployeeService(empRepo),
		Org:       service.NewOrgService(depRepo, desRepo),
		Leaves:    service.NewLeaveService(leaveRepo, docRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    service.MaxUploadBytes + 1024*1024, // request overhead beyond the payload ceiling
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
