package main

import (
	"context"
	"io/fs"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/config"
	"github.com/ekaya-inc/statusboard/pkg/database"
	"github.com/ekaya-inc/statusboard/pkg/handlers"
	"github.com/ekaya-inc/statusboard/pkg/logging"
	"github.com/ekaya-inc/statusboard/pkg/middleware"
	"github.com/ekaya-inc/statusboard/pkg/repositories"
	"github.com/ekaya-inc/statusboard/pkg/services"
	"github.com/ekaya-inc/statusboard/pkg/session"
	"github.com/ekaya-inc/statusboard/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dsn := cfg.Database.ConnectionString()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("addr", cfg.Addr()),
		zap.String("database", logging.SanitizeConnectionString(dsn)))

	// Bring the schema up to date before accepting traffic
	if err := database.RunMigrations(dsn, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := database.NewConnection(context.Background(), &database.Config{
		DSN:            dsn,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	session.InitStore(cfg.SessionSecret)

	projectRepo := repositories.NewProjectRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	logRepo := repositories.NewStatusLogRepository(db)

	tracker := services.NewTrackerService(projectRepo, employeeRepo, logRepo, logger)
	reporter := services.NewReportService(projectRepo, employeeRepo, logRepo, logger)

	mux := http.NewServeMux()

	// Register handlers
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewProjectsHandler(tracker, reporter, logger).RegisterRoutes(mux)
	handlers.NewEmployeesHandler(tracker, logger).RegisterRoutes(mux)
	handlers.NewLogsHandler(tracker, logger).RegisterRoutes(mux)
	handlers.NewReportsHandler(reporter, logger).RegisterRoutes(mux)
	handlers.NewSessionHandler(logger).RegisterRoutes(mux)

	mux.Handle("/metrics", promhttp.Handler())

	// Serve the embedded dashboard pages
	dist, err := fs.Sub(ui.DistFS(), "dist")
	if err != nil {
		logger.Fatal("Failed to open embedded UI", zap.Error(err))
	}
	mux.Handle("/", http.FileServer(http.FS(dist)))

	handler := middleware.RequestID()(
		middleware.RequestLogger(logger)(
			middleware.Metrics()(mux)))

	logger.Info("Starting statusboard",
		zap.String("addr", cfg.Addr()),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
