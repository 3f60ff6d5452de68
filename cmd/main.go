package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/brunofarias87/user-directory/internal/handlers"
	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/middlewares"
	"github.com/brunofarias87/user-directory/internal/render"
	"github.com/brunofarias87/user-directory/internal/repositories"
	"github.com/brunofarias87/user-directory/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "modernc.org/sqlite"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title user-directory API
// @version 1.0.0
// @description Minimal user management service: credential verification and CRUD on user records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, dbPath, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), appHost, appPort, logLevel, dbPath); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging, and database configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, dbPath string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// SQLite config
	dbPath = getEnv("DATABASE_PATH", "users.db")

	return
}

// run initializes the logger, database, templates, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, appHost, appPort, logLevel, dbPath string) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Open the SQLite store
	logger.Log.Infof("Opening SQLite database at %s", dbPath)
	db, err := sqlx.ConnectContext(ctx, "sqlite", dbPath)
	if err != nil {
		logger.Log.Fatal("SQLite connection error:", err)
	}
	defer db.Close()
	// SQLite allows a single writer; one pooled connection avoids
	// "database is locked" errors under concurrent requests.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("SQLite ping failed:", err)
	}

	// Create the users table if it does not exist
	if err := repositories.CreateSchema(ctx, db); err != nil {
		logger.Log.Fatal("failed to create schema:", err)
	}

	// Parse embedded page templates
	pages, err := render.New()
	if err != nil {
		logger.Log.Fatal("failed to parse templates:", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(userService, pages)
	loginPageHandler := handlers.NewLoginPageHandler(userService, pages)
	registerFormHandler := handlers.NewRegisterFormHandler(userService, pages)
	createUserHandler := handlers.NewCreateUserHandler(userService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	updateUserHandler := handlers.NewUpdateUserHandler(userService)
	deleteUserHandler := handlers.NewDeleteUserHandler(userService)
	greetingRedirectHandler := handlers.NewGreetingRedirectHandler()
	greetingHandler := handlers.NewGreetingHandler(pages)
	dashboardHandler := handlers.NewDashboardHandler(pages)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// HTML pages
	r.Get("/", homeHandler)
	r.Post("/", homeHandler)
	r.Get("/login", loginPageHandler)
	r.Post("/login", loginPageHandler)
	r.Get("/register", registerFormHandler)
	r.Post("/register", registerFormHandler)
	r.Post("/saudacao", greetingRedirectHandler)
	r.Get("/saudacao/{nome}", greetingHandler)
	r.Get("/dashboard/{nome}", dashboardHandler)

	// JSON API
	r.Post("/users", createUserHandler)
	r.Get("/users", listUsersHandler)
	r.Put("/users/{id}", updateUserHandler)
	r.Delete("/users/{id}", deleteUserHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
