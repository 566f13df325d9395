package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elcanhuseyn22/website/internal/auth"
	"github.com/elcanhuseyn22/website/internal/config"
	"github.com/elcanhuseyn22/website/internal/handler"
	"github.com/elcanhuseyn22/website/internal/infrastructure/database"
	"github.com/elcanhuseyn22/website/internal/logger"
	"github.com/elcanhuseyn22/website/internal/metrics"
	"github.com/elcanhuseyn22/website/internal/middleware"
	"github.com/elcanhuseyn22/website/internal/password"
	"github.com/elcanhuseyn22/website/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	// Apply migrations, then connect
	if err := database.Migrate(poolCfg, cfg.MigrationsDir); err != nil {
		logger.Fatal("Failed to apply migrations",
			slog.String("error", err.Error()))
	}

	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)

	// Initialize handlers
	hasher := password.NewHasher(cfg.BcryptCost)
	pageHandler := handler.NewPageHandler()
	authHandler := handler.NewAuthHandler(userRepo, hasher)
	articleHandler := handler.NewArticleHandler(articleRepo)
	healthHandler := handler.NewHealthHandler(pool)

	// Session cookie store, signed with the configured secret
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(sessions.Sessions(auth.SessionName, store))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	router.GET("/", pageHandler.Home)
	router.GET("/about", pageHandler.About)
	router.GET("/articles", articleHandler.List)
	router.GET("/article/:id", articleHandler.Detail)
	router.GET("/search", articleHandler.SearchRedirect)
	router.POST("/search", articleHandler.Search)

	// Anonymous-only routes
	anonymous := router.Group("/", auth.RequireAnonymous())
	{
		anonymous.GET("/register", authHandler.ShowRegister)
		anonymous.POST("/register", authHandler.Register)
		anonymous.GET("/login", authHandler.ShowLogin)
		anonymous.POST("/login", authHandler.Login)
	}

	// Authenticated-only routes
	authenticated := router.Group("/", auth.RequireAuthenticated())
	{
		authenticated.GET("/logout", authHandler.Logout)
		authenticated.GET("/dashboard", articleHandler.Dashboard)
		authenticated.GET("/addarticle", articleHandler.ShowAdd)
		authenticated.POST("/addarticle", articleHandler.Add)
		authenticated.GET("/delete/:id", articleHandler.Delete)
		authenticated.GET("/edit/:id", articleHandler.ShowEdit)
		authenticated.POST("/edit/:id", articleHandler.Edit)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
