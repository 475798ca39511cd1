package main

import (
	"asset-management-api/internal/auth"
	"asset-management-api/internal/config"
	"asset-management-api/internal/handler"
	"asset-management-api/internal/middleware"
	"asset-management-api/internal/notification"
	"asset-management-api/internal/repository"
	"asset-management-api/internal/router"
	"asset-management-api/internal/service"
	notifyadapter "asset-management-api/internal/service/notification"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := log.Default()

	// Build the in-memory store from the seed document
	seed, err := repository.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	store := repository.NewSeededStore(seed)
	logger.Printf("Store seeded: %d assets, %d workflows, %d users",
		store.CountAssets(), store.CountWorkflows(), store.CountUsers())

	authenticator, err := newAuthenticator(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize authenticator: %v", err)
	}

	// Assignment notices are only sent when a webhook is configured
	var assignments service.AssignmentNotifier
	var notifierHealth handler.DependencyChecker
	if cfg.NotificationService.URL != "" {
		client := notification.NewNotifierWithConfig(notification.NotificationConfig{
			URL:            cfg.NotificationService.URL,
			Timeout:        cfg.NotificationService.Timeout,
			RetryAttempts:  cfg.NotificationService.RetryAttempts,
			RetryDelay:     cfg.NotificationService.RetryDelay,
			MaxPayloadSize: cfg.NotificationService.MaxPayloadSize,
		}, logger)
		assignments = notifyadapter.NewServiceAdapter(client)
		notifierHealth = client
	}

	h := handler.NewHandler(handler.Services{
		Assets:        service.NewAssetService(store, logger),
		Workflows:     service.NewWorkflowService(store, assignments, logger),
		Users:         service.NewUserService(store, logger),
		Dashboard:     service.NewDashboardService(store),
		Authenticator: authenticator,
		Notifier:      notifierHealth,
	}, cfg.Upload.MaxBytes, logger)

	var metrics *middleware.Metrics
	if cfg.Server.EnableMetrics {
		metrics = middleware.NewMetrics()
		metrics.RegisterResourceGauges(map[string]func() int{
			"asset":    store.CountAssets,
			"workflow": store.CountWorkflows,
			"user":     store.CountUsers,
		})
	}

	// Setup router with security configuration
	r := router.NewRouter(h, cfg, router.Options{
		Static:  handler.NewStaticHandler(cfg.Static.Dir, cfg.Static.FallbackDocument, logger),
		Metrics: metrics,
		Logger:  logger,
	})

	// Wrap router with logging middleware
	loggingMW := middleware.NewLoggingMiddleware(logger)
	finalHandler := loggingMW.LogRequests(r)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        finalHandler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Channel to listen for interrupt signal to gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %d, serving static files from %s", cfg.Port, cfg.Static.Dir)
		log.Printf("Security: Rate limit=%d RPS, Burst=%d, CORS=%v, Timeout=%v",
			cfg.Security.RateLimitRPS,
			cfg.Security.RateLimitBurst,
			cfg.Security.EnableCORS,
			cfg.Security.RequestTimeout,
		)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-done
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Security.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	} else {
		log.Println("Server exited gracefully")
	}
}

// newAuthenticator prefers a configured bcrypt hash over a plain password
func newAuthenticator(cfg config.AuthConfig) (auth.Authenticator, error) {
	if cfg.PasswordHash != "" {
		return auth.NewStaticAuthenticatorWithHash(cfg.Username, cfg.PasswordHash, cfg.Role)
	}
	return auth.NewStaticAuthenticator(cfg.Username, cfg.Password, cfg.Role)
}
