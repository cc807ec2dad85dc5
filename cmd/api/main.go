// Package main is the entry point for the Budget Planner API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budget-planner/backend/config"
	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/application/usecase/generation"
	"github.com/budget-planner/backend/internal/application/usecase/instance"
	"github.com/budget-planner/backend/internal/application/usecase/monthview"
	"github.com/budget-planner/backend/internal/application/usecase/reminder"
	"github.com/budget-planner/backend/internal/application/usecase/status"
	"github.com/budget-planner/backend/internal/application/usecase/summary"
	"github.com/budget-planner/backend/internal/infra/db"
	"github.com/budget-planner/backend/internal/infra/server/router"
	"github.com/budget-planner/backend/internal/integration/cache"
	"github.com/budget-planner/backend/internal/integration/email"
	"github.com/budget-planner/backend/internal/integration/email/templates"
	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-planner/backend/internal/integration/persistence"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Budget Planner API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.SectionModel{},
		&model.CardModel{},
		&model.TemplateModel{},
		&model.InstanceModel{},
		&model.SettingsModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the summary cache. Redis is optional: a failed connection
	// leaves the cache nil and every read recomputes.
	var summaryCache adapter.SummaryCache
	if opts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, running without summary cache", "error", err)
	} else {
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			slog.Warn("Redis unreachable, running without summary cache", "error", err)
		} else {
			summaryCache = cache.NewSummaryCache(client, cfg.Redis.CacheTTL)
			slog.Info("Summary cache initialized", "ttl", cfg.Redis.CacheTTL)
		}
		cancel()
	}

	// Create repositories
	templateRepo := persistence.NewTemplateRepository(database.DB())
	instanceRepo := persistence.NewInstanceRepository(database.DB())
	sectionRepo := persistence.NewSectionRepository(database.DB())
	cardRepo := persistence.NewCardRepository(database.DB())
	settingsRepo := persistence.NewSettingsRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Create use cases
	generateUseCase := generation.NewGenerateInstancesUseCase(templateRepo, instanceRepo, summaryCache)
	overdueUseCase := status.NewMarkOverdueUseCase(instanceRepo, summaryCache)
	autoPaidUseCase := status.NewMarkAutoDebitPaidUseCase(instanceRepo, summaryCache)
	listUseCase := instance.NewListInstancesUseCase(instanceRepo)
	createAdHocUseCase := instance.NewCreateAdHocInstanceUseCase(instanceRepo, summaryCache)
	markPaidUseCase := instance.NewMarkPaidUseCase(instanceRepo, summaryCache)
	deferUseCase := instance.NewDeferInstanceUseCase(instanceRepo, summaryCache)
	reopenUseCase := instance.NewReopenInstanceUseCase(instanceRepo, summaryCache)
	summaryUseCase := summary.NewMonthSummaryUseCase(instanceRepo, sectionRepo, settingsRepo, summaryCache)
	cashFlowUseCase := summary.NewCashFlowUseCase(instanceRepo, settingsRepo, summaryCache)
	monthViewUseCase := monthview.NewGetMonthViewUseCase(
		generateUseCase,
		overdueUseCase,
		autoPaidUseCase,
		listUseCase,
		summaryUseCase,
		cashFlowUseCase,
	)
	enqueueRemindersUseCase := reminder.NewEnqueueRemindersUseCase(instanceRepo, settingsRepo, emailQueueRepo)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	monthController := controller.NewMonthController(
		monthViewUseCase,
		generateUseCase,
		overdueUseCase,
		autoPaidUseCase,
		listUseCase,
		summaryUseCase,
		cashFlowUseCase,
		nil,
	)
	instanceController := controller.NewInstanceController(
		createAdHocUseCase,
		markPaidUseCase,
		deferUseCase,
		reopenUseCase,
	)
	referenceController := controller.NewReferenceController(sectionRepo, cardRepo, settingsRepo)
	generateRateLimiter := middleware.NewRateLimiter()

	// Background workers share one cancellable context.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	// Start the email worker and reminder scheduler
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates", "error", err)
			os.Exit(1)
		}

		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)

		go runReminderScheduler(workerCtx, enqueueRemindersUseCase, cfg.Reminder.CheckInterval)
	} else {
		slog.Info("Email worker disabled, reminders will not be sent")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		monthController,
		instanceController,
		referenceController,
		generateRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// runReminderScheduler periodically queues due-bill reminder emails. It
// blocks until the context is cancelled.
func runReminderScheduler(ctx context.Context, uc *reminder.EnqueueRemindersUseCase, interval time.Duration) {
	slog.Info("Reminder scheduler started", "check_interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Check immediately on start, then on ticker
	runReminderCheck(ctx, uc)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler shutting down")
			return
		case <-ticker.C:
			runReminderCheck(ctx, uc)
		}
	}
}

func runReminderCheck(ctx context.Context, uc *reminder.EnqueueRemindersUseCase) {
	output, err := uc.Execute(ctx, reminder.EnqueueRemindersInput{Now: time.Now().UTC()})
	if err != nil {
		slog.Error("Reminder check failed", "error", err)
		return
	}
	if output.Enqueued > 0 {
		slog.Info("Reminders queued", "count", output.Enqueued)
	}
}
