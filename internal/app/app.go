package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/appointments"
	"appointment-reminder-go/internal/config"
	"appointment-reminder-go/internal/confirmation"
	"appointment-reminder-go/internal/handlers"
	"appointment-reminder-go/internal/metrics"
	"appointment-reminder-go/internal/notify"
	"appointment-reminder-go/internal/reminder"
	"appointment-reminder-go/internal/server"
	"appointment-reminder-go/internal/store"
)

// Run initializes and starts the application
func Run() error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Starting Appointment Reminder Service")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	var (
		st       store.Store
		recorder store.DeliveryRecorder
	)
	switch cfg.Store.Backend {
	case config.StoreBackendDatabase:
		db, err := store.OpenDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		st = store.NewDBStore(db)
		recorder = store.NewDBDeliveryRecorder(db)
		logrus.Info("Using database store backend")
	default:
		fs, err := store.NewFileStore(cfg.Store.FilePath)
		if err != nil {
			return fmt.Errorf("failed to initialize file store: %w", err)
		}
		st = fs
		recorder = store.NewMemoryDeliveryRecorder(0)
		logrus.Infof("Using file store backend at %s", cfg.Store.FilePath)
	}

	m := metrics.NewMetrics()

	sms := notify.NewTwilioSender(cfg.Twilio)

	var email notify.Notifier
	if cfg.Email.Enabled {
		gmail, err := notify.NewGmailSender(cfg.Email)
		if err != nil {
			return fmt.Errorf("failed to create email sender: %w", err)
		}
		email = gmail
		logrus.Info("Email reminders enabled")
	}

	service := appointments.NewService(st)

	dispatchDelay := time.Duration(cfg.Scheduler.DispatchDelayMS) * time.Millisecond
	processor := reminder.NewProcessor(service, sms, email, recorder, m, dispatchDelay)
	sched := reminder.NewScheduler(&cfg.Scheduler, processor, m)

	confirm := confirmation.NewHandler(service, sms, recorder, m)
	notices := reminder.NewNotices(sms, recorder)

	h := handlers.NewHandlers(service, confirm, notices, sched, recorder, m, cfg.Practice)
	router := server.SetupRouter(h)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sched.Stop(); err != nil {
		logrus.Errorf("Failed to stop scheduler: %v", err)
	}
	sched.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	logrus.Info("Server stopped gracefully")
	return nil
}
