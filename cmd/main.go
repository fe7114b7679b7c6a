package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	adminLoginHandler "github.com/drphonenord/repairdesk/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/drphonenord/repairdesk/internal/api/handlers/admin_logout"
	createAppointmentHandler "github.com/drphonenord/repairdesk/internal/api/handlers/create_appointment"
	createQuoteHandler "github.com/drphonenord/repairdesk/internal/api/handlers/create_quote"
	createRecordHandler "github.com/drphonenord/repairdesk/internal/api/handlers/create_record"
	deleteRecordHandler "github.com/drphonenord/repairdesk/internal/api/handlers/delete_record"
	exportQuotesHandler "github.com/drphonenord/repairdesk/internal/api/handlers/export_quotes"
	getSlotsHandler "github.com/drphonenord/repairdesk/internal/api/handlers/get_slots"
	getStoreHandler "github.com/drphonenord/repairdesk/internal/api/handlers/get_store"
	healthHandler "github.com/drphonenord/repairdesk/internal/api/handlers/health"
	markViewedHandler "github.com/drphonenord/repairdesk/internal/api/handlers/mark_viewed"
	patchRecordHandler "github.com/drphonenord/repairdesk/internal/api/handlers/patch_record"
	serviceFormHandler "github.com/drphonenord/repairdesk/internal/api/handlers/service_form"
	updateRecordHandler "github.com/drphonenord/repairdesk/internal/api/handlers/update_record"
	"github.com/drphonenord/repairdesk/internal/api/middleware"
	"github.com/drphonenord/repairdesk/internal/config"
	"github.com/drphonenord/repairdesk/internal/infra/sessions"
	"github.com/drphonenord/repairdesk/internal/infra/storage/filestore"
	"github.com/drphonenord/repairdesk/internal/integrations/mailer"
	documentsService "github.com/drphonenord/repairdesk/internal/service/documents"
	recordsService "github.com/drphonenord/repairdesk/internal/service/records"
	createAppointmentUC "github.com/drphonenord/repairdesk/internal/usecase/create_appointment"
	createQuoteUC "github.com/drphonenord/repairdesk/internal/usecase/create_quote"
	getSlotsUC "github.com/drphonenord/repairdesk/internal/usecase/get_slots"
	"github.com/drphonenord/repairdesk/pkg/logger"
	"github.com/drphonenord/repairdesk/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting repairdesk...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Initialize the store repository
	store := filestore.NewRepository(cfg.Storage.File)
	log.Info("Store file: %s", cfg.Storage.File)

	// Initialize the mail sender. Without an API key notifications are
	// only logged.
	var sender mailer.Sender
	if cfg.Mail.SendGridAPIKey != "" {
		sender = mailer.NewSendGridSender(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName, log)
		log.Info("Mail notifications enabled via SendGrid (to=%s)", cfg.Mail.NotifyTo)
	} else {
		sender = mailer.NewStubSender(log)
		log.Info("Mail notifications disabled, using stub sender")
	}
	notifier := mailer.NewNotifier(sender, cfg.Mail.NotifyTo, log)

	// Initialize sessions
	sessionManager := sessions.NewManager(time.Duration(cfg.Admin.SessionTTLMinutes) * time.Minute)

	// Initialize use cases with the immutable booking configuration
	schedule := cfg.WeekSchedule()
	getSlotsUseCase := getSlotsUC.NewUseCase(
		schedule,
		cfg.Booking.SlotMinutes,
		cfg.Booking.MaxPerSlot,
		store,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		schedule,
		cfg.Booking.SlotMinutes,
		cfg.Booking.MaxPerSlot,
		store,
		notifier,
		log,
	)
	createQuoteUseCase := createQuoteUC.NewUseCase(store, notifier, log)

	// Initialize services
	recordsSvc := recordsService.NewService(store, log)
	documentsSvc := documentsService.NewService(store, cfg.CompanyInfo(), log)

	// Initialize handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createQuote := createQuoteHandler.NewHandler(createQuoteUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(cfg.Admin.Password, sessionManager, log)
	adminLogout := adminLogoutHandler.NewHandler(sessionManager, log)
	getStore := getStoreHandler.NewHandler(recordsSvc, log)
	createRecord := createRecordHandler.NewHandler(recordsSvc, log)
	updateRecord := updateRecordHandler.NewHandler(recordsSvc, log)
	patchRecord := patchRecordHandler.NewHandler(recordsSvc, log)
	markViewed := markViewedHandler.NewHandler(recordsSvc, log)
	deleteRecord := deleteRecordHandler.NewHandler(recordsSvc, log)
	exportQuotes := exportQuotesHandler.NewHandler(documentsSvc, log)
	serviceForm := serviceFormHandler.NewHandler(documentsSvc, log)
	health := healthHandler.NewHandler()

	// Set up router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Public API, rate limited per client IP
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RateLimitMiddleware(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))

	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)

	// Admin routes: login is open, everything else behind the session check
	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", adminLogin.Handle).Methods(http.MethodPost)

	protected := admin.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(sessionManager))

	protected.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/store", getStore.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/records", createRecord.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/records/{id}", updateRecord.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/records/{id}", patchRecord.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/records/{id}", deleteRecord.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/mark-viewed", markViewed.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/quotes.csv", exportQuotes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/records/{id}/service-form.pdf", serviceForm.Handle).Methods(http.MethodGet)

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
