package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addServiceHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/add_service"
	cancelAppointmentHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/create_appointment"
	createShopHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/create_shop"
	getAppointmentHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/get_available_slots"
	getShopHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/get_shop"
	getShopAppointmentsHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/get_shop_appointments"
	getUserAppointmentsHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/get_user_appointments"
	listNotificationsHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/list_notifications"
	listServicesHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/list_services"
	payRemainingHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/pay_remaining_balance"
	recordPaymentHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/record_payment"
	searchShopsHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/search_shops"
	updateShopHandler "github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers/update_shop"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/config"
	appointmentRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/appointment"
	catalogRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/catalog"
	notificationRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/notification"
	paymentRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/payment"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/notifier"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/scheduler"
	appointmentsService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments"
	catalogService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog"
	inboxService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/inbox"
	createAppointmentUC "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/get_available_slots"
	recordPaymentUC "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/record_payment"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/dbmetrics"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/logger"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/metrics"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/simpletxmanager"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize the logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BookMyCut...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize repositories, with or without query metrics
	var (
		appointmentRepository  *appointmentRepo.Repository
		catalogRepository      *catalogRepo.Repository
		paymentRepository      *paymentRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize the notification emitter, optionally publishing to AMQP
	var publisher notifier.EventPublisher
	if cfg.Notifier.AMQP.Enabled {
		amqpPublisher, err := notifier.NewAMQPPublisher(cfg.Notifier.AMQP.URL, cfg.Notifier.AMQP.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to AMQP broker: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Info("AMQP publisher connected (exchange=%s)", cfg.Notifier.AMQP.Exchange)
	}

	emitter := notifier.NewEmitter(notificationRepository, publisher, cfg.Notifier.QueueSize, log)
	defer emitter.Close()

	// Initialize services
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		catalogRepository,
		emitter,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	inboxSvc := inboxService.NewService(notificationRepository, log)

	// Initialize use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		txMgr,
		emitter,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		log,
	)
	recordPaymentUseCase := recordPaymentUC.NewUseCase(
		appointmentRepository,
		paymentRepository,
		catalogRepository,
		txMgr,
		emitter,
		log,
	)

	// Initialize the reminder scheduler (if enabled)
	if cfg.Reminders.Enabled {
		reminders, err := scheduler.NewReminderScheduler(appointmentRepository, emitter, cfg.Reminders.Spec, log)
		if err != nil {
			log.Fatal("Failed to initialize reminder scheduler: %v", err)
		}
		reminders.Start()
		defer reminders.Stop()
		log.Info("Reminder scheduler enabled (spec=%q)", cfg.Reminders.Spec)
	}

	// Initialize handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	recordPayment := recordPaymentHandler.NewHandler(recordPaymentUseCase, log)
	payRemaining := payRemainingHandler.NewHandler(recordPaymentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getShopAppointments := getShopAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createShop := createShopHandler.NewHandler(catalogSvc, log)
	updateShop := updateShopHandler.NewHandler(catalogSvc, log)
	getShop := getShopHandler.NewHandler(catalogSvc, log)
	searchShops := searchShopsHandler.NewHandler(catalogSvc, log)
	addService := addServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(inboxSvc, log)

	// Set up the router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Shop discovery
	api.HandleFunc("/shops", searchShops.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId:[0-9]+}", getShop.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId:[0-9]+}/services", listServices.Handle).Methods(http.MethodGet)

	// Availability grid for one shop day
	api.HandleFunc("/shops/{shopId:[0-9]+}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer token or X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(cfg.Auth.JWTSecret))

	// --- Shop management (owners) ---
	protected.HandleFunc("/shops", createShop.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/shops/my", getShop.HandleMy).Methods(http.MethodGet)
	protected.HandleFunc("/shops/{shopId:[0-9]+}", updateShop.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/shops/{shopId:[0-9]+}/services", addService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/shops/{shopId:[0-9]+}/appointments", getShopAppointments.Handle).Methods(http.MethodGet)

	// --- Appointments ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Payments ---
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/payments", recordPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/payments/remaining", payRemaining.Handle).Methods(http.MethodPost)

	// --- Notifications ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read", listNotifications.HandleMarkRead).Methods(http.MethodPost)

	// Create the HTTP server
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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
