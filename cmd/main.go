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

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_appointment"
	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	feedbackHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/feedback"
	generateSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/generate_slots"
	getAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_business_hours"
	getDashboardHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_dashboard"
	getUserAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_user_appointments"
	inventoryHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/inventory"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_appointments"
	salesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/sales"
	servicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/services"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_business_hours"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/dashboard"
	feedbackService "github.com/m04kA/SMC-SalonService/internal/service/feedback"
	inventoryService "github.com/m04kA/SMC-SalonService/internal/service/inventory"
	"github.com/m04kA/SMC-SalonService/internal/service/payments"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Инициализируем хранилище документов
	var store document.Store
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repository := document.NewRepository(db)
		if err := repository.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare database schema: %v", err)
		}
		store = repository

	default:
		store = document.NewMemoryRepository()
		log.Info("Using in-memory storage, data will not survive a restart")
	}

	businessHours, err := cfg.DomainBusinessHours()
	if err != nil {
		log.Fatal("Invalid business hours: %v", err)
	}

	// Инициализируем сервисы
	catalogSvc := catalog.NewService(store, log)
	paymentsSvc := payments.NewService(store, log)
	inventorySvc := inventoryService.NewService(store, log)
	engine := booking.NewEngine(booking.Config{
		DefaultSlotDurationMinutes: cfg.Booking.SlotDurationMinutes,
		MaxBookingsPerSlot:         cfg.Booking.MaxBookingsPerSlot,
		BusinessHours:              businessHours,
	}, catalogSvc, store, metricsCollector, log)
	feedbackSvc := feedbackService.NewService(engine, store, log)
	dashboardSvc := dashboard.NewService(engine, paymentsSvc, feedbackSvc, inventorySvc, log)

	// Восстанавливаем состояние из хранилища
	restorers := []struct {
		name    string
		restore func(ctx context.Context) error
	}{
		{"catalog", catalogSvc.Restore},
		{"booking", engine.Restore},
		{"payments", paymentsSvc.Restore},
		{"feedback", feedbackSvc.Restore},
		{"inventory", inventorySvc.Restore},
	}
	for _, r := range restorers {
		if err := r.restore(ctx); err != nil {
			log.Fatal("Failed to restore %s state: %v", r.name, err)
		}
	}

	if cfg.Booking.SeedCatalog {
		if err := catalogSvc.Seed(ctx, catalog.DefaultServices()); err != nil {
			log.Fatal("Failed to seed service catalog: %v", err)
		}
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		engine,
		catalogSvc,
		paymentsSvc,
		cfg.Booking.AdvanceBookingDays,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		engine,
		catalogSvc,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(engine, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(engine, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(engine, log)
	listAppointments := listAppointmentsHandler.NewHandler(engine, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(engine, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(engine, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(engine, log)
	generateSlots := generateSlotsHandler.NewHandler(engine, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	feedback := feedbackHandler.NewHandler(feedbackSvc, log)
	sales := salesHandler.NewHandler(paymentsSvc, log)
	inventory := inventoryHandler.NewHandler(inventorySvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		r.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/services", services.List).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", services.Get).Methods(http.MethodGet)
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи клиента ---
	protected.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	protected.HandleFunc("/feedback", feedback.Create).Methods(http.MethodPost)
	protected.HandleFunc("/feedback", feedback.ListMine).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Записи и расписание ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/business-hours/{dayOfWeek}", updateBusinessHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", services.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", services.Delete).Methods(http.MethodDelete)

	// --- Продажи и платежи ---
	admin.HandleFunc("/sales", sales.Sales).Methods(http.MethodGet)
	admin.HandleFunc("/payments", sales.Payments).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{paymentId}/status", sales.UpdateStatus).Methods(http.MethodPatch)

	// --- Отзывы ---
	admin.HandleFunc("/feedback", feedback.List).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{feedbackId}", feedback.Update).Methods(http.MethodPut)
	admin.HandleFunc("/feedback/{feedbackId}", feedback.Delete).Methods(http.MethodDelete)

	// --- Склад ---
	admin.HandleFunc("/inventory", inventory.List).Methods(http.MethodGet)
	admin.HandleFunc("/inventory", inventory.Create).Methods(http.MethodPost)
	admin.HandleFunc("/inventory/low-stock", inventory.LowStock).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{itemId}", inventory.Get).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{itemId}", inventory.Update).Methods(http.MethodPut)
	admin.HandleFunc("/inventory/{itemId}", inventory.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/inventory/{itemId}/restock", inventory.Restock).Methods(http.MethodPost)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
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

	log.Info("Server stopped gracefully")
}
