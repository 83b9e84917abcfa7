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

	addBreakHandler "github.com/klepi21/barberians/internal/api/handlers/add_break"
	clearBreaksHandler "github.com/klepi21/barberians/internal/api/handlers/clear_breaks"
	createBookingHandler "github.com/klepi21/barberians/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/klepi21/barberians/internal/api/handlers/delete_booking"
	deleteOverrideHandler "github.com/klepi21/barberians/internal/api/handlers/delete_override"
	getAvailableSlotsHandler "github.com/klepi21/barberians/internal/api/handlers/get_available_slots"
	getBookingsHandler "github.com/klepi21/barberians/internal/api/handlers/get_bookings"
	getBreaksHandler "github.com/klepi21/barberians/internal/api/handlers/get_breaks"
	getOverrideHandler "github.com/klepi21/barberians/internal/api/handlers/get_override"
	getOverridesHandler "github.com/klepi21/barberians/internal/api/handlers/get_overrides"
	getServicesHandler "github.com/klepi21/barberians/internal/api/handlers/get_services"
	getWeeklyHoursHandler "github.com/klepi21/barberians/internal/api/handlers/get_weekly_hours"
	updateBookingStatusHandler "github.com/klepi21/barberians/internal/api/handlers/update_booking_status"
	updateWeeklyHoursHandler "github.com/klepi21/barberians/internal/api/handlers/update_weekly_hours"
	upsertOverrideHandler "github.com/klepi21/barberians/internal/api/handlers/upsert_override"
	"github.com/klepi21/barberians/internal/api/middleware"
	"github.com/klepi21/barberians/internal/config"
	"github.com/klepi21/barberians/internal/domain"
	bookingRepo "github.com/klepi21/barberians/internal/infra/storage/booking"
	scheduleRepo "github.com/klepi21/barberians/internal/infra/storage/schedule"
	"github.com/klepi21/barberians/internal/integrations/mailer"
	bookingsService "github.com/klepi21/barberians/internal/service/bookings"
	scheduleService "github.com/klepi21/barberians/internal/service/schedule"
	createBookingUC "github.com/klepi21/barberians/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/klepi21/barberians/internal/usecase/get_available_slots"
	"github.com/klepi21/barberians/pkg/logger"
	"github.com/klepi21/barberians/pkg/metrics"
	"github.com/klepi21/barberians/pkg/txmanager"
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

	log.Info("Starting barberians booking service...")
	log.Info("Shop: %s, barbers: %v, services: %d",
		cfg.Shop.Name, cfg.Shop.Barbers, len(cfg.Shop.Services))

	// Метрики регистрируются всегда, endpoint выставляется по конфигурации
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
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

	go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)

	// Почтовый клиент подтверждений
	mailClient := mailer.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.From,
		cfg.SMTP.Enabled,
		metricsCollector.EmailsFailed,
		log,
	)
	if cfg.SMTP.Enabled {
		log.Info("Mailer enabled (host=%s, port=%d, from=%s)", cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	} else {
		log.Info("Mailer disabled, confirmations will not be sent")
	}

	// Репозитории и транзакционный менеджер
	bookingRepository := bookingRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	services := toDomainServices(cfg.Shop.Services)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		cfg.Shop.Barbers,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		mailClient,
		txMgr,
		cfg.Shop.Barbers,
		services,
		cfg.Shop.Name,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServices := getServicesHandler.NewHandler(services, cfg.Shop.Barbers, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)

	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	getWeeklyHours := getWeeklyHoursHandler.NewHandler(scheduleSvc, log)
	updateWeeklyHours := updateWeeklyHoursHandler.NewHandler(scheduleSvc, log)
	getOverrides := getOverridesHandler.NewHandler(scheduleSvc, log)
	getOverride := getOverrideHandler.NewHandler(scheduleSvc, log)
	upsertOverride := upsertOverrideHandler.NewHandler(scheduleSvc, log)
	deleteOverride := deleteOverrideHandler.NewHandler(scheduleSvc, log)
	getBreaks := getBreaksHandler.NewHandler(scheduleSvc, log)
	addBreak := addBreakHandler.NewHandler(scheduleSvc, log)
	clearBreaks := clearBreaksHandler.NewHandler(scheduleSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.Metrics(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// --- Журнал бронирований ---
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Недельное расписание ---
	admin.HandleFunc("/schedule/weekly", getWeeklyHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/weekly", updateWeeklyHours.Handle).Methods(http.MethodPut)

	// --- Переопределения на даты ---
	admin.HandleFunc("/schedule/overrides", getOverrides.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/overrides/{date}", getOverride.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/overrides/{date}", upsertOverride.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/schedule/overrides/{date}", deleteOverride.Handle).Methods(http.MethodDelete)

	// --- Перерывы ---
	admin.HandleFunc("/schedule/breaks", getBreaks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/breaks", addBreak.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/schedule/breaks/{weekday}", clearBreaks.Handle).Methods(http.MethodDelete)

	// HTTP сервер
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

	close(stopMetricsCh)

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

// toDomainServices конвертирует прайс-лист из конфигурации в domain модели.
// Услуги без длительности получают длительность по умолчанию.
func toDomainServices(services []config.ServiceConfig) []domain.Service {
	result := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		duration := svc.DurationMinutes
		if duration <= 0 {
			duration = domain.DefaultServiceDurationMinutes
		}
		result = append(result, domain.Service{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: duration,
		})
	}
	return result
}
