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

	cancelBookingHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/cancel_booking"
	cancelVoidHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/cancel_void"
	confirmBookingHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/create_booking"
	createVoidHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/create_void"
	exportOccupancyReportHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/export_occupancy_report"
	exportUsageReportHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/export_usage_report"
	getBedspacesHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/get_bedspaces"
	getBookingHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/get_booking"
	getOccupancyReportHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/get_occupancy_report"
	getUsageReportHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/get_usage_report"
	recordArrivalHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/record_arrival"
	recordDepartureHandler "github.com/avdema/TA-ReportingService/internal/api/handlers/record_departure"
	"github.com/avdema/TA-ReportingService/internal/api/middleware"
	"github.com/avdema/TA-ReportingService/internal/config"
	bedspaceRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/bedspace"
	bookingRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/booking"
	voidRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/void"
	"github.com/avdema/TA-ReportingService/internal/integrations/govcalendar"
	bedspacesService "github.com/avdema/TA-ReportingService/internal/service/bedspaces"
	bookingsService "github.com/avdema/TA-ReportingService/internal/service/bookings"
	buildOccupancyReportUC "github.com/avdema/TA-ReportingService/internal/usecase/build_occupancy_report"
	buildUsageReportUC "github.com/avdema/TA-ReportingService/internal/usecase/build_usage_report"
	"github.com/avdema/TA-ReportingService/pkg/dbmetrics"
	"github.com/avdema/TA-ReportingService/pkg/logger"
	"github.com/avdema/TA-ReportingService/pkg/metrics"
	"github.com/avdema/TA-ReportingService/pkg/simpletxmanager"
	"github.com/avdema/TA-ReportingService/pkg/txmanager"
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

	log.Info("Starting TA-ReportingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент календаря рабочих дней
	division := cfg.Calendar.Division
	if division == "" {
		division = govcalendar.DefaultDivision
	}
	calendarClient := govcalendar.NewClient(
		cfg.Calendar.URL,
		division,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		time.Duration(cfg.Calendar.CacheTTL)*time.Second,
		log,
	)
	log.Info("Calendar client initialized (url=%s, division=%s)", cfg.Calendar.URL, division)

	// Инициализируем репозитории (с метриками или без)
	var (
		bedspaceRepository *bedspaceRepo.Repository
		bookingRepository  *bookingRepo.Repository
		voidRepository     *voidRepo.Repository
		txMgr              bookingsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bedspaceRepository = bedspaceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		voidRepository = voidRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bedspaceRepository = bedspaceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		voidRepository = voidRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		voidRepository,
		bedspaceRepository,
		txMgr,
		log,
	)
	bedspaceSvc := bedspacesService.NewService(
		bedspaceRepository,
		voidRepository,
		log,
	)

	// Инициализируем use cases
	buildUsageReportUseCase := buildUsageReportUC.NewUseCase(
		bookingRepository,
		voidRepository,
		calendarClient,
		cfg.Reports.Workers,
		log,
	)
	buildOccupancyReportUseCase := buildOccupancyReportUC.NewUseCase(
		bookingRepository,
		voidRepository,
		calendarClient,
		cfg.Reports.Workers,
		log,
	)

	// Инициализируем handlers
	getBedspaces := getBedspacesHandler.NewHandler(bedspaceSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	recordArrival := recordArrivalHandler.NewHandler(bookingSvc, log)
	recordDeparture := recordDepartureHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	createVoid := createVoidHandler.NewHandler(bedspaceSvc, log)
	cancelVoid := cancelVoidHandler.NewHandler(bedspaceSvc, log)
	getUsageReport := getUsageReportHandler.NewHandler(buildUsageReportUseCase, bedspaceRepository, log)
	getOccupancyReport := getOccupancyReportHandler.NewHandler(buildOccupancyReportUseCase, bedspaceRepository, log)
	exportUsageReport := exportUsageReportHandler.NewHandler(buildUsageReportUseCase, bedspaceRepository, log)
	exportOccupancyReport := exportOccupancyReportHandler.NewHandler(buildOccupancyReportUseCase, bedspaceRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Койко-места и void-периоды ---
	protected.HandleFunc("/bedspaces", getBedspaces.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bedspaces/{id}/voids", createVoid.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/voids/{id}/cancel", cancelVoid.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/arrival", recordArrival.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/departure", recordDeparture.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Отчеты ---
	protected.HandleFunc("/reports/usage", getUsageReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/usage/export", exportUsageReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/occupancy", getOccupancyReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/occupancy/export", exportOccupancyReport.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
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
