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

	cancelBookingHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/cancel_booking"
	cancelEnrollmentHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/cancel_enrollment"
	completeBookingHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/complete_booking"
	completeEnrollmentHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/complete_enrollment"
	createBookingHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/create_booking"
	enrollProgramHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/enroll_program"
	getArenaHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/get_arena"
	getAvailableSlotsHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/get_booking"
	getProgramHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/get_program"
	getUserBookingsHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/get_user_bookings"
	getUserEnrollmentsHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/get_user_enrollments"
	listArenasHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/list_arenas"
	listProgramsHandler "github.com/sportplex/SP-BookingService/internal/api/handlers/list_programs"
	"github.com/sportplex/SP-BookingService/internal/api/middleware"
	"github.com/sportplex/SP-BookingService/internal/config"
	arenaRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/arena"
	bookingRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/booking"
	enrollmentRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/enrollment"
	programRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/program"
	identityServiceClient "github.com/sportplex/SP-BookingService/internal/integrations/identityservice"
	bookingsService "github.com/sportplex/SP-BookingService/internal/service/bookings"
	catalogService "github.com/sportplex/SP-BookingService/internal/service/catalog"
	enrollmentsService "github.com/sportplex/SP-BookingService/internal/service/enrollments"
	createBookingUC "github.com/sportplex/SP-BookingService/internal/usecase/create_booking"
	enrollProgramUC "github.com/sportplex/SP-BookingService/internal/usecase/enroll_program"
	getAvailableSlotsUC "github.com/sportplex/SP-BookingService/internal/usecase/get_available_slots"
	"github.com/sportplex/SP-BookingService/migrations"
	"github.com/sportplex/SP-BookingService/pkg/dbmetrics"
	"github.com/sportplex/SP-BookingService/pkg/logger"
	"github.com/sportplex/SP-BookingService/pkg/metrics"
	"github.com/sportplex/SP-BookingService/pkg/txmanager"
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

	log.Info("Starting SP-BookingService...")
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

	// Накатываем миграции
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied successfully")

	// Инициализируем клиента IdentityService
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		arenaRepository      *arenaRepo.Repository
		programRepository    *programRepo.Repository
		enrollmentRepository *enrollmentRepo.Repository
		txMgr                *txmanager.TransactionManager
	)

	commitTimeout := time.Duration(cfg.Persistence.CommitTimeout) * time.Second

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		arenaRepository = arenaRepo.NewRepository(wrappedDB)
		programRepository = programRepo.NewRepository(wrappedDB)
		enrollmentRepository = enrollmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, commitTimeout)
	} else {
		plainDB := txmanager.WrapDB(db)

		bookingRepository = bookingRepo.NewRepository(db)
		arenaRepository = arenaRepo.NewRepository(db)
		programRepository = programRepo.NewRepository(db)
		enrollmentRepository = enrollmentRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(plainDB, commitTimeout)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		identityClient,
		log,
	)
	enrollmentSvc := enrollmentsService.NewService(
		enrollmentRepository,
		programRepository,
		identityClient,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		arenaRepository,
		programRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		arenaRepository,
		identityClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		arenaRepository,
		log,
	)

	enrollProgramUseCase := enrollProgramUC.NewUseCase(
		programRepository,
		enrollmentRepository,
		identityClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	enrollProgram := enrollProgramHandler.NewHandler(enrollProgramUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getUserEnrollments := getUserEnrollmentsHandler.NewHandler(enrollmentSvc, log)
	cancelEnrollment := cancelEnrollmentHandler.NewHandler(enrollmentSvc, log)
	completeEnrollment := completeEnrollmentHandler.NewHandler(enrollmentSvc, log)
	listArenas := listArenasHandler.NewHandler(catalogSvc, log)
	getArena := getArenaHandler.NewHandler(catalogSvc, log)
	listPrograms := listProgramsHandler.NewHandler(catalogSvc, log)
	getProgram := getProgramHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог арен
	api.HandleFunc("/arenas", listArenas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/arenas/{arenaId}", getArena.Handle).Methods(http.MethodGet)

	// Доступные слоты для бронирования
	api.HandleFunc("/arenas/{arenaId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог коучинговых программ
	api.HandleFunc("/programs", listPrograms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/programs/{programId}", getProgram.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования арен ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования (компенсирующая операция)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение бронирования (только ADMIN)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Зачисления в программы ---
	// Зачисление в программу
	protected.HandleFunc("/enrollments", enrollProgram.Handle).Methods(http.MethodPost)

	// Отмена зачисления (освобождает место в программе)
	protected.HandleFunc("/enrollments/{enrollmentId}/cancel", cancelEnrollment.Handle).Methods(http.MethodPatch)

	// Завершение зачисления (только ADMIN)
	protected.HandleFunc("/enrollments/{enrollmentId}/complete", completeEnrollment.Handle).Methods(http.MethodPatch)

	// Зачисления пользователя
	protected.HandleFunc("/users/{userId}/enrollments", getUserEnrollments.Handle).Methods(http.MethodGet)

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
