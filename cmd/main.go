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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/get_availability"
	getBookingHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/get_booking"
	getBusinessHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/get_business"
	listCustomerBookingsHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/list_customer_bookings"
	listServicesHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/list_services"
	proceedBookingHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/proceed_booking"
	selectSlotHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/select_slot"
	startSessionHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/start_session"
	updateSessionHandler "github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers/update_session"
	"github.com/johnpapajani/rezi-booking-gateway/internal/api/middleware"
	"github.com/johnpapajani/rezi-booking-gateway/internal/config"
	"github.com/johnpapajani/rezi-booking-gateway/internal/infra/draftstore"
	submissionsRepo "github.com/johnpapajani/rezi-booking-gateway/internal/infra/storage/submissions"
	reserveAPIClient "github.com/johnpapajani/rezi-booking-gateway/internal/integrations/reserveapi"
	"github.com/johnpapajani/rezi-booking-gateway/internal/selector"
	sessionsService "github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions"
	storefrontService "github.com/johnpapajani/rezi-booking-gateway/internal/service/storefront"
	checkAvailabilityUC "github.com/johnpapajani/rezi-booking-gateway/internal/usecase/check_availability"
	submitBookingUC "github.com/johnpapajani/rezi-booking-gateway/internal/usecase/submit_booking"
	"github.com/johnpapajani/rezi-booking-gateway/pkg/logger"
	"github.com/johnpapajani/rezi-booking-gateway/pkg/metrics"
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

	log.Info("Starting rezi-booking-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var upstreamRecorder reserveAPIClient.Recorder
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		upstreamRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал отправок, опционально)
	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = sql.Open("postgres", cfg.Database.DSN())
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

		if cfg.Metrics.Enabled {
			metricsCollector.CollectDBStats(db, 15*time.Second, stopCh)
			log.Info("Database metrics collection started")
		}
	} else {
		log.Info("Database disabled, submission journal is off")
	}

	// Подключаемся к Redis (черновики бронирования)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционного клиента reservation API
	reserveClient := reserveAPIClient.NewClient(
		cfg.ReserveAPI.URL,
		time.Duration(cfg.ReserveAPI.Timeout)*time.Second,
		log,
		upstreamRecorder,
	)
	log.Info("Reservation API client initialized (url=%s, timeout=%ds)",
		cfg.ReserveAPI.URL, cfg.ReserveAPI.Timeout)

	// Инициализируем хранилище черновиков и реестр сессий
	draftTTL := time.Duration(cfg.Sessions.DraftTTLMinutes) * time.Minute
	drafts := draftstore.NewStore(redisClient, draftTTL)

	sessionRegistry := selector.NewManager(
		time.Duration(cfg.Sessions.SessionTTLMinutes)*time.Minute,
		nil,
		log,
	)
	sessionRegistry.StartSweeper(time.Duration(cfg.Sessions.SweepIntervalSec)*time.Second, stopCh)

	// Репозиторий журнала отправок (только при включенной БД)
	var submissions *submissionsRepo.Repository
	if db != nil {
		submissions = submissionsRepo.NewRepository(db)
	}

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(reserveClient, log)

	var submissionsJournal submitBookingUC.SubmissionsRepository
	if submissions != nil {
		submissionsJournal = submissions
	}
	submitBookingUseCase := submitBookingUC.NewUseCase(reserveClient, drafts, submissionsJournal, log)

	// Инициализируем сервисы
	sessionsSvc := sessionsService.NewService(
		checkAvailabilityUseCase,
		sessionRegistry,
		drafts,
		draftTTL,
		log,
	)

	var journal storefrontService.SubmissionsRepository
	if submissions != nil {
		journal = submissions
	}
	storefrontSvc := storefrontService.NewService(
		reserveClient,
		journal,
		time.Duration(cfg.Sessions.CancelNoticeMinutes)*time.Minute,
		log,
	)

	// Инициализируем handlers
	getBusiness := getBusinessHandler.NewHandler(storefrontSvc, log)
	listServices := listServicesHandler.NewHandler(storefrontSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	startSession := startSessionHandler.NewHandler(sessionsSvc, log)
	updateSession := updateSessionHandler.NewHandler(sessionsSvc, log)
	selectSlot := selectSlotHandler.NewHandler(sessionsSvc, log)
	proceedBooking := proceedBookingHandler.NewHandler(sessionsSvc, log)
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(storefrontSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(storefrontSvc, log)
	listCustomerBookings := listCustomerBookingsHandler.NewHandler(storefrontSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log, stopCh))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Витрина ---
	api.HandleFunc("/businesses/{slug}", getBusiness.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{slug}/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{slug}/services/{serviceId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// --- Сессии выбора даты и слота ---
	api.HandleFunc("/businesses/{slug}/services/{serviceId}/sessions",
		startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", updateSession.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/proceed", proceedBooking.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/businesses/{slug}/my-bookings", listCustomerBookings.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи: sweeper сессий, сбор метрик, rate limiter
	close(stopCh)

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
