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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/admin_login"
	approveBookingHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/create_booking"
	getAuditLogsHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/get_audit_logs"
	getBookingHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/get_booking"
	getQueueStatsHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/get_queue_stats"
	getSlotStatusHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/get_slot_status"
	getWaitlistHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/get_waitlist"
	listBookingsHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/list_bookings"
	listSlotsHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/list_slots"
	manageOfferingsHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/manage_offerings"
	manageSettingsHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/manage_settings"
	manageSlotsHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/manage_slots"
	manageTemplatesHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/manage_templates"
	promoteWaitlistHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/promote_waitlist"
	rejectBookingHandler "github.com/eksamtint/Eksamtint/internal/api/handlers/reject_booking"
	"github.com/eksamtint/Eksamtint/internal/api/middleware"
	"github.com/eksamtint/Eksamtint/internal/config"
	"github.com/eksamtint/Eksamtint/internal/domain"
	auditRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/audit"
	bookingRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/booking"
	"github.com/eksamtint/Eksamtint/internal/infra/storage/jsonstore"
	offeringRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/offering"
	"github.com/eksamtint/Eksamtint/internal/infra/storage/seed"
	settingsRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/settings"
	slotRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/slot"
	waitlistRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/waitlist"
	auditService "github.com/eksamtint/Eksamtint/internal/service/audit"
	bookingsService "github.com/eksamtint/Eksamtint/internal/service/bookings"
	messagingService "github.com/eksamtint/Eksamtint/internal/service/messaging"
	offeringsService "github.com/eksamtint/Eksamtint/internal/service/offerings"
	settingsService "github.com/eksamtint/Eksamtint/internal/service/settings"
	slotsService "github.com/eksamtint/Eksamtint/internal/service/slots"
	waitlistService "github.com/eksamtint/Eksamtint/internal/service/waitlist"
	createBookingUC "github.com/eksamtint/Eksamtint/internal/usecase/create_booking"
	getSlotStatusUC "github.com/eksamtint/Eksamtint/internal/usecase/get_slot_status"
	promoteWaitlistUC "github.com/eksamtint/Eksamtint/internal/usecase/promote_waitlist"
	"github.com/eksamtint/Eksamtint/pkg/keylock"
	"github.com/eksamtint/Eksamtint/pkg/logger"
	"github.com/eksamtint/Eksamtint/pkg/metrics"
)

// Полные наборы методов каждого хранилища. Оба бэкенда (PostgreSQL и
// JSON-документы) реализуют их целиком; потребители ниже зависят от своих
// узких подмножеств.
type (
	slotRepository interface {
		List(ctx context.Context) ([]*domain.Slot, error)
		GetByID(ctx context.Context, id int64) (*domain.Slot, error)
		Create(ctx context.Context, label string, capacity int) (*domain.Slot, error)
		Update(ctx context.Context, id int64, update domain.SlotUpdate) (*domain.Slot, error)
	}

	bookingRepository interface {
		Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
		GetByID(ctx context.Context, id int64) (*domain.Booking, error)
		List(ctx context.Context) ([]*domain.Booking, error)
		ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
		ListBySlotKey(ctx context.Context, slotKey string) ([]*domain.Booking, error)
		HasActiveBooking(ctx context.Context, email, date string, slotID int64) (bool, error)
		Update(ctx context.Context, b *domain.Booking) error
		CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
	}

	waitlistRepository interface {
		Create(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
		GetByID(ctx context.Context, id int64) (*domain.WaitlistEntry, error)
		List(ctx context.Context) ([]*domain.WaitlistEntry, error)
		ListBySlotDate(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error)
		Delete(ctx context.Context, id int64) error
	}

	auditRepository interface {
		Append(ctx context.Context, action, details string) error
		List(ctx context.Context) ([]*domain.AuditEntry, error)
	}

	offeringRepository interface {
		List(ctx context.Context) ([]*domain.Offering, error)
		GetByID(ctx context.Context, id int64) (*domain.Offering, error)
		Create(ctx context.Context, name string, durationMinutes int, price float64) (*domain.Offering, error)
		Delete(ctx context.Context, id int64) error
	}

	settingsRepository interface {
		GetSettings(ctx context.Context) (*domain.Settings, error)
		SaveSettings(ctx context.Context, s *domain.Settings) error
		GetTemplates(ctx context.Context) (map[string]string, error)
		SaveTemplate(ctx context.Context, name, body string) error
	}
)

func main() {
	// .env опционален, переменные окружения подхватываются если файл есть
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Eksamtint booking service...")
	log.Info("Configuration loaded from config.toml")

	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Выбираем бэкенд хранилища
	var (
		slots     slotRepository
		bookings  bookingRepository
		waitlist  waitlistRepository
		auditLogs auditRepository
		offerings offeringRepository
		settings  settingsRepository
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
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

		slots = slotRepo.NewRepository(db)
		bookings = bookingRepo.NewRepository(db)
		waitlist = waitlistRepo.NewRepository(db)
		auditLogs = auditRepo.NewRepository(db)
		offerings = offeringRepo.NewRepository(db)
		settings = settingsRepo.NewRepository(db)

	case config.BackendJSONFile:
		store, err := jsonstore.Open(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal("Failed to open json store at %s: %v", cfg.Storage.DataDir, err)
		}
		log.Info("JSON document store opened at %s", cfg.Storage.DataDir)

		slots = store.Slots()
		bookings = store.Bookings()
		waitlist = store.Waitlist()
		auditLogs = store.AuditLogs()
		offerings = store.Offerings()
		settings = store.Settings()
	}

	// Наполняем пустое хранилище данными по умолчанию
	if err := seed.New(slots, offerings, settings, log).Run(context.Background()); err != nil {
		log.Fatal("Failed to seed storage: %v", err)
	}

	slotLocker := keylock.New()

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slots, auditLogs, log)
	bookingsSvc := bookingsService.NewService(bookings, waitlist, auditLogs, metricsCollector, log)
	waitlistSvc := waitlistService.NewService(waitlist, log)
	offeringsSvc := offeringsService.NewService(offerings, auditLogs, log)
	messagingSvc := messagingService.NewService(settings, auditLogs, log)
	settingsSvc := settingsService.NewService(settings, auditLogs, log)
	auditSvc := auditService.NewService(auditLogs, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookings,
		waitlist,
		slots,
		offerings,
		auditLogs,
		slotLocker,
		metricsCollector,
		log,
	)
	promoteWaitlistUseCase := promoteWaitlistUC.NewUseCase(
		bookings,
		waitlist,
		slots,
		offerings,
		auditLogs,
		slotLocker,
		metricsCollector,
		log,
	)
	getSlotStatusUseCase := getSlotStatusUC.NewUseCase(bookings, waitlist, slots, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getSlotStatus := getSlotStatusHandler.NewHandler(getSlotStatusUseCase, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	manageSlots := manageSlotsHandler.NewHandler(slotsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getQueueStats := getQueueStatsHandler.NewHandler(bookingsSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingsSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getWaitlist := getWaitlistHandler.NewHandler(waitlistSvc, log)
	promoteWaitlist := promoteWaitlistHandler.NewHandler(promoteWaitlistUseCase, log)
	manageOfferings := manageOfferingsHandler.NewHandler(offeringsSvc, log)
	manageTemplates := manageTemplatesHandler.NewHandler(messagingSvc, log)
	manageSettings := manageSettingsHandler.NewHandler(settingsSvc, log)
	adminLogin := adminLoginHandler.NewHandler(settingsSvc, log)
	getAuditLogs := getAuditLogsHandler.NewHandler(auditSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская запись)
	// ============================================================

	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/status", getSlotStatus.HandleDay).Methods(http.MethodGet)
	api.HandleFunc("/slots/{id}/status", getSlotStatus.HandleSlot).Methods(http.MethodGet)
	api.HandleFunc("/services", manageOfferings.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(settingsSvc, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/stats", getQueueStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/approve", approveBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/reject", rejectBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Лист ожидания ---
	protected.HandleFunc("/waitlist", getWaitlist.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/waitlist/{id}/promote", promoteWaitlist.Handle).Methods(http.MethodPost)

	// --- Каталоги и настройки ---
	protected.HandleFunc("/slots", manageSlots.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{id}", manageSlots.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/services", manageOfferings.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}", manageOfferings.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/templates", manageTemplates.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/templates/{name}", manageTemplates.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/settings", manageSettings.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/settings", manageSettings.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/audit-logs", getAuditLogs.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
