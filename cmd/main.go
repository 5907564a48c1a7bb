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

	adjustPointsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/adjust_points"
	cancelBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_booking"
	completeAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/complete_appointment"
	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_calendar"
	getMyAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_my_appointments"
	getPointsHistoryHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_points_history"
	getProfileHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_profile"
	getSettingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_settings"
	listCustomersHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_customers"
	listServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_services"
	manageServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_services"
	offDaysHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/off_days"
	registerCustomerHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/register_customer"
	updateSettingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	pointsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/points"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	telegramClient "github.com/m04kA/SMC-SalonService/internal/integrations/telegram"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	customersService "github.com/m04kA/SMC-SalonService/internal/service/customers"
	notificationsService "github.com/m04kA/SMC-SalonService/internal/service/notifications"
	settingsService "github.com/m04kA/SMC-SalonService/internal/service/settings"
	adjustPointsUC "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_points"
	cancelBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_booking"
	completeAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/complete_appointment"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
	registerCustomerUC "github.com/m04kA/SMC-SalonService/internal/usecase/register_customer"
	"github.com/m04kA/SMC-SalonService/migrations"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("SALON_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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
	log.Info("Configuration loaded from %s", configPath)

	// Метрики; nil-коллектор отключает их во всех слоях
	var metricsCollector *metrics.Metrics
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := migrations.Apply(startupCtx, wrappedDB); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Репозитории и менеджер транзакций
	customerRepository := customerRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	pointsRepository := pointsRepo.NewRepository(wrappedDB)
	salonRepository := salonRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Интеграции
	tgClient := telegramClient.NewClient(
		cfg.Telegram.APIEndpoint,
		time.Duration(cfg.Telegram.Timeout)*time.Second,
		cfg.Telegram.RatePerSecond,
		cfg.Telegram.Burst,
		log,
	)
	log.Info("Telegram client initialized (timeout=%ds, rate=%.1f/s)", cfg.Telegram.Timeout, cfg.Telegram.RatePerSecond)

	// Сервисы
	settingsSvc := settingsService.NewService(salonRepository, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, appointmentRepository, txMgr, log)
	customersSvc := customersService.NewService(customerRepository, pointsRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	notifier := notificationsService.NewService(
		salonRepository,
		tgClient,
		metricsCollector,
		notificationsService.Options{
			BotToken:    cfg.Telegram.BotToken,
			AdminChatID: cfg.Telegram.AdminChatID,
			Timeout:     time.Duration(cfg.Telegram.Timeout) * time.Second,
		},
		log,
	)

	if _, err := settingsSvc.EnsureDefaults(startupCtx); err != nil {
		log.Fatal("Failed to initialize salon settings: %v", err)
	}

	// Use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(salonRepository, appointmentRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		salonRepository,
		catalogRepository,
		appointmentRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		customerRepository,
		appointmentRepository,
		pointsRepository,
		catalogRepository,
		salonRepository,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		pointsRepository,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)
	completeAppointmentUseCase := completeAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		pointsRepository,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)
	adjustPointsUseCase := adjustPointsUC.NewUseCase(
		customerRepository,
		pointsRepository,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)
	registerCustomerUseCase := registerCustomerUC.NewUseCase(customerRepository, txMgr, notifier, log).
		WithHasher(registerCustomerUC.BcryptHasher{Cost: cfg.Security.BcryptCost})

	// Handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listActiveServices := listServicesHandler.NewHandler(catalogSvc, true, log)
	listAllServices := listServicesHandler.NewHandler(catalogSvc, false, log)
	registerCustomer := registerCustomerHandler.NewHandler(registerCustomerUseCase, log)

	getProfile := getProfileHandler.NewHandler(customersSvc, log)
	getPointsHistory := getPointsHistoryHandler.NewHandler(customersSvc, log)
	getMyAppointments := getMyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	customerCancel := cancelBookingHandler.NewHandler(cancelBookingUseCase, domain.ActorCustomer, log)

	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	offDays := offDaysHandler.NewHandler(settingsSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	adminCancel := cancelBookingHandler.NewHandler(cancelBookingUseCase, domain.ActorAdmin, log)
	completeAppointment := completeAppointmentHandler.NewHandler(completeAppointmentUseCase, log)
	listCustomers := listCustomersHandler.NewHandler(customersSvc, log)
	adjustPoints := adjustPointsHandler.NewHandler(adjustPointsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listActiveServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers", registerCustomer.Handle).Methods(http.MethodPost)

	// ============================================================
	// CUSTOMER ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/me", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/points-history", getPointsHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/appointments", getMyAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", customerCancel.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Настройки и выходные ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/off-days", offDays.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/off-days", offDays.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/off-days/{offDayId}", offDays.HandleDelete).Methods(http.MethodDelete)

	// --- Каталог ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", manageServices.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", manageServices.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", manageServices.HandleDelete).Methods(http.MethodDelete)

	// --- Записи ---
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", adminCancel.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	admin.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{customerId}/points", adjustPoints.Handle).Methods(http.MethodPut)

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
