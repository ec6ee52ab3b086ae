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

	getDashboardHandler "github.com/parkirc/parking-service/internal/api/handlers/get_dashboard"
	getFeeQuoteHandler "github.com/parkirc/parking-service/internal/api/handlers/get_fee_quote"
	getHistoryHandler "github.com/parkirc/parking-service/internal/api/handlers/get_history"
	getJournalHandler "github.com/parkirc/parking-service/internal/api/handlers/get_journal"
	getReportsHandler "github.com/parkirc/parking-service/internal/api/handlers/get_reports"
	manageOperatorsHandler "github.com/parkirc/parking-service/internal/api/handlers/manage_operators"
	manageRatesHandler "github.com/parkirc/parking-service/internal/api/handlers/manage_rates"
	manageShiftsHandler "github.com/parkirc/parking-service/internal/api/handlers/manage_shifts"
	manageSpacesHandler "github.com/parkirc/parking-service/internal/api/handlers/manage_spaces"
	processExitHandler "github.com/parkirc/parking-service/internal/api/handlers/process_exit"
	registerEntryHandler "github.com/parkirc/parking-service/internal/api/handlers/register_entry"
	"github.com/parkirc/parking-service/internal/api/middleware"
	"github.com/parkirc/parking-service/internal/config"
	journalRepo "github.com/parkirc/parking-service/internal/infra/storage/journal"
	operatorRepo "github.com/parkirc/parking-service/internal/infra/storage/operator"
	rateRepo "github.com/parkirc/parking-service/internal/infra/storage/rate"
	shiftRepo "github.com/parkirc/parking-service/internal/infra/storage/shift"
	spaceRepo "github.com/parkirc/parking-service/internal/infra/storage/space"
	transactionRepo "github.com/parkirc/parking-service/internal/infra/storage/transaction"
	vehicleRepo "github.com/parkirc/parking-service/internal/infra/storage/vehicle"
	gateServiceClient "github.com/parkirc/parking-service/internal/integrations/gateservice"
	auditService "github.com/parkirc/parking-service/internal/service/audit"
	dashboardService "github.com/parkirc/parking-service/internal/service/dashboard"
	facilityService "github.com/parkirc/parking-service/internal/service/facility"
	historyService "github.com/parkirc/parking-service/internal/service/history"
	pricingService "github.com/parkirc/parking-service/internal/service/pricing"
	ratesService "github.com/parkirc/parking-service/internal/service/rates"
	reportsService "github.com/parkirc/parking-service/internal/service/reports"
	staffService "github.com/parkirc/parking-service/internal/service/staff"
	getFeeQuoteUC "github.com/parkirc/parking-service/internal/usecase/get_fee_quote"
	processExitUC "github.com/parkirc/parking-service/internal/usecase/process_exit"
	registerEntryUC "github.com/parkirc/parking-service/internal/usecase/register_entry"
	"github.com/parkirc/parking-service/pkg/dbmetrics"
	"github.com/parkirc/parking-service/pkg/logger"
	"github.com/parkirc/parking-service/pkg/metrics"
	"github.com/parkirc/parking-service/pkg/ratelimit"
	"github.com/parkirc/parking-service/pkg/simpletxmanager"
	"github.com/parkirc/parking-service/pkg/txmanager"
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

	log.Info("Starting parking-service...")
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

	// Инициализируем клиент контроллера шлагбаума и принтера
	gateClient := gateServiceClient.NewClient(
		cfg.GateService.URL,
		time.Duration(cfg.GateService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GateService=%s timeout=%ds)",
		cfg.GateService.URL, cfg.GateService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		spaceRepository       *spaceRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		transactionRepository *transactionRepo.Repository
		rateRepository        *rateRepo.Repository
		shiftRepository       *shiftRepo.Repository
		operatorRepository    *operatorRepo.Repository
		journalRepository     *journalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		rateRepository = rateRepo.NewRepository(wrappedDB)
		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		operatorRepository = operatorRepo.NewRepository(wrappedDB)
		journalRepository = journalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		spaceRepository = spaceRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		rateRepository = rateRepo.NewRepository(db)
		shiftRepository = shiftRepo.NewRepository(db)
		operatorRepository = operatorRepo.NewRepository(db)
		journalRepository = journalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService()
	facilitySvc := facilityService.NewService(spaceRepository, log)
	ratesSvc := ratesService.NewService(rateRepository, log)
	staffSvc := staffService.NewService(shiftRepository, operatorRepository, log)
	historySvc := historyService.NewService(transactionRepository, log)
	dashboardSvc := dashboardService.NewService(spaceRepository, vehicleRepository, transactionRepository, log)
	reportsSvc := reportsService.NewService(transactionRepository, log)
	auditSvc := auditService.NewService(journalRepository, log)

	// Инициализируем use cases
	registerEntryUseCase := registerEntryUC.NewUseCase(
		spaceRepository,
		vehicleRepository,
		transactionRepository,
		shiftRepository,
		operatorRepository,
		journalRepository,
		gateClient,
		txMgr,
		log,
	)

	processExitUseCase := processExitUC.NewUseCase(
		spaceRepository,
		vehicleRepository,
		transactionRepository,
		rateRepository,
		pricingSvc,
		operatorRepository,
		journalRepository,
		gateClient,
		txMgr,
		log,
	)

	getFeeQuoteUseCase := getFeeQuoteUC.NewUseCase(
		vehicleRepository,
		transactionRepository,
		rateRepository,
		pricingSvc,
		log,
	)

	// Инициализируем handlers
	registerEntry := registerEntryHandler.NewHandler(registerEntryUseCase, log)
	processExit := processExitHandler.NewHandler(processExitUseCase, log)
	getFeeQuote := getFeeQuoteHandler.NewHandler(getFeeQuoteUseCase, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	getHistory := getHistoryHandler.NewHandler(historySvc, log)
	getReports := getReportsHandler.NewHandler(reportsSvc, log)
	getJournal := getJournalHandler.NewHandler(auditSvc, log)
	manageSpaces := manageSpacesHandler.NewHandler(facilitySvc, log)
	manageRates := manageRatesHandler.NewHandler(ratesSvc, log)
	manageShifts := manageShiftsHandler.NewHandler(staffSvc, log)
	manageOperators := manageOperatorsHandler.NewHandler(staffSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сводка по парковке
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// История операций (export регистрируется раньше {transactionId})
	api.HandleFunc("/history", getHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/history/export", getHistory.HandleExport).Methods(http.MethodGet)
	api.HandleFunc("/history/{transactionId}", getHistory.HandleGet).Methods(http.MethodGet)

	// Предварительный расчет стоимости стоянки
	api.HandleFunc("/vehicles/{plate}/fee-quote", getFeeQuote.Handle).Methods(http.MethodGet)

	// Отчеты
	api.HandleFunc("/reports/revenue", getReports.HandleRevenue).Methods(http.MethodGet)
	api.HandleFunc("/reports/occupancy", getReports.HandleOccupancy).Methods(http.MethodGet)
	api.HandleFunc("/reports/vehicle-types", getReports.HandleVehicleTypes).Methods(http.MethodGet)
	api.HandleFunc("/reports/peak-hours", getReports.HandlePeakHours).Methods(http.MethodGet)

	// Просмотр парковочных мест и тарифов
	api.HandleFunc("/spaces", manageSpaces.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}", manageSpaces.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/rates", manageRates.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/rates/{rateId}", manageRates.HandleGet).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Operator-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Въезд и выезд ---
	// Лимитируем частоту запросов на клиента, чтобы шлагбаум не дергали очередями
	gates := protected.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.New(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		limiter.StartPruning(time.Minute, stopMetricsCh)
		gates.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled (%d requests per %ds)", cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}

	// Регистрация въезда
	gates.HandleFunc("/entries", registerEntry.Handle).Methods(http.MethodPost)

	// Оформление выезда
	gates.HandleFunc("/exits", processExit.Handle).Methods(http.MethodPost)

	// --- Парковочные места ---
	protected.HandleFunc("/spaces", manageSpaces.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/spaces/{spaceId}", manageSpaces.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/spaces/{spaceId}", manageSpaces.HandleDelete).Methods(http.MethodDelete)

	// --- Тарифы ---
	protected.HandleFunc("/rates", manageRates.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/rates/{rateId}", manageRates.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/rates/{rateId}", manageRates.HandleDelete).Methods(http.MethodDelete)

	// --- Смены ---
	protected.HandleFunc("/shifts", manageShifts.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/shifts", manageShifts.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/shifts/{shiftId}", manageShifts.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/shifts/{shiftId}", manageShifts.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/shifts/{shiftId}", manageShifts.HandleDelete).Methods(http.MethodDelete)

	// --- Операторы ---
	protected.HandleFunc("/operators", manageOperators.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/operators", manageOperators.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/operators/{operatorId}", manageOperators.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/operators/{operatorId}", manageOperators.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/operators/{operatorId}", manageOperators.HandleDelete).Methods(http.MethodDelete)

	// --- Журнал операций ---
	protected.HandleFunc("/journal", getJournal.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые горутины (метрики пула, очистку rate limiter)
	close(stopMetricsCh)
	if cfg.Metrics.Enabled {
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
