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

	addCartItemHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/add_cart_item"
	annulReservationHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/annul_reservation"
	approveReservationHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/approve_reservation"
	checkoutPaymentHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/checkout_payment"
	createReservationHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/create_reservation"
	getAvailabilityCalendarHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/get_availability_calendar"
	getAvailableSlotsHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/get_available_slots"
	getBanksHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/get_banks"
	getCartHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/get_cart"
	getReservationHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/get_reservation"
	hideReservationHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/hide_reservation"
	listPendingHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/list_pending_reservations"
	listReservationsHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/list_reservations"
	removeCartItemHandler "github.com/fiestaspark/FP-ReservationService/internal/api/handlers/remove_cart_item"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
	"github.com/fiestaspark/FP-ReservationService/internal/config"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/cartstore"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/events"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/proofstore"
	bankRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/bank"
	reservaRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/slot"
	catalogServiceClient "github.com/fiestaspark/FP-ReservationService/internal/integrations/catalogservice"
	banksService "github.com/fiestaspark/FP-ReservationService/internal/service/banks"
	cartService "github.com/fiestaspark/FP-ReservationService/internal/service/cart"
	reservationsService "github.com/fiestaspark/FP-ReservationService/internal/service/reservations"
	checkoutPaymentUC "github.com/fiestaspark/FP-ReservationService/internal/usecase/checkout_payment"
	createReservationUC "github.com/fiestaspark/FP-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/fiestaspark/FP-ReservationService/internal/usecase/get_availability"
	getAvailableSlotsUC "github.com/fiestaspark/FP-ReservationService/internal/usecase/get_available_slots"
	"github.com/fiestaspark/FP-ReservationService/pkg/logger"
	"github.com/fiestaspark/FP-ReservationService/pkg/metrics"
	"github.com/fiestaspark/FP-ReservationService/pkg/txmanager"
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

	log.Info("Starting FP-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis (хранилище корзин)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Публикация событий жизненного цикла (опционально)
	var publisher *events.Publisher
	if cfg.Events.Enabled {
		publisher, err = events.NewPublisher(cfg.Events.URL)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		defer publisher.Close()
		log.Info("Event publisher connected")
	} else {
		log.Info("Event publishing disabled")
	}

	// Клиент каталога (сервисы, комбо, промоции)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Хранилище компробантов оплаты
	proofStore, err := proofstore.NewStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal("Failed to initialize proof store: %v", err)
	}

	// Инициализируем репозитории и хранилища
	reservaRepository := reservaRepo.NewRepository(db)
	slotRepository := slotRepo.NewRepository(db)
	bankRepository := bankRepo.NewRepository(db)
	cartStore := cartstore.NewStore(redisClient, time.Duration(cfg.Redis.CartTTLMinutes)*time.Minute)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	// Интерфейс EventPublisher допускает nil только через типизированную проверку
	var eventPublisher reservationsService.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}

	reservationsSvc := reservationsService.NewService(
		reservaRepository,
		slotRepository,
		txMgr,
		eventPublisher,
		log,
	)
	cartSvc := cartService.NewService(cartStore, catalogClient, log)
	banksSvc := banksService.NewService(bankRepository, log)

	// Инициализируем use cases
	var createPublisher createReservationUC.EventPublisher
	if publisher != nil {
		createPublisher = publisher
	}

	createReservationUseCase := createReservationUC.NewUseCase(
		reservaRepository,
		slotRepository,
		cartStore,
		catalogClient,
		txMgr,
		createPublisher,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(slotRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)
	checkoutPaymentUseCase := checkoutPaymentUC.NewUseCase(reservaRepository, proofStore, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailabilityCalendar := getAvailabilityCalendarHandler.NewHandler(getAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkoutPayment := checkoutPaymentHandler.NewHandler(checkoutPaymentUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	approveReservation := approveReservationHandler.NewHandler(reservationsSvc, log)
	annulReservation := annulReservationHandler.NewHandler(reservationsSvc, log)
	hideReservation := hideReservationHandler.NewHandler(reservationsSvc, log)
	listPending := listPendingHandler.NewHandler(reservationsSvc, log)
	getBanks := getBanksHandler.NewHandler(banksSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь доступности для виджета
	api.HandleFunc("/fiesta/disponibilidad-calendario/",
		getAvailabilityCalendar.Handle).Methods(http.MethodGet)

	// Слоты расписания на дату
	api.HandleFunc("/horarios/disponibles/", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Счета для банковских переводов
	api.HandleFunc("/bancos/", getBanks.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	// --- Корзина ---
	protected.HandleFunc("/carrito/", addCartItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/carrito/", getCart.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/carrito/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)

	// --- Резервации ---
	protected.HandleFunc("/reservas/", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservas/", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservas/{reservaId}", getReservation.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	protected.HandleFunc("/checkout-pago/{reservaId}", checkoutPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (только персонал)
	// ============================================================

	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff(log))

	staff.HandleFunc("/admin/reservas/pendientes", listPending.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservas/{reservaId}/aprobar", approveReservation.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/reservas/{reservaId}/anular", annulReservation.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/reservas/{reservaId}", hideReservation.Handle).Methods(http.MethodDelete)

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
