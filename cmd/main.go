package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/psokolova/meetsync/internal/handlers"
	"github.com/psokolova/meetsync/internal/jwt"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/middlewares"
	"github.com/psokolova/meetsync/internal/repositories"
	"github.com/psokolova/meetsync/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title meetsync API
// @version 1.0.0
// @description Social scheduling service: friends, events, and weekly availability
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		authRPS, authBurst,
		scheduleCacheSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
		authRPS, authBurst,
		scheduleCacheSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, JWT, rate-limit,
// and cache configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	authRPS float64, authBurst int,
	scheduleCacheSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "meetsync")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "friendship-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Rate limit config for the public auth endpoints
	if authRPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64); err != nil {
		return
	}
	if authBurst, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT_BURST", "10")); err != nil {
		return
	}

	// Schedule cache TTL
	if scheduleCacheSecond, err = strconv.Atoi(getEnv("SCHEDULE_CACHE_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and Kafka writer.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	authRPS float64, authBurst int,
	scheduleCacheSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for friendship events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	friendReadRepo := repositories.NewFriendReadRepository(db)
	friendWriteRepo := repositories.NewFriendWriteRepository(db, middlewares.GetTxFromContext)
	requestReadRepo := repositories.NewFriendRequestReadRepository(db)
	requestWriteRepo := repositories.NewFriendRequestWriteRepository(db, middlewares.GetTxFromContext)
	eventReadRepo := repositories.NewEventReadRepository(db)
	eventWriteRepo := repositories.NewEventWriteRepository(db, middlewares.GetTxFromContext)
	revocationRepo := repositories.NewTokenRevocationRepository(rdb)
	scheduleCache := repositories.NewScheduleCacheRepository(rdb, time.Duration(scheduleCacheSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener, revocationRepo)
	friendService := services.NewFriendService(
		userReadRepo, friendReadRepo, friendWriteRepo,
		requestReadRepo, requestWriteRepo, kafkaWriter,
	)
	eventService := services.NewEventService(eventReadRepo, eventWriteRepo)
	scheduleService := services.NewScheduleService(userReadRepo, userWriteRepo, scheduleCache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	authLimiter := middlewares.NewRateLimiter(authRPS, authBurst)
	r.Get("/", handlers.NewLandingHandler())
	r.With(authLimiter.Middleware).Post("/register", handlers.NewRegisterHandler(authService))
	r.With(authLimiter.Middleware).Post("/login", handlers.NewLoginHandler(authService))

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokener, revocationRepo)
	txMiddleware := middlewares.TxMiddleware(db)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/logout", handlers.NewLogoutHandler(authService, tokener))
		r.Get("/index", handlers.NewHomeHandler(userReadRepo, friendService, tokener))

		r.Get("/friends", handlers.NewIncomingRequestsHandler(friendService, tokener))
		r.Get("/event/view", handlers.NewEventListHandler(eventService, tokener))
		r.Get("/schedule/create", handlers.NewOwnScheduleHandler(scheduleService, tokener))
		r.Get("/get/schedule/{username}", handlers.NewUserScheduleHandler(scheduleService, tokener))

		// Writes run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Post("/friends", handlers.NewSendFriendRequestHandler(friendService, tokener))
			r.Post("/friends/request", handlers.NewResolveFriendRequestHandler(friendService, tokener))
			r.Post("/event/create", handlers.NewCreateEventHandler(eventService, tokener))
			r.Post("/event/edit/{id}", handlers.NewEditEventHandler(eventService, tokener))
			r.Post("/event/delete/{id}", handlers.NewDeleteEventHandler(eventService, tokener))
			r.Post("/update/schedule", handlers.NewUpdateScheduleHandler(scheduleService, tokener))
			r.Post("/update/status", handlers.NewToggleStatusHandler(scheduleService, tokener))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
