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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/facades"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/handlers"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/metrics"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/middlewares"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/repositories"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/xfalcox/cosmic-applet-exchange-rate/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title cosmic-applet-exchange-rate API
// @version 1.0.0
// @description Backend for the exchange rate applet: polls a public rate API and serves the latest value
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pair, pollIntervalSecond, pollTimeoutSecond, rateAPIURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pair, pollIntervalSecond, pollTimeoutSecond, rateAPIURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
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

// parseConfig loads environment variables from a file and returns all
// application, poller, database, Redis, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pair string, pollIntervalSecond, pollTimeoutSecond int, rateAPIURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
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

	// Poller config
	pair = getEnv("POLL_PAIR", "USDBRL")
	rateAPIURL = getEnv("RATE_API_URL", facades.DefaultBaseURL)
	if pollIntervalSecond, err = strconv.Atoi(getEnv("POLL_INTERVAL_SECOND", "600")); err != nil {
		return
	}
	if pollTimeoutSecond, err = strconv.Atoi(getEnv("POLL_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "rate-events")

	return
}

// run initializes the logger, database, Redis, Kafka, the poller, and the
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pair string, pollIntervalSecond, pollTimeoutSecond int, rateAPIURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Validate the startup symbol pair
	symbolPair, err := models.ParseSymbolPair(pair)
	if err != nil {
		logger.Log.Errorw("invalid POLL_PAIR", "pair", pair, "error", err)
		return err
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

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
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for rate events
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	pollInterval := time.Duration(pollIntervalSecond) * time.Second
	pollTimeout := time.Duration(pollTimeoutSecond) * time.Second

	// Shared cells
	quoteCell := services.NewQuoteCell()
	pairCell := services.NewPairCell(symbolPair)

	// Initialize repositories and facades
	rateFacade := facades.NewAwesomeAPIFacade(rateAPIURL, pollTimeout)
	cacheRepo := repositories.NewRateCacheRepository(rdb, pollInterval)
	historyWriteRepo := repositories.NewRateHistoryWriteRepository(db)
	historyReadRepo := repositories.NewRateHistoryReadRepository(db)

	// Initialize poller and services
	pollerMetrics := metrics.NewPollerMetrics()
	poller := services.NewRatePoller(
		rateFacade, quoteCell, pairCell,
		cacheRepo, historyWriteRepo, kafkaWriter, pollerMetrics,
		pollInterval, pollTimeout,
	)
	rateService := services.NewRateService(quoteCell, pairCell, cacheRepo, historyReadRepo, poller)

	// Initialize handlers
	getRateHandler := handlers.NewGetRateHandler(rateService)
	setPairHandler := handlers.NewSetPairHandler(rateService)
	getHistoryHandler := handlers.NewGetRateHistoryHandler(rateService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/rate", getRateHandler)
		r.Put("/pair", setPairHandler)
		r.Get("/rate/history", getHistoryHandler)
	})

	r.Handle("/metrics", promhttp.Handler())
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

	poller.Start(ctxShutdown)

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
		poller.Stop()
		return serveErr
	}

	poller.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
