package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Rate providers
const (
	providerOpenExchangeRates = "openexchangerates"
	providerGRPC              = "grpc"
)

// Store drivers
const (
	storeBolt     = "bolt"
	storeRedis    = "redis"
	storePostgres = "postgres"
	storeSQLite   = "sqlite"
	storeMemory   = "memory"
)

// redisKeyPrefix namespaces the converter's keys in a shared Redis.
const redisKeyPrefix = "currency_converter"

// config holds the service configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	APIKey          string
	RateProvider    string
	OpenExchangeURL string
	OpenExchangeRPS float64
	RequestTimeout  time.Duration
	GWHost          string
	GWPort          string

	StoreDriver   string
	BoltPath      string
	SQLitePath    string
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	PGHost        string
	PGPort        int
	PGUser        string
	PGPassword    string
	PGDB          string

	KafkaBrokers []string
	KafkaTopic   string

	RefreshInterval time.Duration
}

// @title gw-currency-converter API
// @version 1.0.0
// @description Currency converter: one base amount converted live into up to four target currencies
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, rate provider, store, Kafka and refresh configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate provider config
	cfg.APIKey = getEnv("OPENEXCHANGE_API_KEY", "")
	cfg.RateProvider = getEnv("RATE_PROVIDER", providerOpenExchangeRates)
	cfg.OpenExchangeURL = getEnv("OPENEXCHANGE_URL", facades.DefaultOpenExchangeRatesURL)
	timeout, err := strconv.Atoi(getEnv("OPENEXCHANGE_TIMEOUT_SECOND", "10"))
	if err != nil {
		return cfg, err
	}
	cfg.RequestTimeout = time.Duration(timeout) * time.Second
	if cfg.OpenExchangeRPS, err = strconv.ParseFloat(getEnv("OPENEXCHANGE_RPS", "1"), 64); err != nil {
		return cfg, err
	}

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Store config
	cfg.StoreDriver = getEnv("STORE_DRIVER", storeBolt)
	cfg.BoltPath = getEnv("BOLT_PATH", "converter.db")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "converter.sqlite")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return cfg, err
	}
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "rates-snapshots")

	// Refresh config
	interval, err := strconv.Atoi(getEnv("REFRESH_INTERVAL_SECOND", "0"))
	if err != nil {
		return cfg, err
	}
	cfg.RefreshInterval = time.Duration(interval) * time.Second

	return cfg, nil
}

// openStore opens the key/value store selected by cfg.StoreDriver. The
// returned close func releases it.
func openStore(ctx context.Context, cfg config) (repositories.KeyValue, func() error, error) {
	switch cfg.StoreDriver {
	case storeBolt:
		kv, err := repositories.NewBoltKeyValue(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return kv, kv.Close, nil

	case storeRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return repositories.NewRedisKeyValue(rdb, redisKeyPrefix), rdb.Close, nil

	case storePostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		return openSQLStore(ctx, "pgx", dsn)

	case storeSQLite:
		return openSQLStore(ctx, "sqlite3", cfg.SQLitePath)

	case storeMemory:
		return repositories.NewMemoryKeyValue(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openSQLStore(ctx context.Context, driver, dsn string) (repositories.KeyValue, func() error, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("%s connection error: %w", driver, err)
	}
	kv := repositories.NewSQLKeyValue(db)
	if err := kv.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%s migration failed: %w", driver, err)
	}
	return kv, db.Close, nil
}

// newProvider builds the rate provider selected by cfg.RateProvider.
func newProvider(cfg config) (services.RateProvider, func() error, error) {
	switch cfg.RateProvider {
	case providerOpenExchangeRates:
		var limiter *rate.Limiter
		if cfg.OpenExchangeRPS > 0 {
			limiter = rate.NewLimiter(rate.Limit(cfg.OpenExchangeRPS), 1)
		}
		client := &http.Client{Timeout: cfg.RequestTimeout}
		return facades.NewOpenExchangeRatesFacade(cfg.OpenExchangeURL, client, limiter), func() error { return nil }, nil

	case providerGRPC:
		addr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to gRPC service at %s: %w", addr, err)
		}
		return facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn)), conn.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown rate provider %q", cfg.RateProvider)
	}
}

// newRouter mounts the API, WebSocket and swagger routes.
func newRouter(cfg config, session *services.Session) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterGetStateHandler(r, handlers.NewGetStateHandler(session))
		handlers.RegisterBaseHandlers(r,
			handlers.NewEditBaseHandler(session),
			handlers.NewSelectBaseCurrencyHandler(session),
		)
		handlers.RegisterTargetHandlers(r,
			handlers.NewAddTargetHandler(session),
			handlers.NewEditTargetHandler(session),
			handlers.NewSelectTargetCurrencyHandler(session),
			handlers.NewRemoveTargetHandler(session),
		)
		handlers.RegisterListCurrenciesHandler(r, handlers.NewListCurrenciesHandler(session))
		handlers.RegisterRefreshHandler(r, handlers.NewRefreshHandler(session))
		handlers.RegisterStateStreamHandler(r, handlers.NewStateStreamHandler(session))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, store, rate provider, publisher and HTTP
// server. It bootstraps the converter, refreshes rates periodically and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, logger.FormatJSON); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open the rate store
	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	log.Infow("rate store opened", "driver", cfg.StoreDriver)

	// Connect to the rate provider
	provider, closeProvider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	defer closeProvider()
	log.Infow("rate provider configured", "provider", cfg.RateProvider)

	opts := []services.ConverterOption{services.WithAPIKey(cfg.APIKey)}

	// Snapshot publisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		opts = append(opts, services.WithPublisher(writer))
		log.Infow("snapshot publisher configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize services
	converter := services.NewConverter(repositories.NewRateStore(kv), provider, opts...)
	session := services.NewSession(converter)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, session),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go converter.Bootstrap(ctxShutdown)

	if cfg.RefreshInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.RefreshInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctxShutdown.Done():
					return
				case <-ticker.C:
					session.Tick(ctxShutdown)
				}
			}
		}()
	}

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
