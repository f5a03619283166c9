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
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/clicker/docs"
	"github.com/sbilibin2017/clicker/internal/handlers"
	"github.com/sbilibin2017/clicker/internal/jwt"
	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/metrics"
	"github.com/sbilibin2017/clicker/internal/middlewares"
	"github.com/sbilibin2017/clicker/internal/migrations"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/sbilibin2017/clicker/internal/services"
	"github.com/sbilibin2017/clicker/internal/session"
	"github.com/sbilibin2017/clicker/internal/web"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// minSecretLength is the shortest accepted session, JWT or admin edit secret.
const minSecretLength = 16

// kafkaBatchTimeout bounds how long a publish waits for a batch to fill.
const kafkaBatchTimeout = 10 * time.Millisecond

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	LogFile  string

	DBDriver       string
	SQLitePath     string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	RedisExp      time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SessionSecret string
	SessionTTL    time.Duration
	SessionSecure bool
	AdminEditKey  string
	JWTSecretKey  string
	JWTExp        time.Duration

	AdminUsername string
	AdminPassword string
}

// @title clicker API
// @version 1.0.0
// @description Clicker game: accounts, clicks, upgrades and leaderboard
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns the
// application, database, cache, broker, session and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFile = getEnv("APP_LOG_FILE", "")

	// Storage config
	cfg.DBDriver = getEnv("DB_DRIVER", repositories.DriverSQLite)
	cfg.SQLitePath = getEnv("SQLITE_PATH", "clicker.db")
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "clicker")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	redisExp, err := getInt("REDIS_EXP_SECOND", "30")
	if err != nil {
		return
	}
	cfg.RedisExp = time.Duration(redisExp) * time.Second

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "clicker-events")

	// Session config
	cfg.SessionSecret = getEnv("SESSION_SECRET", "")
	sessionTTL, err := getInt("SESSION_TTL_SECOND", "86400")
	if err != nil {
		return
	}
	cfg.SessionTTL = time.Duration(sessionTTL) * time.Second
	if cfg.SessionSecure, err = strconv.ParseBool(getEnv("SESSION_SECURE", "false")); err != nil {
		err = fmt.Errorf("SESSION_SECURE: %w", err)
		return
	}
	cfg.AdminEditKey = getEnv("ADMIN_EDIT_KEY", "")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	jwtExp, err := getInt("JWT_EXP_SECOND", "86400")
	if err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Bootstrap admin
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")

	return
}

// validateConfig rejects configurations the server cannot run safely with.
func validateConfig(cfg config) error {
	var errs []error

	switch cfg.DBDriver {
	case repositories.DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is empty"))
		}
	case repositories.DriverPgx:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q",
			repositories.DriverSQLite, repositories.DriverPgx, cfg.DBDriver))
	}

	secrets := []struct{ key, value string }{
		{"SESSION_SECRET", cfg.SessionSecret},
		{"JWT_SECRET_KEY", cfg.JWTSecretKey},
		{"ADMIN_EDIT_KEY", cfg.AdminEditKey},
	}
	for _, s := range secrets {
		if len(s.value) < minSecretLength {
			errs = append(errs, fmt.Errorf("%s must be at least %d bytes", s.key, minSecretLength))
		}
	}

	if cfg.SessionTTL <= 0 || cfg.JWTExp <= 0 {
		errs = append(errs, errors.New("session and token lifetimes must be positive"))
	}
	if cfg.AdminUsername != "" && cfg.AdminPassword == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD is required when ADMIN_USERNAME is set"))
	}

	return errors.Join(errs...)
}

// dsn returns the data source name for the configured driver.
func (cfg config) dsn() string {
	if cfg.DBDriver == repositories.DriverPgx {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	}
	return repositories.SQLiteDSN(cfg.SQLitePath)
}

// run initializes the logger, database, optional Redis cache and Kafka
// writer, and the HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to the database and migrate it
	logger.Log.Infow("connecting to database", "driver", cfg.DBDriver)
	db, err := repositories.Open(ctx, cfg.DBDriver, cfg.dsn(), cfg.PGMaxOpenConns, cfg.PGMaxIdleConns)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Log.Infow("database migrated", "applied", applied)

	// Optional leaderboard cache
	var cache services.LeaderboardCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("redis unavailable, leaderboard cache disabled", "error", err)
		} else {
			cache = repositories.NewLeaderboardCacheRepository(rdb, cfg.RedisExp)
		}
	}

	// Optional event publishing
	var events *services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := newEventWriter(cfg)
		defer writer.Close()
		events = services.NewEventPublisher(writer)
		logger.Log.Infow("publishing game events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	m := metrics.New("clicker")

	r, err := newRouter(ctx, cfg, db, cache, events, m)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newEventWriter builds the Kafka writer for game events. Each event is sent
// as soon as it is published instead of waiting for a full batch.
func newEventWriter(cfg config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires repositories, services and handlers into the chi router.
// cache and events may be nil.
func newRouter(
	ctx context.Context,
	cfg config,
	db *sqlx.DB,
	cache services.LeaderboardCache,
	events *services.EventPublisher,
	m *metrics.Metrics,
) (http.Handler, error) {
	// Initialize JWT service
	jwtService := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	txGetter := repositories.TxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	saveReadRepo := repositories.NewSaveReadRepository(db, txGetter)
	saveWriteRepo := repositories.NewSaveWriteRepository(db, txGetter)
	upgradeReadRepo := repositories.NewUpgradeReadRepository(db, txGetter)
	upgradeWriteRepo := repositories.NewUpgradeWriteRepository(db, txGetter)
	leaderboardRepo := repositories.NewLeaderboardReadRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, events, m)
	gameService := services.NewGameService(
		saveReadRepo, saveWriteRepo,
		upgradeReadRepo, upgradeWriteRepo,
		repositories.NewTxRunner(db),
		events, m,
	)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo, cache)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, saveWriteRepo, leaderboardService, events, cfg.AdminEditKey)

	if _, err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	pages, err := web.New(
		session.NewStore(cfg.SessionSecret, cfg.SessionTTL, cfg.SessionSecure),
		authService, gameService, leaderboardService, adminService,
	)
	if err != nil {
		return nil, err
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(m))

	// Ops routes
	r.Handle("/metrics", m.Handler())
	r.Get("/healthz", handlers.NewHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// HTML pages, each request in one transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		pages.Routes(r)
	})

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/leaderboard", handlers.NewLeaderboardHandler(leaderboardService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtService))
			r.Get("/me", handlers.NewMeHandler(gameService))
			r.Post("/click", handlers.NewClickHandler(gameService))
			r.Get("/upgrades", handlers.NewUpgradesHandler(gameService))
			r.Post("/upgrades/{id}/purchase", handlers.NewPurchaseHandler(gameService))
		})
	})

	return r, nil
}
