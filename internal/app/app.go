// Package app wires configuration, storage, messaging and the HTTP router
// into a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hitaloss/business/internal/application/interfaces"
	"github.com/hitaloss/business/internal/application/services"
	"github.com/hitaloss/business/internal/config"
	"github.com/hitaloss/business/internal/delivery/handler"
	"github.com/hitaloss/business/internal/infrastructure"
	"github.com/hitaloss/business/internal/infrastructure/db/postgres"
	"github.com/hitaloss/business/internal/messaging"
)

const rateLimiterIdleTTL = 10 * time.Minute

type App struct {
	cfg         *config.Config
	log         *logrus.Logger
	db          *gorm.DB
	redis       *infrastructure.RedisService
	publisher   messaging.Publisher
	rateLimiter *infrastructure.RateLimiter
	users       interfaces.UserService
	router      *echo.Echo
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	return log, nil
}

// OpenDatabase connects to the configured database and brings the schema up
// to date.
func OpenDatabase(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	db, err := postgres.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// New builds the service. Redis and NATS are optional: an empty URL
// disables the token cache or event publishing respectively.
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	jwtService, err := infrastructure.NewJWTService(cfg.JWTSecretKey, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	db, err := OpenDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	var publisher messaging.Publisher = messaging.NoopPublisher{}
	if cfg.NatsURL != "" {
		natsPublisher, err := messaging.ConnectNats(cfg.NatsURL, log)
		if err != nil {
			closeDatabase(db, log)
			return nil, err
		}
		publisher = natsPublisher
	}

	redisService := infrastructure.NewRedisService(ctx, cfg.RedisURL, log)
	rateLimiter := infrastructure.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst, rateLimiterIdleTTL)

	userRepo := postgres.NewUserRepository(db)
	idempotencyRepo := postgres.NewIdempotencyRepository(db)

	userService := services.NewUserService(userRepo, idempotencyRepo, publisher, log)
	productService := services.NewProductService(postgres.NewProductRepository(db), idempotencyRepo, publisher, log)
	authService := services.NewAuthService(userRepo, postgres.NewTokenRepository(db), jwtService,
		redisService, rateLimiter, cfg.TokenCacheTTL, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := handler.NewHandler(userService, productService, authService)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redis:       redisService,
		publisher:   publisher,
		rateLimiter: rateLimiter,
		users:       userService,
		router:      handler.NewRouter(h, handler.NewMetrics(registry), log),
	}, nil
}

// Users exposes account management to the command line.
func (a *App) Users() interfaces.UserService {
	return a.users
}

func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	go a.rateLimiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.cfg.HTTPAddr).Info("http server listening")
		if err := a.router.Start(a.cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Close releases the connections opened by New.
func (a *App) Close() {
	a.publisher.Close()
	if err := a.redis.Close(); err != nil {
		a.log.WithError(err).Warn("failed to close redis client")
	}
	closeDatabase(a.db, a.log)
}

func closeDatabase(db *gorm.DB, log logrus.FieldLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("failed to close database")
	}
}
