package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/jobmatch/internal/config"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/mailer"
	"github.com/metinatakli/jobmatch/internal/matching"
	"github.com/metinatakli/jobmatch/internal/payment"
	"github.com/metinatakli/jobmatch/internal/reconcile"
	"github.com/metinatakli/jobmatch/internal/storage"
	"github.com/metinatakli/jobmatch/internal/vcs"
	"github.com/metinatakli/jobmatch/internal/webhook"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         *config.Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          *redis.Client
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	objectStore    storage.ObjectStore

	userRepo    domain.UserRepository
	jobRepo     domain.JobRepository
	resumeRepo  domain.ResumeRepository
	paymentRepo domain.PaymentRepository

	initiator   *payment.Initiator
	engine      *reconcile.Engine
	webhooks    map[domain.Provider]webhook.Adapter
	matchSource matching.Source

	// wg tracks background work such as receipt emails.
	wg sync.WaitGroup
}

type Repositories struct {
	Users    domain.UserRepository
	Jobs     domain.JobRepository
	Resumes  domain.ResumeRepository
	Payments domain.PaymentRepository
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient *redis.Client,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	objectStore storage.ObjectStore,
	repos Repositories,
	initiator *payment.Initiator,
	engine *reconcile.Engine,
	adapters ...webhook.Adapter) *Application {

	webhooks := make(map[domain.Provider]webhook.Adapter, len(adapters))
	for _, adapter := range adapters {
		webhooks[adapter.Provider()] = adapter
	}

	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		mailer:         mailer,
		sessionManager: sessionManager,
		objectStore:    objectStore,
		userRepo:       repos.Users,
		jobRepo:        repos.Jobs,
		resumeRepo:     repos.Resumes,
		paymentRepo:    repos.Payments,
		initiator:      initiator,
		engine:         engine,
		webhooks:       webhooks,
		matchSource:    matching.DefaultSource,
	}
}

// NewSessionManager keeps sessions in Redis. goredisstore needs the concrete
// single node client.
func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("instrumenting redis client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConnIdleTime = cfg.DB.MaxIdleTime
	poolConfig.MaxConns = int32(cfg.DB.MaxOpenConns)
	poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests and background jobs.
func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
