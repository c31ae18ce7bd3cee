package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/jobmatch/internal/app"
	"github.com/metinatakli/jobmatch/internal/config"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/mailer"
	"github.com/metinatakli/jobmatch/internal/payment"
	"github.com/metinatakli/jobmatch/internal/reconcile"
	"github.com/metinatakli/jobmatch/internal/repository"
	"github.com/metinatakli/jobmatch/internal/storage"
	appvalidator "github.com/metinatakli/jobmatch/internal/validator"
	"github.com/metinatakli/jobmatch/internal/webhook"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Mailer      *mailer.MockMailer
	Engine      *reconcile.Engine
}

func newTestApp(cfg *config.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	repos := app.Repositories{
		Users:    repository.NewPostgresUserRepository(db),
		Jobs:     repository.NewCachedJobRepository(repository.NewPostgresJobRepository(db), redisClient, logger),
		Resumes:  repository.NewPostgresResumeRepository(db),
		Payments: repository.NewPostgresPaymentRepository(db),
	}

	initiator := payment.NewInitiator(
		repos.Payments,
		repos.Users,
		repos.Jobs,
		logger,
		payment.NewMockCheckoutProvider(domain.ProviderPaystack, testCallbackURL),
	)

	engine := reconcile.NewEngine(repos.Payments, repos.Users, repos.Jobs, logger)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mockMailer,
		app.NewSessionManager(redisClient),
		storage.NoopStore{},
		repos,
		initiator,
		engine,
		webhook.NewPaystackAdapter(testPaystackSecret),
	)

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
		Mailer:      mockMailer,
		Engine:      engine,
	}, nil
}

func (a *TestApp) Close() {
	a.RedisClient.Close()
	a.DB.Close()
}
