package main

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/jobmatch/internal/app"
	"github.com/metinatakli/jobmatch/internal/config"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/reconcile"
	"github.com/metinatakli/jobmatch/internal/repository"
	"github.com/redis/go-redis/v9"
)

// stores holds the connections shared by serve and reconcile.
type stores struct {
	db    *pgxpool.Pool
	redis *redis.Client
	repos app.Repositories
}

func (s *stores) Close() {
	if s.redis != nil {
		s.redis.Close()
	}

	s.db.Close()
}

// openStores connects to PostgreSQL and, when withCache is set, to Redis for
// the job listing cache.
func openStores(cfg *config.Config, logger *slog.Logger, withCache bool) (*stores, error) {
	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	logger.Info("database connection pool established")

	s := &stores{db: db}

	var jobs domain.JobRepository = repository.NewPostgresJobRepository(db)

	if withCache {
		rdb, err := app.NewRedisClient(cfg)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}

		logger.Info("redis connection established")

		s.redis = rdb
		jobs = repository.NewCachedJobRepository(jobs, rdb, logger)
	}

	s.repos = app.Repositories{
		Users:    repository.NewPostgresUserRepository(db),
		Jobs:     jobs,
		Resumes:  repository.NewPostgresResumeRepository(db),
		Payments: repository.NewPostgresPaymentRepository(db),
	}

	return s, nil
}

func (s *stores) engine(logger *slog.Logger) *reconcile.Engine {
	return reconcile.NewEngine(s.repos.Payments, s.repos.Users, s.repos.Jobs, logger)
}
