package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	jobListCacheKey = "jobs:all"
	jobListCacheTTL = time.Minute
)

// CachedJobRepository keeps the full job listing in Redis. Every write drops
// the cached listing so a boost is visible on the next read.
type CachedJobRepository struct {
	domain.JobRepository
	redis  redis.UniversalClient
	logger *slog.Logger
}

func NewCachedJobRepository(next domain.JobRepository, client redis.UniversalClient, logger *slog.Logger) *CachedJobRepository {
	return &CachedJobRepository{
		JobRepository: next,
		redis:         client,
		logger:        logger,
	}
}

func (c *CachedJobRepository) GetAll(ctx context.Context) ([]*domain.Job, error) {
	cached, err := c.redis.Get(ctx, jobListCacheKey).Bytes()
	switch {
	case err == nil:
		var jobs []*domain.Job
		if err := json.Unmarshal(cached, &jobs); err == nil {
			return jobs, nil
		}

		c.logger.Warn("discarding unreadable job cache entry")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("job cache read failed", "error", err)
	}

	jobs, err := c.JobRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		return jobs, nil
	}

	if err := c.redis.Set(ctx, jobListCacheKey, data, jobListCacheTTL).Err(); err != nil {
		c.logger.Warn("job cache write failed", "error", err)
	}

	return jobs, nil
}

func (c *CachedJobRepository) Create(ctx context.Context, job *domain.Job) error {
	err := c.JobRepository.Create(ctx, job)
	if err != nil {
		return err
	}

	c.invalidate(ctx)

	return nil
}

func (c *CachedJobRepository) SetBoosted(ctx context.Context, id uuid.UUID) error {
	err := c.JobRepository.SetBoosted(ctx, id)
	if err != nil {
		return err
	}

	c.invalidate(ctx)

	return nil
}

func (c *CachedJobRepository) invalidate(ctx context.Context) {
	if err := c.redis.Del(ctx, jobListCacheKey).Err(); err != nil {
		c.logger.Warn("job cache invalidation failed", "error", err)
	}
}
