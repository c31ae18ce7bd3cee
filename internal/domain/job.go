package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID           uuid.UUID
	EmployerID   uuid.UUID
	Title        string
	Description  string
	Requirements []string
	SalaryRange  string
	Location     string
	Boosted      bool
	CreatedAt    time.Time
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetById(ctx context.Context, id uuid.UUID) (*Job, error)
	// GetAll returns every job, boosted jobs first, newest first.
	GetAll(ctx context.Context) ([]*Job, error)
	SetBoosted(ctx context.Context, id uuid.UUID) error
}
