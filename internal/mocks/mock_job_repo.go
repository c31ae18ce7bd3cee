package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockJobRepo struct {
	mock.Mock
	domain.JobRepository
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *MockJobRepo) GetAll(ctx context.Context) ([]*domain.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]*domain.Job)
	return jobs, args.Error(1)
}

func (m *MockJobRepo) SetBoosted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
