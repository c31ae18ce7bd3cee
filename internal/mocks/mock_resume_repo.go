package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockResumeRepo struct {
	mock.Mock
	domain.ResumeRepository
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	args := m.Called(ctx, resume)
	return args.Error(0)
}

func (m *MockResumeRepo) GetLatestByUserId(ctx context.Context, userId uuid.UUID) (*domain.Resume, error) {
	args := m.Called(ctx, userId)
	resume, _ := args.Get(0).(*domain.Resume)
	return resume, args.Error(1)
}
