package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
	domain.UserRepository
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) ActivateSubscription(ctx context.Context, id uuid.UUID, subscriptionRef string) error {
	args := m.Called(ctx, id, subscriptionRef)
	return args.Error(0)
}

func (m *MockUserRepo) CancelSubscription(ctx context.Context, subscriptionRef string) (bool, error) {
	args := m.Called(ctx, subscriptionRef)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) LinkSubscription(ctx context.Context, email, providerRef string) (bool, error) {
	args := m.Called(ctx, email, providerRef)
	return args.Bool(0), args.Error(1)
}
