package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepo struct {
	mock.Mock
	domain.PaymentRepository
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	payment, _ := args.Get(0).(*domain.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentRepo) GetByExternalRef(ctx context.Context, externalRef string) (*domain.Payment, error) {
	args := m.Called(ctx, externalRef)
	payment, _ := args.Get(0).(*domain.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentRepo) TransitionStatus(ctx context.Context, externalRef string, status domain.PaymentStatus) (bool, error) {
	args := m.Called(ctx, externalRef, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepo) MarkEffectApplied(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepo) ListUnappliedCompleted(ctx context.Context, limit int) ([]*domain.Payment, error) {
	args := m.Called(ctx, limit)
	payments, _ := args.Get(0).([]*domain.Payment)
	return payments, args.Error(1)
}

func (m *MockPaymentRepo) GetAllByUserId(
	ctx context.Context,
	userId uuid.UUID,
	pagination domain.Pagination) ([]*domain.Payment, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	payments, _ := args.Get(0).([]*domain.Payment)
	metadata, _ := args.Get(1).(*domain.Metadata)
	return payments, metadata, args.Error(2)
}
