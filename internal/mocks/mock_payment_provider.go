package mocks

import (
	"context"

	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutProvider struct {
	mock.Mock
	domain.CheckoutProvider
}

func (m *MockCheckoutProvider) Name() domain.Provider {
	args := m.Called()
	return args.Get(0).(domain.Provider)
}

func (m *MockCheckoutProvider) CreateCheckout(
	ctx context.Context,
	user *domain.User,
	payment *domain.Payment) (*domain.Checkout, error) {

	args := m.Called(ctx, user, payment)
	checkout, _ := args.Get(0).(*domain.Checkout)
	return checkout, args.Error(1)
}
