package payment

import (
	"context"
	"net/url"

	"github.com/metinatakli/jobmatch/internal/domain"
)

// MockCheckoutProvider stands in for a real provider in local development.
// It redirects straight to the success page; the matching webhook has to be
// sent by hand.
type MockCheckoutProvider struct {
	name       domain.Provider
	successUrl string
}

func NewMockCheckoutProvider(name domain.Provider, successUrl string) *MockCheckoutProvider {
	return &MockCheckoutProvider{
		name:       name,
		successUrl: successUrl,
	}
}

func (m *MockCheckoutProvider) Name() domain.Provider {
	return m.name
}

func (m *MockCheckoutProvider) CreateCheckout(
	ctx context.Context,
	user *domain.User,
	payment *domain.Payment) (*domain.Checkout, error) {

	redirect, err := url.Parse(m.successUrl)
	if err != nil {
		return nil, err
	}

	query := redirect.Query()
	query.Set("reference", payment.ExternalRef)
	redirect.RawQuery = query.Encode()

	return &domain.Checkout{
		RedirectURL: redirect.String(),
		ProviderRef: payment.ExternalRef,
	}, nil
}
