package domain

import "context"

type Checkout struct {
	RedirectURL string
	ProviderRef string
}

// CheckoutProvider hands a pending payment over to an external provider.
type CheckoutProvider interface {
	Name() Provider
	CreateCheckout(ctx context.Context, user *User, payment *Payment) (*Checkout, error)
}
