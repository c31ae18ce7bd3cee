package payment

import (
	"context"
	"strings"

	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

const externalRefMetadataKey = "external_ref"

type StripeCheckoutProvider struct {
	failureUrl string
	successUrl string
}

func NewStripeCheckoutProvider(failureUrl, successUrl string) *StripeCheckoutProvider {
	return &StripeCheckoutProvider{
		failureUrl: failureUrl,
		successUrl: successUrl,
	}
}

func (s *StripeCheckoutProvider) Name() domain.Provider {
	return domain.ProviderStripe
}

func (s *StripeCheckoutProvider) CreateCheckout(
	ctx context.Context,
	user *domain.User,
	payment *domain.Payment) (*domain.Checkout, error) {

	params := s.sessionParams(user, payment)
	params.Context = ctx

	checkoutSession, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &domain.Checkout{
		RedirectURL: checkoutSession.URL,
		ProviderRef: checkoutSession.ID,
	}, nil
}

// sessionParams builds a one-off payment session for boosts and a monthly
// subscription session for premium. The reference is stamped on whichever
// object the provider later reports on: the payment intent or the
// subscription.
func (s *StripeCheckoutProvider) sessionParams(user *domain.User, payment *domain.Payment) *stripe.CheckoutSessionParams {
	metadata := map[string]string{
		externalRefMetadataKey: payment.ExternalRef,
		"payment_id":           payment.ID.String(),
		"user_id":              user.ID.String(),
		"kind":                 string(payment.Kind),
	}

	if payment.JobID != nil {
		metadata["job_id"] = payment.JobID.String()
	}

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(strings.ToLower(payment.Currency)),
		UnitAmount: stripe.Int64(payment.Amount),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(payment.Description),
		},
	}

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: priceData,
				Quantity:  stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.successUrl),
		CancelURL:         stripe.String(s.failureUrl),
		Metadata:          metadata,
		CustomerEmail:     stripe.String(user.Email),
		ClientReferenceID: stripe.String(payment.ExternalRef),
	}

	if payment.Kind == domain.PaymentKindSubscription {
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		}

		return params
	}

	params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))
	params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
		Metadata: metadata,
	}

	return params
}
