package webhook

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	StripeSignatureHeader = "Stripe-Signature"

	// ExternalRefMetadataKey is stamped on every checkout session and payment
	// intent this service creates.
	ExternalRefMetadataKey = "external_ref"
)

type stripeObject struct {
	ID                string            `mapstructure:"id"`
	ClientReferenceID string            `mapstructure:"client_reference_id"`
	PaymentStatus     string            `mapstructure:"payment_status"`
	Metadata          map[string]string `mapstructure:"metadata"`
}

// reference prefers the reference this service generated over the provider's
// own object id.
func (o stripeObject) reference() string {
	if ref := o.Metadata[ExternalRefMetadataKey]; ref != "" {
		return ref
	}

	if o.ClientReferenceID != "" {
		return o.ClientReferenceID
	}

	return o.ID
}

type StripeAdapter struct {
	secret string
}

func NewStripeAdapter(secret string) *StripeAdapter {
	return &StripeAdapter{secret: secret}
}

func (a *StripeAdapter) Provider() domain.Provider {
	return domain.ProviderStripe
}

func (a *StripeAdapter) Parse(payload []byte, header http.Header) (domain.Event, error) {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		header.Get(StripeSignatureHeader),
		a.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		if isStripeSignatureError(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSignature, err)
		}

		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}

	if event.Data == nil {
		return nil, fmt.Errorf("%w: event %s has no data", domain.ErrMalformedPayload, event.ID)
	}

	var object stripeObject
	err = decodeObject(event.Data.Object, &object)
	if err != nil {
		return nil, err
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		// unpaid sessions complete later through async_payment_succeeded
		if object.PaymentStatus != string(stripe.CheckoutSessionPaymentStatusPaid) {
			return domain.UnrecognizedEvent{RawKind: string(event.Type)}, nil
		}

		return chargeEvent(object.reference(), true)
	case stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		return chargeEvent(object.reference(), true)
	case stripe.EventTypeCheckoutSessionExpired, stripe.EventTypeCheckoutSessionAsyncPaymentFailed:
		return chargeEvent(object.reference(), false)
	case stripe.EventTypePaymentIntentSucceeded:
		// intents created by subscription invoices carry no reference of ours
		ref := object.Metadata[ExternalRefMetadataKey]
		if ref == "" {
			return domain.UnrecognizedEvent{RawKind: string(event.Type)}, nil
		}

		return chargeEvent(ref, true)
	case stripe.EventTypeCustomerSubscriptionDeleted:
		ref := object.reference()
		if ref == "" {
			return nil, fmt.Errorf("%w: subscription event without an id", domain.ErrMalformedPayload)
		}

		return domain.SubscriptionCancelledEvent{SubscriptionRef: ref}, nil
	default:
		// a failed intent can still be retried inside the open checkout
		// session, so only the session events above end a payment
		return domain.UnrecognizedEvent{RawKind: string(event.Type)}, nil
	}
}

func isStripeSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}
