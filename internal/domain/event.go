package domain

// Event is a provider notification normalized into the vocabulary of this
// service. Provider specific names never leave the webhook adapters.
type Event interface {
	eventKind() string
}

// ChargeEvent reports the outcome of a payment attempt identified by the
// reference generated when the payment was initiated.
type ChargeEvent struct {
	ExternalRef string
	Succeeded   bool
}

// SubscriptionCancelledEvent reports that the subscription identified by
// SubscriptionRef ended at the provider.
type SubscriptionCancelledEvent struct {
	SubscriptionRef string
}

// SubscriptionStartedEvent reports the provider's id for a subscription it
// created for the customer with CustomerEmail. Providers that cannot carry the
// payment reference on their subscription objects send this so a later
// cancellation can be matched.
type SubscriptionStartedEvent struct {
	CustomerEmail   string
	SubscriptionRef string
}

// UnrecognizedEvent is any notification this service intentionally ignores.
type UnrecognizedEvent struct {
	RawKind string
}

func (ChargeEvent) eventKind() string                { return "charge" }
func (SubscriptionStartedEvent) eventKind() string   { return "subscription_started" }
func (SubscriptionCancelledEvent) eventKind() string { return "subscription_cancelled" }
func (UnrecognizedEvent) eventKind() string          { return "unrecognized" }

// EventKind returns a stable label for logging and metrics.
func EventKind(e Event) string {
	if e == nil {
		return "none"
	}

	return e.eventKind()
}
