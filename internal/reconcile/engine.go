// Package reconcile applies normalized provider events to payments and to the
// users and jobs that depend on them.
//
// A charge event moves a pending payment to completed or failed exactly once.
// Completing a payment is followed by a second, separate write to the user
// (premium) or the job (boosted). The two writes are not atomic. When the
// second one fails the payment stays completed with no effect_applied_at and
// the failure is reported as a *PartialApplyError; Redrive finishes the work
// using the completed payment as the source of truth.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/jobmatch/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Result string

const (
	ResultApplied   Result = "applied"
	ResultDuplicate Result = "duplicate"
	ResultIgnored   Result = "ignored"
)

type Outcome struct {
	Result  Result
	Payment *domain.Payment
}

var (
	ErrPartialApply = errors.New("payment completed but its effect was not applied")
	ErrNotCompleted = errors.New("payment is not completed")
)

// PartialApplyError reports a completed payment whose dependent entity has not
// been updated yet.
type PartialApplyError struct {
	PaymentID   string
	ExternalRef string
	Err         error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("payment %s (%s): %s: %v", e.PaymentID, e.ExternalRef, ErrPartialApply, e.Err)
}

func (e *PartialApplyError) Unwrap() []error {
	return []error{ErrPartialApply, e.Err}
}

type Engine struct {
	payments domain.PaymentRepository
	users    domain.UserRepository
	jobs     domain.JobRepository
	logger   *slog.Logger
	outcomes metric.Int64Counter
}

func NewEngine(
	payments domain.PaymentRepository,
	users domain.UserRepository,
	jobs domain.JobRepository,
	logger *slog.Logger) *Engine {

	outcomes, err := otel.Meter("github.com/metinatakli/jobmatch/internal/reconcile").Int64Counter(
		"jobmatch.reconcile.outcomes",
		metric.WithDescription("Webhook events applied to payments, by event kind and result"),
	)
	if err != nil {
		logger.Warn("reconcile metrics disabled", "error", err)
	}

	return &Engine{
		payments: payments,
		users:    users,
		jobs:     jobs,
		logger:   logger,
		outcomes: outcomes,
	}
}

// Apply dispatches a normalized event. Unrecognized events are ignored.
func (e *Engine) Apply(ctx context.Context, event domain.Event) (*Outcome, error) {
	var (
		outcome *Outcome
		err     error
	)

	switch ev := event.(type) {
	case domain.ChargeEvent:
		outcome, err = e.ApplyCharge(ctx, ev.ExternalRef, ev.Succeeded)
	case domain.SubscriptionStartedEvent:
		outcome, err = e.ApplySubscriptionStarted(ctx, ev.CustomerEmail, ev.SubscriptionRef)
	case domain.SubscriptionCancelledEvent:
		outcome, err = e.ApplySubscriptionCancelled(ctx, ev.SubscriptionRef)
	case domain.UnrecognizedEvent:
		e.logger.Info("ignoring unrecognized provider event", "kind", ev.RawKind)
		outcome = &Outcome{Result: ResultIgnored}
	default:
		return nil, fmt.Errorf("unsupported event type %T", event)
	}

	e.record(ctx, event, outcome, err)

	return outcome, err
}

// ApplyCharge records the provider's verdict on the payment identified by
// externalRef. Deliveries for a payment that already left pending are
// acknowledged without touching any state.
func (e *Engine) ApplyCharge(ctx context.Context, externalRef string, succeeded bool) (*Outcome, error) {
	logger := e.logger.With("external_ref", externalRef)

	payment, err := e.payments.GetByExternalRef(ctx, externalRef)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Warn("charge event for unknown payment reference")
			return nil, domain.ErrUnknownReference
		}

		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	if payment.Status.IsTerminal() {
		logger.Info("duplicate charge event", "status", payment.Status)
		return &Outcome{Result: ResultDuplicate, Payment: payment}, nil
	}

	target := domain.PaymentStatusFailed
	if succeeded {
		target = domain.PaymentStatusCompleted
	}

	transitioned, err := e.payments.TransitionStatus(ctx, externalRef, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	if !transitioned {
		// a concurrent delivery of the same event got there first
		logger.Info("charge event lost race with concurrent delivery")
		return &Outcome{Result: ResultDuplicate, Payment: payment}, nil
	}

	payment.Status = target
	logger.Info("payment status updated", "payment_id", payment.ID, "status", target)

	if target == domain.PaymentStatusCompleted {
		err = e.applyEffect(ctx, payment)
		if err != nil {
			return &Outcome{Result: ResultApplied, Payment: payment}, err
		}
	}

	return &Outcome{Result: ResultApplied, Payment: payment}, nil
}

// ApplySubscriptionStarted links the provider's subscription id to the user
// paying for it so that its cancellation revokes premium. Linking again with
// the same id changes nothing.
func (e *Engine) ApplySubscriptionStarted(ctx context.Context, email, subscriptionRef string) (*Outcome, error) {
	found, err := e.users.LinkSubscription(ctx, email, subscriptionRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	if !found {
		e.logger.Info("subscription started for unknown customer", "subscription_ref", subscriptionRef)
		return &Outcome{Result: ResultIgnored}, nil
	}

	e.logger.Info("subscription linked", "subscription_ref", subscriptionRef)

	return &Outcome{Result: ResultApplied}, nil
}

// ApplySubscriptionCancelled revokes premium from the user holding
// subscriptionRef. A reference without a user is not an error.
func (e *Engine) ApplySubscriptionCancelled(ctx context.Context, subscriptionRef string) (*Outcome, error) {
	found, err := e.users.CancelSubscription(ctx, subscriptionRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	if !found {
		e.logger.Info("subscription cancellation for unknown reference", "subscription_ref", subscriptionRef)
		return &Outcome{Result: ResultIgnored}, nil
	}

	e.logger.Info("subscription cancelled", "subscription_ref", subscriptionRef)

	return &Outcome{Result: ResultApplied}, nil
}

// Redrive applies the effect of a completed payment whose earlier attempt
// failed. It never changes the payment status.
func (e *Engine) Redrive(ctx context.Context, externalRef string) (*Outcome, error) {
	payment, err := e.payments.GetByExternalRef(ctx, externalRef)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrUnknownReference
		}

		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	return e.redrive(ctx, payment)
}

// RedrivePending re-drives up to limit completed payments that still lack
// their effect. It returns how many were repaired.
func (e *Engine) RedrivePending(ctx context.Context, limit int) (int, error) {
	payments, err := e.payments.ListUnappliedCompleted(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	var (
		repaired int
		errs     []error
	)

	for _, payment := range payments {
		outcome, err := e.redrive(ctx, payment)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if outcome.Result == ResultApplied {
			repaired++
		}
	}

	return repaired, errors.Join(errs...)
}

func (e *Engine) redrive(ctx context.Context, payment *domain.Payment) (*Outcome, error) {
	if payment.Status != domain.PaymentStatusCompleted {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotCompleted, payment.ExternalRef, payment.Status)
	}

	if payment.EffectAppliedAt != nil {
		return &Outcome{Result: ResultDuplicate, Payment: payment}, nil
	}

	err := e.applyEffect(ctx, payment)
	if err != nil {
		return nil, err
	}

	e.logger.Info("payment effect re-driven", "payment_id", payment.ID, "external_ref", payment.ExternalRef)

	return &Outcome{Result: ResultApplied, Payment: payment}, nil
}

// applyEffect must stay safe to run more than once for the same payment.
func (e *Engine) applyEffect(ctx context.Context, payment *domain.Payment) error {
	var err error

	switch payment.Kind {
	case domain.PaymentKindSubscription:
		err = e.users.ActivateSubscription(ctx, payment.UserID, payment.ExternalRef)
	case domain.PaymentKindJobBoost:
		if payment.JobID == nil {
			err = errors.New("job boost payment has no job")
			break
		}

		err = e.jobs.SetBoosted(ctx, *payment.JobID)
	default:
		err = fmt.Errorf("unknown payment kind %q", payment.Kind)
	}

	if err == nil {
		err = e.payments.MarkEffectApplied(ctx, payment.ID)
	}

	if err != nil {
		e.logger.Error("payment effect not applied",
			"payment_id", payment.ID,
			"external_ref", payment.ExternalRef,
			"kind", payment.Kind,
			"error", err,
		)

		return &PartialApplyError{
			PaymentID:   payment.ID.String(),
			ExternalRef: payment.ExternalRef,
			Err:         err,
		}
	}

	return nil
}

func (e *Engine) record(ctx context.Context, event domain.Event, outcome *Outcome, err error) {
	if e.outcomes == nil {
		return
	}

	result := "error"
	switch {
	case errors.Is(err, domain.ErrUnknownReference):
		result = "unknown_reference"
	case errors.Is(err, ErrPartialApply):
		result = "partial_apply"
	case err == nil && outcome != nil:
		result = string(outcome.Result)
	}

	e.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", domain.EventKind(event)),
		attribute.String("result", result),
	))
}
