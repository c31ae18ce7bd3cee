package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/internal/domain"
)

var ErrJobRequired = errors.New("job boost payments require a job")

type InitiateInput struct {
	UserID   uuid.UUID
	Kind     domain.PaymentKind
	Provider domain.Provider
	JobID    *uuid.UUID
}

type Initiation struct {
	Payment     *domain.Payment
	RedirectURL string
}

// Initiator records a pending payment and only then hands the user off to the
// provider. A payment that could not be stored is never sent to checkout.
type Initiator struct {
	payments  domain.PaymentRepository
	users     domain.UserRepository
	jobs      domain.JobRepository
	providers map[domain.Provider]domain.CheckoutProvider
	logger    *slog.Logger
	now       func() time.Time
}

func NewInitiator(
	payments domain.PaymentRepository,
	users domain.UserRepository,
	jobs domain.JobRepository,
	logger *slog.Logger,
	providers ...domain.CheckoutProvider) *Initiator {

	byName := make(map[domain.Provider]domain.CheckoutProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &Initiator{
		payments:  payments,
		users:     users,
		jobs:      jobs,
		providers: byName,
		logger:    logger,
		now:       time.Now,
	}
}

func (i *Initiator) Initiate(ctx context.Context, in InitiateInput) (*Initiation, error) {
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("unknown payment kind %q", in.Kind)
	}

	provider, ok := i.providers[in.Provider]
	if !ok {
		return nil, domain.ErrUnsupportedProvider
	}

	user, err := i.users.GetById(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	switch in.Kind {
	case domain.PaymentKindSubscription:
		if user.Premium {
			return nil, domain.ErrAlreadyPremium
		}

		in.JobID = nil
	case domain.PaymentKindJobBoost:
		err = i.checkBoostable(ctx, in)
		if err != nil {
			return nil, err
		}
	}

	price, err := PriceFor(in.Kind, in.Provider)
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		UserID:      user.ID,
		Amount:      price.Amount,
		Currency:    price.Currency,
		Status:      domain.PaymentStatusPending,
		Kind:        in.Kind,
		Provider:    in.Provider,
		ExternalRef: NewExternalRef(i.now()),
		JobID:       in.JobID,
		Description: price.Description,
	}

	err = payment.Validate()
	if err != nil {
		return nil, err
	}

	err = i.payments.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("recording pending payment: %w", err)
	}

	logger := i.logger.With("payment_id", payment.ID, "external_ref", payment.ExternalRef, "provider", payment.Provider)
	logger.Info("pending payment recorded", "kind", payment.Kind, "amount", payment.Amount, "currency", payment.Currency)

	checkout, err := provider.CreateCheckout(ctx, user, payment)
	if err != nil {
		logger.Error("checkout creation failed, payment left pending", "error", err)
		return nil, fmt.Errorf("creating %s checkout: %w", payment.Provider, err)
	}

	return &Initiation{
		Payment:     payment,
		RedirectURL: checkout.RedirectURL,
	}, nil
}

func (i *Initiator) checkBoostable(ctx context.Context, in InitiateInput) error {
	if in.JobID == nil {
		return ErrJobRequired
	}

	job, err := i.jobs.GetById(ctx, *in.JobID)
	if err != nil {
		return err
	}

	if job.EmployerID != in.UserID {
		return domain.ErrForbidden
	}

	if job.Boosted {
		return domain.ErrAlreadyBoosted
	}

	return nil
}
