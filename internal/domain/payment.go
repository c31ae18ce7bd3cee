package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// IsTerminal reports whether the status can no longer change.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

type PaymentKind string

const (
	PaymentKindSubscription PaymentKind = "subscription"
	PaymentKindJobBoost     PaymentKind = "job_boost"
)

func (k PaymentKind) Valid() bool {
	return k == PaymentKindSubscription || k == PaymentKindJobBoost
}

type Provider string

const (
	ProviderStripe   Provider = "stripe"
	ProviderPaystack Provider = "paystack"
)

func (p Provider) Valid() bool {
	return p == ProviderStripe || p == ProviderPaystack
}

type Payment struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Amount          int64
	Currency        string
	Status          PaymentStatus
	Kind            PaymentKind
	Provider        Provider
	ExternalRef     string
	JobID           *uuid.UUID
	Description     string
	EffectAppliedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Validate checks the invariants a payment must satisfy before it is persisted.
func (p *Payment) Validate() error {
	switch {
	case p.Amount < 0:
		return errors.New("payment amount must not be negative")
	case p.ExternalRef == "":
		return errors.New("payment external reference is required")
	case !p.Kind.Valid():
		return errors.New("invalid payment kind")
	case !p.Provider.Valid():
		return ErrUnsupportedProvider
	case p.Kind == PaymentKindJobBoost && p.JobID == nil:
		return errors.New("job boost payment requires a job")
	case p.Kind == PaymentKindSubscription && p.JobID != nil:
		return errors.New("subscription payment must not reference a job")
	}

	return nil
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetById(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetByExternalRef(ctx context.Context, externalRef string) (*Payment, error)
	// TransitionStatus moves a pending payment to the given status. It reports
	// false when the payment was no longer pending.
	TransitionStatus(ctx context.Context, externalRef string, status PaymentStatus) (bool, error)
	MarkEffectApplied(ctx context.Context, id uuid.UUID) error
	ListUnappliedCompleted(ctx context.Context, limit int) ([]*Payment, error)
	GetAllByUserId(ctx context.Context, userId uuid.UUID, pagination Pagination) ([]*Payment, *Metadata, error)
}
