package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type SubscriptionStatus string

const (
	SubscriptionStatusNone      SubscriptionStatus = "none"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

type User struct {
	ID                 uuid.UUID
	Email              string
	Password           password
	Premium            bool
	SubscriptionStatus SubscriptionStatus
	SubscriptionRef    *string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetById(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ActivateSubscription marks the user premium and records the payment
	// reference that activated it. Running it again has no further effect.
	ActivateSubscription(ctx context.Context, id uuid.UUID, subscriptionRef string) error
	// LinkSubscription records the provider's own subscription id on the user
	// with the given email. It reports false when no such user exists.
	LinkSubscription(ctx context.Context, email, providerRef string) (bool, error)
	// CancelSubscription revokes premium from the user holding the reference,
	// either the activating payment reference or a linked provider id. It
	// reports false when no user holds it.
	CancelSubscription(ctx context.Context, subscriptionRef string) (bool, error)
}
