package domain

import "errors"

var (
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrRecordNotFound       = errors.New("record not found")
	ErrDuplicateExternalRef = errors.New("payment reference already in use")
	ErrForbidden            = errors.New("you are not allowed to perform this action")
	ErrAlreadyBoosted       = errors.New("job is already boosted")
	ErrAlreadyPremium       = errors.New("user already has an active premium subscription")
	ErrUnsupportedProvider  = errors.New("unsupported payment provider")

	// Webhook processing.
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUnknownReference = errors.New("no payment matches the reference")
	ErrStoreUnavailable = errors.New("payment store unavailable")
)
