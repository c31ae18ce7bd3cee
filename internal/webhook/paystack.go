package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/metinatakli/jobmatch/internal/domain"
)

const PaystackSignatureHeader = "X-Paystack-Signature"

type paystackEnvelope struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

type paystackCustomer struct {
	Email string `mapstructure:"email"`
}

type paystackData struct {
	Reference        string           `mapstructure:"reference"`
	Status           string           `mapstructure:"status"`
	SubscriptionCode string           `mapstructure:"subscription_code"`
	Customer         paystackCustomer `mapstructure:"customer"`
}

// PaystackAdapter authenticates notifications with the HMAC-SHA512 of the raw
// body keyed by the account secret key.
type PaystackAdapter struct {
	secret []byte
}

func NewPaystackAdapter(secret string) *PaystackAdapter {
	return &PaystackAdapter{secret: []byte(secret)}
}

func (a *PaystackAdapter) Provider() domain.Provider {
	return domain.ProviderPaystack
}

func (a *PaystackAdapter) Parse(payload []byte, header http.Header) (domain.Event, error) {
	err := a.verify(payload, header.Get(PaystackSignatureHeader))
	if err != nil {
		return nil, err
	}

	var envelope paystackEnvelope
	err = json.Unmarshal(payload, &envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}

	if envelope.Event == "" {
		return nil, fmt.Errorf("%w: missing event name", domain.ErrMalformedPayload)
	}

	var data paystackData
	err = decodeObject(envelope.Data, &data)
	if err != nil {
		return nil, err
	}

	switch envelope.Event {
	case "charge.success":
		return chargeEvent(data.Reference, true)
	case "charge.failed":
		return chargeEvent(data.Reference, false)
	case "subscription.create":
		// subscriptions carry no transaction reference, only the customer
		if data.SubscriptionCode == "" || data.Customer.Email == "" {
			return nil, fmt.Errorf("%w: subscription event without a code or customer", domain.ErrMalformedPayload)
		}

		return domain.SubscriptionStartedEvent{
			CustomerEmail:   data.Customer.Email,
			SubscriptionRef: data.SubscriptionCode,
		}, nil
	case "subscription.disable", "subscription.not_renew":
		if data.SubscriptionCode == "" {
			return nil, fmt.Errorf("%w: subscription event without a code", domain.ErrMalformedPayload)
		}

		return domain.SubscriptionCancelledEvent{SubscriptionRef: data.SubscriptionCode}, nil
	default:
		return domain.UnrecognizedEvent{RawKind: envelope.Event}, nil
	}
}

func (a *PaystackAdapter) verify(payload []byte, signature string) error {
	if signature == "" {
		return fmt.Errorf("%w: missing %s header", domain.ErrInvalidSignature, PaystackSignatureHeader)
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: signature is not hex encoded", domain.ErrInvalidSignature)
	}

	if !hmac.Equal(got, Sign(a.secret, payload)) {
		return domain.ErrInvalidSignature
	}

	return nil
}

// Sign returns the raw HMAC-SHA512 of payload. Hex encode it for the header.
func Sign(secret, payload []byte) []byte {
	mac := hmac.New(sha512.New, secret)
	mac.Write(payload)
	return mac.Sum(nil)
}
