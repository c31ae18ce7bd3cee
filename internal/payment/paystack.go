package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/metinatakli/jobmatch/internal/domain"
)

const DefaultPaystackBaseURL = "https://api.paystack.co"

type PaystackCheckoutProvider struct {
	baseURL     string
	secretKey   string
	callbackUrl string
	planCode    string
	client      *http.Client
}

// NewPaystackCheckoutProvider initializes transactions against baseURL. With
// a planCode, subscription checkouts enrol the customer on that plan.
func NewPaystackCheckoutProvider(baseURL, secretKey, callbackUrl, planCode string) *PaystackCheckoutProvider {
	if baseURL == "" {
		baseURL = DefaultPaystackBaseURL
	}

	return &PaystackCheckoutProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		secretKey:   secretKey,
		callbackUrl: callbackUrl,
		planCode:    planCode,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *PaystackCheckoutProvider) Name() domain.Provider {
	return domain.ProviderPaystack
}

type paystackInitializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Plan        string            `json:"plan,omitempty"`
	Metadata    map[string]string `json:"metadata"`
}

type paystackInitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

func (p *PaystackCheckoutProvider) CreateCheckout(
	ctx context.Context,
	user *domain.User,
	payment *domain.Payment) (*domain.Checkout, error) {

	input := paystackInitializeRequest{
		Email:       user.Email,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Reference:   payment.ExternalRef,
		CallbackURL: p.callbackUrl,
		Metadata: map[string]string{
			"payment_id": payment.ID.String(),
			"kind":       string(payment.Kind),
		},
	}

	if payment.Kind == domain.PaymentKindSubscription {
		input.Plan = p.planCode
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out paystackInitializeResponse
	err = json.NewDecoder(resp.Body).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: decoding response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !out.Status {
		return nil, fmt.Errorf("paystack initialize: status %d: %s", resp.StatusCode, out.Message)
	}

	if out.Data.AuthorizationURL == "" {
		return nil, errors.New("paystack initialize: empty authorization url")
	}

	return &domain.Checkout{
		RedirectURL: out.Data.AuthorizationURL,
		ProviderRef: out.Data.AccessCode,
	}, nil
}
