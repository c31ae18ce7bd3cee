package app

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/mailer"
	"github.com/metinatakli/jobmatch/internal/mocks"
	"github.com/metinatakli/jobmatch/internal/reconcile"
	"github.com/metinatakli/jobmatch/internal/webhook"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"
)

const (
	paystackTestSecret = "sk_test_paystack"
	stripeTestSecret   = "whsec_test_stripe"
	testExternalRef    = "payment_1700000000000_0123456789ab"
)

type WebhookTestSuite struct {
	suite.Suite
	app      *Application
	payments *mocks.MockPaymentRepo
	users    *mocks.MockUserRepo
	jobs     *mocks.MockJobRepo
	mailer   *mailer.MockMailer
	user     *domain.User
}

func (s *WebhookTestSuite) SetupTest() {
	s.payments = new(mocks.MockPaymentRepo)
	s.users = new(mocks.MockUserRepo)
	s.jobs = new(mocks.MockJobRepo)
	s.mailer = mailer.NewMockMailer()
	s.user = &domain.User{ID: uuid.New(), Email: "seeker@example.com"}

	engine := reconcile.NewEngine(s.payments, s.users, s.jobs, testLogger)

	s.app = newTestApplication(func(a *Application) {
		a.paymentRepo = s.payments
		a.userRepo = s.users
		a.jobRepo = s.jobs
		a.mailer = s.mailer
		a.engine = engine
		a.webhooks = map[domain.Provider]webhook.Adapter{
			domain.ProviderPaystack: webhook.NewPaystackAdapter(paystackTestSecret),
			domain.ProviderStripe:   webhook.NewStripeAdapter(stripeTestSecret),
		}
	})
}

func TestWebhookSuite(t *testing.T) {
	suite.Run(t, new(WebhookTestSuite))
}

func (s *WebhookTestSuite) pendingPayment(kind domain.PaymentKind) *domain.Payment {
	p := &domain.Payment{
		ID:          uuid.New(),
		UserID:      s.user.ID,
		Amount:      1900,
		Currency:    "USD",
		Status:      domain.PaymentStatusPending,
		Kind:        kind,
		Provider:    domain.ProviderPaystack,
		ExternalRef: testExternalRef,
		Description: "Premium Subscription - Monthly",
	}

	if kind == domain.PaymentKindJobBoost {
		jobID := uuid.New()
		p.JobID = &jobID
		p.Amount = 2900
		p.Description = "Job Boost - 30 days"
	}

	return p
}

func paystackRequest(payload []byte, secret string) (*httptest.ResponseRecorder, *http.Request) {
	r := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set(webhook.PaystackSignatureHeader, hex.EncodeToString(webhook.Sign([]byte(secret), payload)))

	return httptest.NewRecorder(), r
}

func paystackPayload(event, dataJSON string) []byte {
	return []byte(fmt.Sprintf(`{"event": %q, "data": %s}`, event, dataJSON))
}

func (s *WebhookTestSuite) TestPaystackWebhook() {
	chargeData := fmt.Sprintf(`{"reference": %q, "status": "success"}`, testExternalRef)

	tests := []struct {
		name        string
		payload     []byte
		secret      string
		setupMocks  func()
		wantStatus  int
		wantAck     bool
		wantError   string
		wantReceipt bool
	}{
		{
			name:    "should complete a pending subscription and activate premium",
			payload: paystackPayload("charge.success", chargeData),
			setupMocks: func() {
				p := s.pendingPayment(domain.PaymentKindSubscription)
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).Return(p, nil).Once()
				s.payments.On("TransitionStatus", mock.Anything, testExternalRef, domain.PaymentStatusCompleted).
					Return(true, nil).Once()
				s.users.On("ActivateSubscription", mock.Anything, s.user.ID, testExternalRef).Return(nil).Once()
				s.payments.On("MarkEffectApplied", mock.Anything, p.ID).Return(nil).Once()
				s.users.On("GetById", mock.Anything, s.user.ID).Return(s.user, nil).Once()
			},
			wantStatus:  http.StatusOK,
			wantAck:     true,
			wantReceipt: true,
		},
		{
			name:    "should complete a pending boost and boost the job",
			payload: paystackPayload("charge.success", chargeData),
			setupMocks: func() {
				p := s.pendingPayment(domain.PaymentKindJobBoost)
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).Return(p, nil).Once()
				s.payments.On("TransitionStatus", mock.Anything, testExternalRef, domain.PaymentStatusCompleted).
					Return(true, nil).Once()
				s.jobs.On("SetBoosted", mock.Anything, *p.JobID).Return(nil).Once()
				s.payments.On("MarkEffectApplied", mock.Anything, p.ID).Return(nil).Once()
				s.users.On("GetById", mock.Anything, s.user.ID).Return(s.user, nil).Once()
			},
			wantStatus:  http.StatusOK,
			wantAck:     true,
			wantReceipt: true,
		},
		{
			name:    "should fail a pending payment without side effects",
			payload: paystackPayload("charge.failed", chargeData),
			setupMocks: func() {
				p := s.pendingPayment(domain.PaymentKindSubscription)
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).Return(p, nil).Once()
				s.payments.On("TransitionStatus", mock.Anything, testExternalRef, domain.PaymentStatusFailed).
					Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantAck:    true,
		},
		{
			name:    "should acknowledge a duplicate delivery without writes",
			payload: paystackPayload("charge.success", chargeData),
			setupMocks: func() {
				p := s.pendingPayment(domain.PaymentKindSubscription)
				p.Status = domain.PaymentStatusCompleted
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).Return(p, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantAck:    true,
		},
		{
			name:    "should reject an unknown reference without writes",
			payload: paystackPayload("charge.success", chargeData),
			setupMocks: func() {
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).
					Return(nil, domain.ErrRecordNotFound).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantError:  domain.ErrUnknownReference.Error(),
		},
		{
			name:       "should acknowledge events it does not handle",
			payload:    paystackPayload("transfer.success", `{"reference": "trf_1"}`),
			wantStatus: http.StatusOK,
			wantAck:    true,
		},
		{
			name: "should link a new subscription to the paying user",
			payload: paystackPayload("subscription.create",
				`{"subscription_code": "SUB_abc", "customer": {"email": "seeker@example.com"}}`),
			setupMocks: func() {
				s.users.On("LinkSubscription", mock.Anything, "seeker@example.com", "SUB_abc").Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantAck:    true,
		},
		{
			name:    "should revoke premium when the linked subscription is disabled",
			payload: paystackPayload("subscription.disable", `{"subscription_code": "SUB_abc"}`),
			setupMocks: func() {
				s.users.On("CancelSubscription", mock.Anything, "SUB_abc").Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantAck:    true,
		},
		{
			name:    "should acknowledge a cancellation nobody holds",
			payload: paystackPayload("subscription.disable", `{"subscription_code": "SUB_unknown"}`),
			setupMocks: func() {
				s.users.On("CancelSubscription", mock.Anything, "SUB_unknown").Return(false, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantAck:    true,
		},
		{
			name:       "should reject a signature made with another secret",
			payload:    paystackPayload("charge.success", chargeData),
			secret:     "sk_test_attacker",
			wantStatus: http.StatusBadRequest,
			wantError:  domain.ErrInvalidSignature.Error(),
		},
		{
			name:       "should reject a signed body that is not JSON",
			payload:    []byte("event=charge.success"),
			wantStatus: http.StatusBadRequest,
			wantError:  domain.ErrMalformedPayload.Error(),
		},
		{
			name:       "should reject a charge without a reference",
			payload:    paystackPayload("charge.success", `{"status": "success"}`),
			wantStatus: http.StatusBadRequest,
			wantError:  domain.ErrMalformedPayload.Error(),
		},
		{
			name:    "should ask for redelivery when the store is unavailable",
			payload: paystackPayload("charge.success", chargeData),
			setupMocks: func() {
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).
					Return(nil, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  domain.ErrStoreUnavailable.Error(),
		},
		{
			name:    "should ask for redelivery when premium could not be activated",
			payload: paystackPayload("charge.success", chargeData),
			setupMocks: func() {
				p := s.pendingPayment(domain.PaymentKindSubscription)
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).Return(p, nil).Once()
				s.payments.On("TransitionStatus", mock.Anything, testExternalRef, domain.PaymentStatusCompleted).
					Return(true, nil).Once()
				s.users.On("ActivateSubscription", mock.Anything, s.user.ID, testExternalRef).
					Return(errors.New("deadlock detected")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  reconcile.ErrPartialApply.Error(),
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			secret := tt.secret
			if secret == "" {
				secret = paystackTestSecret
			}

			w, r := paystackRequest(tt.payload, secret)

			s.app.PaystackWebhookHandler(w, r)
			s.app.wg.Wait()

			s.Equal(tt.wantStatus, w.Code, w.Body.String())

			if tt.wantAck {
				var ack api.WebhookAckResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&ack))
				s.Equal("success", ack.Status)
			} else {
				var errResp api.WebhookErrorResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&errResp))
				s.Equal(tt.wantError, errResp.Error)
			}

			if tt.wantReceipt {
				s.Equal([]string{"payment_completed.tmpl"}, s.mailer.SentTo(s.user.Email))
			} else {
				s.Empty(s.mailer.Sent())
			}

			s.payments.AssertExpectations(s.T())
			s.users.AssertExpectations(s.T())
			s.jobs.AssertExpectations(s.T())
		})
	}
}

func (s *WebhookTestSuite) TestUndeliveredReceiptStillAcknowledges() {
	p := s.pendingPayment(domain.PaymentKindSubscription)
	s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).Return(p, nil).Once()
	s.payments.On("TransitionStatus", mock.Anything, testExternalRef, domain.PaymentStatusCompleted).
		Return(true, nil).Once()
	s.users.On("ActivateSubscription", mock.Anything, s.user.ID, testExternalRef).Return(nil).Once()
	s.payments.On("MarkEffectApplied", mock.Anything, p.ID).Return(nil).Once()
	s.users.On("GetById", mock.Anything, s.user.ID).Return(s.user, nil).Once()

	s.mailer.FailWith(errors.New("smtp unavailable"))

	w, r := paystackRequest(paystackPayload("charge.success", fmt.Sprintf(`{"reference": %q}`, testExternalRef)), paystackTestSecret)

	s.app.PaystackWebhookHandler(w, r)
	s.app.wg.Wait()

	s.Equal(http.StatusOK, w.Code)
	s.Empty(s.mailer.Sent())
	s.payments.AssertExpectations(s.T())
	s.users.AssertExpectations(s.T())
}

func (s *WebhookTestSuite) TestInvalidSignatureNeverReachesTheStore() {
	payload := paystackPayload("charge.success", fmt.Sprintf(`{"reference": %q}`, testExternalRef))

	w, r := paystackRequest(payload, paystackTestSecret)
	r.Header.Set(webhook.PaystackSignatureHeader, "not-hex")

	s.app.PaystackWebhookHandler(w, r)

	s.Equal(http.StatusBadRequest, w.Code)
	s.payments.AssertNotCalled(s.T(), "GetByExternalRef", mock.Anything, mock.Anything)
	s.payments.AssertNotCalled(s.T(), "TransitionStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WebhookTestSuite) TestStripeWebhook() {
	payload := []byte(fmt.Sprintf(`{
		"id": "evt_test",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test", "payment_status": "paid", "client_reference_id": %q}}
	}`, testExternalRef))

	tests := []struct {
		name       string
		secret     string
		setupMocks func()
		wantStatus int
	}{
		{
			name:   "should complete the payment named by the checkout session",
			secret: stripeTestSecret,
			setupMocks: func() {
				p := s.pendingPayment(domain.PaymentKindSubscription)
				p.Provider = domain.ProviderStripe
				s.payments.On("GetByExternalRef", mock.Anything, testExternalRef).Return(p, nil).Once()
				s.payments.On("TransitionStatus", mock.Anything, testExternalRef, domain.PaymentStatusCompleted).
					Return(true, nil).Once()
				s.users.On("ActivateSubscription", mock.Anything, s.user.ID, testExternalRef).Return(nil).Once()
				s.payments.On("MarkEffectApplied", mock.Anything, p.ID).Return(nil).Once()
				s.users.On("GetById", mock.Anything, s.user.ID).Return(s.user, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "should reject a payload signed with another secret",
			secret:     "whsec_other",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			signed := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
				Payload:   payload,
				Secret:    tt.secret,
				Timestamp: time.Now(),
			})

			r := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewReader(payload))
			r.Header.Set(webhook.StripeSignatureHeader, signed.Header)
			w := httptest.NewRecorder()

			s.app.StripeWebhookHandler(w, r)
			s.app.wg.Wait()

			s.Equal(tt.wantStatus, w.Code, w.Body.String())
			s.payments.AssertExpectations(s.T())
			s.users.AssertExpectations(s.T())
		})
	}
}

func (s *WebhookTestSuite) TestUnconfiguredProviderIsNotFound() {
	s.app.webhooks = map[domain.Provider]webhook.Adapter{}

	w, r := paystackRequest([]byte(`{}`), paystackTestSecret)

	s.app.PaystackWebhookHandler(w, r)

	s.Equal(http.StatusNotFound, w.Code)
}
