package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/payment"
	"github.com/metinatakli/jobmatch/internal/reconcile"
)

const maxWebhookBytes = 65_536

func (app *Application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	app.handleWebhook(w, r, domain.ProviderStripe)
}

func (app *Application) PaystackWebhookHandler(w http.ResponseWriter, r *http.Request) {
	app.handleWebhook(w, r, domain.ProviderPaystack)
}

// handleWebhook acknowledges with 200 whenever retrying could not change the
// outcome, rejects events it cannot attribute to a payment with 400 and
// answers 500 when a later delivery could still make progress.
func (app *Application) handleWebhook(w http.ResponseWriter, r *http.Request, provider domain.Provider) {
	logger := app.contextGetLogger(r).With("provider", provider)

	adapter, ok := app.webhooks[provider]
	if !ok {
		app.notFoundResponse(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBytes)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("failed to read webhook body", "error", err)
		app.webhookErrorResponse(w, r, http.StatusBadRequest, domain.ErrMalformedPayload.Error())
		return
	}

	event, err := adapter.Parse(payload, r.Header)
	if err != nil {
		logger.Warn("rejected webhook", "error", err)

		msg := domain.ErrMalformedPayload.Error()
		if errors.Is(err, domain.ErrInvalidSignature) {
			msg = domain.ErrInvalidSignature.Error()
		}

		app.webhookErrorResponse(w, r, http.StatusBadRequest, msg)
		return
	}

	logger = logger.With("event", domain.EventKind(event))

	outcome, err := app.engine.Apply(r.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownReference):
			logger.Warn("rejected webhook for unknown payment")
			app.webhookErrorResponse(w, r, http.StatusBadRequest, domain.ErrUnknownReference.Error())
			return
		case errors.Is(err, reconcile.ErrPartialApply):
			logger.Error("payment completed without its effect", "error", err)
			app.webhookErrorResponse(w, r, http.StatusInternalServerError, reconcile.ErrPartialApply.Error())
			return
		default:
			logger.Error("failed to apply webhook", "error", err)
			app.webhookErrorResponse(w, r, http.StatusInternalServerError, domain.ErrStoreUnavailable.Error())
			return
		}
	} else {
		logger.Info("webhook processed", "result", outcome.Result)

		if outcome.Result == reconcile.ResultApplied && outcome.Payment != nil &&
			outcome.Payment.Status == domain.PaymentStatusCompleted {
			app.sendReceipt(r, logger, outcome.Payment)
		}
	}

	err = app.writeJSON(w, http.StatusOK, api.WebhookAckResponse{Status: "success"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendReceipt mails the payer in the background. Failures are only logged.
func (app *Application) sendReceipt(r *http.Request, logger *slog.Logger, p *domain.Payment) {
	// the request context is cancelled once the acknowledgement is written
	ctx := context.WithoutCancel(r.Context())

	app.background(r, "payment_receipt", func() {
		user, err := app.userRepo.GetById(ctx, p.UserID)
		if err != nil {
			logger.Error("failed to load payer for receipt", "error", err, "payment_id", p.ID)
			return
		}

		data := map[string]any{
			"Amount":      payment.FormatAmount(p.Amount, p.Currency),
			"Currency":    p.Currency,
			"Description": p.Description,
			"ExternalRef": p.ExternalRef,
			"Premium":     p.Kind == domain.PaymentKindSubscription,
		}

		err = app.mailer.Send(user.Email, "payment_completed.tmpl", data)
		if err != nil {
			logger.Error("failed to send payment receipt", "error", err, "payment_id", p.ID)
			return
		}

		logger.Info("payment receipt sent", "payment_id", p.ID)
	})
}
