package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/payment"
)

var errProviderUnavailable = errors.New("the selected payment provider is not available")

func (app *Application) InitiatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var input api.InitiatePaymentRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	initiation, err := app.initiator.Initiate(r.Context(), payment.InitiateInput{
		UserID:   app.contextGetUserId(r),
		Kind:     domain.PaymentKind(input.Kind),
		Provider: domain.Provider(input.Provider),
		JobID:    input.JobId,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedProvider):
			app.badRequestResponse(w, r, errProviderUnavailable)
		case errors.Is(err, payment.ErrJobRequired):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrForbidden):
			app.forbiddenResponse(w, r)
		case errors.Is(err, domain.ErrAlreadyPremium), errors.Is(err, domain.ErrAlreadyBoosted):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.InitiatePaymentResponse{
		PaymentId:   initiation.Payment.ID,
		ExternalRef: initiation.Payment.ExternalRef,
		RedirectUrl: initiation.RedirectURL,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPaymentsHandler(w http.ResponseWriter, r *http.Request, params api.GetPaymentsHandlerParams) {
	userId := app.contextGetUserId(r)

	payments, metadata, err := app.paymentRepo.GetAllByUserId(r.Context(), userId, toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PaymentListResponse{
		Payments: make([]api.PaymentResponse, 0, len(payments)),
		Metadata: toApiMetadata(metadata),
	}

	for _, p := range payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(p))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPaymentResponse(p *domain.Payment) api.PaymentResponse {
	return api.PaymentResponse{
		Id:              p.ID,
		Amount:          p.Amount,
		FormattedAmount: payment.FormatAmount(p.Amount, p.Currency),
		Currency:        p.Currency,
		Status:          string(p.Status),
		Kind:            string(p.Kind),
		Provider:        string(p.Provider),
		ExternalRef:     p.ExternalRef,
		JobId:           p.JobID,
		Description:     p.Description,
		CreatedAt:       p.CreatedAt,
	}
}

func toPagination(params api.GetPaymentsHandlerParams) domain.Pagination {
	var page, pageSize int

	if params.Page != nil {
		page = *params.Page
	}
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	return domain.NewPagination(page, pageSize)
}
