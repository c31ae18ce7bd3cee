package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/domain"
)

func (app *Application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.contextGetLogger(r).Error("user id in session but not found in db")
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toUserResponse(user *domain.User) api.UserResponse {
	status := user.SubscriptionStatus
	if status == "" {
		status = domain.SubscriptionStatusNone
	}

	return api.UserResponse{
		Id:                 user.ID,
		Email:              user.Email,
		Premium:            user.Premium,
		SubscriptionStatus: string(status),
		CreatedAt:          user.CreatedAt,
	}
}
