package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/matching"
)

// GetMatchesHandler ranks every job against the caller's newest resume. Free
// users see the top matches.free-limit jobs, premium users see all of them.
func (app *Application) GetMatchesHandler(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resume, err := app.resumeRepo.GetLatestByUserId(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, errNoResume)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	jobs, err := app.jobRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	limit := 0
	if !user.Premium {
		limit = app.config.Matches.FreeLimit
	}

	matches := matching.Rank(jobs, resume.Skills, limit, app.matchSource)

	resp := api.MatchListResponse{
		Matches: make([]api.MatchResponse, 0, len(matches)),
		Limited: limit > 0 && len(jobs) > limit,
	}

	for _, m := range matches {
		resp.Matches = append(resp.Matches, api.MatchResponse{
			Job:            toJobResponse(m.Job),
			Score:          m.Score,
			MatchingSkills: m.MatchingSkills,
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
