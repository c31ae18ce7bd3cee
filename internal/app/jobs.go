package app

import (
	"net/http"

	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/matching"
)

func (app *Application) CreateJobHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateJobRequest

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

	job := domain.Job{
		EmployerID:   app.contextGetUserId(r),
		Title:        input.Title,
		Description:  matching.EnhanceJobDescription(input.Title, input.Description),
		Requirements: matching.SplitRequirements(input.Requirements),
		SalaryRange:  input.SalaryRange,
		Location:     input.Location,
	}

	err = app.jobRepo.Create(r.Context(), &job)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("job posted", "job_id", job.ID)

	err = app.writeJSON(w, http.StatusCreated, toJobResponse(&job), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := app.jobRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.JobListResponse{Jobs: make([]api.JobResponse, 0, len(jobs))}
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(job))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toJobResponse(job *domain.Job) api.JobResponse {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	return api.JobResponse{
		Id:           job.ID,
		EmployerId:   job.EmployerID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: requirements,
		SalaryRange:  job.SalaryRange,
		Location:     job.Location,
		Boosted:      job.Boosted,
		CreatedAt:    job.CreatedAt,
	}
}
