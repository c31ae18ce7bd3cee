package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/matching"
	"github.com/metinatakli/jobmatch/internal/storage"
)

const (
	maxResumeBytes    = 5 << 20
	resumeLinkExpiry  = 15 * time.Minute
	resumeFormField   = "file"
	multipartFormType = "multipart/form-data"
)

func (app *Application) CreateResumeHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	userId := app.contextGetUserId(r)

	var (
		text      string
		objectKey *string
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == multipartFormType {
		content, filename, err := readResumeFile(w, r)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		text = string(content)

		if app.objectStore.Enabled() {
			key := storage.ResumeKey(userId, time.Now(), filename)

			err = app.objectStore.Put(r.Context(), key, bytes.NewReader(content), int64(len(content)))
			if err != nil {
				logger.Error("failed to store resume file", "error", err, "key", key)
				app.serverErrorResponse(w, r, err)
				return
			}

			objectKey = &key
		}
	} else {
		var input api.CreateResumeRequest

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

		text = input.Text
	}

	parsed := matching.ParseResume(text)

	resume := domain.Resume{
		UserID:       userId,
		OriginalText: text,
		Skills:       parsed.Skills,
		Experience:   parsed.Experience,
		ObjectKey:    objectKey,
	}

	err := app.resumeRepo.Create(r.Context(), &resume)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("resume stored", "resume_id", resume.ID, "skills", len(resume.Skills))

	err = app.writeJSON(w, http.StatusCreated, app.toResumeResponse(r.Context(), &resume), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetLatestResumeHandler(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

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

	err = app.writeJSON(w, http.StatusOK, app.toResumeResponse(r.Context(), resume), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

var errNoResume = errors.New("upload a resume first")

func readResumeFile(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeBytes)

	err := r.ParseMultipartForm(maxResumeBytes)
	if err != nil {
		return nil, "", fmt.Errorf("resume upload must be a multipart form of at most %d bytes", maxResumeBytes)
	}

	file, header, err := r.FormFile(resumeFormField)
	if err != nil {
		return nil, "", fmt.Errorf("form field %q is required", resumeFormField)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, "", errors.New("resume file must not be empty")
	}

	if !utf8.Valid(content) {
		return nil, "", errors.New("resume file must be plain text")
	}

	return content, header.Filename, nil
}

func (app *Application) toResumeResponse(ctx context.Context, resume *domain.Resume) api.ResumeResponse {
	resp := api.ResumeResponse{
		Id:         resume.ID,
		Skills:     resume.Skills,
		Experience: resume.Experience,
		CreatedAt:  resume.CreatedAt,
	}

	if resume.ObjectKey != nil && app.objectStore.Enabled() {
		url, err := app.objectStore.PresignGet(ctx, *resume.ObjectKey, resumeLinkExpiry)
		if err != nil {
			app.logger.Warn("failed to presign resume link", "error", err, "key", *resume.ObjectKey)
		} else {
			resp.FileUrl = &url
		}
	}

	return resp
}
