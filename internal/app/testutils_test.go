package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/api"
	"github.com/metinatakli/jobmatch/internal/config"
	"github.com/metinatakli/jobmatch/internal/mailer"
	"github.com/metinatakli/jobmatch/internal/storage"
	"github.com/metinatakli/jobmatch/internal/validator"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: &config.Config{
			Env:     "test",
			Matches: config.MatchesConfig{FreeLimit: 3},
		},
		validator:      validator.NewValidator(),
		logger:         testLogger,
		mailer:         mailer.NewMockMailer(),
		sessionManager: scs.New(),
		objectStore:    storage.NoopStore{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, userId uuid.UUID) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId.String())

	return r.WithContext(ctx)
}

// authenticated wraps h the way the generated router does for operations
// declaring cookieAuth.
func authenticated(app *Application, h http.HandlerFunc) http.Handler {
	secured := app.sessionManager.LoadAndSave(app.requireAuthentication(h))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), api.CookieAuthScopes, []string{})
		secured.ServeHTTP(w, r.WithContext(ctx))
	})
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}

		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if w.Code != tt.wantStatus {
		t.Errorf("Status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
	}

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func errCase(status int, message string) struct {
	wantStatus     int
	wantErrMessage string
} {
	return struct {
		wantStatus     int
		wantErrMessage string
	}{wantStatus: status, wantErrMessage: message}
}

func ptr[T any](v T) *T {
	return &v
}
