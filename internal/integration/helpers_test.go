package integration_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/repository"
	"github.com/metinatakli/jobmatch/internal/webhook"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func insertTestUser(t testing.TB, app *TestApp, email, password string) *domain.User {
	user := &domain.User{Email: email}
	require.NoError(t, user.Password.Set(password))

	err := repository.NewPostgresUserRepository(app.DB).Create(context.Background(), user)
	require.NoError(t, err)

	return user
}

func insertTestJob(t testing.TB, app *TestApp, employerId uuid.UUID, title string, requirements ...string) *domain.Job {
	job := &domain.Job{
		EmployerID:   employerId,
		Title:        title,
		Description:  title + " wanted.",
		Requirements: requirements,
	}

	err := repository.NewPostgresJobRepository(app.DB).Create(context.Background(), job)
	require.NoError(t, err)

	return job
}

// login signs in through the API and returns the session cookie.
func login(t testing.TB, app *TestApp, email, password string) []*http.Cookie {
	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	req := prepareRequest(http.MethodPost, "/v1/sessions", strings.NewReader(body), nil, nil)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.NotEmpty(t, res.Cookies(), "login should set a session cookie")

	return res.Cookies()
}

func paystackWebhook(t testing.TB, app *TestApp, event, reference string) *http.Response {
	return paystackEvent(t, app, event, fmt.Sprintf(`{"reference": %q, "status": "success"}`, reference))
}

// paystackEvent posts a signed notification whose data object is dataJSON.
func paystackEvent(t testing.TB, app *TestApp, event, dataJSON string) *http.Response {
	payload := []byte(fmt.Sprintf(`{"event": %q, "data": %s}`, event, dataJSON))

	req := prepareRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewReader(payload), map[string]string{
		webhook.PaystackSignatureHeader: hex.EncodeToString(webhook.Sign([]byte(testPaystackSecret), payload)),
	}, nil)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec.Result()
}

func paymentStatus(t testing.TB, app *TestApp, externalRef string) domain.PaymentStatus {
	var status string

	err := app.DB.QueryRow(context.Background(),
		"SELECT status FROM payments WHERE external_ref = $1", externalRef).Scan(&status)
	require.NoError(t, err)

	return domain.PaymentStatus(status)
}

func userPremium(t testing.TB, app *TestApp, id uuid.UUID) bool {
	var premium bool

	err := app.DB.QueryRow(context.Background(), "SELECT premium FROM users WHERE id = $1", id).Scan(&premium)
	require.NoError(t, err)

	return premium
}

func serve(app *TestApp, req *http.Request) *http.Response {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec.Result()
}
