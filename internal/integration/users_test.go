package integration_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	BaseSuite
}

func TestUserSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestRegisterUser() {
	scenarios := []Scenario{
		{
			Name:             "returns 400 for request with malformed JSON",
			Method:           http.MethodPost,
			URL:              "/v1/users",
			Body:             strings.NewReader(`{"bad":"json"`),
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "body contains badly-formed JSON"}`,
		},
		{
			Name:           "returns 422 for invalid input data",
			Method:         http.MethodPost,
			URL:            "/v1/users",
			Body:           strings.NewReader(`{"email": "invalid-email", "password": "123"}`),
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedResponse: `{
				"message": "One or more fields are invalid",
				"validationErrors": [
					{"field": "Email", "issue": "must be a valid email address"},
					{"field": "Password", "issue": "must be 8 to 72 characters long and include at least one uppercase letter, one lowercase letter, one number, and one special character (!@#$%^&*)."}
				]
			}`,
		},
		{
			Name:             "returns 400 when email already exists",
			Method:           http.MethodPost,
			URL:              "/v1/users",
			Body:             strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword)),
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "invalid input data"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				insertTestUser(t, app, TestUserEmail, TestUserPassword)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var count int
				err := app.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM users WHERE email = $1", TestUserEmail).Scan(&count)
				require.NoError(t, err)
				require.Equal(t, 1, count, "should not create a new user")
				require.Empty(t, app.Mailer.Sent(), "should not send any emails")
			},
		},
		{
			Name:           "successfully registers a new user",
			Method:         http.MethodPost,
			URL:            "/v1/users",
			Body:           strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword)),
			ExpectedStatus: http.StatusCreated,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var premium bool
				var status string
				err := app.DB.QueryRow(context.Background(),
					"SELECT premium, subscription_status FROM users WHERE email = $1", TestUserEmail).Scan(&premium, &status)
				require.NoError(t, err)
				require.False(t, premium)
				require.Equal(t, "none", status)

				require.Eventually(t, func() bool {
					return len(app.Mailer.Sent()) == 1
				}, waitFor, tick, "welcome email should be sent")

				require.Equal(t, []string{"user_welcome.tmpl"}, app.Mailer.SentTo(TestUserEmail))
			},
		},
	}

	for _, scenario := range scenarios {
		s.SetupTest()
		scenario.Run(s.T(), s.app)
	}
}

func (s *UserTestSuite) TestLoginAndCurrentUser() {
	user := insertTestUser(s.T(), s.app, TestUserEmail, TestUserPassword)

	Scenario{
		Name:             "returns 401 for a wrong password",
		Method:           http.MethodPost,
		URL:              "/v1/sessions",
		Body:             strings.NewReader(fmt.Sprintf(`{"email": %q, "password": "Wrong123!@#"}`, TestUserEmail)),
		ExpectedStatus:   http.StatusUnauthorized,
		ExpectedResponse: `{"message": "Invalid authentication credentials"}`,
	}.Run(s.T(), s.app)

	Scenario{
		Name:             "returns 401 when user is not logged in",
		Method:           http.MethodGet,
		URL:              "/v1/users/me",
		ExpectedStatus:   http.StatusUnauthorized,
		ExpectedResponse: `{"message": "You must be authenticated to access this resource"}`,
	}.Run(s.T(), s.app)

	cookies := login(s.T(), s.app, TestUserEmail, TestUserPassword)

	s.Run("the session is stored in redis", func() {
		var token string
		for _, c := range cookies {
			if c.Name == "session_id" {
				token = c.Value
			}
		}
		s.Require().NotEmpty(token)

		n, err := s.app.RedisClient.Exists(s.T().Context(), "scs:session:"+token).Result()
		s.Require().NoError(err)
		s.Equal(int64(1), n)
	})

	Scenario{
		Name:           "successfully retrieves current user",
		Method:         http.MethodGet,
		URL:            "/v1/users/me",
		Cookies:        cookies,
		ExpectedStatus: http.StatusOK,
		ExpectedResponse: fmt.Sprintf(`{
			"id": %q,
			"email": %q,
			"premium": false,
			"subscriptionStatus": "none"
		}`, user.ID, TestUserEmail),
	}.Run(s.T(), s.app)

	Scenario{
		Name:           "logs out",
		Method:         http.MethodDelete,
		URL:            "/v1/sessions",
		Cookies:        cookies,
		ExpectedStatus: http.StatusNoContent,
	}.Run(s.T(), s.app)

	Scenario{
		Name:           "the old session is gone after logout",
		Method:         http.MethodGet,
		URL:            "/v1/users/me",
		Cookies:        cookies,
		ExpectedStatus: http.StatusUnauthorized,
	}.Run(s.T(), s.app)
}
