//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	resdto "roombook/internal/handler/dto/response"
	"roombook/tests/common/dbtest"
	"roombook/tests/common/httptest"
	"roombook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: valid credentials return a token and profile", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")

		body := map[string]string{"username": "amoore", "password": dbtest.TestPassword}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusOK, w.Code, "Login should succeed: %s", w.Body.String())

		var response resdto.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
		require.NotEmpty(t, response.Token)
		require.NotNil(t, response.User)
		require.Equal(t, "amoore", response.User.Username)

		// Token authenticates subsequent requests
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, response.Token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Normal case: username is matched case-insensitively", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")

		body := map[string]string{"username": "AMoore", "password": dbtest.TestPassword}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error case: wrong password returns 401", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")

		body := map[string]string{"username": "amoore", "password": "wrong-password"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: deactivated account cannot log in", func() {
		t := s.T()

		id := dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		_, err := s.DB.Exec(context.Background(), "UPDATE users SET is_active = FALSE WHERE id = $1", id)
		require.NoError(t, err)

		body := map[string]string{"username": "amoore", "password": dbtest.TestPassword}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: requests without a token are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
