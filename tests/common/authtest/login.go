//go:build e2e

package authtest

import (
	"net/http"
	"testing"

	resdto "roombook/internal/handler/dto/response"
	"roombook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const loginURL = "/api/auth/login"

// LoginUser logs in through the real endpoint and returns the bearer token.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	body := map[string]string{
		"username": username,
		"password": password,
	}
	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL, body, "")
	require.Equal(t, http.StatusOK, w.Code, "Login failed: %s", w.Body.String())

	var response resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
	require.NotEmpty(t, response.Token, "Login token should not be empty")
	return response.Token
}
