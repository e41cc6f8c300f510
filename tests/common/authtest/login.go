//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "stablebook/internal/handler/dto/request"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/tests/common/dbtest"
	"stablebook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var auth resdto.AuthResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &auth)
	require.NotEmpty(t, auth.AccessToken, "Access token missing from login response")

	return auth.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestAccount(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
