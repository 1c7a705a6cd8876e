package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nil repos for the same reason as the appointment tests: these paths
// must bail out before touching storage.
var ah = &AuthHandler{}

func TestLogoutAllRequiresAuthentication(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/v1/auth/logout-all", "", 0)
	require.NoError(t, ah.LogoutAll(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRequiresRefreshToken(t *testing.T) {
	for _, body := range []string{`{}`, `{"refresh_token":"  "}`} {
		c, rec := newContext(http.MethodPost, "/v1/auth/logout", body, 0)
		require.NoError(t, ah.Logout(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	for _, body := range []string{`{}`, `{"email":"a@b.c"}`, `{"password":"x"}`} {
		c, rec := newContext(http.MethodPost, "/v1/auth/register", body, 0)
		require.NoError(t, ah.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
