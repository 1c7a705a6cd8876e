package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelqm/barber-agenda/internal/utils"
)

const testSecret = "test-secret"

func doRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/appointments", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTAuth(testSecret)
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	require.NoError(t, err)
	return rec, c
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := doRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	rec, _ := doRequest(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 3, "OWNER", 5)
	require.NoError(t, err)
	rec, _ := doRequest(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidTokenInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 3, "OWNER", 5)
	require.NoError(t, err)
	rec, c := doRequest(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	// claims arrive as JSON numbers
	assert.Equal(t, float64(3), c.Get("user_id"))
	assert.Equal(t, "OWNER", c.Get("role"))
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	run := func(role interface{}) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		mw := RequireRole("OWNER")
		err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
		require.NoError(t, err)
		return rec
	}

	assert.Equal(t, http.StatusOK, run("OWNER").Code)
	assert.Equal(t, http.StatusForbidden, run("CUSTOMER").Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}
