package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uint, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint
	var reached bool
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		reached = true
		gotID, _ = UserID(c)
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, gotID, reached
}

func TestJWTAuth_MissingToken(t *testing.T) {
	rec, _, reached := runAuth(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	rec, _, reached := runAuth(t, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"userId": 1})
	rec, _, reached := runAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuth_MissingUserClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "someone"})
	rec, _, reached := runAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"userId": 42})
	rec, gotID, reached := runAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, uint(42), gotID)
}
