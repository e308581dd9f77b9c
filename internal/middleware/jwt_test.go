package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsalanh/quicknotes/internal/utils"
)

const testSecret = "test-secret"

func newProtectedServer() *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"user_id": c.Get(UserIDKey)})
	}, JWTAuth(testSecret))
	return e
}

func doProtected(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	rec := doProtected(newProtectedServer(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization token is required")
}

func TestJWTAuth_WrongScheme(t *testing.T) {
	t.Parallel()

	rec := doProtected(newProtectedServer(), "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization token is required")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	rec := doProtected(newProtectedServer(), "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	claims := utils.AccessClaims{
		UserID: 9,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := doProtected(newProtectedServer(), "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestJWTAuth_ValidTokenPassesUserID(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, 9)
	require.NoError(t, err)

	rec := doProtected(newProtectedServer(), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":9}`, rec.Body.String())
}
