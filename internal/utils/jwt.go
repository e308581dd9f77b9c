package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is fixed: a token expires exactly one hour after issuance
// and cannot be refreshed or revoked earlier.
const AccessTokenTTL = time.Hour

var (
	// ErrTokenExpired marks a well-formed, correctly signed token past its
	// expiration.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid marks a malformed token, a wrong signature or
	// unexpected claims. A missing token is not this service's concern;
	// the middleware handles absence separately.
	ErrTokenInvalid = errors.New("token invalid")
)

// AccessClaims is the token payload: the subject user id under the `id`
// key, plus standard issued-at and expiry claims.
type AccessClaims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// NewAccessToken signs an HS256 JWT identifying userID.
func NewAccessToken(secret string, userID int64) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies a token string and returns the subject user id.
// Expired and invalid tokens yield distinct sentinels.
func ParseAccessToken(secret, raw string) (int64, error) {
	claims := &AccessClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !tok.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
