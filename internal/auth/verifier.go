package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated is the single failure the verifier reports. Callers are
// never told why verification failed; the reason is only logged at debug
// level.
var ErrUnauthenticated = errors.New("unauthenticated")

const bearerPrefix = "Bearer "

// Verifier validates bearer credentials and issues signed tokens. Verification
// is pure: no refresh, no revocation list.
type Verifier struct {
	secret []byte
	ttl    time.Duration
}

func NewVerifier(secret string, ttl time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the given user id.
func (v *Verifier) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
	})
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyBearer extracts the token from an Authorization header value and
// returns the owning user's id. Missing header, missing Bearer prefix, bad
// signature, expiry and malformed claims all collapse into ErrUnauthenticated.
func (v *Verifier) VerifyBearer(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		slog.Debug("Missing or malformed Authorization header")
		return "", ErrUnauthenticated
	}
	return v.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
}

// Verify checks signature and expiry of a raw token string.
func (v *Verifier) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		slog.Debug("Token verification failed", "error", err)
		return "", ErrUnauthenticated
	}
	if claims.Subject == "" {
		slog.Debug("Token has no subject claim")
		return "", ErrUnauthenticated
	}
	return claims.Subject, nil
}
