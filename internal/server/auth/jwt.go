package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkravchenko/identity-service/internal/common"
)

// Claims is the session token payload: the standard registered claims plus
// the identifier of the authenticated credential.
type Claims struct {
	jwt.RegisteredClaims
	Identifier string
}

// TokenService issues and validates stateless session tokens. Validity is
// purely a function of signature and expiry; no token is stored server-side
// and no single token can be revoked before it expires.
//
// The secret is injected once at construction and never mutated, so the
// service is safe for concurrent use.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secretKey []byte, ttl time.Duration) *TokenService {
	return &TokenService{secretKey: secretKey, ttl: ttl}
}

// Issue builds claims for the given subject expiring after the configured
// TTL and returns the HS256-signed token string.
func (s *TokenService) Issue(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		Identifier: subject,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Validate decodes tokenString and returns its claims.
//
// Failures map onto the common sentinels in check order: structural problems
// yield ErrMalformedToken before any signature work, a signature mismatch
// yields ErrInvalidSignature, and a well-signed but expired token yields
// ErrTokenExpired (never ErrInvalidSignature).
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, common.ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, common.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	default:
		return nil, common.ErrMalformedToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidSignature
	}

	return claims, nil
}
