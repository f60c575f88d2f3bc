package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopcart/internal/models"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Service issues and verifies signed bearer tokens carrying identity claims.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService returns a token service signing with the given secret. An empty
// secret is refused so the process fails at startup rather than issuing
// unverifiable tokens.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token embedding the user's identity, valid for the
// configured TTL from now.
func (s *Service) Issue(fullName, preferredName, email string) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		FullName:      fullName,
		PreferredName: preferredName,
		Email:         email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// claims. Expired tokens are reported as ErrTokenExpired; any other failure
// (tampering, foreign secret, malformed input) as ErrTokenInvalid.
func (s *Service) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is what we expect
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
