package jwtmw

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HMACVerifier verifies Supabase access tokens locally with the project's
// JWT secret, without a round trip to Supabase Auth.
type HMACVerifier struct {
	secret []byte
}

var _ TokenVerifier = (*HMACVerifier)(nil)

// NewHMACVerifier creates a verifier for HS256 tokens signed with secret.
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify checks the signature and expiry of token and returns its subject.
// Any rejection wraps ErrInvalidToken.
func (v *HMACVerifier) Verify(_ context.Context, token string) (AuthenticatedUser, error) {
	if len(v.secret) == 0 {
		return AuthenticatedUser{}, fmt.Errorf("jwt secret is not configured")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return AuthenticatedUser{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// Supabase puts the auth user id (uuid string) in sub
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return AuthenticatedUser{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	return AuthenticatedUser{ID: sub, Email: email}, nil
}
