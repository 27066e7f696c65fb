package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/api"
)

// ContextUserID is the gin context key holding the authenticated user's id.
const ContextUserID = "userID"

// Messages returned with 401 responses.
const (
	MsgNoToken      = "no token provided"
	MsgInvalidToken = "invalid or expired token"
)

// ErrInvalidToken is returned by verifiers when a token is rejected.
var ErrInvalidToken = errors.New("invalid token")

// AuthenticatedUser is the identity resolved from a bearer token.
type AuthenticatedUser struct {
	ID    string // Supabase auth user id (uuid string)
	Email string
}

// TokenVerifier resolves a bearer token to the user it was issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (AuthenticatedUser, error)
}

type userCtxKey struct{}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u AuthenticatedUser) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext returns the user stored by AuthRequired.
func UserFromContext(ctx context.Context) (AuthenticatedUser, bool) {
	u, ok := ctx.Value(userCtxKey{}).(AuthenticatedUser)
	return u, ok
}

// AuthRequired returns a Gin middleware function that verifies the bearer
// token with verifier and restricts access to authenticated users only.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get bearer token from the Authorization header
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: MsgNoToken})
			return
		}

		// 2. Resolve the user
		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil || user.ID == "" {
			if err != nil && !errors.Is(err, ErrInvalidToken) {
				// Verifier could not reach its backend; still a 401 for the client
				logrus.WithError(err).Warn("token verification failed")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: MsgInvalidToken})
			return
		}

		// 3. Expose the user to handlers and downstream calls
		c.Set(ContextUserID, user.ID)
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// bearerToken extracts the credentials of a "Bearer" Authorization header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
