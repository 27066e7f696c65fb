package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	jwtmw "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/jwt"
)

// userResponse is the subset of GET /auth/v1/user we use.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthClient verifies access tokens by asking Supabase Auth who they belong to.
type AuthClient struct {
	cfg    Config
	client *http.Client
}

var _ jwtmw.TokenVerifier = (*AuthClient)(nil)

// NewAuthClient creates an AuthClient with the given configuration and HTTP client.
func NewAuthClient(cfg Config, client *http.Client) *AuthClient {
	return &AuthClient{cfg: cfg, client: client}
}

// Verify returns the user owning token.
// 401/403 answers and answers without a user id wrap jwtmw.ErrInvalidToken;
// transport failures and other statuses are returned as plain errors.
func (a *AuthClient) Verify(ctx context.Context, token string) (jwtmw.AuthenticatedUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.URL+"/auth/v1/user", nil)
	if err != nil {
		return jwtmw.AuthenticatedUser{}, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("apikey", a.cfg.ServiceRoleKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		return jwtmw.AuthenticatedUser{}, fmt.Errorf("supabase auth: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close supabase auth response body")
		}
	}()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return jwtmw.AuthenticatedUser{}, fmt.Errorf("%w: supabase auth http %d", jwtmw.ErrInvalidToken, res.StatusCode)
	case res.StatusCode != http.StatusOK:
		return jwtmw.AuthenticatedUser{}, fmt.Errorf("supabase auth http %d", res.StatusCode)
	}

	var body userResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&body); err != nil {
		return jwtmw.AuthenticatedUser{}, fmt.Errorf("decode supabase user: %w", err)
	}
	if body.ID == "" {
		return jwtmw.AuthenticatedUser{}, fmt.Errorf("%w: no user in response", jwtmw.ErrInvalidToken)
	}
	return jwtmw.AuthenticatedUser{ID: body.ID, Email: body.Email}, nil
}
