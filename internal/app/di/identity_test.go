package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/config"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/supabase"
	jwtmw "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/jwt"
)

func TestNewTokenVerifier(t *testing.T) {
	full := supabase.Config{URL: "https://proj.supabase.co", ServiceRoleKey: "srk", JWTSecret: "s"}

	tests := []struct {
		name    string
		kind    string
		cfg     supabase.Config
		want    any
		wantErr bool
	}{
		{"supabase", config.AuthVerifierSupabase, full, &supabase.AuthClient{}, false},
		{"empty kind defaults to supabase", "", full, &supabase.AuthClient{}, false},
		{"jwt", config.AuthVerifierJWT, full, &jwtmw.HMACVerifier{}, false},
		{"jwt without secret", config.AuthVerifierJWT, supabase.Config{}, nil, true},
		{"supabase without url", config.AuthVerifierSupabase, supabase.Config{JWTSecret: "s"}, nil, true},
		{"unknown kind", "ldap", full, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewTokenVerifier(tt.kind, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, v)
		})
	}
}

func TestModels(t *testing.T) {
	assert.Len(t, Models(), 1)
}
