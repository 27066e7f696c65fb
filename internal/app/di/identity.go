package di

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/adapters"
	wishlisthandler "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/transport/handler"
	wishlistusecase "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/usecase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/config"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/supabase"
	infrahttp "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/http"
	jwtmw "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/jwt"
)

// NewTokenVerifier returns the TokenVerifier selected by kind.
// The Supabase verifier asks Supabase Auth; the JWT verifier checks tokens
// locally with the project's JWT secret.
func NewTokenVerifier(kind string, cfg supabase.Config) (jwtmw.TokenVerifier, error) {
	switch kind {
	case config.AuthVerifierJWT:
		if cfg.JWTSecret == "" {
			return nil, errors.New("SUPABASE_JWT_SECRET is required when AUTH_VERIFIER=jwt")
		}
		return jwtmw.NewHMACVerifier(cfg.JWTSecret), nil
	case config.AuthVerifierSupabase, "":
		if cfg.URL == "" || cfg.ServiceRoleKey == "" {
			return nil, errors.New("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
		}
		return supabase.NewAuthClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout)), nil
	default:
		return nil, fmt.Errorf("unknown token verifier %q", kind)
	}
}

// NewWishlistHandler wires the wishlist feature on top of db.
func NewWishlistHandler(db *gorm.DB) *wishlisthandler.WishlistHandler {
	repo := adapters.NewWishlistRepository(db)
	return wishlisthandler.NewWishlistHandler(wishlistusecase.NewWishlistUsecase(repo))
}

// Models lists the gorm models migrated when RUN_MIGRATIONS is set.
func Models() []any {
	return []any{&adapters.WishlistModel{}}
}
