// Command devtoken mints a Supabase-compatible access token for local runs
// with AUTH_VERIFIER=jwt.
//
//	go run ./cmd/devtoken -user 00000000-0000-0000-0000-000000000001
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/supabase"
	jwtmw "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/jwt"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/logger"
)

func main() {
	userID := flag.String("user", "", "user id (sub claim); random uuid when empty")
	email := flag.String("email", "dev@example.com", "email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env")
	}
	log := logger.Setup(os.Getenv("LOG_LEVEL"), os.Stderr)

	cfg := supabase.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("SUPABASE_JWT_SECRET is not set")
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	token, err := jwtmw.NewGenerator(cfg.JWTSecret, *ttl).GenerateToken(*userID, *email)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.WithFields(logrus.Fields{"user_id": *userID, "expires_in": ttl.String()}).Info("token generated")
	fmt.Println(token)
}
