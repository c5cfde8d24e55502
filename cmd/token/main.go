// Command token prints an access token for calling the API from scripts and
// local tooling. It signs with JWT_SECRET_KEY from the environment.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cmlabs-hris/hr-data-service/internal/config"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "local-dev", "subject recorded in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to JWT_ACCESS_EXPIRATION_TIME")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	expiration := cfg.JWT.AccessExpiration
	if *ttl > 0 {
		expiration = *ttl
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, expiration).GenerateAccessToken(*subject)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		os.Exit(1)
	}

	slog.Info("token issued", "sub", *subject, "expires_at", time.Unix(expiresAt, 0).UTC())
	fmt.Println(token)
}
