// Command token prints a signed access token for personal use of the API.
//
// Usage:
//
//	token [--user=<uuid>] [--ttl=720h]
//
// A new user ID is generated when --user is omitted. Requires the same
// AUTH_JWT_SECRET (and issuer) as the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/auth"
	"github.com/heartmarshall/tango-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "user ID to issue the token for (default: new random ID)")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		if userID, err = uuid.Parse(*user); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --user %q: %v\n", *user, err)
			os.Exit(1)
		}
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, expires, err := manager.GenerateAccessTokenTTL(userID, lifetime)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Printf("user:    %s\n", userID)
	fmt.Printf("expires: %s\n", expires.Format(time.RFC3339))
	fmt.Println(token)
}
