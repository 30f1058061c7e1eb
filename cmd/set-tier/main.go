// Command set-tier changes a user's subscription tier and, optionally, the
// letters limit. The generated-letters counter is left untouched.
//
// Usage:
//
//	set-tier --email=user@example.com --tier=premium [--limit=50]
//	set-tier --user='google-oauth2|1234' --tier=unlimited
//
// Requires DATABASE_DSN environment variable to be set (a .env file is read
// when present).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/visaletter-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/visaletter-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/visaletter-backend/internal/config"
	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/service/entitlement"
	"github.com/heartmarshall/visaletter-backend/internal/service/user"
)

func main() {
	userID := flag.String("user", "", "identity provider subject of the user")
	email := flag.String("email", "", "email of the user")
	tier := flag.String("tier", "", "subscription tier: free, basic, premium or unlimited")
	limit := flag.Int("limit", -1, "new letters limit; negative keeps the current limit")
	flag.Parse()

	if (*userID == "" && *email == "") || *tier == "" {
		fmt.Fprintln(os.Stderr, "Usage: set-tier (--user=ID | --email=EMAIL) --tier=TIER [--limit=N]")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: dsn, MaxConns: 2})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	users := userrepo.New(pool)
	svc := user.NewService(logger, users, entitlement.NewTracker(logger, users, nil))

	input := user.SetSubscriptionInput{
		UserID: *userID,
		Email:  *email,
		Tier:   domain.SubscriptionType(*tier),
	}
	if *limit >= 0 {
		input.Limit = limit
	}

	u, err := svc.SetSubscription(ctx, input)
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	case err != nil:
		log.Fatalf("set tier: %v", err)
	}

	fmt.Printf("User %s (%s): tier=%s, letters %d/%d.\n",
		u.ID, u.Email, u.SubscriptionType, u.LettersGenerated, u.LettersLimit)
}
