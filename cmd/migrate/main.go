// Command migrate applies pending database migrations and exits.
//
// Usage:
//
//	migrate
//
// Reads the same configuration as the server (CONFIG_PATH, DATABASE_DSN).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/heartmarshall/library-backend/internal/app"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}
