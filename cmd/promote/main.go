// Command promote grants the admin role to a user by username.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --username=alice
//
// Reads the same configuration as the server (CONFIG_PATH, DATABASE_DSN).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/heartmarshall/library-backend/internal/app"
	"github.com/heartmarshall/library-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the user to promote to admin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := app.Promote(ctx, *username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Printf("No non-admin user found with username %q.\n", *username)
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "promote: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User %q promoted to admin.\n", *username)
}
