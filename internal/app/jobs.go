package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/adapter/notify"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/borrowing"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/library-backend/internal/adapter/redis"
	"github.com/heartmarshall/library-backend/internal/auth"
	"github.com/heartmarshall/library-backend/internal/config"
	authsvc "github.com/heartmarshall/library-backend/internal/service/auth"
	"github.com/heartmarshall/library-backend/internal/service/reminder"
)

// Operational one-shot commands. Each loads the same configuration as the
// server and exits when done.

// Migrate applies all pending database migrations.
func Migrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)
	return postgres.Migrate(ctx, cfg.Database.DSN, logger)
}

// RemindDue sends reminders for borrowings due on day's UTC date. It is
// meant to be run once a day by an external scheduler.
func RemindDue(ctx context.Context, day time.Time) (reminder.Report, error) {
	cfg, logger, pool, err := openTool(ctx)
	if err != nil {
		return reminder.Report{}, err
	}
	defer pool.Close()

	svc := reminder.NewService(logger, borrowing.New(pool), notify.New(cfg.Mail, logger))

	if cfg.Redis.Enabled() {
		rc, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.WarnContext(ctx, "redis unavailable, reminders not deduplicated",
				slog.String("error", err.Error()))
		} else {
			defer rc.Close()
			svc.SetDedup(rc)
		}
	}

	return svc.Sweep(ctx, day)
}

// CleanupTokens deletes expired and revoked refresh tokens.
func CleanupTokens(ctx context.Context) (int, error) {
	cfg, logger, pool, err := openTool(ctx)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, user.New(pool), token.New(pool), jwt, cfg.Auth)
	return svc.CleanupExpiredTokens(ctx)
}

// Promote grants the admin role to the user with the given username.
func Promote(ctx context.Context, username string) error {
	_, logger, pool, err := openTool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := user.New(pool).PromoteToAdmin(ctx, username); err != nil {
		return fmt.Errorf("promote %q: %w", username, err)
	}
	logger.InfoContext(ctx, "user promoted to admin", slog.String("username", username))
	return nil
}

func openTool(ctx context.Context) (*config.Config, *slog.Logger, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := NewLogger(cfg.Log)
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, pool, nil
}
