package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/author"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/book"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/borrowing"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/reservation"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/score"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/library-backend/internal/auth"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/metrics"
	authsvc "github.com/heartmarshall/library-backend/internal/service/auth"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
	"github.com/heartmarshall/library-backend/internal/service/lending"
	scoresvc "github.com/heartmarshall/library-backend/internal/service/score"
	"github.com/heartmarshall/library-backend/internal/telemetry"
	"github.com/heartmarshall/library-backend/internal/transport/dataloader"
	"github.com/heartmarshall/library-backend/internal/transport/middleware"
	"github.com/heartmarshall/library-backend/internal/transport/rest"
)

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails. Shutdown is graceful within server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Tracing, Version)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	m := metrics.New()
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, m, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}

// openDatabase connects the pool and applies migrations when configured.
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)))
	return pool, nil
}

// NewHandler wires repositories, services and transport into the root
// http.Handler.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) http.Handler {
	users := user.New(pool)
	tokens := token.New(pool)
	authors := author.New(pool)
	books := book.New(pool)
	borrowings := borrowing.New(pool)
	reservations := reservation.New(pool)
	scores := score.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwt, cfg.Auth)
	catalogService := catalog.NewService(logger, authors, books)
	lendingService := lending.NewService(logger, users, books, borrowings, reservations, tx, m, cfg.Lending)
	scoreService := scoresvc.NewService(logger, books, scores, cfg.Score)

	return rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Lending: rest.NewLendingHandler(lendingService, logger),
		Score:   rest.NewScoreHandler(scoreService, logger),
		Admin:   rest.NewAdminHandler(lendingService, logger),
		Health:  rest.NewHealthHandler(BuildVersion(), rest.Dependency{Name: "postgres", Pinger: pool}),
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
			dataloader.Middleware(authors),
		},
		AuthLimit:     limiter.Limit(cfg.RateLimit.AuthPerMinute),
		Metrics:       m,
		MetricsHandle: m.Handler(),
	})
}
