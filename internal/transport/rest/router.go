package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/library-backend/internal/transport/middleware"
)

type requestObserver interface {
	ObserveRequest(route, method string, status int, d time.Duration)
}

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Lending *LendingHandler
	Score   *ScoreHandler
	Admin   *AdminHandler
	Health  *HealthHandler

	// Global wraps every route, outermost first (request id, logging,
	// recovery, CORS, authentication, dataloaders).
	Global []middleware.Middleware
	// AuthLimit rate-limits the anonymous /auth endpoints. Optional.
	AuthLimit middleware.Middleware
	// Metrics observes every route and serves /metrics. Optional.
	Metrics       requestObserver
	MetricsHandle http.Handler
}

// NewRouter builds the HTTP route table.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		chain := append([]middleware.Middleware{middleware.Instrument(pattern, d.Metrics)}, mws...)
		mux.Handle(pattern, middleware.Chain(chain...)(h))
	}
	user := middleware.Middleware(middleware.RequireUser)
	admin := middleware.Middleware(middleware.RequireAdmin)
	limited := []middleware.Middleware{}
	if d.AuthLimit != nil {
		limited = append(limited, d.AuthLimit)
	}

	// Probes and metrics.
	handle("GET /live", d.Health.Live)
	handle("GET /ready", d.Health.Ready)
	handle("GET /health", d.Health.Health)
	if d.MetricsHandle != nil {
		mux.Handle("GET /metrics", d.MetricsHandle)
	}

	// Auth.
	handle("POST /auth/register", d.Auth.Register, limited...)
	handle("POST /auth/login", d.Auth.Login, limited...)
	handle("POST /auth/refresh", d.Auth.Refresh, limited...)
	handle("POST /auth/logout", d.Auth.Logout, user)

	// Catalog: reads are public, writes need a user and the service
	// enforces the admin role.
	handle("GET /books", d.Catalog.ListBooks)
	handle("GET /books/{id}", d.Catalog.GetBook)
	handle("POST /books", d.Catalog.CreateBook, user)
	handle("PUT /books/{id}", d.Catalog.UpdateBook, user)
	handle("DELETE /books/{id}", d.Catalog.DeleteBook, user)
	handle("GET /authors", d.Catalog.ListAuthors, user)
	handle("GET /authors/{id}", d.Catalog.GetAuthor, user)
	handle("POST /authors", d.Catalog.CreateAuthor, user)
	handle("PUT /authors/{id}", d.Catalog.UpdateAuthor, user)
	handle("DELETE /authors/{id}", d.Catalog.DeleteAuthor, user)

	// Lending.
	handle("POST /borrowings", d.Lending.Borrow, user)
	handle("GET /borrowings", d.Lending.ListBorrowings, user)
	handle("POST /borrowings/{id}/return", d.Lending.Return, user)
	handle("POST /reservations", d.Lending.Reserve, user)
	handle("GET /reservations", d.Lending.ListReservations, user)

	// Scores.
	handle("POST /scores", d.Score.Submit, user)

	// Administration.
	handle("DELETE /admin/reservations/{id}", d.Admin.DeleteReservation, admin)

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})

	return middleware.Chain(d.Global...)(mux)
}
