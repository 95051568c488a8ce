package middleware

import (
	"net/http"

	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// RequireAdmin guards whole route groups (e.g. /admin/...). Anonymous
// callers get 401, authenticated non-admins get 403. Services still check
// the role themselves.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "PERMISSION_DENIED", "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
