package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// Logout ends every session of the caller by revoking all of their refresh
// tokens. Access tokens already issued stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken verifies an access token for the auth middleware. Tokens
// carrying a role this service does not know are rejected.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil || !domain.UserRole(role).IsValid() {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}

// CleanupExpiredTokens deletes expired and revoked refresh tokens and returns
// how many were removed.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}
	s.log.InfoContext(ctx, "refresh tokens cleaned up", slog.Int("deleted", n))
	return n, nil
}
