package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/auth"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
//
// Presenting a token that was already rotated away is treated as theft: every
// refresh token of that user is revoked, forcing a fresh login on all devices.
// Unknown, expired, replayed tokens and deleted users all yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		s.revokeFamily(ctx, token.UserID, "refresh token replayed")
		return nil, domain.ErrUnauthorized
	}
	if token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	revoked, err := s.tokens.RevokeByID(ctx, token.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}
	if !revoked {
		// Another request rotated the same token between our read and write.
		s.revokeFamily(ctx, token.UserID, "concurrent refresh with one token")
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}

// revokeFamily revokes all of a user's refresh tokens. Failure is logged only;
// the caller rejects the request either way.
func (s *Service) revokeFamily(ctx context.Context, userID uuid.UUID, reason string) {
	s.log.WarnContext(ctx, "revoking all refresh tokens",
		slog.String("user_id", userID.String()),
		slog.String("reason", reason),
	)
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		s.log.ErrorContext(ctx, "revoke token family failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}
