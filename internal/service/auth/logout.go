package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// Logout revokes the refresh token of the authenticated user.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.Delete(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout delete token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns the caller identity.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (ctxutil.Identity, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return ctxutil.Identity{UserID: userID, Role: role}, nil
}
