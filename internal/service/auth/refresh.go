package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/unwind-backend/internal/auth"
	"github.com/heartmarshall/unwind-backend/internal/domain"
)

// Refresh exchanges a refresh token for a new token pair. The presented
// token must match the one stored for the user; the stored one is replaced.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*TokenResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 1: Verify signature, expiry and token type.
	userID, err := s.jwt.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Step 2: Compare with the live token of the user.
	stored, err := s.tokens.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	presented := auth.HashToken(input.RefreshToken)
	if subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) != 1 {
		s.log.WarnContext(ctx, "stale refresh token presented",
			slog.String("user_id", userID.String()))
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Load user for the current role.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 4: Rotate.
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}

	return result, nil
}
