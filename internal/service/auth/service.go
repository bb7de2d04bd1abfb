package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
)

// userRepo defines user persistence operations needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenStore keeps the hash of the single live refresh token per user.
type tokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, tokenHash string) error
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// passwordHasher hashes and verifies user passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// jwtManager defines JWT token operations.
type jwtManager interface {
	AccessTTL() time.Duration
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (raw string, hash string, err error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
}

// Service implements authentication business logic.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenStore
	hasher passwordHasher
	jwt    jwtManager
	now    func() time.Time
}

// NewService creates a new auth service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenStore,
	hasher passwordHasher,
	jwt jwtManager,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
		jwt:    jwt,
		now:    time.Now,
	}
}

// issueTokens generates a token pair and stores the refresh token hash,
// replacing whatever token the user held before.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*TokenResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, refreshHash, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokens.Save(ctx, user.ID, refreshHash); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    int64(s.jwt.AccessTTL().Seconds()),
	}, nil
}
