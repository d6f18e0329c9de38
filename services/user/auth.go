package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "mentepro/database/repository/user"
	"mentepro/models"
	"mentepro/utils"
)

// Session tokens stay valid for one working day.
const tokenTTL = 24 * time.Hour

// DefaultUserService is the production implementation. Session token hashes
// live in the auth cache with a Mongo copy for cache misses.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
	Logger    *zap.Logger
}

// Register creates a staff account with a hashed password.
func (s *DefaultUserService) Register(ctx context.Context, email, password, name, role string) (*models.User, error) {
	if len(password) < 6 {
		return nil, errors.New("A senha deve ter pelo menos 6 caracteres.")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, errors.New("e-mail já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.Logger.Info("staff account created", zap.String("userId", account.ID))
	return account, nil
}

// SignIn verifies the credentials and issues a session token. The token's
// hash is stored on the account and cached for the auth middleware.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, errors.New("credenciais inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("credenciais inválidas")
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	account.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + account.ID
		if err := s.AuthCache.Set(ctx, cacheKey, account.TokenHash, utils.AuthCacheTTL).Err(); err != nil {
			s.Logger.Warn("failed to cache session token", zap.Error(err))
		}
	}

	s.Logger.Info("staff signed in", zap.String("userId", account.ID))
	return &AuthResult{User: account, Token: token}, nil
}

// RevokeToken invalidates the stored session for a user.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	account, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}

	account.TokenHash = ""
	if err := s.Repo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + userID
		if err := s.AuthCache.Del(ctx, cacheKey).Err(); err != nil {
			s.Logger.Warn("failed to clear auth cache on revoke", zap.Error(err))
		}
	}
	return nil
}

// GetByID retrieves a staff account.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
