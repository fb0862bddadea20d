package services

import (
	"context"
	"fmt"
	"time"

	"github.com/01moynul/shopfront-api/internal/apperr"
	"github.com/01moynul/shopfront-api/internal/models"
	"go.uber.org/zap"
)

// AuthStatus is the outcome of a credential check.
type AuthStatus int

const (
	InvalidCredentials AuthStatus = iota
	Authenticated
	Inactive
)

func (s AuthStatus) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Inactive:
		return "inactive"
	default:
		return "invalid_credentials"
	}
}

// AuthResult carries a User only when Status is Authenticated.
type AuthResult struct {
	Status AuthStatus
	User   *models.User
}

type UserService struct {
	repo   UserRepository
	hasher PasswordHasher
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService builds a UserService that hashes passwords with hasher.
func NewUserService(repo UserRepository, hasher PasswordHasher, log *zap.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: log, now: time.Now}
}

// Create registers user with the given plaintext password. The returned user
// carries the stored hash; callers must not serialize it.
func (s *UserService) Create(ctx context.Context, user *models.User, password string) (*models.User, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("user with email '%s' already exists", user.Email)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	user.IsActive = true
	user.CreatedAt = s.now().Unix()

	stored, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info("user registered", zap.Int64("user_id", stored.ID))
	return stored, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// ValidateCredentials never compares hashes for unknown or inactive users.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return AuthResult{Status: InvalidCredentials}, nil
	}
	if !user.IsActive {
		return AuthResult{Status: Inactive}, nil
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return AuthResult{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return AuthResult{Status: InvalidCredentials}, nil
	}
	return AuthResult{Status: Authenticated, User: user}, nil
}
