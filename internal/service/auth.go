package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/utils/jwt"
	"github.com/lokomotiv/rink-ticketing/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Register создает учетную запись сотрудника
func (s *AuthService) Register(ctx context.Context, username, userPassword, fullName string, role domain.Role) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	if err := password.ValidateStrength(userPassword); err != nil {
		return nil, domain.NewValidationError("password", err.Error())
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to hash password for user %q: %w", username, err)
	}

	user, err := s.userRepo.CreateUser(ctx, username, hash, strings.TrimSpace(fullName), role)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to register user %q: %w", username, err)
	}

	return user, nil
}

// Login аутентифицирует сотрудника и выдает токен с его ролью
func (s *AuthService) Login(ctx context.Context, username, userPassword string) (string, *domain.User, error) {
	if username == "" || userPassword == "" {
		return "", nil, domain.NewValidationError("credentials", "username and password are required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth service: failed to get user %q: %w", username, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, user, nil
}

// Me возвращает профиль текущего сотрудника
func (s *AuthService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to get user %d: %w", actor.UserID, err)
	}
	return user, nil
}
