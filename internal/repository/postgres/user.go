package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// UserRepository реализует репозиторий сотрудников.
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает нового сотрудника
func (r *UserRepository) CreateUser(ctx context.Context, username, passwordHash, fullName string, role domain.Role) (*domain.User, error) {
	user := &domain.User{}

	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO users (username, password_hash, full_name, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, password_hash, full_name, role, created_at`,
		username, passwordHash, fullName, role,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.Role, &user.CreatedAt)

	if err != nil {
		// Проверка на уникальность логина (код ошибки PostgreSQL)
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", username, err)
	}

	return user, nil
}

// GetUserByUsername получает сотрудника по логину
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}

	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, username, password_hash, full_name, role, created_at
		 FROM users
		 WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by username %q: %w", username, err)
	}

	return user, nil
}

// GetUserByID получает сотрудника по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user := &domain.User{}

	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, username, password_hash, full_name, role, created_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}
