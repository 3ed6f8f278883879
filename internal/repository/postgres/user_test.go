package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "password_hash", "full_name", "role", "created_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(int64(1), "cashier", "hash", "Касса 1", domain.RoleCashier, time.Now())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("cashier", "hash", "Касса 1", domain.RoleCashier).
			WillReturnRows(rows)

		user, err := repo.CreateUser(ctx, "cashier", "hash", "Касса 1", domain.RoleCashier)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "cashier", user.Username)
		assert.Equal(t, domain.RoleCashier, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User already exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("admin", "hash", "", domain.RoleAdmin).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, "admin", "hash", "", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("admin", "hash", "", domain.RoleAdmin).
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, "admin", "hash", "", domain.RoleAdmin)
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(int64(2), "operator", "hash", "", domain.RoleOperator, time.Now())

		mock.ExpectQuery(`SELECT id, username, password_hash, full_name, role, created_at FROM users WHERE username`).
			WithArgs("operator").
			WillReturnRows(rows)

		user, err := repo.GetUserByUsername(ctx, "operator")
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		assert.Equal(t, domain.RoleOperator, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, username, password_hash, full_name, role, created_at FROM users WHERE username`).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(int64(3), "admin", "hash", "Администратор", domain.RoleAdmin, time.Now())

		mock.ExpectQuery(`SELECT id, username, password_hash, full_name, role, created_at FROM users WHERE id`).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Администратор", user.FullName)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, username, password_hash, full_name, role, created_at FROM users WHERE id`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
