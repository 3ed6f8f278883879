package app

import (
	"context"
	"fmt"

	"github.com/lokomotiv/rink-ticketing/internal/config"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/repository/postgres"
	"github.com/lokomotiv/rink-ticketing/internal/service"
	"github.com/lokomotiv/rink-ticketing/internal/utils/jwt"
	"github.com/lokomotiv/rink-ticketing/internal/utils/password"
	"go.uber.org/zap"
)

// StaffAccount описывает учетную запись, создаваемую из командной строки
type StaffAccount struct {
	Username string
	Password string
	FullName string
	Role     domain.Role
}

// CreateStaff применяет миграции и заводит учетную запись сотрудника
func CreateStaff(ctx context.Context, cfg *config.Config, account StaffAccount) (*domain.User, error) {
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := initDatabase(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, err
	}
	defer dbPool.Close()

	if err := runMigrations(ctx, dbPool, logger); err != nil {
		return nil, err
	}

	auth := service.NewAuthService(
		postgres.NewUserRepository(dbPool),
		password.NewBCryptHasher(password.DefaultCost),
		jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL),
	)

	user, err := auth.Register(ctx, account.Username, account.Password, account.FullName, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}

	logger.Info("staff account created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}
