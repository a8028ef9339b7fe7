package service

import (
	"context"
	"errors"

	"pomodoro_tracker/internal/domain"
	"pomodoro_tracker/internal/logger"
	"pomodoro_tracker/internal/repository"

	"github.com/jackc/pgx/v5"
)

const seedAdminLogin = "admin"

// EnsureInitialAdmin creates the seed admin account once, guarded by an
// existence check on the "admin" login. Safe to call on every boot.
func EnsureInitialAdmin(ctx context.Context, users *repository.UserRepository, password string) (*domain.User, error) {
	existing, err := users.GetByLogin(ctx, seedAdminLogin)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &domain.User{
		Username:       seedAdminLogin,
		Login:          seedAdminLogin,
		HashedPassword: hashed,
		Role:           domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("seed admin created", "id", admin.ID)
	return admin, nil
}
