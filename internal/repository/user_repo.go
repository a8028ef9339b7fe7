package repository

import (
	"context"

	"pomodoro_tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, login, hashed_password, role, created_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Login, &u.HashedPassword, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (username, login, hashed_password, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Username, u.Login, u.HashedPassword, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByLogin matches the login exactly (case-sensitive).
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE login = $1`, login))
}

func (r *UserRepository) SetUsername(ctx context.Context, id int64, username string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET username = $1 WHERE id = $2 RETURNING `+userColumns, username, id))
}

func (r *UserRepository) SetLogin(ctx context.Context, id int64, login string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET login = $1 WHERE id = $2 RETURNING `+userColumns, login, id))
}

func (r *UserRepository) SetPassword(ctx context.Context, id int64, hashed string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET hashed_password = $1 WHERE id = $2 RETURNING `+userColumns, hashed, id))
}

// UpdateByID writes username and role verbatim. The role value is not
// validated against the known roles; admin input is trusted here.
func (r *UserRepository) UpdateByID(ctx context.Context, id int64, username, role string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET username = $1, role = $2 WHERE id = $3 RETURNING `+userColumns,
		username, role, id))
}

// Delete removes the user together with their tasks and statistics in one
// transaction: statistics first (both the user's own and those logged by
// anyone against the user's tasks), then tasks, then the user row.
func (r *UserRepository) Delete(ctx context.Context, id int64) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUser(tx.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM statistics
		 WHERE user_id = $1
		    OR task_id IN (SELECT id FROM tasks WHERE user_id = $1)`, id); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1`, id); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return u, nil
}
