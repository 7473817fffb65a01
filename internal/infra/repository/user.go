package repository

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*usecase.UserView, error) {
	view := usecase.UserView{
		ID:       u.ID(),
		Username: u.Username().Value(),
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		u.ID(), u.Username().Value(), u.PasswordHash(),
	).Scan(&view.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err, infra.KindFromPgErr(err))
	}

	return &view, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*usecase.UserView, string, error) {
	var (
		view usecase.UserView
		hash string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`, username,
	).Scan(&view.ID, &view.Username, &hash, &view.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	return &view, hash, nil
}
