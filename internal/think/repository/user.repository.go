package repository

import (
	"context"
	"errors"

	"wordthink/pkg/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// UserRepository reads the externally managed users table.
type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	query, args, err := psql.Select("id").From("users").Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := sqlx.GetContext(ctx, QuerierFromCtx(ctx, r.DB), &id, query, args...); err != nil {
		err = mapError(err, "user")
		if !errors.Is(err, ErrNotFound) {
			logger.Sugar.Errorf("Failed to get user id for %s: %v", username, err)
		}
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) FindUsernameByID(ctx context.Context, userID int64) (string, error) {
	query, args, err := psql.Select("username").From("users").Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return "", err
	}

	var username string
	if err := sqlx.GetContext(ctx, QuerierFromCtx(ctx, r.DB), &username, query, args...); err != nil {
		err = mapError(err, "user")
		if !errors.Is(err, ErrNotFound) {
			logger.Sugar.Errorf("Failed to get username for user %d: %v", userID, err)
		}
		return "", err
	}
	return username, nil
}
