package repository

import (
	"context"
	"errors"
	"time"

	"wordthink/pkg/logger"
	"wordthink/store"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var thinkColumns = []string{
	"id", "user_id", "word", "sense_id", "think", "is_private", "created_at", "updated_at", "deleted_at",
}

// ThinkRepository persists thinks. Deleted rows are kept with deleted_at set
// and are invisible to every read here.
type ThinkRepository struct {
	DB *sqlx.DB
}

func NewThinkRepository(db *sqlx.DB) *ThinkRepository {
	return &ThinkRepository{DB: db}
}

func (r *ThinkRepository) live() sq.SelectBuilder {
	return psql.Select(thinkColumns...).From("user_thinks").Where("deleted_at IS NULL")
}

// LockUser takes a transaction-scoped advisory lock on the user. It only
// serializes anything when called inside RunInTx.
func (r *ThinkRepository) LockUser(ctx context.Context, userID int64) error {
	_, err := QuerierFromCtx(ctx, r.DB).ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", userID)
	if err != nil {
		logger.Sugar.Errorf("Failed to lock user %d: %v", userID, err)
	}
	return err
}

func (r *ThinkRepository) Create(ctx context.Context, t *store.Think) (*store.Think, error) {
	query, args, err := psql.Insert("user_thinks").
		Columns("user_id", "word", "sense_id", "think", "is_private", "created_at").
		Values(t.UserID, t.Word, t.SenseID, t.Think, t.IsPrivate, t.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *t
	if err := QuerierFromCtx(ctx, r.DB).QueryRowxContext(ctx, query, args...).Scan(&created.ID); err != nil {
		logger.Sugar.Errorf("Failed to create think for user %d: %v", t.UserID, err)
		return nil, mapError(err, "think")
	}
	return &created, nil
}

func (r *ThinkRepository) FindByID(ctx context.Context, id int64) (*store.Think, error) {
	query, args, err := r.live().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var t store.Think
	if err := sqlx.GetContext(ctx, QuerierFromCtx(ctx, r.DB), &t, query, args...); err != nil {
		err = mapError(err, "think")
		if !errors.Is(err, ErrNotFound) {
			logger.Sugar.Errorf("Failed to get think %d: %v", id, err)
		}
		return nil, err
	}
	return &t, nil
}

// FindByUserID returns one page of the user's thinks, newest first.
func (r *ThinkRepository) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]store.Think, error) {
	return r.list(ctx, r.live().
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

func (r *ThinkRepository) FindByUserIDAndVisibility(ctx context.Context, userID int64, isPrivate bool) ([]store.Think, error) {
	return r.list(ctx, r.live().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_private": isPrivate}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *ThinkRepository) FindByUserIDAndWord(ctx context.Context, userID int64, word string) ([]store.Think, error) {
	return r.list(ctx, r.live().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"word": word}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *ThinkRepository) FindByUserIDAndWordAndSenseID(ctx context.Context, userID int64, word, senseID string) ([]store.Think, error) {
	return r.list(ctx, r.live().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"word": word}).
		Where(sq.Eq{"sense_id": senseID}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *ThinkRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("user_thinks").
		Where(sq.Eq{"user_id": userID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := sqlx.GetContext(ctx, QuerierFromCtx(ctx, r.DB), &count, query, args...); err != nil {
		logger.Sugar.Errorf("Failed to count thinks for user %d: %v", userID, err)
		return 0, mapError(err, "think")
	}
	return count, nil
}

// UpdateThink replaces the note text and stamps updated_at.
func (r *ThinkRepository) UpdateThink(ctx context.Context, id int64, think string, updatedAt time.Time) error {
	query, args, err := psql.Update("user_thinks").
		Set("think", think).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, id, "update", query, args)
}

func (r *ThinkRepository) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error {
	query, args, err := psql.Update("user_thinks").
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, id, "delete", query, args)
}

func (r *ThinkRepository) execOne(ctx context.Context, id int64, op, query string, args []interface{}) error {
	result, err := QuerierFromCtx(ctx, r.DB).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Sugar.Errorf("Failed to %s think %d: %v", op, id, err)
		return mapError(err, "think")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapError(ErrNotFound, "think")
	}
	return nil
}

func (r *ThinkRepository) list(ctx context.Context, b sq.SelectBuilder) ([]store.Think, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	thinks := []store.Think{}
	if err := sqlx.SelectContext(ctx, QuerierFromCtx(ctx, r.DB), &thinks, query, args...); err != nil {
		logger.Sugar.Errorf("Failed to list thinks: %v", err)
		return nil, mapError(err, "think")
	}
	return thinks, nil
}
