package repository

import (
	"context"
	"errors"

	"wordthink/pkg/logger"
	"wordthink/store"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var wordBookColumns = []string{"id", "user_id", "word", "sense_id", "created_at", "updated_at"}

type WordBookRepository struct {
	DB *sqlx.DB
}

func NewWordBookRepository(db *sqlx.DB) *WordBookRepository {
	return &WordBookRepository{DB: db}
}

func (r *WordBookRepository) FindByUserIDAndWord(ctx context.Context, userID int64, word string) (*store.WordBookEntry, error) {
	query, args, err := psql.Select(wordBookColumns...).From("word_books").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"word": word}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var e store.WordBookEntry
	if err := sqlx.GetContext(ctx, QuerierFromCtx(ctx, r.DB), &e, query, args...); err != nil {
		err = mapError(err, "word_book")
		if !errors.Is(err, ErrNotFound) {
			logger.Sugar.Errorf("Failed to get word book entry %q for user %d: %v", word, userID, err)
		}
		return nil, err
	}
	return &e, nil
}

// Save inserts the entry and returns its id. An existing (user_id, word) row
// is left as it is, sense_id included, and its id is returned.
func (r *WordBookRepository) Save(ctx context.Context, e *store.WordBookEntry) (int64, error) {
	query, args, err := psql.Insert("word_books").
		Columns("user_id", "word", "sense_id", "created_at", "updated_at").
		Values(e.UserID, e.Word, e.SenseID, e.CreatedAt, e.UpdatedAt).
		Suffix("ON CONFLICT (user_id, word) DO UPDATE SET updated_at = word_books.updated_at RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := QuerierFromCtx(ctx, r.DB).QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		logger.Sugar.Errorf("Failed to save word book entry %q for user %d: %v", e.Word, e.UserID, err)
		return 0, mapError(err, "word_book")
	}
	return id, nil
}

func (r *WordBookRepository) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]store.WordBookEntry, error) {
	query, args, err := psql.Select(wordBookColumns...).From("word_books").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	entries := []store.WordBookEntry{}
	if err := sqlx.SelectContext(ctx, QuerierFromCtx(ctx, r.DB), &entries, query, args...); err != nil {
		logger.Sugar.Errorf("Failed to list word book for user %d: %v", userID, err)
		return nil, mapError(err, "word_book")
	}
	return entries, nil
}

func (r *WordBookRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("word_books").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := sqlx.GetContext(ctx, QuerierFromCtx(ctx, r.DB), &count, query, args...); err != nil {
		logger.Sugar.Errorf("Failed to count word book for user %d: %v", userID, err)
		return 0, mapError(err, "word_book")
	}
	return count, nil
}
