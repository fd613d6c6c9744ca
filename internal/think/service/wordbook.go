package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordthink/internal/think/repository"
	"wordthink/store"
)

// WordBookMaintainer keeps one word-book entry per (user, word).
type WordBookMaintainer struct {
	repo WordBookRepository
	now  func() time.Time
}

func NewWordBookMaintainer(repo WordBookRepository) *WordBookMaintainer {
	return &WordBookMaintainer{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Upsert creates the entry on the first think for word. An existing entry is
// saved back as it is; its sense id is never overwritten.
func (m *WordBookMaintainer) Upsert(ctx context.Context, userID int64, word, senseID string) error {
	entry, err := m.repo.FindByUserIDAndWord(ctx, userID, word)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		now := m.now()
		entry = &store.WordBookEntry{
			UserID:    userID,
			Word:      word,
			SenseID:   &senseID,
			CreatedAt: now,
			UpdatedAt: now,
		}
	case err != nil:
		return fmt.Errorf("find word book entry: %w", err)
	}

	id, err := m.repo.Save(ctx, entry)
	if err != nil {
		return fmt.Errorf("save word book entry: %w", err)
	}
	entry.ID = id
	return nil
}
