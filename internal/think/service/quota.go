package service

import (
	"context"
	"fmt"
)

type ThinkCounter interface {
	CountByUserID(ctx context.Context, userID int64) (int, error)
}

// QuotaGuard caps the number of live thinks a user may hold.
type QuotaGuard struct {
	counter ThinkCounter
	limit   int
}

func NewQuotaGuard(counter ThinkCounter, limit int) *QuotaGuard {
	return &QuotaGuard{counter: counter, limit: limit}
}

// Check fails with ErrQuotaExceeded once the user already holds limit thinks.
func (g *QuotaGuard) Check(ctx context.Context, userID int64) error {
	count, err := g.counter.CountByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("count thinks: %w", err)
	}
	if count >= g.limit {
		return fmt.Errorf("%w: %d of %d", ErrQuotaExceeded, count, g.limit)
	}
	return nil
}
