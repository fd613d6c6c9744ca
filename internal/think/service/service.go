package service

import (
	"context"
	"time"

	"wordthink/internal/dictionary"
	"wordthink/socket"
	"wordthink/store"
)

//go:generate mockgen -source=service.go -destination=mock/mock_service.go -package=mock_service

type ThinkRepository interface {
	LockUser(ctx context.Context, userID int64) error
	Create(ctx context.Context, t *store.Think) (*store.Think, error)
	FindByID(ctx context.Context, id int64) (*store.Think, error)
	FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]store.Think, error)
	FindByUserIDAndVisibility(ctx context.Context, userID int64, isPrivate bool) ([]store.Think, error)
	FindByUserIDAndWord(ctx context.Context, userID int64, word string) ([]store.Think, error)
	FindByUserIDAndWordAndSenseID(ctx context.Context, userID int64, word, senseID string) ([]store.Think, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
	UpdateThink(ctx context.Context, id int64, think string, updatedAt time.Time) error
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error
}

type UserRepository interface {
	FindIDByUsername(ctx context.Context, username string) (int64, error)
	FindUsernameByID(ctx context.Context, userID int64) (string, error)
}

type WordBookRepository interface {
	FindByUserIDAndWord(ctx context.Context, userID int64, word string) (*store.WordBookEntry, error)
	Save(ctx context.Context, e *store.WordBookEntry) (int64, error)
	FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]store.WordBookEntry, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
}

type DictionaryClient interface {
	GetDefinitions(ctx context.Context, word string) ([]dictionary.Sense, error)
}

// Authenticator answers whether the caller on ctx is signed in as username.
type Authenticator interface {
	IsAuthenticated(ctx context.Context, username string) bool
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher delivers public think events to live feed subscribers.
type Publisher interface {
	Publish(msg socket.FeedMessage)
}
