package store

import "time"

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
}

// Think is a user's note on a word. UserID and Word never change after insert.
type Think struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	Word      string     `db:"word"`
	SenseID   *string    `db:"sense_id"`
	Think     string     `db:"think"`
	IsPrivate bool       `db:"is_private"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type WordBookEntry struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Word      string    `db:"word"`
	SenseID   *string   `db:"sense_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
