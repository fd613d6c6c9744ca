package model

import "time"

type CreateThinkRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Word     string `json:"word" validate:"required,notblank,max=100"`
	SenseID  string `json:"sense_id" validate:"max=100"`
	Think    string `json:"think" validate:"required,notblank,max=1000"`
	// IsPrivate defaults to true when omitted.
	IsPrivate *bool `json:"is_private"`
}

type UpdateThinkRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Think    string `json:"think" validate:"required,notblank,max=1000"`
}

type ThinkResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Word      string     `json:"word"`
	SenseID   *string    `json:"sense_id"`
	Think     string     `json:"think"`
	IsPrivate bool       `json:"is_private"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type WordBookEntryResponse struct {
	ID        int64     `json:"id"`
	Word      string    `json:"word"`
	SenseID   *string   `json:"sense_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page is one slice of an ordered listing. Page numbers start at 0.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func NewPage[T any](items []T, page, size, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return Page[T]{Items: items, Page: page, Size: size, TotalItems: total, TotalPages: pages}
}

type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Fields  interface{} `json:"fields,omitempty"`
}
