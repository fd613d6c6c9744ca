package service

import (
	"context"
	"errors"
	"fmt"

	"wordthink/internal/think/repository"
	"wordthink/store"
)

func (s *ThinkService) requireSelf(ctx context.Context, username string) error {
	if !s.Auth.IsAuthenticated(ctx, username) {
		return ErrUserNotAuthenticated
	}
	return nil
}

// checkEditor allows an update only by the authenticated owner.
func (s *ThinkService) checkEditor(ctx context.Context, t *store.Think, username string) error {
	owner, err := s.Users.FindUsernameByID(ctx, t.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotExists
	}
	if err != nil {
		return fmt.Errorf("find owner of think %d: %w", t.ID, err)
	}
	if owner != username {
		return ErrUserNotAuthenticated
	}
	return s.requireSelf(ctx, username)
}

// checkDeleter hides other users' thinks behind ErrNotFoundOrAccessDenied.
func (s *ThinkService) checkDeleter(ctx context.Context, t *store.Think, username string) error {
	if err := s.requireSelf(ctx, username); err != nil {
		return err
	}
	userID, err := s.userID(ctx, username)
	if err != nil {
		return err
	}
	if t.UserID != userID {
		return ErrNotFoundOrAccessDenied
	}
	return nil
}

// visibleThinks keeps private thinks only when the owner is the caller.
// ownerAuthenticated is consulted at most once.
func visibleThinks(thinks []store.Think, ownerAuthenticated func() bool) []store.Think {
	out := make([]store.Think, 0, len(thinks))
	var checked, authed bool
	for _, t := range thinks {
		if t.IsPrivate {
			if !checked {
				authed, checked = ownerAuthenticated(), true
			}
			if !authed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
