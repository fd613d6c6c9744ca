package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wordthink/config"
	"wordthink/internal/think/model"
	"wordthink/internal/think/repository"
	"wordthink/pkg/logger"
	"wordthink/pkg/validator"
	"wordthink/socket"
	"wordthink/store"

	"go.uber.org/zap"
)

type ThinkService struct {
	Thinks     ThinkRepository
	Users      UserRepository
	WordBooks  WordBookRepository
	WordBook   *WordBookMaintainer
	Quota      *QuotaGuard
	Dictionary DictionaryClient
	Auth       Authenticator
	Tx         TxManager
	Feed       Publisher

	cfg config.ThinkConfig
	now func() time.Time
}

func NewThinkService(
	thinks ThinkRepository,
	users UserRepository,
	wordBooks WordBookRepository,
	dict DictionaryClient,
	auth Authenticator,
	tx TxManager,
	feed Publisher,
	cfg config.ThinkConfig,
) *ThinkService {
	return &ThinkService{
		Thinks:     thinks,
		Users:      users,
		WordBooks:  wordBooks,
		WordBook:   NewWordBookMaintainer(wordBooks),
		Quota:      NewQuotaGuard(thinks, cfg.MaxPerUser),
		Dictionary: dict,
		Auth:       auth,
		Tx:         tx,
		Feed:       feed,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateThink records a new think for req.Username on req.Word.
func (s *ThinkService) CreateThink(ctx context.Context, req model.CreateThinkRequest) (*model.ThinkResponse, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	word := strings.TrimSpace(req.Word)

	userID, err := s.userID(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if err := s.requireSelf(ctx, req.Username); err != nil {
		return nil, err
	}
	// Checked again under the user lock; this one spares the dictionary call.
	if err := s.Quota.Check(ctx, userID); err != nil {
		return nil, err
	}

	senseID, err := s.resolveSense(ctx, word, req.SenseID)
	if err != nil {
		return nil, err
	}

	think := &store.Think{
		UserID:    userID,
		Word:      word,
		SenseID:   &senseID,
		Think:     req.Think,
		IsPrivate: req.IsPrivate == nil || *req.IsPrivate,
		CreatedAt: s.now(),
	}
	err = s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.Thinks.LockUser(ctx, userID); err != nil {
			return fmt.Errorf("lock user %d: %w", userID, err)
		}
		if err := s.Quota.Check(ctx, userID); err != nil {
			return err
		}
		created, err := s.Thinks.Create(ctx, think)
		if err != nil {
			return fmt.Errorf("create think: %w", err)
		}
		think = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.WordBook.Upsert(ctx, userID, word, senseID); err != nil {
		logger.Log.Warn("word book not updated",
			zap.Int64("user_id", userID),
			zap.String("word", word),
			zap.Error(err))
	}

	resp := toResponse(think, req.Username)
	if !think.IsPrivate {
		s.publish(socket.ThinkCreatedType, resp)
	}
	logger.Log.Info("think created",
		zap.Int64("think_id", think.ID),
		zap.Int64("user_id", userID),
		zap.String("sense_id", senseID))
	return &resp, nil
}

// GetUserThinks lists every think of username, newest first.
func (s *ThinkService) GetUserThinks(ctx context.Context, username string, page, size int) (*model.Page[model.ThinkResponse], error) {
	if err := s.requireSelf(ctx, username); err != nil {
		return nil, err
	}
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}

	page, size = s.pageBounds(page, size)
	total, err := s.Thinks.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count thinks: %w", err)
	}
	thinks, err := s.Thinks.FindByUserID(ctx, userID, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("list thinks: %w", err)
	}

	items, err := s.toResponses(ctx, thinks)
	if err != nil {
		return nil, err
	}
	p := model.NewPage(items, page, size, total)
	return &p, nil
}

func (s *ThinkService) GetPublicThinks(ctx context.Context, username string) ([]model.ThinkResponse, error) {
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}
	thinks, err := s.Thinks.FindByUserIDAndVisibility(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("list public thinks: %w", err)
	}
	return s.toResponses(ctx, thinks)
}

// GetThinksByWord lists username's thinks on word, optionally narrowed to one
// sense. Private thinks are returned only to username itself.
func (s *ThinkService) GetThinksByWord(ctx context.Context, username, word, senseID string) ([]model.ThinkResponse, error) {
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}

	word, senseID = strings.TrimSpace(word), strings.TrimSpace(senseID)
	var thinks []store.Think
	if senseID != "" {
		thinks, err = s.Thinks.FindByUserIDAndWordAndSenseID(ctx, userID, word, senseID)
	} else {
		thinks, err = s.Thinks.FindByUserIDAndWord(ctx, userID, word)
	}
	if err != nil {
		return nil, fmt.Errorf("list thinks by word: %w", err)
	}
	if len(thinks) == 0 {
		return nil, ErrNotFoundOrAccessDenied
	}

	thinks = visibleThinks(thinks, func() bool { return s.Auth.IsAuthenticated(ctx, username) })
	return s.toResponses(ctx, thinks)
}

// ChangeThink replaces the note text of think id. Nothing else is editable.
func (s *ThinkService) ChangeThink(ctx context.Context, id int64, req model.UpdateThinkRequest) (*model.ThinkResponse, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	think, err := s.loadThink(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkEditor(ctx, think, req.Username); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.Thinks.UpdateThink(ctx, id, req.Think, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFoundOrAccessDenied
		}
		return nil, fmt.Errorf("update think %d: %w", id, err)
	}
	think.Think = req.Think
	think.UpdatedAt = &now

	resp := toResponse(think, req.Username)
	if !think.IsPrivate {
		s.publish(socket.ThinkUpdatedType, resp)
	}
	logger.Log.Info("think updated", zap.Int64("think_id", id), zap.String("username", req.Username))
	return &resp, nil
}

func (s *ThinkService) DeleteThink(ctx context.Context, username string, id int64) error {
	think, err := s.loadThink(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkDeleter(ctx, think, username); err != nil {
		return err
	}

	if err := s.Thinks.SoftDelete(ctx, id, s.now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFoundOrAccessDenied
		}
		return fmt.Errorf("delete think %d: %w", id, err)
	}

	if !think.IsPrivate {
		s.publish(socket.ThinkDeletedType, toResponse(think, username))
	}
	logger.Log.Info("think deleted", zap.Int64("think_id", id), zap.String("username", username))
	return nil
}

// GetWordBook lists the words username has written about, newest first.
func (s *ThinkService) GetWordBook(ctx context.Context, username string, page, size int) (*model.Page[model.WordBookEntryResponse], error) {
	if err := s.requireSelf(ctx, username); err != nil {
		return nil, err
	}
	userID, err := s.userID(ctx, username)
	if err != nil {
		return nil, err
	}

	page, size = s.pageBounds(page, size)
	total, err := s.WordBooks.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count word book: %w", err)
	}
	entries, err := s.WordBooks.FindByUserID(ctx, userID, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("list word book: %w", err)
	}

	items := make([]model.WordBookEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, model.WordBookEntryResponse{
			ID:        e.ID,
			Word:      e.Word,
			SenseID:   e.SenseID,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	p := model.NewPage(items, page, size, total)
	return &p, nil
}

func (s *ThinkService) resolveSense(ctx context.Context, word, requested string) (string, error) {
	senses, err := s.Dictionary.GetDefinitions(ctx, word)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDictionaryUnavailable, err)
	}
	return ResolveSenseID(requested, senses)
}

func (s *ThinkService) userID(ctx context.Context, username string) (int64, error) {
	id, err := s.Users.FindIDByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrUserNotExists
	}
	if err != nil {
		return 0, fmt.Errorf("find user %q: %w", username, err)
	}
	return id, nil
}

func (s *ThinkService) loadThink(ctx context.Context, id int64) (*store.Think, error) {
	think, err := s.Thinks.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFoundOrAccessDenied
	}
	if err != nil {
		return nil, fmt.Errorf("find think %d: %w", id, err)
	}
	return think, nil
}

// toResponses resolves each distinct owner once.
func (s *ThinkService) toResponses(ctx context.Context, thinks []store.Think) ([]model.ThinkResponse, error) {
	usernames := make(map[int64]string)
	out := make([]model.ThinkResponse, 0, len(thinks))
	for i := range thinks {
		t := &thinks[i]
		name, ok := usernames[t.UserID]
		if !ok {
			var err error
			name, err = s.Users.FindUsernameByID(ctx, t.UserID)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				name = UnknownUsername
			case err != nil:
				return nil, fmt.Errorf("find owner of think %d: %w", t.ID, err)
			}
			usernames[t.UserID] = name
		}
		out = append(out, toResponse(t, name))
	}
	return out, nil
}

func toResponse(t *store.Think, username string) model.ThinkResponse {
	return model.ThinkResponse{
		ID:        t.ID,
		Username:  username,
		Word:      t.Word,
		SenseID:   t.SenseID,
		Think:     t.Think,
		IsPrivate: t.IsPrivate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (s *ThinkService) pageBounds(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	return page, size
}

func (s *ThinkService) publish(eventType string, resp model.ThinkResponse) {
	if s.Feed == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		logger.Sugar.Errorf("Error marshalling %s for feed: %v", eventType, err)
		return
	}
	s.Feed.Publish(socket.FeedMessage{Type: eventType, Username: resp.Username, Payload: payload})
}
