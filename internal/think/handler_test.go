package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wordthink/config"
	"wordthink/internal/dictionary"
	"wordthink/internal/think/model"
	"wordthink/internal/think/repository"
	"wordthink/internal/think/service"
	mock_service "wordthink/internal/think/service/mock"
	"wordthink/middleware"
	"wordthink/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	thinks    *mock_service.MockThinkRepository
	users     *mock_service.MockUserRepository
	wordBooks *mock_service.MockWordBookRepository
	dict      *mock_service.MockDictionaryClient
	tx        *mock_service.MockTxManager
	feed      *mock_service.MockPublisher
}

// newTestHandler wires the real service over mocked collaborators and the
// context-based authenticator used in production.
func newTestHandler(t *testing.T) (*ThinkHandler, *handlerMocks) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		thinks:    mock_service.NewMockThinkRepository(ctrl),
		users:     mock_service.NewMockUserRepository(ctrl),
		wordBooks: mock_service.NewMockWordBookRepository(ctrl),
		dict:      mock_service.NewMockDictionaryClient(ctrl),
		tx:        mock_service.NewMockTxManager(ctrl),
		feed:      mock_service.NewMockPublisher(ctrl),
	}
	cfg := config.ThinkConfig{MaxPerUser: 100, DefaultPageSize: 10, MaxPageSize: 100}
	svc := service.NewThinkService(m.thinks, m.users, m.wordBooks, m.dict, middleware.SessionAuthenticator{}, m.tx, m.feed, cfg)
	return NewThinkHandler(svc), m
}

func asUser(r *http.Request, username string) *http.Request {
	return r.WithContext(middleware.WithUsername(r.Context(), username))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestCreateThink(t *testing.T) {
	h, m := newTestHandler(t)

	id := "s1"
	m.users.EXPECT().FindIDByUsername(gomock.Any(), "alice").Return(int64(1), nil)
	m.thinks.EXPECT().CountByUserID(gomock.Any(), int64(1)).Return(0, nil).Times(2)
	m.dict.EXPECT().GetDefinitions(gomock.Any(), "run").Return([]dictionary.Sense{{ID: &id}}, nil)
	m.tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	m.thinks.EXPECT().LockUser(gomock.Any(), int64(1)).Return(nil)
	m.thinks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, th *store.Think) (*store.Think, error) {
		created := *th
		created.ID = 7
		return &created, nil
	})
	m.wordBooks.EXPECT().FindByUserIDAndWord(gomock.Any(), int64(1), "run").Return(nil, repository.ErrNotFound)
	m.wordBooks.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	body := `{"word":"run","think":"to move quickly"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/thinks/create", strings.NewReader(body)), "alice")
	rr := httptest.NewRecorder()

	h.CreateThink(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var got model.ThinkResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "s1", *got.SenseID)
	assert.True(t, got.IsPrivate)
}

func TestCreateThink_BadRequests(t *testing.T) {
	t.Run("wrong method", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rr := httptest.NewRecorder()
		h.CreateThink(rr, httptest.NewRequest(http.MethodGet, "/api/thinks/create", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rr := httptest.NewRecorder()
		h.CreateThink(rr, asUser(httptest.NewRequest(http.MethodPost, "/api/thinks/create", strings.NewReader("{")), "alice"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rr := httptest.NewRecorder()
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/thinks/create", strings.NewReader(`{"word":"run","think":"  "}`)), "alice")
		h.CreateThink(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Contains(t, rr.Body.String(), `"field":"think"`)
	})

	t.Run("posting for another user", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "bob").Return(int64(2), nil)

		rr := httptest.NewRecorder()
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/thinks/create",
			strings.NewReader(`{"username":"bob","word":"run","think":"mine now"}`)), "carol")
		h.CreateThink(rr, req)

		require.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "USER_NOT_AUTHENTICATED", decodeError(t, rr).Code)
	})
}

func TestGetUserThinks(t *testing.T) {
	h, m := newTestHandler(t)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.users.EXPECT().FindIDByUsername(gomock.Any(), "alice").Return(int64(1), nil)
	m.thinks.EXPECT().CountByUserID(gomock.Any(), int64(1)).Return(3, nil)
	m.thinks.EXPECT().FindByUserID(gomock.Any(), int64(1), 2, 2).Return([]store.Think{
		{ID: 1, UserID: 1, Word: "run", Think: "oldest", CreatedAt: created},
	}, nil)
	m.users.EXPECT().FindUsernameByID(gomock.Any(), int64(1)).Return("alice", nil)

	rr := httptest.NewRecorder()
	h.GetUserThinks(rr, asUser(httptest.NewRequest(http.MethodGet, "/api/thinks?page=1&size=2", nil), "alice"))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got model.Page[model.ThinkResponse]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 2, got.Size)
	assert.Equal(t, 3, got.TotalItems)
	assert.Equal(t, 2, got.TotalPages)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "oldest", got.Items[0].Think)
}

func TestGetUserThinks_InvalidPage(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.GetUserThinks(rr, asUser(httptest.NewRequest(http.MethodGet, "/api/thinks?page=abc", nil), "alice"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetPublicThinks(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rr := httptest.NewRecorder()
		h.GetPublicThinks(rr, httptest.NewRequest(http.MethodGet, "/api/thinks/public", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "ghost").Return(int64(0), repository.ErrNotFound)

		rr := httptest.NewRecorder()
		h.GetPublicThinks(rr, httptest.NewRequest(http.MethodGet, "/api/thinks/public?username=ghost", nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "USER_NOT_EXISTS", decodeError(t, rr).Code)
	})

	t.Run("anonymous reader", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "bob").Return(int64(2), nil)
		m.thinks.EXPECT().FindByUserIDAndVisibility(gomock.Any(), int64(2), false).Return([]store.Think{
			{ID: 5, UserID: 2, Word: "run"},
		}, nil)
		m.users.EXPECT().FindUsernameByID(gomock.Any(), int64(2)).Return("bob", nil)

		rr := httptest.NewRecorder()
		h.GetPublicThinks(rr, httptest.NewRequest(http.MethodGet, "/api/thinks/public?username=bob", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		var got []model.ThinkResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "bob", got[0].Username)
	})
}

func TestGetThinksByWord(t *testing.T) {
	thinks := []store.Think{
		{ID: 1, UserID: 2, Word: "run"},
		{ID: 2, UserID: 2, Word: "run", IsPrivate: true},
	}

	t.Run("other reader gets public only", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "bob").Return(int64(2), nil)
		m.thinks.EXPECT().FindByUserIDAndWord(gomock.Any(), int64(2), "run").Return(thinks, nil)
		m.users.EXPECT().FindUsernameByID(gomock.Any(), int64(2)).Return("bob", nil)

		rr := httptest.NewRecorder()
		h.GetThinksByWord(rr, asUser(httptest.NewRequest(http.MethodGet, "/api/thinks/word?username=bob&word=run", nil), "carol"))
		require.Equal(t, http.StatusOK, rr.Code)
		var got []model.ThinkResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.False(t, got[0].IsPrivate)
	})

	t.Run("owner gets everything", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "bob").Return(int64(2), nil)
		m.thinks.EXPECT().FindByUserIDAndWordAndSenseID(gomock.Any(), int64(2), "run", "s1").Return(thinks, nil)
		m.users.EXPECT().FindUsernameByID(gomock.Any(), int64(2)).Return("bob", nil)

		rr := httptest.NewRecorder()
		h.GetThinksByWord(rr, asUser(httptest.NewRequest(http.MethodGet, "/api/thinks/word?username=bob&word=run&sense_id=s1", nil), "bob"))
		require.Equal(t, http.StatusOK, rr.Code)
		var got []model.ThinkResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("nothing recorded", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "bob").Return(int64(2), nil)
		m.thinks.EXPECT().FindByUserIDAndWord(gomock.Any(), int64(2), "fly").Return(nil, nil)

		rr := httptest.NewRecorder()
		h.GetThinksByWord(rr, httptest.NewRequest(http.MethodGet, "/api/thinks/word?username=bob&word=fly", nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "NOT_FOUND_OR_ACCESS_DENIED", decodeError(t, rr).Code)
	})
}

func TestChangeThink_ForeignThink(t *testing.T) {
	h, m := newTestHandler(t)
	m.thinks.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&store.Think{ID: 42, UserID: 2, Word: "run"}, nil)
	m.users.EXPECT().FindUsernameByID(gomock.Any(), int64(2)).Return("bob", nil)

	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPut, "/api/thinks/update?id=42", strings.NewReader(`{"think":"hijacked"}`)), "carol")
	h.ChangeThink(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "USER_NOT_AUTHENTICATED", decodeError(t, rr).Code)
}

func TestChangeThink_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)
	for _, target := range []string{"/api/thinks/update", "/api/thinks/update?id=x", "/api/thinks/update?id=-1"} {
		rr := httptest.NewRecorder()
		h.ChangeThink(rr, asUser(httptest.NewRequest(http.MethodPut, target, strings.NewReader(`{"think":"x"}`)), "bob"))
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestDeleteThink(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.thinks.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&store.Think{ID: 42, UserID: 2, IsPrivate: true}, nil)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "bob").Return(int64(2), nil)
		m.thinks.EXPECT().SoftDelete(gomock.Any(), int64(42), gomock.Any()).Return(nil)

		rr := httptest.NewRecorder()
		h.DeleteThink(rr, asUser(httptest.NewRequest(http.MethodDelete, "/api/thinks/delete?id=42", nil), "bob"))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("someone else", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.thinks.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&store.Think{ID: 42, UserID: 2}, nil)
		m.users.EXPECT().FindIDByUsername(gomock.Any(), "carol").Return(int64(3), nil)

		rr := httptest.NewRecorder()
		h.DeleteThink(rr, asUser(httptest.NewRequest(http.MethodDelete, "/api/thinks/delete?id=42", nil), "carol"))
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "NOT_FOUND_OR_ACCESS_DENIED", decodeError(t, rr).Code)
	})
}

func TestGetWordBook(t *testing.T) {
	h, m := newTestHandler(t)
	sense := "s1"
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	m.users.EXPECT().FindIDByUsername(gomock.Any(), "alice").Return(int64(1), nil)
	m.wordBooks.EXPECT().CountByUserID(gomock.Any(), int64(1)).Return(1, nil)
	m.wordBooks.EXPECT().FindByUserID(gomock.Any(), int64(1), 10, 0).Return([]store.WordBookEntry{
		{ID: 1, UserID: 1, Word: "run", SenseID: &sense, CreatedAt: now, UpdatedAt: now},
	}, nil)

	rr := httptest.NewRecorder()
	h.GetWordBook(rr, asUser(httptest.NewRequest(http.MethodGet, "/api/wordbook", nil), "alice"))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got model.Page[model.WordBookEntryResponse]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "run", got.Items[0].Word)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{service.ErrUserNotExists, http.StatusNotFound, "USER_NOT_EXISTS"},
		{service.ErrUserNotAuthenticated, http.StatusForbidden, "USER_NOT_AUTHENTICATED"},
		{service.ErrQuotaExceeded, http.StatusConflict, "QUOTA_EXCEEDED"},
		{service.ErrInvalidSenseReference, http.StatusUnprocessableEntity, "INVALID_SENSE_REFERENCE"},
		{service.ErrNotFoundOrAccessDenied, http.StatusNotFound, "NOT_FOUND_OR_ACCESS_DENIED"},
		{service.ErrDictionaryUnavailable, http.StatusBadGateway, "DICTIONARY_UNAVAILABLE"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotContains(t, body.Message, "pq:")
		})
	}
}
