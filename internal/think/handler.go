package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wordthink/internal/think/model"
	"wordthink/internal/think/service"
	"wordthink/middleware"
	"wordthink/pkg/logger"
	"wordthink/pkg/validator"
)

const maxBodyBytes = 64 << 10

type ThinkHandler struct {
	Service *service.ThinkService
}

func NewThinkHandler(service *service.ThinkService) *ThinkHandler {
	return &ThinkHandler{Service: service}
}

func (h *ThinkHandler) CreateThink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.CreateThinkRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" {
		req.Username, _ = middleware.UsernameFromCtx(r.Context())
	}

	resp, err := h.Service.CreateThink(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// GetUserThinks lists the caller's own thinks, paged.
func (h *ThinkHandler) GetUserThinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, size, ok := pageParams(w, r)
	if !ok {
		return
	}

	resp, err := h.Service.GetUserThinks(r.Context(), usernameParam(r), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ThinkHandler) GetPublicThinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "Missing username parameter", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.GetPublicThinks(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ThinkHandler) GetThinksByWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	username, word := q.Get("username"), q.Get("word")
	if username == "" || word == "" {
		http.Error(w, "Missing username or word parameter", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.GetThinksByWord(r.Context(), username, word, q.Get("sense_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ThinkHandler) ChangeThink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req model.UpdateThinkRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" {
		req.Username, _ = middleware.UsernameFromCtx(r.Context())
	}

	resp, err := h.Service.ChangeThink(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ThinkHandler) DeleteThink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteThink(r.Context(), usernameParam(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ThinkHandler) GetWordBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, size, ok := pageParams(w, r)
	if !ok {
		return
	}

	resp, err := h.Service.GetWordBook(r.Context(), usernameParam(r), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// usernameParam falls back to the token's username when the query omits it.
func usernameParam(r *http.Request) string {
	if username := r.URL.Query().Get("username"); username != "" {
		return username
	}
	username, _ := middleware.UsernameFromCtx(r.Context())
	return username
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid id parameter", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func pageParams(w http.ResponseWriter, r *http.Request) (page, size int, ok bool) {
	q := r.URL.Query()
	var err error
	if v := q.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			http.Error(w, "Invalid page parameter", http.StatusBadRequest)
			return 0, 0, false
		}
	}
	if v := q.Get("size"); v != "" {
		if size, err = strconv.Atoi(v); err != nil {
			http.Error(w, "Invalid size parameter", http.StatusBadRequest)
			return 0, 0, false
		}
	}
	return page, size, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Sugar.Errorf("Handler: Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	message := "internal server error"

	var verr *validator.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Code: "VALIDATION_ERROR", Message: "invalid request", Fields: verr.Fields})
		return
	case errors.Is(err, validator.ErrValidation):
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, service.ErrUserNotExists):
		status, code = http.StatusNotFound, "USER_NOT_EXISTS"
	case errors.Is(err, service.ErrUserNotAuthenticated):
		status, code = http.StatusForbidden, "USER_NOT_AUTHENTICATED"
	case errors.Is(err, service.ErrQuotaExceeded):
		status, code = http.StatusConflict, "QUOTA_EXCEEDED"
	case errors.Is(err, service.ErrInvalidSenseReference):
		status, code = http.StatusUnprocessableEntity, "INVALID_SENSE_REFERENCE"
	case errors.Is(err, service.ErrNotFoundOrAccessDenied):
		status, code = http.StatusNotFound, "NOT_FOUND_OR_ACCESS_DENIED"
	case errors.Is(err, service.ErrDictionaryUnavailable):
		status, code = http.StatusBadGateway, "DICTIONARY_UNAVAILABLE"
	}

	if status >= http.StatusInternalServerError {
		logger.Sugar.Errorf("Handler: %s %s failed [%s]: %v", r.Method, r.URL.Path, middleware.RequestIDFromCtx(r.Context()), err)
	}
	switch {
	case status < http.StatusInternalServerError:
		message = err.Error()
	case status == http.StatusBadGateway:
		message = service.ErrDictionaryUnavailable.Error()
	}
	writeJSON(w, status, model.ErrorResponse{Code: code, Message: message})
}
