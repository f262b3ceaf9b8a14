package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/short5/feed-service/internal/errors"
	"github.com/short5/feed-service/internal/service"
	"github.com/short5/feed-service/internal/transport/http/middleware"
)

// GetVideoByID — GET /videos/{id}.
func (h *Handlers) GetVideoByID(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	summary, err := h.Service.VideoByID(r.Context(), videoID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoFromDomain(*summary))
}

// VoteOnVideo — POST /videos/{id}/vote.
// Аутентифицированный голос пишется на зрителя; анонимный — на сессию
// из тела либо из заголовка X-Session-Id.
func (h *Handlers) VoteOnVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var req VoteRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	sessionID, err := sessionFromRequest(r, req.SessionID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	vote, err := h.Service.Vote(r.Context(), service.VoteInput{
		VideoID:   videoID,
		ViewerID:  middleware.ViewerFrom(r.Context()),
		SessionID: sessionID,
		Direction: req.Direction,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, VoteResponse{
		Message:   "Vote recorded",
		VideoID:   vote.VideoID.String(),
		Direction: string(vote.Direction),
	})
}

// RecordView — POST /videos/{id}/view.
func (h *Handlers) RecordView(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var req ViewRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	sessionID, err := sessionFromRequest(r, req.SessionID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.RecordView(r.Context(), service.ViewInput{
		VideoID:        videoID,
		ViewerID:       middleware.ViewerFrom(r.Context()),
		SessionID:      sessionID,
		WatchedSeconds: req.WatchedSeconds,
	}); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ViewResponse{Message: "View recorded"})
}

// videoIDParam парсит {id} маршрута; не-uuid -> 400.
func videoIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errInvalidArgument()
	}

	return id, nil
}

// sessionFromRequest — сессия из тела запроса (приоритет) либо из контекста.
// Непустая, но битая строка в теле — ошибка клиента, а не «нет сессии».
func sessionFromRequest(r *http.Request, bodySession string) (*uuid.UUID, error) {
	if bodySession != "" {
		id, err := uuid.Parse(strings.TrimSpace(bodySession))
		if err != nil {
			return nil, errInvalidArgument()
		}

		return &id, nil
	}

	return middleware.SessionFrom(r.Context()), nil
}
