package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/short5/feed-service/internal/errors"
	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/transport/http/middleware"
)

// GetFeed — GET /feed?cursor=&limit=.
// Личность зрителя берётся из контекста (мидлвар ViewerIdentity);
// её отсутствие — валидный анонимный просмотр.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	opts := models.FeedOptions{
		ViewerID: middleware.ViewerFrom(r.Context()),
		Cursor:   r.URL.Query().Get("cursor"),
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		opts.Limit = int32(n)
	}

	page, err := h.Service.GetFeed(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedFromDomain(page))
}
