package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/service"
)

// Service — операции бизнес-слоя, нужные HTTP-обработчикам.
type Service interface {
	GetFeed(ctx context.Context, opts models.FeedOptions) (*models.FeedPage, error)
	VideoByID(ctx context.Context, id uuid.UUID) (*models.VideoSummary, error)
	Vote(ctx context.Context, in service.VoteInput) (*models.Vote, error)
	RecordView(ctx context.Context, in service.ViewInput) error
}

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	Service Service
}

func New(svc Service) *Handlers {
	return &Handlers{Service: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга -> 400 через общий маппинг.
func errInvalidArgument() error {
	return fmt.Errorf("handlers: %w", service.ErrInvalidArgument)
}
