package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/pkg/log"
	"github.com/short5/feed-service/internal/storage"
)

// ViewInput — параметры события просмотра.
type ViewInput struct {
	VideoID        uuid.UUID
	ViewerID       *uuid.UUID
	SessionID      *uuid.UUID
	WatchedSeconds int32
}

// RecordView записывает событие просмотра.
//
// Ошибки:
// - ErrInvalidArgument — отрицательное watched_seconds;
// - ErrNotFound — ролик отсутствует;
// - прочие ошибки стораджа — обёрнутые и прокинутые наверх.
func (s *Service) RecordView(ctx context.Context, in ViewInput) error {
	const op = "service.views.RecordView"

	lg := log.From(ctx)
	lg.Info("view_request",
		slog.String("op", op),
		slog.String("video_id", in.VideoID.String()),
		slog.Int("watched_seconds", int(in.WatchedSeconds)),
	)

	if in.WatchedSeconds < 0 {
		return fmt.Errorf("%s: negative watched_seconds: %w", op, ErrInvalidArgument)
	}

	view := &models.View{
		VideoID:        in.VideoID,
		UserID:         in.ViewerID,
		SessionID:      in.SessionID,
		WatchedSeconds: in.WatchedSeconds,
	}

	if err := s.storage.SaveView(ctx, view); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("view_video_not_found",
				slog.String("op", op),
				slog.String("video_id", in.VideoID.String()),
			)

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("view_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
