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

// VideoByID возвращает ролик со счётчиками.
//
// Ошибки:
// - ErrNotFound — если запись отсутствует (маппинг storage.ErrNotFound);
// - прочие ошибки стораджа — обёрнутые и прокинутые наверх.
func (s *Service) VideoByID(ctx context.Context, id uuid.UUID) (*models.VideoSummary, error) {
	const op = "service.videos.VideoByID"

	lg := log.From(ctx)
	lg.Info("video_by_id_request",
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	video, err := s.storage.VideoByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("video_by_id_not_found",
				slog.String("op", op),
				slog.String("id", id.String()),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("video_by_id_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats, err := s.storage.StatsByVideoIDs(ctx, []uuid.UUID{id})
	if err != nil {
		lg.Error("video_by_id_stats_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.VideoSummary{
		Video: *video,
		Stats: stats[id],
	}, nil
}
