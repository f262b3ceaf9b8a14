package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/pkg/log"
)

// scoredCandidate — кандидат со скором; живёт только внутри одного прохода.
type scoredCandidate struct {
	score float64
	video models.Video
}

// GetFeed возвращает страницу ранжированного фида.
//
// Проход: окно кандидатов (limit × factor готовых роликов, новые первыми)
// -> исключение лайкнутого зрителем -> отсев курсором -> скоринг по одному
// снимку счётчиков -> сортировка -> страница из limit элементов.
//
// Правила нормализации:
//   - limit <= 0 -> cfg.LimitsConfig.Default;
//   - limit > max -> cfg.LimitsConfig.Max;
//   - битый курсор трактуется как отсутствующий (фид всегда доступен).
//
// Ошибки: только отказ хранилища; «нет кандидатов» — валидная пустая страница.
func (s *Service) GetFeed(ctx context.Context, opts models.FeedOptions) (*models.FeedPage, error) {
	const op = "service.feed.GetFeed"

	lg := log.From(ctx)
	lg.Info("feed_request",
		slog.String("op", op),
		slog.Int("limit", int(opts.Limit)),
		slog.Bool("has_cursor", opts.Cursor != ""),
		slog.Bool("authenticated", opts.ViewerID != nil),
	)

	limit := opts.Limit
	if limit <= 0 {
		limit = s.cfg.LimitsConfig.Default
	}
	if s.cfg.LimitsConfig.Max > 0 && limit > s.cfg.LimitsConfig.Max {
		limit = s.cfg.LimitsConfig.Max
	}

	// Окно с запасом: исключение лайкнутого и курсор съедают часть кандидатов.
	window := limit * s.cfg.Feed.CandidateFactor
	candidates, err := s.storage.ListCandidates(ctx, window)
	if err != nil {
		lg.Error("feed_candidates_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if opts.ViewerID != nil {
		likedIDs, err := s.storage.LikedVideoIDs(ctx, *opts.ViewerID)
		if err != nil {
			lg.Error("feed_liked_storage_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		liked := make(map[uuid.UUID]struct{}, len(likedIDs))
		for _, id := range likedIDs {
			liked[id] = struct{}{}
		}

		candidates = slices.DeleteFunc(candidates, func(v models.Video) bool {
			_, ok := liked[v.ID]
			return ok
		})
	}

	if opts.Cursor != "" {
		cursorTime, parseErr := time.Parse(time.RFC3339Nano, opts.Cursor)
		if parseErr != nil {
			// Битый курсор — не повод ронять фид: отдаём первую страницу.
			lg.Warn("feed_invalid_cursor",
				slog.String("op", op),
				slog.String("cursor", opts.Cursor),
			)
		} else {
			candidates = slices.DeleteFunc(candidates, func(v models.Video) bool {
				return !v.CreatedAt.Before(cursorTime)
			})
		}
	}

	if len(candidates) == 0 {
		lg.Info("feed_empty", slog.String("op", op))

		return &models.FeedPage{Videos: []models.VideoSummary{}}, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, video := range candidates {
		ids = append(ids, video.ID)
	}

	// Один снимок счётчиков на весь проход: все слагаемые скора кандидата
	// считаются по одним и тем же значениям.
	stats, err := s.storage.StatsByVideoIDs(ctx, ids)
	if err != nil {
		lg.Error("feed_stats_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var affinity *models.Affinity
	if opts.ViewerID != nil {
		affinity, err = s.storage.ViewerAffinity(ctx, *opts.ViewerID)
		if err != nil {
			lg.Error("feed_affinity_storage_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	now := time.Now().UTC()
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, video := range candidates {
		// Кандидат без playback url в скоринг не идёт; один кривой ролик
		// не должен ломать весь фид.
		if video.PlaybackURL == "" || video.CreatorID == uuid.Nil {
			lg.Warn("feed_candidate_skipped",
				slog.String("op", op),
				slog.String("video_id", video.ID.String()),
			)

			continue
		}

		scored = append(scored, scoredCandidate{
			score: scoreCandidate(video, stats[video.ID], affinity, now),
			video: video,
		})
	}

	// Сортировка: скор по убыванию; тай-брейк фиксирован (created_at DESC,
	// id DESC), чтобы пагинация была воспроизводимой.
	slices.SortFunc(scored, func(a, b scoredCandidate) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		if c := b.video.CreatedAt.Compare(a.video.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.video.ID.String(), a.video.ID.String())
	})

	hasMore := int32(len(scored)) > limit
	if hasMore {
		scored = scored[:limit]
	}

	page := &models.FeedPage{
		Videos:  make([]models.VideoSummary, 0, len(scored)),
		HasMore: hasMore,
	}
	for _, sc := range scored {
		page.Videos = append(page.Videos, models.VideoSummary{
			Video: sc.video,
			Stats: stats[sc.video.ID],
		})
	}

	if hasMore && len(page.Videos) > 0 {
		last := page.Videos[len(page.Videos)-1]
		page.NextCursor = last.Video.CreatedAt.UTC().Format(time.RFC3339Nano)
	}

	lg.Info("feed_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Videos)),
		slog.Bool("has_more", page.HasMore),
	)

	return page, nil
}
