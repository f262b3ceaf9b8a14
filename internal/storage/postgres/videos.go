package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/storage"
)

// videoColumns — общий список колонок выборки ролика (с автором).
const videoColumns = `
	v.id,
	v.user_id,
	u.username,
	COALESCE(v.title, ''),
	COALESCE(v.description, ''),
	v.status,
	COALESCE(v.thumbnail, ''),
	COALESCE(v.url_mp4, ''),
	COALESCE(v.duration_seconds, 0),
	v.created_at`

// ListCandidates возвращает до limit готовых роликов с непустым playback url.
// Сортировка фиксирована: created_at DESC, id DESC — новые первыми,
// id как детерминированный тай-брейк.
func (s *Storage) ListCandidates(ctx context.Context, limit int32) ([]models.Video, error) {
	const op = "storage.postgres.ListCandidates"

	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	rows, err := s.db.Query(ctx, `
	SELECT `+videoColumns+`
	FROM videos v
	JOIN users u ON u.id = v.user_id
	WHERE v.status = 'ready' AND v.url_mp4 IS NOT NULL AND v.url_mp4 <> ''
	ORDER BY v.created_at DESC, v.id DESC
	LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		video, scanErr := scanVideo(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		videos = append(videos, *video)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return videos, nil
}

// VideoByID возвращает ролик по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) VideoByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	const op = "storage.postgres.VideoByID"

	row := s.db.QueryRow(ctx, `
	SELECT `+videoColumns+`
	FROM videos v
	JOIN users u ON u.id = v.user_id
	WHERE v.id = $1
	`, id)

	video, err := scanVideo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return video, nil
}

// StatsByVideoIDs возвращает счётчики для набора роликов двумя агрегатными
// запросами (голоса и просмотры) — один снимок на весь проход ранжирования.
// Ролики без событий в результат не попадают; нули добирает вызывающий слой.
func (s *Storage) StatsByVideoIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.VideoStats, error) {
	const op = "storage.postgres.StatsByVideoIDs"

	stats := make(map[uuid.UUID]models.VideoStats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT video_id,
	       count(*) FILTER (WHERE direction = 'like'),
	       count(*) FILTER (WHERE direction = 'not_like')
	FROM votes
	WHERE video_id = ANY($1)
	GROUP BY video_id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: votes: %w", op, err)
	}

	for rows.Next() {
		var id uuid.UUID
		var likes, notLikes int64
		if scanErr := rows.Scan(&id, &likes, &notLikes); scanErr != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: scan votes: %w", op, scanErr)
		}

		st := stats[id]
		st.Likes = likes
		st.NotLikes = notLikes
		stats[id] = st
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: votes rows: %w", op, rows.Err())
	}

	rows, err = s.db.Query(ctx, `
	SELECT video_id, count(*)
	FROM views
	WHERE video_id = ANY($1)
	GROUP BY video_id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: views: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var views int64
		if scanErr := rows.Scan(&id, &views); scanErr != nil {
			return nil, fmt.Errorf("%s: scan views: %w", op, scanErr)
		}

		st := stats[id]
		st.Views = views
		stats[id] = st
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: views rows: %w", op, rows.Err())
	}

	return stats, nil
}

// scanVideo — общий скан строки выборки videoColumns с нормализацией в UTC.
func scanVideo(row pgx.Row) (*models.Video, error) {
	var video models.Video
	if err := row.Scan(
		&video.ID,
		&video.CreatorID,
		&video.CreatorName,
		&video.Title,
		&video.Description,
		&video.Status,
		&video.ThumbnailURL,
		&video.PlaybackURL,
		&video.DurationSeconds,
		&video.CreatedAt,
	); err != nil {
		return nil, err
	}

	video.CreatedAt = video.CreatedAt.UTC()

	return &video, nil
}
