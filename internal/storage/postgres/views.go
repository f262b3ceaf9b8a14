package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/storage"
)

// SaveView записывает событие просмотра. Append-only, без дедупликации:
// счётчик просмотров — это количество событий.
func (s *Storage) SaveView(ctx context.Context, view *models.View) error {
	const op = "storage.postgres.SaveView"

	_, err := s.db.Exec(ctx, `
	INSERT INTO views (video_id, user_id, session_id, watched_seconds)
	VALUES ($1, $2, $3, $4)
	`, view.VideoID, view.UserID, view.SessionID, view.WatchedSeconds)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
