package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/storage"
)

// UpsertVote сохраняет голос с upsert по личности голосующего.
// Уникальность обеспечивают частичные индексы (user_id, video_id) и
// (session_id, video_id); повторный голос перезаписывает direction.
func (s *Storage) UpsertVote(ctx context.Context, vote *models.Vote) (*models.Vote, error) {
	const op = "storage.postgres.UpsertVote"

	var (
		query string
		ident uuid.UUID
	)

	switch {
	case vote.UserID != nil:
		ident = *vote.UserID
		query = `
		INSERT INTO votes (user_id, video_id, direction)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) WHERE user_id IS NOT NULL
		DO UPDATE SET direction = EXCLUDED.direction
		RETURNING id, user_id, session_id, video_id, direction, created_at
		`
	case vote.SessionID != nil:
		ident = *vote.SessionID
		query = `
		INSERT INTO votes (session_id, video_id, direction)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, video_id) WHERE session_id IS NOT NULL
		DO UPDATE SET direction = EXCLUDED.direction
		RETURNING id, user_id, session_id, video_id, direction, created_at
		`
	default:
		return nil, fmt.Errorf("%s: vote without user_id and session_id", op)
	}

	var saved models.Vote
	err := s.db.QueryRow(ctx, query, ident, vote.VideoID, vote.Direction).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.SessionID,
		&saved.VideoID,
		&saved.Direction,
		&saved.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// Гонка двух параллельных первых голосов одной личности.
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved.CreatedAt = saved.CreatedAt.UTC()

	return &saved, nil
}

// LikedVideoIDs возвращает идентификаторы роликов, лайкнутых зрителем.
func (s *Storage) LikedVideoIDs(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error) {
	const op = "storage.postgres.LikedVideoIDs"

	rows, err := s.db.Query(ctx, `
	SELECT video_id
	FROM votes
	WHERE user_id = $1 AND direction = 'like'
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return ids, nil
}

// ViewerAffinity возвращает снимок предпочтений зрителя по авторам одним
// агрегатным запросом: сколько лайков у каждого автора и кого зритель
// дизлайкал. Повторных запросов на кандидата не делается.
func (s *Storage) ViewerAffinity(ctx context.Context, viewerID uuid.UUID) (*models.Affinity, error) {
	const op = "storage.postgres.ViewerAffinity"

	rows, err := s.db.Query(ctx, `
	SELECT vid.user_id, vo.direction, count(*)
	FROM votes vo
	JOIN videos vid ON vid.id = vo.video_id
	WHERE vo.user_id = $1
	GROUP BY vid.user_id, vo.direction
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	affinity := &models.Affinity{
		LikesByCreator:   make(map[uuid.UUID]int64),
		NotLikedCreators: make(map[uuid.UUID]struct{}),
	}

	for rows.Next() {
		var creatorID uuid.UUID
		var direction models.VoteDirection
		var count int64
		if scanErr := rows.Scan(&creatorID, &direction, &count); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		switch direction {
		case models.VoteLike:
			affinity.LikesByCreator[creatorID] = count
		case models.VoteNotLike:
			affinity.NotLikedCreators[creatorID] = struct{}{}
		}
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return affinity, nil
}
