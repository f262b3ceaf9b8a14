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

// VoteInput — параметры голоса.
// Заполнен должен быть хотя бы один из ViewerID/SessionID; при обоих
// голос записывается на пользователя.
type VoteInput struct {
	VideoID   uuid.UUID
	ViewerID  *uuid.UUID
	SessionID *uuid.UUID
	Direction string
}

// Vote записывает голос за ролик с upsert-семантикой: повторный голос той же
// личности перезаписывает направление.
//
// Ошибки:
//   - ErrInvalidArgument — направление не like/not_like либо нет ни
//     пользователя, ни сессии;
//   - ErrNotFound — ролик отсутствует;
//   - ErrConflict — гонка параллельных первых голосов;
//   - прочие ошибки стораджа — обёрнутые и прокинутые наверх.
func (s *Service) Vote(ctx context.Context, in VoteInput) (*models.Vote, error) {
	const op = "service.votes.Vote"

	lg := log.From(ctx)
	lg.Info("vote_request",
		slog.String("op", op),
		slog.String("video_id", in.VideoID.String()),
		slog.String("direction", in.Direction),
		slog.Bool("authenticated", in.ViewerID != nil),
	)

	var direction models.VoteDirection
	switch models.VoteDirection(in.Direction) {
	case models.VoteLike:
		direction = models.VoteLike
	case models.VoteNotLike:
		direction = models.VoteNotLike
	default:
		return nil, fmt.Errorf("%s: direction %q: %w", op, in.Direction, ErrInvalidArgument)
	}

	if in.ViewerID == nil && in.SessionID == nil {
		return nil, fmt.Errorf("%s: neither viewer nor session: %w", op, ErrInvalidArgument)
	}

	vote := &models.Vote{
		VideoID:   in.VideoID,
		Direction: direction,
	}
	if in.ViewerID != nil {
		vote.UserID = in.ViewerID
	} else {
		vote.SessionID = in.SessionID
	}

	saved, err := s.storage.UpsertVote(ctx, vote)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("vote_video_not_found",
				slog.String("op", op),
				slog.String("video_id", in.VideoID.String()),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		}

		lg.Error("vote_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("vote_ok",
		slog.String("op", op),
		slog.String("video_id", in.VideoID.String()),
		slog.String("direction", string(saved.Direction)),
	)

	return saved, nil
}
