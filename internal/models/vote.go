package models

import (
	"time"

	"github.com/google/uuid"
)

// VoteDirection — направление голоса.
type VoteDirection string

const (
	VoteLike    VoteDirection = "like"
	VoteNotLike VoteDirection = "not_like"
)

// Vote — голос за ролик.
//
// Инварианты:
//   - заполнен ровно один из UserID/SessionID (аутентифицированный
//     пользователь либо анонимная сессия);
//   - не больше одного голоса на пару (пользователь, ролик) или
//     (сессия, ролик) — повторный голос перезаписывает направление.
type Vote struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	SessionID *uuid.UUID
	VideoID   uuid.UUID
	Direction VoteDirection
	CreatedAt time.Time
}

// Affinity — снимок предпочтений зрителя, посчитанный один раз на вызов фида.
//
// LikesByCreator — сколько роликов каждого автора зритель лайкнул;
// NotLikedCreators — авторы, чьи ролики зритель дизлайкал.
type Affinity struct {
	LikesByCreator   map[uuid.UUID]int64
	NotLikedCreators map[uuid.UUID]struct{}
}

// View — событие просмотра; append-only, без дедупликации.
type View struct {
	ID             uuid.UUID
	VideoID        uuid.UUID
	UserID         *uuid.UUID
	SessionID      *uuid.UUID
	WatchedSeconds int32
	CreatedAt      time.Time
}
