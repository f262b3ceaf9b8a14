// storage определяет контракты доступа к БД для feed-service.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/short5/feed-service/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (гонка при upsert голоса).
	ErrConflict = errors.New("conflict")
)

// VideoStorage описывает операции чтения роликов (источник кандидатов).
type VideoStorage interface {
	// ListCandidates возвращает до limit готовых роликов (status = ready,
	// непустой playback url), отсортированных по created_at DESC, id DESC.
	ListCandidates(ctx context.Context, limit int32) ([]models.Video, error)
	// VideoByID возвращает ролик по идентификатору.
	// Если запись не найдена — ErrNotFound.
	VideoByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	// StatsByVideoIDs возвращает счётчики лайков/дизлайков/просмотров
	// для набора роликов одним запросом. Ролики без единого события
	// в результат не попадают.
	StatsByVideoIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.VideoStats, error)
}

// VoteStorage описывает операции над голосами (хранилище аффинити).
type VoteStorage interface {
	// UpsertVote сохраняет голос; повторный голос той же личности за тот же
	// ролик перезаписывает направление, а не добавляет запись.
	UpsertVote(ctx context.Context, vote *models.Vote) (*models.Vote, error)
	// LikedVideoIDs возвращает идентификаторы роликов, лайкнутых зрителем.
	LikedVideoIDs(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error)
	// ViewerAffinity возвращает снимок предпочтений зрителя по авторам
	// (лайки на автора и множество дизлайкнутых авторов) одним запросом.
	ViewerAffinity(ctx context.Context, viewerID uuid.UUID) (*models.Affinity, error)
}

// ViewStorage описывает операции над событиями просмотра.
type ViewStorage interface {
	// SaveView записывает событие просмотра (append-only).
	SaveView(ctx context.Context, view *models.View) error
}

// Storage задаёт контракт доступа к хранилищу для feed-сервиса.
type Storage interface {
	VideoStorage
	VoteStorage
	ViewStorage
	Close()
}
