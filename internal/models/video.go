// models содержит доменные сущности feed-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoStatus — этап жизненного цикла ролика.
// В кандидаты фида попадают только ролики в статусе StatusReady.
type VideoStatus string

const (
	StatusUploading  VideoStatus = "uploading"
	StatusProcessing VideoStatus = "processing"
	StatusReady      VideoStatus = "ready"
	StatusFailed     VideoStatus = "failed"
	StatusRejected   VideoStatus = "rejected"
)

// Video — доменная сущность ролика.
//
// Особенности:
//   - ID и CreatorID — UUIDv4;
//   - PlaybackURL может быть пустым до окончания обработки;
//   - временные метки — в UTC.
type Video struct {
	// ID — уникальный идентификатор ролика.
	ID uuid.UUID
	// CreatorID — идентификатор автора.
	CreatorID uuid.UUID
	// CreatorName — отображаемое имя автора.
	CreatorName string
	// Title — название ролика.
	Title string
	// Description — описание ролика.
	Description string
	// Status — статус обработки.
	Status VideoStatus
	// ThumbnailURL — ссылка на обложку.
	ThumbnailURL string
	// PlaybackURL — ссылка на готовый mp4; пустая, пока ролик не готов.
	PlaybackURL string
	// DurationSeconds — длительность в секундах.
	DurationSeconds int32
	// CreatedAt — время загрузки (UTC).
	CreatedAt time.Time
}

// VideoStats — агрегированные счётчики ролика на момент выборки.
// Читаются одним запросом на весь проход ранжирования, чтобы все
// слагаемые скора одного кандидата считались по одному снимку.
type VideoStats struct {
	Likes    int64
	NotLikes int64
	Views    int64
}

// VideoSummary — ролик вместе со счётчиками; единица выдачи фида.
type VideoSummary struct {
	Video Video
	Stats VideoStats
}
