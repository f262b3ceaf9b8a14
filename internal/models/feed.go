package models

import "github.com/google/uuid"

// FeedOptions — параметры запроса фида.
//
// Особенности:
//   - ViewerID == nil -> анонимный просмотр, скоринг только по популярности;
//   - Cursor — непрозрачная для клиента строка (RFC 3339); битый курсор
//     трактуется как отсутствующий;
//   - при Limit <= 0 применяется серверный default (config.LimitsConfig.Default).
type FeedOptions struct {
	ViewerID *uuid.UUID
	Cursor   string
	Limit    int32
}

// FeedPage — страница ранжированного фида.
//
// NextCursor заполнен только при HasMore == true и равен CreatedAt
// последнего ролика страницы.
type FeedPage struct {
	Videos     []VideoSummary
	NextCursor string
	HasMore    bool
}
