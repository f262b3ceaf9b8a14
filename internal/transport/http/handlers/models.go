package handlers

import (
	"time"

	"github.com/short5/feed-service/internal/models"
)

// DTO HTTP-слоя. Имена полей — snake_case, временные метки — RFC 3339 (UTC).

// UserBasic — автор ролика в выдаче.
type UserBasic struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// VideoStats — счётчики ролика в выдаче.
type VideoStats struct {
	Likes    int64 `json:"likes"`
	NotLikes int64 `json:"not_likes"`
	Views    int64 `json:"views"`
}

// VideoResponse — ролик со счётчиками.
type VideoResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Thumbnail       string     `json:"thumbnail"`
	URLMp4          string     `json:"url_mp4"`
	DurationSeconds int32      `json:"duration_seconds"`
	User            UserBasic  `json:"user"`
	Stats           VideoStats `json:"stats"`
	CreatedAt       time.Time  `json:"created_at"`
}

// FeedResponse — страница фида.
// next_cursor == null, когда продолжения нет.
type FeedResponse struct {
	Videos     []VideoResponse `json:"videos"`
	NextCursor *string         `json:"next_cursor"`
	HasMore    bool            `json:"has_more"`
}

// VoteRequest — тело запроса голоса.
// session_id дублирует заголовок X-Session-Id для анонимных клиентов.
type VoteRequest struct {
	Direction string `json:"direction"`
	SessionID string `json:"session_id,omitempty"`
}

// VoteResponse — подтверждение голоса.
type VoteResponse struct {
	Message   string `json:"message"`
	VideoID   string `json:"video_id"`
	Direction string `json:"direction"`
}

// ViewRequest — тело события просмотра.
type ViewRequest struct {
	WatchedSeconds int32  `json:"watched_seconds"`
	SessionID      string `json:"session_id,omitempty"`
}

// ViewResponse — подтверждение просмотра.
type ViewResponse struct {
	Message string `json:"message"`
}

// videoFromDomain конвертирует доменную модель в DTO.
func videoFromDomain(summary models.VideoSummary) VideoResponse {
	return VideoResponse{
		ID:              summary.Video.ID.String(),
		Title:           summary.Video.Title,
		Description:     summary.Video.Description,
		Status:          string(summary.Video.Status),
		Thumbnail:       summary.Video.ThumbnailURL,
		URLMp4:          summary.Video.PlaybackURL,
		DurationSeconds: summary.Video.DurationSeconds,
		User: UserBasic{
			ID:       summary.Video.CreatorID.String(),
			Username: summary.Video.CreatorName,
		},
		Stats: VideoStats{
			Likes:    summary.Stats.Likes,
			NotLikes: summary.Stats.NotLikes,
			Views:    summary.Stats.Views,
		},
		CreatedAt: summary.Video.CreatedAt.UTC(),
	}
}

// feedFromDomain конвертирует страницу фида в DTO.
func feedFromDomain(page *models.FeedPage) FeedResponse {
	resp := FeedResponse{
		Videos:  make([]VideoResponse, 0, len(page.Videos)),
		HasMore: page.HasMore,
	}
	for _, item := range page.Videos {
		resp.Videos = append(resp.Videos, videoFromDomain(item))
	}
	if page.NextCursor != "" {
		cursor := page.NextCursor
		resp.NextCursor = &cursor
	}

	return resp
}
