package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/storage"
	"github.com/short5/feed-service/mocks"
)

// Файл unit-тестов чтения ролика (videos.go).

func TestVideoByID_MapsNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		VideoByID(gomock.Any(), id).
		Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.VideoByID(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVideoByID_PassesThroughOtherErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("replica lag")
	id := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		VideoByID(gomock.Any(), id).
		Return(nil, wantErr)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.VideoByID(context.Background(), id)
	require.ErrorIs(t, err, wantErr)
}

// TestVideoByID_HappyPath — ролик возвращается вместе со счётчиками;
// отсутствие записи в снимке счётчиков означает нули.
func TestVideoByID_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	video := &models.Video{
		ID:          id,
		CreatorID:   uuid.New(),
		Title:       "morning run",
		Status:      models.StatusReady,
		PlaybackURL: "https://cdn.example.com/run.mp4",
		CreatedAt:   time.Now().UTC(),
	}
	stats := models.VideoStats{Likes: 4, NotLikes: 1, Views: 52}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		VideoByID(gomock.Any(), id).
		Return(video, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), []uuid.UUID{id}).
		Return(map[uuid.UUID]models.VideoStats{id: stats}, nil)

	svc := newSvcForTest(t, mockSt)

	got, err := svc.VideoByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, *video, got.Video)
	require.Equal(t, stats, got.Stats)
}

func TestVideoByID_ZeroStatsForFreshVideo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	video := &models.Video{ID: id, CreatorID: uuid.New(), CreatedAt: time.Now().UTC()}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		VideoByID(gomock.Any(), id).
		Return(video, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), []uuid.UUID{id}).
		Return(map[uuid.UUID]models.VideoStats{}, nil)

	svc := newSvcForTest(t, mockSt)

	got, err := svc.VideoByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, models.VideoStats{}, got.Stats)
}
