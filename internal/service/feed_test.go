package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/short5/feed-service/internal/config"
	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/storage"
	"github.com/short5/feed-service/mocks"
)

// Файл unit-тестов сервисного слоя фида (feed.go).
//
// Покрываем:
//  - нормализацию limit (<=0 -> default, >max -> max) и размер окна кандидатов;
//  - анонимный проход без обращений к лайкам/аффинити;
//  - исключение лайкнутых зрителем роликов;
//  - курсор: отсев не строго более старых; битый курсор == отсутствующий;
//  - пустое окно — валидная пустая страница без ошибок;
//  - прокидку ошибок стораджа наверх (фид не маскирует отказ пустой выдачей);
//  - пагинацию: len(videos) <= limit, has_more и next_cursor согласованы;
//  - отсев кандидатов без playback url.

// newSvcForTest — фабрика Service с контролируемым cfg и мок-хранилищем.
func newSvcForTest(t *testing.T, st storage.Storage) *Service {
	t.Helper()
	cfg := config.Config{
		Feed: config.FeedConfig{CandidateFactor: 3},
		LimitsConfig: config.LimitsConfig{
			Default: 10,
			Max:     100,
		},
	}

	return New(st, cfg)
}

// candidateAt — готовый кандидат с валидным playback url.
func candidateAt(createdAt time.Time) models.Video {
	return models.Video{
		ID:          uuid.New(),
		CreatorID:   uuid.New(),
		Title:       "candidate",
		Status:      models.StatusReady,
		PlaybackURL: "https://cdn.example.com/v.mp4",
		CreatedAt:   createdAt,
	}
}

func TestGetFeed_NormalizesLimit_Default(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)

	// limit<=0 -> default=10, окно = 10*3.
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), int32(30)).
		Return([]models.Video{}, nil).
		Times(2)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 0})
	require.NoError(t, err)

	_, err = svc.GetFeed(context.Background(), models.FeedOptions{Limit: -5})
	require.NoError(t, err)
}

func TestGetFeed_NormalizesLimit_MaxCap(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)

	// limit>max -> max=100, окно = 100*3.
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), int32(300)).
		Return([]models.Video{}, nil)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 1000})
	require.NoError(t, err)
}

// TestGetFeed_AnonymousSkipsViewerQueries — аноним не порождает запросов
// лайков и аффинити (мок упадёт на незапланированном вызове).
func TestGetFeed_AnonymousSkipsViewerQueries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	video := candidateAt(now)

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{video}, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), []uuid.UUID{video.ID}).
		Return(map[uuid.UUID]models.VideoStats{}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
	require.Equal(t, video.ID, page.Videos[0].Video.ID)
	require.False(t, page.HasMore)
	require.Empty(t, page.NextCursor)
}

// TestGetFeed_ExcludesLikedVideos — лайкнутые зрителем ролики не попадают
// в выдачу и не участвуют в снимке счётчиков.
func TestGetFeed_ExcludesLikedVideos(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()
	now := time.Now().UTC()

	likedVideo := candidateAt(now)
	freshVideo := candidateAt(now.Add(-time.Hour))

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{likedVideo, freshVideo}, nil)
	mockSt.EXPECT().
		LikedVideoIDs(gomock.Any(), viewerID).
		Return([]uuid.UUID{likedVideo.ID}, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), []uuid.UUID{freshVideo.ID}).
		Return(map[uuid.UUID]models.VideoStats{}, nil)
	mockSt.EXPECT().
		ViewerAffinity(gomock.Any(), viewerID).
		Return(&models.Affinity{
			LikesByCreator:   map[uuid.UUID]int64{},
			NotLikedCreators: map[uuid.UUID]struct{}{},
		}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{ViewerID: &viewerID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
	require.Equal(t, freshVideo.ID, page.Videos[0].Video.ID)
}

// TestGetFeed_CursorFiltersStrictlyBefore — после курсора остаются только
// ролики строго старше его метки.
func TestGetFeed_CursorFiltersStrictlyBefore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cursorTime := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	newer := candidateAt(cursorTime.Add(time.Hour))
	atCursor := candidateAt(cursorTime)
	older := candidateAt(cursorTime.Add(-time.Hour))

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{newer, atCursor, older}, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), []uuid.UUID{older.ID}).
		Return(map[uuid.UUID]models.VideoStats{}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{
		Cursor: cursorTime.Format(time.RFC3339Nano),
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
	require.Equal(t, older.ID, page.Videos[0].Video.ID)
}

// TestGetFeed_MalformedCursorIgnored — битый курсор эквивалентен отсутствию:
// выдаётся первая страница, ошибки нет.
func TestGetFeed_MalformedCursorIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	video := candidateAt(now)

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{video}, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), []uuid.UUID{video.ID}).
		Return(map[uuid.UUID]models.VideoStats{}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{
		Cursor: "definitely-not-a-timestamp",
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
}

// TestGetFeed_EmptyWindow — отсутствие кандидатов не ошибка.
func TestGetFeed_EmptyWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 10})
	require.NoError(t, err)
	require.NotNil(t, page)
	require.Empty(t, page.Videos)
	require.False(t, page.HasMore)
	require.Empty(t, page.NextCursor)
}

// TestGetFeed_StorageErrorPropagates — отказ стораджа виден клиенту,
// а не маскируется пустым фидом.
func TestGetFeed_StorageErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("connection reset")

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return(nil, wantErr)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 10})
	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
	require.Nil(t, page)
}

// TestGetFeed_StatsErrorPropagates — то же для снимка счётчиков.
func TestGetFeed_StatsErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("query timeout")
	video := candidateAt(time.Now().UTC())

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{video}, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), gomock.Any()).
		Return(nil, wantErr)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 10})
	require.ErrorIs(t, err, wantErr)
}

// TestGetFeed_Pagination — кандидатов больше limit: страница усечена,
// has_more взведён, next_cursor равен created_at последнего элемента.
func TestGetFeed_Pagination(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Millisecond)

	// Без счётчиков и аффинити скор определяется только свежестью,
	// поэтому порядок выдачи совпадает с порядком created_at DESC.
	candidates := make([]models.Video, 0, 5)
	for i := 0; i < 5; i++ {
		candidates = append(candidates, candidateAt(now.Add(-time.Duration(i)*25*time.Hour)))
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), int32(6)).
		Return(candidates, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.VideoStats{}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Videos, 2)
	require.True(t, page.HasMore)

	last := page.Videos[len(page.Videos)-1]
	require.Equal(t, last.Video.CreatedAt.UTC().Format(time.RFC3339Nano), page.NextCursor)

	// Курсор двигается строго назад: следующая страница не пересекается
	// с уже выданной.
	cursorTime, err := time.Parse(time.RFC3339Nano, page.NextCursor)
	require.NoError(t, err)
	for _, v := range candidates[2:] {
		require.True(t, v.CreatedAt.Before(cursorTime))
	}
}

// TestGetFeed_SkipsCandidatesWithoutPlayback — кандидат без playback url
// молча выпадает из выдачи, остальные ролики не страдают.
func TestGetFeed_SkipsCandidatesWithoutPlayback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	valid := candidateAt(now)
	broken := candidateAt(now.Add(-time.Minute))
	broken.PlaybackURL = ""

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{valid, broken}, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.VideoStats{}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
	require.Equal(t, valid.ID, page.Videos[0].Video.ID)
}

// TestGetFeed_OrdersByScoreDesc — более популярный ролик выигрывает у более
// свежего, если разница в популярности перекрывает вклад свежести.
func TestGetFeed_OrdersByScoreDesc(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	fresh := candidateAt(now)
	popular := candidateAt(now.Add(-48 * time.Hour))

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListCandidates(gomock.Any(), gomock.Any()).
		Return([]models.Video{fresh, popular}, nil)
	mockSt.EXPECT().
		StatsByVideoIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.VideoStats{
			popular.ID: {Likes: 90, Views: 100},
		}, nil)

	svc := newSvcForTest(t, mockSt)

	page, err := svc.GetFeed(context.Background(), models.FeedOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Videos, 2)
	require.Equal(t, popular.ID, page.Videos[0].Video.ID)
	require.Equal(t, fresh.ID, page.Videos[1].Video.ID)
}
