package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/short5/feed-service/internal/models"
	"github.com/short5/feed-service/internal/storage"
	"github.com/short5/feed-service/mocks"
)

// Файл unit-тестов записи голоса (votes.go).
//
// Покрываем:
//  - валидацию направления (только like/not_like);
//  - требование хотя бы одной личности (пользователь либо сессия);
//  - приоритет пользователя над сессией при обоих заполненных;
//  - маппинг storage.ErrNotFound/ErrConflict -> сервисные сентинелы;
//  - happy-path с возвратом сохранённого голоса.

func TestVote_InvalidDirection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// До стораджа дело дойти не должно.
	mockSt := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, mockSt)

	viewerID := uuid.New()

	for _, direction := range []string{"", "dislike", "LIKE", "upvote"} {
		_, err := svc.Vote(context.Background(), VoteInput{
			VideoID:   uuid.New(),
			ViewerID:  &viewerID,
			Direction: direction,
		})
		require.ErrorIs(t, err, ErrInvalidArgument, "direction %q", direction)
	}
}

func TestVote_NoIdentity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, mockSt)

	_, err := svc.Vote(context.Background(), VoteInput{
		VideoID:   uuid.New(),
		Direction: string(models.VoteLike),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestVote_PrefersViewerOverSession — при обеих личностях голос пишется
// на пользователя, сессия игнорируется.
func TestVote_PrefersViewerOverSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()
	sessionID := uuid.New()
	videoID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)

	var captured *models.Vote
	mockSt.EXPECT().
		UpsertVote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, vote *models.Vote) (*models.Vote, error) {
			captured = vote
			return vote, nil
		})

	svc := newSvcForTest(t, mockSt)

	_, err := svc.Vote(context.Background(), VoteInput{
		VideoID:   videoID,
		ViewerID:  &viewerID,
		SessionID: &sessionID,
		Direction: string(models.VoteLike),
	})
	require.NoError(t, err)
	require.NotNil(t, captured.UserID)
	require.Equal(t, viewerID, *captured.UserID)
	require.Nil(t, captured.SessionID)
	require.Equal(t, videoID, captured.VideoID)
}

func TestVote_MapsNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		UpsertVote(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	sessionID := uuid.New()
	_, err := svc.Vote(context.Background(), VoteInput{
		VideoID:   uuid.New(),
		SessionID: &sessionID,
		Direction: string(models.VoteNotLike),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVote_MapsConflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		UpsertVote(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrConflict)

	svc := newSvcForTest(t, mockSt)

	sessionID := uuid.New()
	_, err := svc.Vote(context.Background(), VoteInput{
		VideoID:   uuid.New(),
		SessionID: &sessionID,
		Direction: string(models.VoteLike),
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestVote_PassesThroughOtherErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("pool exhausted")

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		UpsertVote(gomock.Any(), gomock.Any()).
		Return(nil, wantErr)

	svc := newSvcForTest(t, mockSt)

	sessionID := uuid.New()
	_, err := svc.Vote(context.Background(), VoteInput{
		VideoID:   uuid.New(),
		SessionID: &sessionID,
		Direction: string(models.VoteLike),
	})
	require.ErrorIs(t, err, wantErr)
}

func TestVote_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionID := uuid.New()
	videoID := uuid.New()
	saved := &models.Vote{
		ID:        uuid.New(),
		SessionID: &sessionID,
		VideoID:   videoID,
		Direction: models.VoteLike,
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		UpsertVote(gomock.Any(), gomock.Any()).
		Return(saved, nil)

	svc := newSvcForTest(t, mockSt)

	got, err := svc.Vote(context.Background(), VoteInput{
		VideoID:   videoID,
		SessionID: &sessionID,
		Direction: string(models.VoteLike),
	})
	require.NoError(t, err)
	require.Equal(t, saved, got)
}
