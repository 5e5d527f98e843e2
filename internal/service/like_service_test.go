package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

func newLikeSvc(e *testEnv) LikeService {
	return NewLikeService(e.likes, e.videos, e.comments, e.tweets)
}

func TestToggleVideoLike_FlipsEdge(t *testing.T) {
	e := newTestEnv(t)
	svc := newLikeSvc(e)
	user := e.seedUser(t, "alice")
	video := e.seedVideo(t, e.seedUser(t, "bob").ID, "demo", true)

	liked, err := svc.ToggleVideoLike(ctxT(), user.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	// 再 toggle 一次必回到未点赞
	liked, err = svc.ToggleVideoLike(ctxT(), user.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	present, err := e.likes.Exists(ctxT(), user.ID, model.LikeTargetVideo, video.ID)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestToggleVideoLike_TargetMissing(t *testing.T) {
	e := newTestEnv(t)
	svc := newLikeSvc(e)
	user := e.seedUser(t, "alice")

	_, err := svc.ToggleVideoLike(ctxT(), user.ID, uuid.New().String())
	assert.ErrorIs(t, err, errs.NotFound("video"))
}

func TestToggleVideoLike_MalformedID(t *testing.T) {
	e := newTestEnv(t)
	svc := newLikeSvc(e)

	_, err := svc.ToggleVideoLike(ctxT(), "u1", "not-a-uuid")
	assert.ErrorIs(t, err, errs.InvalidID("video id"))
}

func TestToggleCommentLike_IndependentOfVideoLike(t *testing.T) {
	e := newTestEnv(t)
	svc := newLikeSvc(e)
	user := e.seedUser(t, "alice")
	owner := e.seedUser(t, "bob")
	video := e.seedVideo(t, owner.ID, "demo", true)
	comment := e.seedComment(t, owner.ID, video.ID, "first")

	_, err := svc.ToggleVideoLike(ctxT(), user.ID, video.ID)
	require.NoError(t, err)
	liked, err := svc.ToggleCommentLike(ctxT(), user.ID, comment.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	// 同一用户、不同目标类型是两条独立的边
	videoLikes, err := e.likes.CountByTarget(ctxT(), model.LikeTargetVideo, video.ID)
	require.NoError(t, err)
	commentLikes, err := e.likes.CountByTarget(ctxT(), model.LikeTargetComment, comment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, videoLikes)
	assert.EqualValues(t, 1, commentLikes)
}

func TestToggleTweetLike(t *testing.T) {
	e := newTestEnv(t)
	svc := newLikeSvc(e)
	user := e.seedUser(t, "alice")
	tweet := &model.Tweet{ID: uuid.New().String(), Content: "hi", OwnerID: user.ID}
	require.NoError(t, e.db.Create(tweet).Error)

	liked, err := svc.ToggleTweetLike(ctxT(), user.ID, tweet.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	_, err = svc.ToggleTweetLike(ctxT(), user.ID, uuid.New().String())
	assert.ErrorIs(t, err, errs.NotFound("tweet"))
}

func TestListLikedVideos_SkipsDeletedTargets(t *testing.T) {
	e := newTestEnv(t)
	svc := newLikeSvc(e)
	user := e.seedUser(t, "alice")
	owner := e.seedUser(t, "bob")
	kept := e.seedVideo(t, owner.ID, "kept", true)
	gone := e.seedVideo(t, owner.ID, "gone", true)

	_, err := svc.ToggleVideoLike(ctxT(), user.ID, kept.ID)
	require.NoError(t, err)
	_, err = svc.ToggleVideoLike(ctxT(), user.ID, gone.ID)
	require.NoError(t, err)

	// 直接删掉视频行，残留的点赞边不应出现在列表里
	require.NoError(t, e.db.Delete(&model.Video{}, "id = ?", gone.ID).Error)

	page, err := svc.ListLikedVideos(ctxT(), user.ID, repository.ListOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, kept.ID, page.Items[0].ID)
}
