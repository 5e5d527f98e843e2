package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

func TestPlaylistMembership_AddRemove(t *testing.T) {
	e := newTestEnv(t)
	svc := NewPlaylistService(e.playlists, e.videos)
	owner := e.seedUser(t, "bob")
	v1 := e.seedVideo(t, owner.ID, "one", true)
	v2 := e.seedVideo(t, owner.ID, "two", true)

	playlist, err := svc.Create(ctxT(), owner.ID, "favorites", "best of")
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(ctxT(), owner.ID, playlist.ID, v1.ID))
	require.NoError(t, svc.AddVideo(ctxT(), owner.ID, playlist.ID, v2.ID))

	// 重复添加冲突
	err = svc.AddVideo(ctxT(), owner.ID, playlist.ID, v1.ID)
	assert.ErrorIs(t, err, errs.Conflict(""))

	detail, err := svc.Get(ctxT(), playlist.ID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 2)
	// 加入顺序保持
	assert.Equal(t, v1.ID, detail.Videos[0].ID)
	assert.Equal(t, v2.ID, detail.Videos[1].ID)
	assert.Less(t, detail.Videos[0].Position, detail.Videos[1].Position)

	require.NoError(t, svc.RemoveVideo(ctxT(), owner.ID, playlist.ID, v1.ID))
	// 重复移除冲突
	err = svc.RemoveVideo(ctxT(), owner.ID, playlist.ID, v1.ID)
	assert.ErrorIs(t, err, errs.Conflict(""))
}

func TestPlaylistAddVideo_VideoMissing(t *testing.T) {
	e := newTestEnv(t)
	svc := NewPlaylistService(e.playlists, e.videos)
	owner := e.seedUser(t, "bob")
	playlist, err := svc.Create(ctxT(), owner.ID, "favorites", "best of")
	require.NoError(t, err)

	err = svc.AddVideo(ctxT(), owner.ID, playlist.ID, uuid.New().String())
	assert.ErrorIs(t, err, errs.NotFound("video"))
}

func TestPlaylistWrites_OwnershipGuard(t *testing.T) {
	e := newTestEnv(t)
	svc := NewPlaylistService(e.playlists, e.videos)
	owner := e.seedUser(t, "bob")
	intruder := e.seedUser(t, "mallory")
	video := e.seedVideo(t, owner.ID, "demo", true)
	playlist, err := svc.Create(ctxT(), owner.ID, "favorites", "best of")
	require.NoError(t, err)

	_, err = svc.Update(ctxT(), intruder.ID, playlist.ID, "new", "new")
	assert.ErrorIs(t, err, errs.Forbidden(""))
	assert.ErrorIs(t, svc.Delete(ctxT(), intruder.ID, playlist.ID), errs.Forbidden(""))
	assert.ErrorIs(t, svc.AddVideo(ctxT(), intruder.ID, playlist.ID, video.ID), errs.Forbidden(""))

	// 读路径不做归属校验
	detail, err := svc.Get(ctxT(), playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "favorites", detail.Name)
}

func TestPlaylistDelete_RemovesMemberships(t *testing.T) {
	e := newTestEnv(t)
	svc := NewPlaylistService(e.playlists, e.videos)
	owner := e.seedUser(t, "bob")
	video := e.seedVideo(t, owner.ID, "demo", true)
	playlist, err := svc.Create(ctxT(), owner.ID, "favorites", "best of")
	require.NoError(t, err)
	require.NoError(t, svc.AddVideo(ctxT(), owner.ID, playlist.ID, video.ID))

	require.NoError(t, svc.Delete(ctxT(), owner.ID, playlist.ID))

	var memberships int64
	require.NoError(t, e.db.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlist.ID).Count(&memberships).Error)
	assert.Zero(t, memberships)
	// 成员行删除，视频本体保留
	exists, err := e.videos.Exists(ctxT(), video.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPlaylistVideoDeleted_OrphanEntryDropped(t *testing.T) {
	e := newTestEnv(t)
	svc := NewPlaylistService(e.playlists, e.videos)
	owner := e.seedUser(t, "bob")
	video := e.seedVideo(t, owner.ID, "demo", true)
	playlist, err := svc.Create(ctxT(), owner.ID, "favorites", "best of")
	require.NoError(t, err)
	require.NoError(t, svc.AddVideo(ctxT(), owner.ID, playlist.ID, video.ID))

	// 视频被删除后成员行成为孤儿，详情里的 JOIN 会把它滤掉
	require.NoError(t, e.db.Delete(&model.Video{}, "id = ?", video.ID).Error)

	detail, err := svc.Get(ctxT(), playlist.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Videos)
}
