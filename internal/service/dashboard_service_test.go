package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

func newDashboardSvc(e *testEnv, cache *redis.Client) DashboardService {
	return NewDashboardService(e.videos, e.subs, e.likes, e.users, cache)
}

func TestDashboardStats_Aggregates(t *testing.T) {
	e := newTestEnv(t)
	svc := newDashboardSvc(e, nil)
	owner := e.seedUser(t, "bob")
	fan := e.seedUser(t, "alice")

	v1 := e.seedVideo(t, owner.ID, "one", true)
	v2 := e.seedVideo(t, owner.ID, "two", false)
	require.NoError(t, e.videos.AddViews(ctxT(), v1.ID, 120))
	require.NoError(t, e.videos.AddViews(ctxT(), v2.ID, 30))

	_, err := e.subs.Create(ctxT(), fan.ID, owner.ID)
	require.NoError(t, err)
	_, err = e.likes.Create(ctxT(), fan.ID, model.LikeTargetVideo, v1.ID)
	require.NoError(t, err)
	// 别人频道的视频不计入
	other := e.seedVideo(t, fan.ID, "elsewhere", true)
	require.NoError(t, e.videos.AddViews(ctxT(), other.ID, 999))

	stats, err := svc.Stats(ctxT(), owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalVideos)
	// 总播放量是 views 求和，不是视频数
	assert.EqualValues(t, 150, stats.TotalViews)
	assert.EqualValues(t, 1, stats.TotalSubscribers)
	assert.EqualValues(t, 1, stats.TotalLikes)
}

func TestDashboardStats_EmptyChannel(t *testing.T) {
	e := newTestEnv(t)
	svc := newDashboardSvc(e, nil)
	owner := e.seedUser(t, "bob")

	stats, err := svc.Stats(ctxT(), owner.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVideos)
	assert.Zero(t, stats.TotalViews)
	assert.Zero(t, stats.TotalSubscribers)
	assert.Zero(t, stats.TotalLikes)
}

func TestDashboardStats_ServesFromCache(t *testing.T) {
	e := newTestEnv(t)
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := newDashboardSvc(e, cache)
	owner := e.seedUser(t, "bob")
	e.seedVideo(t, owner.ID, "one", true)

	first, err := svc.Stats(ctxT(), owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.TotalVideos)

	// TTL 窗口内命中缓存，看不到新写入
	e.seedVideo(t, owner.ID, "two", true)
	cached, err := svc.Stats(ctxT(), owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cached.TotalVideos)

	// 缓存过期后回源
	mr.FastForward(statsCacheTTL + 1)
	fresh, err := svc.Stats(ctxT(), owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, fresh.TotalVideos)
}

func TestDashboardChannelVideos(t *testing.T) {
	e := newTestEnv(t)
	svc := newDashboardSvc(e, nil)
	owner := e.seedUser(t, "bob")
	e.seedVideo(t, owner.ID, "public", true)
	e.seedVideo(t, owner.ID, "draft", false)

	// 频道主视角：未发布视频也要出现
	videos, err := svc.ChannelVideos(ctxT(), "Bob")
	require.NoError(t, err)
	assert.Len(t, videos, 2)

	_, err = svc.ChannelVideos(ctxT(), "ghost")
	assert.ErrorIs(t, err, errs.NotFound("channel"))

	_, err = svc.ChannelVideos(ctxT(), "   ")
	assert.ErrorIs(t, err, errs.Validation(""))
}
