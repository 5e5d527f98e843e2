package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/storage"
)

type testEnv struct {
	db        *gorm.DB
	users     repository.UserRepository
	videos    repository.VideoRepository
	comments  repository.CommentRepository
	likes     repository.LikeRepository
	subs      repository.SubscriptionRepository
	playlists repository.PlaylistRepository
	tweets    repository.TweetRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return &testEnv{
		db:        db,
		users:     repository.NewUserRepository(db),
		videos:    repository.NewVideoRepository(db),
		comments:  repository.NewCommentRepository(db),
		likes:     repository.NewLikeRepository(db),
		subs:      repository.NewSubscriptionRepository(db),
		playlists: repository.NewPlaylistRepository(db),
		tweets:    repository.NewTweetRepository(db),
	}
}

func (e *testEnv) seedUser(t *testing.T, name string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       uuid.New().String(),
		Username: name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "hash",
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) seedVideo(t *testing.T, ownerID, title string, published bool) *model.Video {
	t.Helper()
	v := &model.Video{
		ID:          uuid.New().String(),
		VideoFile:   "http://cdn.local/v.mp4",
		Thumbnail:   "http://cdn.local/t.jpg",
		Title:       title,
		Description: "desc",
		Duration:    42,
		IsPublished: published,
		OwnerID:     ownerID,
	}
	require.NoError(t, e.db.Create(v).Error)
	return v
}

func (e *testEnv) seedComment(t *testing.T, ownerID, videoID, content string) *model.Comment {
	t.Helper()
	c := &model.Comment{ID: uuid.New().String(), Content: content, VideoID: videoID, OwnerID: ownerID}
	require.NoError(t, e.db.Create(c).Error)
	return c
}

// fakeUploader 测试替身：记录调用并返回固定 URL
type fakeUploader struct {
	videoCalls int
	imageCalls int
	failVideo  bool
}

func (f *fakeUploader) UploadVideo(_ context.Context, _, objectName string) (storage.UploadResult, error) {
	f.videoCalls++
	if f.failVideo {
		return storage.UploadResult{}, fmt.Errorf("minio down")
	}
	return storage.UploadResult{URL: "http://cdn.local/" + objectName, Duration: 12.5}, nil
}

func (f *fakeUploader) UploadImage(_ context.Context, _, objectName, _ string) (string, error) {
	f.imageCalls++
	return "http://cdn.local/" + objectName, nil
}

func ctxT() context.Context { return context.Background() }
