package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

func TestCommentCreate(t *testing.T) {
	e := newTestEnv(t)
	svc := NewCommentService(e.comments, e.videos)
	author := e.seedUser(t, "alice")
	video := e.seedVideo(t, e.seedUser(t, "bob").ID, "demo", true)

	comment, err := svc.Create(ctxT(), author.ID, video.ID, "  great video  ")
	require.NoError(t, err)
	assert.Equal(t, "great video", comment.Content)
	assert.Equal(t, author.ID, comment.OwnerID)
}

func TestCommentCreate_Rejections(t *testing.T) {
	e := newTestEnv(t)
	svc := NewCommentService(e.comments, e.videos)
	author := e.seedUser(t, "alice")
	video := e.seedVideo(t, author.ID, "demo", true)

	// 纯空白内容在任何写入之前被拒
	_, err := svc.Create(ctxT(), author.ID, video.ID, "   \t  ")
	assert.ErrorIs(t, err, errs.Validation(""))
	var cnt int64
	require.NoError(t, e.db.Model(&model.Comment{}).Count(&cnt).Error)
	assert.Zero(t, cnt)

	_, err = svc.Create(ctxT(), author.ID, uuid.New().String(), "hello")
	assert.ErrorIs(t, err, errs.NotFound("video"))

	_, err = svc.Create(ctxT(), author.ID, "bad-id", "hello")
	assert.ErrorIs(t, err, errs.InvalidID("video id"))
}

func TestCommentUpdateDelete_OwnershipGuard(t *testing.T) {
	e := newTestEnv(t)
	svc := NewCommentService(e.comments, e.videos)
	author := e.seedUser(t, "alice")
	intruder := e.seedUser(t, "mallory")
	video := e.seedVideo(t, author.ID, "demo", true)
	comment := e.seedComment(t, author.ID, video.ID, "original")

	_, err := svc.Update(ctxT(), intruder.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, errs.Forbidden(""))

	err = svc.Delete(ctxT(), intruder.ID, comment.ID)
	assert.ErrorIs(t, err, errs.Forbidden(""))

	updated, err := svc.Update(ctxT(), author.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, svc.Delete(ctxT(), author.ID, comment.ID))
	err = svc.Delete(ctxT(), author.ID, comment.ID)
	assert.ErrorIs(t, err, errs.NotFound("comment"))
}

func TestCommentList_ProjectsAuthorSummary(t *testing.T) {
	e := newTestEnv(t)
	svc := NewCommentService(e.comments, e.videos)
	author := e.seedUser(t, "alice")
	video := e.seedVideo(t, author.ID, "demo", true)
	for i := 0; i < 12; i++ {
		e.seedComment(t, author.ID, video.ID, fmt.Sprintf("comment %d", i))
	}

	page, err := svc.ListByVideo(ctxT(), video.ID, repository.ListOptions{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 12, page.Total)
	assert.Len(t, page.Items, 2)
	assert.False(t, page.HasMore)
	assert.Equal(t, "alice", page.Items[0].Owner.Username)
}
