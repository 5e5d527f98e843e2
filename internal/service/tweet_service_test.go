package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

func TestTweetLifecycle(t *testing.T) {
	e := newTestEnv(t)
	svc := NewTweetService(e.tweets)
	author := e.seedUser(t, "alice")
	intruder := e.seedUser(t, "mallory")

	tweet, err := svc.Create(ctxT(), author.ID, "  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", tweet.Content)

	_, err = svc.Create(ctxT(), author.ID, "   ")
	assert.ErrorIs(t, err, errs.Validation(""))

	_, err = svc.Update(ctxT(), intruder.ID, tweet.ID, "hijacked")
	assert.ErrorIs(t, err, errs.Forbidden(""))

	updated, err := svc.Update(ctxT(), author.ID, tweet.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	assert.ErrorIs(t, svc.Delete(ctxT(), intruder.ID, tweet.ID), errs.Forbidden(""))
	require.NoError(t, svc.Delete(ctxT(), author.ID, tweet.ID))
	assert.ErrorIs(t, svc.Delete(ctxT(), author.ID, tweet.ID), errs.NotFound("tweet"))
}

func TestTweetList_Paginated(t *testing.T) {
	e := newTestEnv(t)
	svc := NewTweetService(e.tweets)
	author := e.seedUser(t, "alice")
	for i := 0; i < 7; i++ {
		_, err := svc.Create(ctxT(), author.ID, fmt.Sprintf("tweet %d", i))
		require.NoError(t, err)
	}

	page, err := svc.ListByUser(ctxT(), author.ID, repository.ListOptions{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 7, page.Total)
	assert.Len(t, page.Items, 5)
	assert.True(t, page.HasMore)

	_, err = svc.ListByUser(ctxT(), "not-a-uuid", repository.ListOptions{Page: 1, PageSize: 5})
	assert.ErrorIs(t, err, errs.InvalidID("user id"))
}
