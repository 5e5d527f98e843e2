package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

type TweetService interface {
	Create(ctx context.Context, authorID, content string) (*model.Tweet, error)
	ListByUser(ctx context.Context, userID string, opts repository.ListOptions) (*repository.Page[repository.TweetRow], error)
	Update(ctx context.Context, callerID, tweetID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, callerID, tweetID string) error
}

type tweetService struct {
	tweets repository.TweetRepository
}

func NewTweetService(tweets repository.TweetRepository) TweetService {
	return &tweetService{tweets: tweets}
}

func (s *tweetService) Create(ctx context.Context, authorID, content string) (*model.Tweet, error) {
	text, err := requireText("content", content)
	if err != nil {
		return nil, err
	}
	tweet := &model.Tweet{ID: uuid.New().String(), Content: text, OwnerID: authorID}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, errs.Storage(err)
	}
	return tweet, nil
}

func (s *tweetService) ListByUser(ctx context.Context, userID string, opts repository.ListOptions) (*repository.Page[repository.TweetRow], error) {
	id, err := checkID("user id", userID)
	if err != nil {
		return nil, err
	}
	return s.tweets.ListByOwner(ctx, id, opts)
}

func (s *tweetService) Update(ctx context.Context, callerID, tweetID, content string) (*model.Tweet, error) {
	tid, err := checkID("tweet id", tweetID)
	if err != nil {
		return nil, err
	}
	text, err := requireText("content", content)
	if err != nil {
		return nil, err
	}

	tweet, err := s.tweets.ByID(ctx, tid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if tweet == nil {
		return nil, errs.NotFound("tweet")
	}
	if err := authorizeOwner(tweet, callerID, "tweet"); err != nil {
		return nil, err
	}

	tweet.Content = text
	if err := s.tweets.Save(ctx, tweet); err != nil {
		return nil, errs.Storage(err)
	}
	return tweet, nil
}

// Delete 叶子删除：该动态收到的点赞不做清理（与线上行为一致）
func (s *tweetService) Delete(ctx context.Context, callerID, tweetID string) error {
	tid, err := checkID("tweet id", tweetID)
	if err != nil {
		return err
	}

	tweet, err := s.tweets.ByID(ctx, tid)
	if err != nil {
		return errs.Storage(err)
	}
	if tweet == nil {
		return errs.NotFound("tweet")
	}
	if err := authorizeOwner(tweet, callerID, "tweet"); err != nil {
		return err
	}

	if err := s.tweets.Delete(ctx, tid); err != nil {
		return errs.Storage(err)
	}
	return nil
}
