package service

import (
	"context"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

// LikeService 维护点赞边：同一 (用户, 目标) 至多一条，toggle 翻转其存在性
type LikeService interface {
	ToggleVideoLike(ctx context.Context, userID, videoID string) (bool, error)
	ToggleCommentLike(ctx context.Context, userID, commentID string) (bool, error)
	ToggleTweetLike(ctx context.Context, userID, tweetID string) (bool, error)
	ListLikedVideos(ctx context.Context, userID string, opts repository.ListOptions) (*repository.Page[repository.LikedVideoRow], error)
}

type likeService struct {
	likes    repository.LikeRepository
	videos   repository.VideoRepository
	comments repository.CommentRepository
	tweets   repository.TweetRepository
}

func NewLikeService(likes repository.LikeRepository, videos repository.VideoRepository, comments repository.CommentRepository, tweets repository.TweetRepository) LikeService {
	return &likeService{likes: likes, videos: videos, comments: comments, tweets: tweets}
}

func (s *likeService) ToggleVideoLike(ctx context.Context, userID, videoID string) (bool, error) {
	id, err := checkID("video id", videoID)
	if err != nil {
		return false, err
	}
	return s.toggle(ctx, userID, model.LikeTargetVideo, id, "video", s.videos.Exists)
}

func (s *likeService) ToggleCommentLike(ctx context.Context, userID, commentID string) (bool, error) {
	id, err := checkID("comment id", commentID)
	if err != nil {
		return false, err
	}
	return s.toggle(ctx, userID, model.LikeTargetComment, id, "comment", s.comments.Exists)
}

func (s *likeService) ToggleTweetLike(ctx context.Context, userID, tweetID string) (bool, error) {
	id, err := checkID("tweet id", tweetID)
	if err != nil {
		return false, err
	}
	return s.toggle(ctx, userID, model.LikeTargetTweet, id, "tweet", s.tweets.Exists)
}

type existsFunc func(ctx context.Context, id string) (bool, error)

// toggle 有边则删、无边则建，返回结束状态（true = 已点赞）。
// 插入依赖唯一索引判重：RowsAffected 为 0 说明并发 toggle 抢先建了边，
// 此时按"边已存在"转为删除，而不是向上抛错。
func (s *likeService) toggle(ctx context.Context, userID string, target model.LikeTarget, targetID, entity string, exists existsFunc) (bool, error) {
	ok, err := exists(ctx, targetID)
	if err != nil {
		return false, errs.Storage(err)
	}
	if !ok {
		return false, errs.NotFound(entity)
	}

	present, err := s.likes.Exists(ctx, userID, target, targetID)
	if err != nil {
		return false, errs.Storage(err)
	}
	if present {
		if _, err := s.likes.Delete(ctx, userID, target, targetID); err != nil {
			return false, errs.Storage(err)
		}
		return false, nil
	}

	created, err := s.likes.Create(ctx, userID, target, targetID)
	if err != nil {
		return false, errs.Storage(err)
	}
	if !created {
		if _, err := s.likes.Delete(ctx, userID, target, targetID); err != nil {
			return false, errs.Storage(err)
		}
		return false, nil
	}
	return true, nil
}

func (s *likeService) ListLikedVideos(ctx context.Context, userID string, opts repository.ListOptions) (*repository.Page[repository.LikedVideoRow], error) {
	return s.likes.ListLikedVideos(ctx, userID, opts)
}
