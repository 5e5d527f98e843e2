package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

// CommentItem 评论条目：内容 + 评论者摘要投影
type CommentItem struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	VideoID   string            `json:"videoId"`
	CreatedAt time.Time         `json:"createdAt"`
	Owner     model.UserSummary `json:"owner"`
}

type CommentService interface {
	ListByVideo(ctx context.Context, videoID string, opts repository.ListOptions) (*repository.Page[CommentItem], error)
	Create(ctx context.Context, authorID, videoID, content string) (*model.Comment, error)
	Update(ctx context.Context, callerID, commentID, content string) (*model.Comment, error)
	Delete(ctx context.Context, callerID, commentID string) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
}

func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) CommentService {
	return &commentService{comments: comments, videos: videos}
}

func (s *commentService) ListByVideo(ctx context.Context, videoID string, opts repository.ListOptions) (*repository.Page[CommentItem], error) {
	vid, err := checkID("video id", videoID)
	if err != nil {
		return nil, err
	}

	page, err := s.comments.ListByVideo(ctx, vid, opts)
	if err != nil {
		return nil, err
	}

	items := make([]CommentItem, 0, len(page.Items))
	for _, row := range page.Items {
		items = append(items, CommentItem{
			ID:        row.ID,
			Content:   row.Content,
			VideoID:   row.VideoID,
			CreatedAt: row.CreatedAt,
			Owner: model.UserSummary{
				ID:       row.OwnerID,
				Username: row.OwnerUsername,
				FullName: row.OwnerFullName,
				Avatar:   row.OwnerAvatar,
			},
		})
	}
	return &repository.Page[CommentItem]{
		Items: items, Total: page.Total, Page: page.Page, PageSize: page.PageSize, HasMore: page.HasMore,
	}, nil
}

func (s *commentService) Create(ctx context.Context, authorID, videoID, content string) (*model.Comment, error) {
	vid, err := checkID("video id", videoID)
	if err != nil {
		return nil, err
	}
	text, err := requireText("comment content", content)
	if err != nil {
		return nil, err
	}

	ok, err := s.videos.Exists(ctx, vid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if !ok {
		return nil, errs.NotFound("video")
	}

	comment := &model.Comment{ID: uuid.New().String(), Content: text, VideoID: vid, OwnerID: authorID}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, errs.Storage(err)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, callerID, commentID, content string) (*model.Comment, error) {
	cid, err := checkID("comment id", commentID)
	if err != nil {
		return nil, err
	}
	text, err := requireText("comment content", content)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.ByID(ctx, cid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if comment == nil {
		return nil, errs.NotFound("comment")
	}
	if err := authorizeOwner(comment, callerID, "comment"); err != nil {
		return nil, err
	}

	comment.Content = text
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, errs.Storage(err)
	}
	return comment, nil
}

// Delete 叶子删除：不清理该评论收到的点赞（与线上行为一致）
func (s *commentService) Delete(ctx context.Context, callerID, commentID string) error {
	cid, err := checkID("comment id", commentID)
	if err != nil {
		return err
	}

	comment, err := s.comments.ByID(ctx, cid)
	if err != nil {
		return errs.Storage(err)
	}
	if comment == nil {
		return errs.NotFound("comment")
	}
	if err := authorizeOwner(comment, callerID, "comment"); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, cid); err != nil {
		return errs.Storage(err)
	}
	return nil
}
