package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/viewtube/internal/model"
)

// CommentOwnerRow 评论列表投影：评论内容 + 评论者摘要
type CommentOwnerRow struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	VideoID       string    `json:"videoId"`
	CreatedAt     time.Time `json:"createdAt"`
	OwnerID       string    `json:"-"`
	OwnerUsername string    `json:"-"`
	OwnerFullName string    `json:"-"`
	OwnerAvatar   string    `json:"-"`
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ByID(ctx context.Context, id string) (*model.Comment, error)
	Save(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	ListByVideo(ctx context.Context, videoID string, opts ListOptions) (*Page[CommentOwnerRow], error)
	DeleteByVideo(ctx context.Context, videoID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) Save(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{}).Error
}

func (r *commentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *commentRepository) ListByVideo(ctx context.Context, videoID string, opts ListOptions) (*Page[CommentOwnerRow], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select(`comments.id, comments.content, comments.video_id, comments.created_at,
			users.id AS owner_id, users.username AS owner_username,
			users.full_name AS owner_full_name, users.avatar AS owner_avatar`).
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.video_id = ?", videoID)

	return paginate[CommentOwnerRow](q, opts, "comments.created_at DESC")
}

// DeleteByVideo 视频级联清理用；重复执行安全（删除本身幂等）
func (r *commentRepository) DeleteByVideo(ctx context.Context, videoID string) error {
	return r.db.WithContext(ctx).Where("video_id = ?", videoID).Delete(&model.Comment{}).Error
}
