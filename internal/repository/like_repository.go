package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/viewtube/internal/model"
)

// LikedVideoRow 点赞视频列表投影
type LikedVideoRow struct {
	ID        string    `json:"id"`
	VideoFile string    `json:"videoFile"`
	Thumbnail string    `json:"thumbnail"`
	Title     string    `json:"title"`
	Duration  float64   `json:"duration"`
	Views     int64     `json:"views"`
	OwnerID   string    `json:"owner"`
	LikedAt   time.Time `json:"likedAt"`
}

type LikeRepository interface {
	// Create 依赖 (user, target_type, target_id) 唯一索引做插入判重；
	// 返回 false 表示该边已存在（含并发插入抢先的情况）
	Create(ctx context.Context, userID string, target model.LikeTarget, targetID string) (bool, error)
	// Delete 返回是否真的删掉了一条边
	Delete(ctx context.Context, userID string, target model.LikeTarget, targetID string) (bool, error)
	Exists(ctx context.Context, userID string, target model.LikeTarget, targetID string) (bool, error)
	DeleteByTarget(ctx context.Context, target model.LikeTarget, targetID string) error
	CountByTarget(ctx context.Context, target model.LikeTarget, targetID string) (int64, error)
	CountVideoLikesForOwner(ctx context.Context, ownerID string) (int64, error)
	ListLikedVideos(ctx context.Context, userID string, opts ListOptions) (*Page[LikedVideoRow], error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Create(ctx context.Context, userID string, target model.LikeTarget, targetID string) (bool, error) {
	like := &model.Like{ID: uuid.New().String(), UserID: userID, TargetType: target, TargetID: targetID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID string, target model.LikeTarget, targetID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, target, targetID).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID string, target model.LikeTarget, targetID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, target, targetID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *likeRepository) DeleteByTarget(ctx context.Context, target model.LikeTarget, targetID string) error {
	return r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", target, targetID).
		Delete(&model.Like{}).Error
}

func (r *likeRepository) CountByTarget(ctx context.Context, target model.LikeTarget, targetID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", target, targetID).
		Count(&cnt).Error
	return cnt, err
}

// CountVideoLikesForOwner 统计某频道全部视频收到的点赞数
func (r *likeRepository) CountVideoLikesForOwner(ctx context.Context, ownerID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ?", model.LikeTargetVideo).
		Where("target_id IN (?)", r.db.Model(&model.Video{}).Select("id").Where("owner_id = ?", ownerID)).
		Count(&cnt).Error
	return cnt, err
}

// ListLikedVideos match(点赞人) → join(videos, 必选) → project → sort(点赞时间) → paginate。
// INNER JOIN：目标视频已被删除的残留点赞边不进入结果。
func (r *likeRepository) ListLikedVideos(ctx context.Context, userID string, opts ListOptions) (*Page[LikedVideoRow], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Select(`videos.id, videos.video_file, videos.thumbnail, videos.title,
			videos.duration, videos.views, videos.owner_id, likes.created_at AS liked_at`).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_type = ?", userID, model.LikeTargetVideo)

	return paginate[LikedVideoRow](q, opts, "likes.created_at DESC")
}
