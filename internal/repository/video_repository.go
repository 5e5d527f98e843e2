package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/viewtube/internal/model"
)

// videoSortable 视频列表允许的排序键
var videoSortable = map[string]string{
	"createdAt": "videos.created_at",
	"views":     "videos.views",
	"duration":  "videos.duration",
	"title":     "videos.title",
}

// VideoOwnerRow 视频列表投影：视频字段 + 作者摘要，不暴露完整 users 行
type VideoOwnerRow struct {
	ID            string    `json:"id"`
	VideoFile     string    `json:"videoFile"`
	Thumbnail     string    `json:"thumbnail"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Duration      float64   `json:"duration"`
	Views         int64     `json:"views"`
	CreatedAt     time.Time `json:"createdAt"`
	OwnerID       string    `json:"-"`
	OwnerUsername string    `json:"-"`
	OwnerAvatar   string    `json:"-"`
}

// VideoFilter 视频列表的 match 条件
type VideoFilter struct {
	Query         string // 标题大小写不敏感子串
	OwnerID       string
	OnlyPublished bool
}

type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	ByID(ctx context.Context, id string) (*model.Video, error)
	Save(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter VideoFilter, opts ListOptions) (*Page[VideoOwnerRow], error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Video, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	SumViewsByOwner(ctx context.Context, ownerID string) (int64, error)
	AddViews(ctx context.Context, id string, delta int64) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository { return &videoRepository{db: db} }

func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) ByID(ctx context.Context, id string) (*model.Video, error) {
	var v model.Video
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) Save(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Video{}).Error
}

func (r *videoRepository) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// List match → join(users, 必选) → project → sort → paginate。
// INNER JOIN：作者缺失的行直接丢弃。
func (r *videoRepository) List(ctx context.Context, filter VideoFilter, opts ListOptions) (*Page[VideoOwnerRow], error) {
	order, err := buildOrder(videoSortable, opts, "videos.created_at DESC")
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Model(&model.Video{}).
		Select(`videos.id, videos.video_file, videos.thumbnail, videos.title, videos.description,
			videos.duration, videos.views, videos.created_at,
			users.id AS owner_id, users.username AS owner_username, users.avatar AS owner_avatar`).
		Joins("JOIN users ON users.id = videos.owner_id")

	if filter.OnlyPublished {
		q = q.Where("videos.is_published = ?", true)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		q = q.Where("LOWER(videos.title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if filter.OwnerID != "" {
		q = q.Where("videos.owner_id = ?", filter.OwnerID)
	}

	return paginate[VideoOwnerRow](q, opts, order)
}

func (r *videoRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Video, error) {
	var res []model.Video
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

func (r *videoRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Video{}).Where("owner_id = ?", ownerID).Count(&cnt).Error
	return cnt, err
}

func (r *videoRepository) SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *videoRepository) AddViews(ctx context.Context, id string, delta int64) error {
	return r.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}
