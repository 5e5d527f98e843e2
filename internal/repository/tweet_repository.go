package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/viewtube/internal/model"
)

// TweetRow 用户动态投影
type TweetRow struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *model.Tweet) error
	ByID(ctx context.Context, id string) (*model.Tweet, error)
	Save(ctx context.Context, tweet *model.Tweet) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	ListByOwner(ctx context.Context, ownerID string, opts ListOptions) (*Page[TweetRow], error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository { return &tweetRepository{db: db} }

func (r *tweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *tweetRepository) ByID(ctx context.Context, id string) (*model.Tweet, error) {
	var t model.Tweet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tweetRepository) Save(ctx context.Context, tweet *model.Tweet) error {
	return r.db.WithContext(ctx).Save(tweet).Error
}

func (r *tweetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tweet{}).Error
}

func (r *tweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Tweet{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID string, opts ListOptions) (*Page[TweetRow], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Tweet{}).
		Select("tweets.id, tweets.content, tweets.created_at, tweets.updated_at").
		Where("tweets.owner_id = ?", ownerID)

	return paginate[TweetRow](q, opts, "tweets.created_at DESC")
}
