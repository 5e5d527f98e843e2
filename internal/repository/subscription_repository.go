package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/viewtube/internal/model"
)

// SubscriberRow 频道订阅者投影
type SubscriberRow struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	Avatar       string    `json:"avatar"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// ChannelRow 已订阅频道投影
type ChannelRow struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

type SubscriptionRepository interface {
	// Create 依赖 (subscriber, channel) 唯一索引；返回 false 表示已订阅
	Create(ctx context.Context, subscriberID, channelID string) (bool, error)
	Delete(ctx context.Context, subscriberID, channelID string) (bool, error)
	Exists(ctx context.Context, subscriberID, channelID string) (bool, error)
	CountByChannel(ctx context.Context, channelID string) (int64, error)
	ListSubscribers(ctx context.Context, channelID string, opts ListOptions) (*Page[SubscriberRow], error)
	ListChannels(ctx context.Context, subscriberID string, opts ListOptions) (*Page[ChannelRow], error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscriberID, channelID string) (bool, error) {
	s := &model.Subscription{ID: uuid.New().String(), SubscriberID: subscriberID, ChannelID: channelID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(s)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *subscriptionRepository) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&cnt).Error
	return cnt, err
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID string, opts ListOptions) (*Page[SubscriberRow], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Select(`users.id, users.username, users.full_name, users.avatar,
			subscriptions.created_at AS subscribed_at`).
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID)

	return paginate[SubscriberRow](q, opts, "subscriptions.created_at DESC")
}

func (r *subscriptionRepository) ListChannels(ctx context.Context, subscriberID string, opts ListOptions) (*Page[ChannelRow], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Select("users.id, users.username, users.full_name, users.avatar").
		Joins("JOIN users ON users.id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID)

	return paginate[ChannelRow](q, opts, "subscriptions.created_at DESC")
}
