package model

import "time"

// Subscription 订阅关系（订阅者 → 频道，频道也是用户）
type Subscription struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	SubscriberID string `gorm:"type:varchar(36);not null;index:idx_sub_subscriber;index:idx_sub_pair,unique"`
	ChannelID    string `gorm:"type:varchar(36);not null;index:idx_sub_channel;index:idx_sub_pair,unique"`
	// 复合唯一键，避免重复订阅
	// idx_sub_pair = (subscriber_id, channel_id)
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Subscription) TableName() string { return "subscriptions" }
