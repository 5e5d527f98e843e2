package model

import "time"

// Tweet 用户动态（短文本）
type Tweet struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Content   string `gorm:"type:text;not null"`
	OwnerID   string `gorm:"type:varchar(36);not null;index:idx_tweet_owner"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tweet) TableName() string { return "tweets" }

func (t *Tweet) OwnedBy() string { return t.OwnerID }
