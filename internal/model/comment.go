package model

import "time"

// Comment 视频评论
type Comment struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Content   string `gorm:"type:text;not null"`
	VideoID   string `gorm:"type:varchar(36);not null;index:idx_comment_video"`
	OwnerID   string `gorm:"type:varchar(36);not null;index:idx_comment_owner"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) OwnedBy() string { return c.OwnerID }
