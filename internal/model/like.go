package model

import "time"

// LikeTarget 点赞目标类型，likes 表按 (user, target_type, target_id) 判重
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like 点赞边（用户 → 且仅一个目标）
type Like struct {
	ID         string     `gorm:"primaryKey;type:varchar(36)"`
	UserID     string     `gorm:"type:varchar(36);not null;index:idx_like_user;index:idx_like_edge,unique"`
	TargetType LikeTarget `gorm:"type:varchar(16);not null;index:idx_like_edge,unique"`
	TargetID   string     `gorm:"type:varchar(36);not null;index:idx_like_target;index:idx_like_edge,unique"`
	// 复合唯一键，同一用户对同一目标至多一条点赞
	// idx_like_edge = (user_id, target_type, target_id)
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Like) TableName() string { return "likes" }
