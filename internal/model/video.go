package model

import "time"

// Video 视频主体
type Video struct {
	ID          string  `gorm:"primaryKey;type:varchar(36)"`
	VideoFile   string  `gorm:"type:varchar(255);not null"`
	Thumbnail   string  `gorm:"type:varchar(255);not null"`
	Title       string  `gorm:"type:varchar(255);not null;index:idx_video_title"`
	Description string  `gorm:"type:text"`
	Duration    float64 `gorm:"not null;default:0"`
	Views       int64   `gorm:"not null;default:0"`
	IsPublished bool    `gorm:"not null;default:true;index:idx_video_published"`
	OwnerID     string  `gorm:"type:varchar(36);not null;index:idx_video_owner"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Video) TableName() string { return "videos" }

func (v *Video) OwnedBy() string { return v.OwnerID }
