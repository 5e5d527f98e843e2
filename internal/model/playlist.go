package model

import "time"

// Playlist 播放列表
type Playlist struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	OwnerID     string `gorm:"type:varchar(36);not null;index:idx_playlist_owner"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Playlist) TableName() string { return "playlists" }

func (p *Playlist) OwnedBy() string { return p.OwnerID }

// PlaylistVideo 播放列表成员，Position 保持加入顺序
type PlaylistVideo struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	PlaylistID string `gorm:"type:varchar(36);not null;index:idx_pv_playlist;index:idx_pv_pair,unique"`
	VideoID    string `gorm:"type:varchar(36);not null;index:idx_pv_pair,unique"`
	// 复合唯一键，同一视频在同一列表中只出现一次
	// idx_pv_pair = (playlist_id, video_id)
	Position  int `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }
