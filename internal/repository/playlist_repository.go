package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/viewtube/internal/model"
)

// PlaylistVideoRow 播放列表内视频投影，按加入顺序返回
type PlaylistVideoRow struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	Duration  float64 `json:"duration"`
	Position  int     `json:"position"`
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	ByID(ctx context.Context, id string) (*model.Playlist, error)
	Save(ctx context.Context, playlist *model.Playlist) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Playlist, error)
	// AddVideo 依赖 (playlist, video) 唯一索引；返回 false 表示视频已在列表中
	AddVideo(ctx context.Context, playlistID, videoID string) (bool, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error)
	ListVideos(ctx context.Context, playlistID string) ([]PlaylistVideoRow, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository { return &playlistRepository{db: db} }

func (r *playlistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *playlistRepository) ByID(ctx context.Context, id string) (*model.Playlist, error) {
	var p model.Playlist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playlistRepository) Save(ctx context.Context, playlist *model.Playlist) error {
	return r.db.WithContext(ctx).Save(playlist).Error
}

// Delete 同一事务内清掉成员行，列表删除是叶子操作
func (r *playlistRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Playlist{}).Error
	})
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Playlist, error) {
	var res []model.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		pv := &model.PlaylistVideo{
			ID:         uuid.New().String(),
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   maxPos + 1,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(pv)
		if res.Error != nil {
			return res.Error
		}
		added = res.RowsAffected > 0
		return nil
	})
	return added, err
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *playlistRepository) ListVideos(ctx context.Context, playlistID string) ([]PlaylistVideoRow, error) {
	var rows []PlaylistVideoRow
	err := r.db.WithContext(ctx).
		Model(&model.PlaylistVideo{}).
		Select(`videos.id, videos.title, videos.thumbnail, videos.duration,
			playlist_videos.position`).
		Joins("JOIN videos ON videos.id = playlist_videos.video_id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position ASC").
		Find(&rows).Error
	return rows, err
}
