package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

// PlaylistDetail 播放列表详情：基础信息 + 按顺序的视频摘要
type PlaylistDetail struct {
	ID          string                        `json:"id"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	OwnerID     string                        `json:"owner"`
	CreatedAt   time.Time                     `json:"createdAt"`
	UpdatedAt   time.Time                     `json:"updatedAt"`
	Videos      []repository.PlaylistVideoRow `json:"videos"`
}

type PlaylistService interface {
	Create(ctx context.Context, ownerID, name, description string) (*model.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Playlist, error)
	Get(ctx context.Context, playlistID string) (*PlaylistDetail, error)
	Update(ctx context.Context, callerID, playlistID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, callerID, playlistID string) error
	AddVideo(ctx context.Context, callerID, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, callerID, playlistID, videoID string) error
}

type playlistService struct {
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
}

func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository) PlaylistService {
	return &playlistService{playlists: playlists, videos: videos}
}

func (s *playlistService) Create(ctx context.Context, ownerID, name, description string) (*model.Playlist, error) {
	n, err := requireText("name", name)
	if err != nil {
		return nil, err
	}
	d, err := requireText("description", description)
	if err != nil {
		return nil, err
	}

	playlist := &model.Playlist{ID: uuid.New().String(), Name: n, Description: d, OwnerID: ownerID}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, errs.Storage(err)
	}
	return playlist, nil
}

func (s *playlistService) ListByOwner(ctx context.Context, ownerID string) ([]model.Playlist, error) {
	id, err := checkID("user id", ownerID)
	if err != nil {
		return nil, err
	}
	res, err := s.playlists.ListByOwner(ctx, id)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return res, nil
}

func (s *playlistService) Get(ctx context.Context, playlistID string) (*PlaylistDetail, error) {
	pid, err := checkID("playlist id", playlistID)
	if err != nil {
		return nil, err
	}
	playlist, err := s.playlists.ByID(ctx, pid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if playlist == nil {
		return nil, errs.NotFound("playlist")
	}

	videos, err := s.playlists.ListVideos(ctx, pid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return &PlaylistDetail{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
		Videos:      videos,
	}, nil
}

func (s *playlistService) Update(ctx context.Context, callerID, playlistID, name, description string) (*model.Playlist, error) {
	playlist, err := s.loadOwned(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}
	n, err := requireText("name", name)
	if err != nil {
		return nil, err
	}
	d, err := requireText("description", description)
	if err != nil {
		return nil, err
	}

	playlist.Name = n
	playlist.Description = d
	if err := s.playlists.Save(ctx, playlist); err != nil {
		return nil, errs.Storage(err)
	}
	return playlist, nil
}

func (s *playlistService) Delete(ctx context.Context, callerID, playlistID string) error {
	playlist, err := s.loadOwned(ctx, callerID, playlistID)
	if err != nil {
		return err
	}
	if err := s.playlists.Delete(ctx, playlist.ID); err != nil {
		return errs.Storage(err)
	}
	return nil
}

// AddVideo absent→present，已在列表中则 Conflict
func (s *playlistService) AddVideo(ctx context.Context, callerID, playlistID, videoID string) error {
	vid, err := checkID("video id", videoID)
	if err != nil {
		return err
	}
	playlist, err := s.loadOwned(ctx, callerID, playlistID)
	if err != nil {
		return err
	}

	ok, err := s.videos.Exists(ctx, vid)
	if err != nil {
		return errs.Storage(err)
	}
	if !ok {
		return errs.NotFound("video")
	}

	added, err := s.playlists.AddVideo(ctx, playlist.ID, vid)
	if err != nil {
		return errs.Storage(err)
	}
	if !added {
		return errs.Conflict("video already exists in the playlist")
	}
	return nil
}

// RemoveVideo present→absent，不在列表中则 Conflict
func (s *playlistService) RemoveVideo(ctx context.Context, callerID, playlistID, videoID string) error {
	vid, err := checkID("video id", videoID)
	if err != nil {
		return err
	}
	playlist, err := s.loadOwned(ctx, callerID, playlistID)
	if err != nil {
		return err
	}

	removed, err := s.playlists.RemoveVideo(ctx, playlist.ID, vid)
	if err != nil {
		return errs.Storage(err)
	}
	if !removed {
		return errs.Conflict("video does not exist in the playlist")
	}
	return nil
}

// loadOwned 校验 ID → 确认存在 → 校验归属，所有写路径共用
func (s *playlistService) loadOwned(ctx context.Context, callerID, playlistID string) (*model.Playlist, error) {
	pid, err := checkID("playlist id", playlistID)
	if err != nil {
		return nil, err
	}
	playlist, err := s.playlists.ByID(ctx, pid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if playlist == nil {
		return nil, errs.NotFound("playlist")
	}
	if err := authorizeOwner(playlist, callerID, "playlist"); err != nil {
		return nil, err
	}
	return playlist, nil
}
