package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
	"github.com/d60-Lab/viewtube/pkg/logger"
	"github.com/d60-Lab/viewtube/pkg/storage"
	"go.uber.org/zap"
)

// VideoItem 视频列表条目：视频字段 + 作者摘要投影
type VideoItem struct {
	ID          string            `json:"id"`
	VideoFile   string            `json:"videoFile"`
	Thumbnail   string            `json:"thumbnail"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Duration    float64           `json:"duration"`
	Views       int64             `json:"views"`
	CreatedAt   time.Time         `json:"createdAt"`
	Owner       model.UserSummary `json:"owner"`
}

type CreateVideoInput struct {
	Title                string
	Description          string
	VideoPath            string // 本地临时文件，由 handler 落盘
	ThumbnailPath        string
	ThumbnailContentType string
}

type UpdateVideoInput struct {
	Title                string
	Description          string
	ThumbnailPath        string // 为空表示不更换封面
	ThumbnailContentType string
}

// viewCounter 播放计数的异步收集端（见 ViewFlusher）
type viewCounter interface {
	Bump(videoID string)
}

type VideoService interface {
	List(ctx context.Context, query, ownerID string, opts repository.ListOptions) (*repository.Page[VideoItem], error)
	Get(ctx context.Context, id string) (*model.Video, error)
	Create(ctx context.Context, ownerID string, in CreateVideoInput) (*model.Video, error)
	Update(ctx context.Context, callerID, id string, in UpdateVideoInput) (*model.Video, error)
	Delete(ctx context.Context, callerID, id string) error
	TogglePublish(ctx context.Context, callerID, id string) (bool, error)
}

type videoService struct {
	videos   repository.VideoRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
	uploader storage.Uploader
	views    viewCounter
}

func NewVideoService(videos repository.VideoRepository, comments repository.CommentRepository, likes repository.LikeRepository, uploader storage.Uploader, views viewCounter) VideoService {
	return &videoService{videos: videos, comments: comments, likes: likes, uploader: uploader, views: views}
}

// List 仅返回已发布视频；ownerID 可选过滤发布者
func (s *videoService) List(ctx context.Context, query, ownerID string, opts repository.ListOptions) (*repository.Page[VideoItem], error) {
	filter := repository.VideoFilter{Query: query, OnlyPublished: true}
	if ownerID != "" {
		id, err := checkID("user id", ownerID)
		if err != nil {
			return nil, err
		}
		filter.OwnerID = id
	}

	page, err := s.videos.List(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	items := make([]VideoItem, 0, len(page.Items))
	for _, row := range page.Items {
		items = append(items, VideoItem{
			ID:          row.ID,
			VideoFile:   row.VideoFile,
			Thumbnail:   row.Thumbnail,
			Title:       row.Title,
			Description: row.Description,
			Duration:    row.Duration,
			Views:       row.Views,
			CreatedAt:   row.CreatedAt,
			Owner:       model.UserSummary{ID: row.OwnerID, Username: row.OwnerUsername, Avatar: row.OwnerAvatar},
		})
	}
	return &repository.Page[VideoItem]{
		Items: items, Total: page.Total, Page: page.Page, PageSize: page.PageSize, HasMore: page.HasMore,
	}, nil
}

func (s *videoService) Get(ctx context.Context, id string) (*model.Video, error) {
	vid, err := checkID("video id", id)
	if err != nil {
		return nil, err
	}
	video, err := s.videos.ByID(ctx, vid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if video == nil {
		return nil, errs.NotFound("video")
	}
	if s.views != nil {
		s.views.Bump(vid)
	}
	return video, nil
}

func (s *videoService) Create(ctx context.Context, ownerID string, in CreateVideoInput) (*model.Video, error) {
	title, err := requireText("title", in.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", in.Description)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()

	uploaded, err := s.uploader.UploadVideo(ctx, in.VideoPath, "videos/"+id+".mp4")
	if err != nil {
		return nil, errs.UploadFailed("error uploading video file")
	}
	if uploaded.URL == "" {
		return nil, errs.UploadFailed("upload did not return a video URL")
	}

	thumbURL, err := s.uploader.UploadImage(ctx, in.ThumbnailPath, "thumbnails/"+id+imageExt(in.ThumbnailContentType), in.ThumbnailContentType)
	if err != nil || thumbURL == "" {
		return nil, errs.UploadFailed("error uploading thumbnail")
	}

	video := &model.Video{
		ID:          id,
		VideoFile:   uploaded.URL,
		Thumbnail:   thumbURL,
		Title:       title,
		Description: description,
		Duration:    uploaded.Duration,
		IsPublished: true,
		OwnerID:     ownerID,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, errs.Storage(err)
	}
	return video, nil
}

func (s *videoService) Update(ctx context.Context, callerID, id string, in UpdateVideoInput) (*model.Video, error) {
	vid, err := checkID("video id", id)
	if err != nil {
		return nil, err
	}
	title, err := requireText("title", in.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", in.Description)
	if err != nil {
		return nil, err
	}

	video, err := s.videos.ByID(ctx, vid)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if video == nil {
		return nil, errs.NotFound("video")
	}
	if err := authorizeOwner(video, callerID, "video"); err != nil {
		return nil, err
	}

	if in.ThumbnailPath != "" {
		thumbURL, err := s.uploader.UploadImage(ctx, in.ThumbnailPath, "thumbnails/"+vid+imageExt(in.ThumbnailContentType), in.ThumbnailContentType)
		if err != nil || thumbURL == "" {
			return nil, errs.UploadFailed("error uploading thumbnail")
		}
		video.Thumbnail = thumbURL
	}

	video.Title = title
	video.Description = description
	if err := s.videos.Save(ctx, video); err != nil {
		return nil, errs.Storage(err)
	}
	return video, nil
}

// Delete 删除视频并级联清理其评论与点赞。
// 主删除落库后的清理失败以 StorageUnavailable 上报，清理本身可安全重试；
// 评论上的点赞与播放列表里的引用不在清理范围内（与线上行为一致，见 DESIGN.md）。
func (s *videoService) Delete(ctx context.Context, callerID, id string) error {
	vid, err := checkID("video id", id)
	if err != nil {
		return err
	}
	video, err := s.videos.ByID(ctx, vid)
	if err != nil {
		return errs.Storage(err)
	}
	if video == nil {
		return errs.NotFound("video")
	}
	if err := authorizeOwner(video, callerID, "video"); err != nil {
		return err
	}

	if err := s.videos.Delete(ctx, vid); err != nil {
		return errs.Storage(err)
	}
	if err := s.comments.DeleteByVideo(ctx, vid); err != nil {
		logger.L().Error("cascade comment cleanup failed", zap.String("video_id", vid), zap.Error(err))
		return errs.Storage(err)
	}
	if err := s.likes.DeleteByTarget(ctx, model.LikeTargetVideo, vid); err != nil {
		logger.L().Error("cascade like cleanup failed", zap.String("video_id", vid), zap.Error(err))
		return errs.Storage(err)
	}
	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, callerID, id string) (bool, error) {
	vid, err := checkID("video id", id)
	if err != nil {
		return false, err
	}
	video, err := s.videos.ByID(ctx, vid)
	if err != nil {
		return false, errs.Storage(err)
	}
	if video == nil {
		return false, errs.NotFound("video")
	}
	if err := authorizeOwner(video, callerID, "video"); err != nil {
		return false, err
	}

	video.IsPublished = !video.IsPublished
	if err := s.videos.Save(ctx, video); err != nil {
		return false, errs.Storage(err)
	}
	return video.IsPublished, nil
}

func imageExt(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
