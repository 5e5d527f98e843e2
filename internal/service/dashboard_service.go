package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

const statsCacheTTL = 30 * time.Second

// ChannelStats 频道聚合统计
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

type DashboardService interface {
	Stats(ctx context.Context, channelID string) (*ChannelStats, error)
	ChannelVideos(ctx context.Context, username string) ([]model.Video, error)
}

type dashboardService struct {
	videos repository.VideoRepository
	subs   repository.SubscriptionRepository
	likes  repository.LikeRepository
	users  repository.UserRepository
	cache  *redis.Client // 可为 nil，直接查库
}

func NewDashboardService(videos repository.VideoRepository, subs repository.SubscriptionRepository, likes repository.LikeRepository, users repository.UserRepository, cache *redis.Client) DashboardService {
	return &dashboardService{videos: videos, subs: subs, likes: likes, users: users, cache: cache}
}

// Stats 四个聚合各自独立查询，短 TTL 缓存吸收仪表盘的重复刷新
func (s *dashboardService) Stats(ctx context.Context, channelID string) (*ChannelStats, error) {
	cacheKey := "dashboard:stats:" + channelID
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached ChannelStats
			if uErr := json.Unmarshal(data, &cached); uErr == nil {
				return &cached, nil
			}
		}
	}

	totalVideos, err := s.videos.CountByOwner(ctx, channelID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	totalViews, err := s.videos.SumViewsByOwner(ctx, channelID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	totalSubscribers, err := s.subs.CountByChannel(ctx, channelID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	totalLikes, err := s.likes.CountVideoLikesForOwner(ctx, channelID)
	if err != nil {
		return nil, errs.Storage(err)
	}

	stats := &ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}
	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			_ = s.cache.Set(ctx, cacheKey, payload, statsCacheTTL).Err()
		}
	}
	return stats, nil
}

// ChannelVideos 按用户名取频道全部视频（含未发布，频道主视角）
func (s *dashboardService) ChannelVideos(ctx context.Context, username string) ([]model.Video, error) {
	name, err := requireText("username", username)
	if err != nil {
		return nil, err
	}

	channel, err := s.users.ByUsername(ctx, strings.ToLower(name))
	if err != nil {
		return nil, errs.Storage(err)
	}
	if channel == nil {
		return nil, errs.NotFound("channel")
	}

	videos, err := s.videos.ListByOwner(ctx, channel.ID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return videos, nil
}
