package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/internal/service"
)

// Handler 聚合所有 HTTP 入口
type Handler struct {
	userSvc      service.UserService
	videoSvc     service.VideoService
	commentSvc   service.CommentService
	likeSvc      service.LikeService
	subSvc       service.SubscriptionService
	playlistSvc  service.PlaylistService
	tweetSvc     service.TweetService
	dashboardSvc service.DashboardService
}

func New(
	userSvc service.UserService,
	videoSvc service.VideoService,
	commentSvc service.CommentService,
	likeSvc service.LikeService,
	subSvc service.SubscriptionService,
	playlistSvc service.PlaylistService,
	tweetSvc service.TweetService,
	dashboardSvc service.DashboardService,
) *Handler {
	return &Handler{
		userSvc:      userSvc,
		videoSvc:     videoSvc,
		commentSvc:   commentSvc,
		likeSvc:      likeSvc,
		subSvc:       subSvc,
		playlistSvc:  playlistSvc,
		tweetSvc:     tweetSvc,
		dashboardSvc: dashboardSvc,
	}
}

// listOptions 统一解析 page / page_size / sort_by / sort_dir。
// 解析失败给 0，由分页器按 InvalidPage 拒绝。
func listOptions(c *gin.Context) repository.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return repository.ListOptions{
		Page:     page,
		PageSize: pageSize,
		SortBy:   c.Query("sort_by"),
		SortDesc: c.DefaultQuery("sort_dir", "desc") != "asc",
	}
}
