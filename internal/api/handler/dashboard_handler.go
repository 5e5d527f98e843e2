package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
	"github.com/d60-Lab/viewtube/pkg/response"
)

// GetChannelStats 当前用户频道的聚合统计
// @Summary 频道统计
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/dashboard/stats [get]
func (h *Handler) GetChannelStats(c *gin.Context) {
	stats, err := h.dashboardSvc.Stats(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats, "Channel stats fetched successfully")
}

// GetChannelVideos 按用户名取频道全部视频
// @Summary 频道视频
// @Tags 仪表盘
// @Produce json
// @Param username query string true "频道用户名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/dashboard/videos [get]
func (h *Handler) GetChannelVideos(c *gin.Context) {
	videos, err := h.dashboardSvc.ChannelVideos(c.Request.Context(), c.Query("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos, "Channel videos fetched successfully")
}
