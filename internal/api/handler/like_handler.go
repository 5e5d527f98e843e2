package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
	"github.com/d60-Lab/viewtube/pkg/response"
)

// ToggleVideoLike 点赞/取消点赞视频
// @Summary 视频点赞 toggle
// @Tags 点赞
// @Produce json
// @Param id path string true "视频 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/likes/videos/{id} [post]
func (h *Handler) ToggleVideoLike(c *gin.Context) {
	liked, err := h.likeSvc.ToggleVideoLike(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	msg := "Video unliked successfully"
	if liked {
		msg = "Video liked successfully"
	}
	response.Success(c, gin.H{"liked": liked}, msg)
}

// ToggleCommentLike 点赞/取消点赞评论
// @Summary 评论点赞 toggle
// @Tags 点赞
// @Produce json
// @Param id path string true "评论 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/likes/comments/{id} [post]
func (h *Handler) ToggleCommentLike(c *gin.Context) {
	liked, err := h.likeSvc.ToggleCommentLike(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	msg := "Comment unliked successfully"
	if liked {
		msg = "Comment liked successfully"
	}
	response.Success(c, gin.H{"liked": liked}, msg)
}

// ToggleTweetLike 点赞/取消点赞动态
// @Summary 动态点赞 toggle
// @Tags 点赞
// @Produce json
// @Param id path string true "动态 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/likes/tweets/{id} [post]
func (h *Handler) ToggleTweetLike(c *gin.Context) {
	liked, err := h.likeSvc.ToggleTweetLike(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	msg := "Tweet unliked successfully"
	if liked {
		msg = "Tweet liked successfully"
	}
	response.Success(c, gin.H{"liked": liked}, msg)
}

// ListLikedVideos 当前用户点赞过的视频
// @Summary 点赞视频列表
// @Tags 点赞
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/likes/videos [get]
func (h *Handler) ListLikedVideos(c *gin.Context) {
	page, err := h.likeSvc.ListLikedVideos(c.Request.Context(), middleware.CallerID(c), listOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page, "Liked videos fetched successfully")
}
