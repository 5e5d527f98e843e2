package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
	"github.com/d60-Lab/viewtube/pkg/response"
)

type commentRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// ListComments 视频评论列表（带评论者摘要）
// @Summary 评论列表
// @Tags 评论
// @Produce json
// @Param id path string true "视频 ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/videos/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	page, err := h.commentSvc.ListByVideo(c.Request.Context(), c.Param("id"), listOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page, "Comments fetched successfully")
}

// AddComment 发表评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path string true "视频 ID"
// @Param request body commentRequest true "评论内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/videos/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.commentSvc.Create(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment, "Comment added successfully")
}

// UpdateComment 修改自己的评论
// @Summary 修改评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path string true "评论 ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/comments/{id} [patch]
func (h *Handler) UpdateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.commentSvc.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment, "Comment updated successfully")
}

// DeleteComment 删除自己的评论
// @Summary 删除评论
// @Tags 评论
// @Produce json
// @Param id path string true "评论 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.commentSvc.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "Comment deleted successfully")
}
