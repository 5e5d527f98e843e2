package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
	"github.com/d60-Lab/viewtube/pkg/response"
)

type tweetRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// CreateTweet 发布动态
// @Summary 发布动态
// @Tags 动态
// @Accept json
// @Produce json
// @Param request body tweetRequest true "动态内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/tweets [post]
func (h *Handler) CreateTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tweet, err := h.tweetSvc.Create(c.Request.Context(), middleware.CallerID(c), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tweet, "Tweet created successfully")
}

// ListUserTweets 某用户的动态
// @Summary 用户动态列表
// @Tags 动态
// @Produce json
// @Param id path string true "用户 ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/users/{id}/tweets [get]
func (h *Handler) ListUserTweets(c *gin.Context) {
	page, err := h.tweetSvc.ListByUser(c.Request.Context(), c.Param("id"), listOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page, "Tweets fetched successfully")
}

// UpdateTweet 修改自己的动态
// @Summary 修改动态
// @Tags 动态
// @Accept json
// @Produce json
// @Param id path string true "动态 ID"
// @Param request body tweetRequest true "动态内容"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/tweets/{id} [patch]
func (h *Handler) UpdateTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tweet, err := h.tweetSvc.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tweet, "Tweet has been updated successfully")
}

// DeleteTweet 删除自己的动态
// @Summary 删除动态
// @Tags 动态
// @Produce json
// @Param id path string true "动态 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/tweets/{id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
	if err := h.tweetSvc.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "Tweet deleted successfully")
}
