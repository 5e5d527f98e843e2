package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
	"github.com/d60-Lab/viewtube/pkg/response"
)

// ToggleSubscription 订阅/退订频道
// @Summary 订阅 toggle
// @Tags 订阅
// @Produce json
// @Param channel_id path string true "频道（用户）ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/subscriptions/{channel_id} [post]
func (h *Handler) ToggleSubscription(c *gin.Context) {
	subscribed, err := h.subSvc.Toggle(c.Request.Context(), middleware.CallerID(c), c.Param("channel_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	msg := "Unsubscribed successfully"
	if subscribed {
		msg = "Subscribed successfully"
	}
	response.Success(c, gin.H{"subscribed": subscribed}, msg)
}

// ListSubscribers 频道的订阅者
// @Summary 订阅者列表
// @Tags 订阅
// @Produce json
// @Param id path string true "频道（用户）ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/channels/{id}/subscribers [get]
func (h *Handler) ListSubscribers(c *gin.Context) {
	page, err := h.subSvc.ListSubscribers(c.Request.Context(), c.Param("id"), listOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page, "Subscribers fetched successfully")
}

// ListSubscribedChannels 用户订阅的频道
// @Summary 订阅频道列表
// @Tags 订阅
// @Produce json
// @Param id path string true "用户 ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/users/{id}/subscriptions [get]
func (h *Handler) ListSubscribedChannels(c *gin.Context) {
	page, err := h.subSvc.ListChannels(c.Request.Context(), c.Param("id"), listOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page, "Channels fetched successfully")
}
