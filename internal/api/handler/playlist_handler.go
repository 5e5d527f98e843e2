package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
	"github.com/d60-Lab/viewtube/pkg/response"
)

type playlistRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
}

// CreatePlaylist 新建播放列表
// @Summary 新建播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Param request body playlistRequest true "列表信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/playlists [post]
func (h *Handler) CreatePlaylist(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	playlist, err := h.playlistSvc.Create(c.Request.Context(), middleware.CallerID(c), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, playlist, "Playlist created successfully")
}

// ListUserPlaylists 某用户的播放列表
// @Summary 用户播放列表
// @Tags 播放列表
// @Produce json
// @Param id path string true "用户 ID"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{id}/playlists [get]
func (h *Handler) ListUserPlaylists(c *gin.Context) {
	playlists, err := h.playlistSvc.ListByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, playlists, "Playlists fetched successfully")
}

// GetPlaylist 播放列表详情（含按序视频摘要）
// @Summary 播放列表详情
// @Tags 播放列表
// @Produce json
// @Param id path string true "列表 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/playlists/{id} [get]
func (h *Handler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, playlist, "Playlist fetched successfully")
}

// UpdatePlaylist 更新名称/描述
// @Summary 更新播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Param id path string true "列表 ID"
// @Param request body playlistRequest true "列表信息"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/playlists/{id} [patch]
func (h *Handler) UpdatePlaylist(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	playlist, err := h.playlistSvc.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, playlist, "Playlist updated successfully")
}

// DeletePlaylist 删除播放列表
// @Summary 删除播放列表
// @Tags 播放列表
// @Produce json
// @Param id path string true "列表 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/playlists/{id} [delete]
func (h *Handler) DeletePlaylist(c *gin.Context) {
	if err := h.playlistSvc.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "Playlist deleted successfully")
}

// AddVideoToPlaylist 向列表添加视频
// @Summary 添加视频
// @Tags 播放列表
// @Produce json
// @Param id path string true "列表 ID"
// @Param video_id path string true "视频 ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/playlists/{id}/videos/{video_id} [post]
func (h *Handler) AddVideoToPlaylist(c *gin.Context) {
	if err := h.playlistSvc.AddVideo(c.Request.Context(), middleware.CallerID(c), c.Param("id"), c.Param("video_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "Video added to playlist successfully")
}

// RemoveVideoFromPlaylist 从列表移除视频
// @Summary 移除视频
// @Tags 播放列表
// @Produce json
// @Param id path string true "列表 ID"
// @Param video_id path string true "视频 ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/playlists/{id}/videos/{video_id} [delete]
func (h *Handler) RemoveVideoFromPlaylist(c *gin.Context) {
	if err := h.playlistSvc.RemoveVideo(c.Request.Context(), middleware.CallerID(c), c.Param("id"), c.Param("video_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "Video removed from playlist successfully")
}
