package handler

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
	"github.com/d60-Lab/viewtube/internal/service"
	"github.com/d60-Lab/viewtube/pkg/response"
)

// ListVideos 公开视频列表
// @Summary 视频列表
// @Tags 视频
// @Produce json
// @Param query query string false "标题搜索（大小写不敏感子串）"
// @Param user_id query string false "按发布者过滤"
// @Param sort_by query string false "排序键" Enums(createdAt, views, duration, title)
// @Param sort_dir query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/videos [get]
func (h *Handler) ListVideos(c *gin.Context) {
	page, err := h.videoSvc.List(c.Request.Context(), c.Query("query"), c.Query("user_id"), listOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page, "Videos fetched successfully")
}

// GetVideo 视频详情（计一次播放）
// @Summary 视频详情
// @Tags 视频
// @Produce json
// @Param id path string true "视频 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/videos/{id} [get]
func (h *Handler) GetVideo(c *gin.Context) {
	video, err := h.videoSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video, "Video fetched successfully")
}

// PublishVideo 上传并发布视频
// @Summary 发布视频
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param videoFile formData file true "视频文件"
// @Param thumbnail formData file true "封面图"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/videos [post]
func (h *Handler) PublishVideo(c *gin.Context) {
	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		response.BadRequest(c, "video file is required")
		return
	}
	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		response.BadRequest(c, "thumbnail is required")
		return
	}
	if !strings.HasPrefix(videoFile.Header.Get("Content-Type"), "video/") {
		response.BadRequest(c, "invalid video file type")
		return
	}
	if !strings.HasPrefix(thumbnail.Header.Get("Content-Type"), "image/") {
		response.BadRequest(c, "invalid thumbnail file type")
		return
	}

	videoPath, err := saveTemp(c, videoFile)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer os.Remove(videoPath)
	thumbPath, err := saveTemp(c, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer os.Remove(thumbPath)

	video, err := h.videoSvc.Create(c.Request.Context(), middleware.CallerID(c), service.CreateVideoInput{
		Title:                c.PostForm("title"),
		Description:          c.PostForm("description"),
		VideoPath:            videoPath,
		ThumbnailPath:        thumbPath,
		ThumbnailContentType: thumbnail.Header.Get("Content-Type"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, video, "Video published successfully")
}

// UpdateVideo 更新标题/描述，可选换封面
// @Summary 更新视频
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "视频 ID"
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param thumbnail formData file false "新封面"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/videos/{id} [patch]
func (h *Handler) UpdateVideo(c *gin.Context) {
	in := service.UpdateVideoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}

	if thumbnail, err := c.FormFile("thumbnail"); err == nil {
		if !strings.HasPrefix(thumbnail.Header.Get("Content-Type"), "image/") {
			response.BadRequest(c, "invalid thumbnail file type")
			return
		}
		thumbPath, err := saveTemp(c, thumbnail)
		if err != nil {
			response.Error(c, err)
			return
		}
		defer os.Remove(thumbPath)
		in.ThumbnailPath = thumbPath
		in.ThumbnailContentType = thumbnail.Header.Get("Content-Type")
	}

	video, err := h.videoSvc.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video, "Video updated successfully")
}

// DeleteVideo 删除视频并级联清理评论与点赞
// @Summary 删除视频
// @Tags 视频
// @Produce json
// @Param id path string true "视频 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/videos/{id} [delete]
func (h *Handler) DeleteVideo(c *gin.Context) {
	if err := h.videoSvc.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "Video and related data deleted successfully")
}

// TogglePublish 切换发布状态
// @Summary 切换发布状态
// @Tags 视频
// @Produce json
// @Param id path string true "视频 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/videos/{id}/publish [patch]
func (h *Handler) TogglePublish(c *gin.Context) {
	published, err := h.videoSvc.TogglePublish(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	msg := "Video unpublished successfully"
	if published {
		msg = "Video published successfully"
	}
	response.Success(c, gin.H{"isPublished": published}, msg)
}

func saveTemp(c *gin.Context, file *multipart.FileHeader) (string, error) {
	path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
