package handler

import (
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/viewtube/internal/api/middleware"
)

// Router 装配全部中间件与 /api/v1 路由
func (h *Handler) Router(jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware("viewtube"))
	r.Use(middleware.RateLimit(100, 200))

	// notblank：required 放行纯空白字符串，文本字段需要更严的判定
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	v1 := r.Group("/api/v1")

	// 公开路由
	v1.POST("/auth/register", h.Register)
	v1.POST("/auth/login", h.Login)
	v1.GET("/videos", h.ListVideos)
	v1.GET("/videos/:id", h.GetVideo)
	v1.GET("/videos/:id/comments", h.ListComments)
	v1.GET("/channels/:id/subscribers", h.ListSubscribers)
	v1.GET("/users/:id/subscriptions", h.ListSubscribedChannels)
	v1.GET("/users/:id/playlists", h.ListUserPlaylists)
	v1.GET("/users/:id/tweets", h.ListUserTweets)
	v1.GET("/playlists/:id", h.GetPlaylist)

	// 需认证路由
	auth := v1.Group("")
	auth.Use(middleware.Auth(jwtSecret))
	{
		auth.POST("/videos", h.PublishVideo)
		auth.PATCH("/videos/:id", h.UpdateVideo)
		auth.DELETE("/videos/:id", h.DeleteVideo)
		auth.PATCH("/videos/:id/publish", h.TogglePublish)

		auth.POST("/videos/:id/comments", h.AddComment)
		auth.PATCH("/comments/:id", h.UpdateComment)
		auth.DELETE("/comments/:id", h.DeleteComment)

		auth.POST("/likes/videos/:id", h.ToggleVideoLike)
		auth.POST("/likes/comments/:id", h.ToggleCommentLike)
		auth.POST("/likes/tweets/:id", h.ToggleTweetLike)
		auth.GET("/likes/videos", h.ListLikedVideos)

		auth.POST("/subscriptions/:channel_id", h.ToggleSubscription)

		auth.POST("/playlists", h.CreatePlaylist)
		auth.PATCH("/playlists/:id", h.UpdatePlaylist)
		auth.DELETE("/playlists/:id", h.DeletePlaylist)
		auth.POST("/playlists/:id/videos/:video_id", h.AddVideoToPlaylist)
		auth.DELETE("/playlists/:id/videos/:video_id", h.RemoveVideoFromPlaylist)

		auth.POST("/tweets", h.CreateTweet)
		auth.PATCH("/tweets/:id", h.UpdateTweet)
		auth.DELETE("/tweets/:id", h.DeleteTweet)

		auth.GET("/dashboard/stats", h.GetChannelStats)
		auth.GET("/dashboard/videos", h.GetChannelVideos)
	}

	return r
}
