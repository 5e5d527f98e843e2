package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/viewtube/config"
	"github.com/d60-Lab/viewtube/internal/api/handler"
	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/internal/service"
	"github.com/d60-Lab/viewtube/pkg/cache"
	"github.com/d60-Lab/viewtube/pkg/database"
	"github.com/d60-Lab/viewtube/pkg/logger"
	"github.com/d60-Lab/viewtube/pkg/storage"
	"github.com/d60-Lab/viewtube/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.L().Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx := context.Background()
	if cfg.Trace.Enabled {
		shutdown := must(tracing.Init(ctx, cfg))
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	db := must(database.InitDB(cfg))
	if err := model.AutoMigrate(db); err != nil {
		panic(err)
	}

	// redis 不可用时降级为直查
	rdb, err := cache.NewClient(cfg)
	if err != nil {
		logger.L().Warn("redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	uploader := must(storage.NewMinioUploader(cfg))

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	tweetRepo := repository.NewTweetRepository(db)

	flusher := service.NewViewFlusher(videoRepo, 100000)
	stopFlusher := flusher.Start()

	userSvc := service.NewUserService(userRepo, cfg.JWT)
	videoSvc := service.NewVideoService(videoRepo, commentRepo, likeRepo, uploader, flusher)
	commentSvc := service.NewCommentService(commentRepo, videoRepo)
	likeSvc := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	subSvc := service.NewSubscriptionService(subRepo, userRepo)
	playlistSvc := service.NewPlaylistService(playlistRepo, videoRepo)
	tweetSvc := service.NewTweetService(tweetRepo)
	dashboardSvc := service.NewDashboardService(videoRepo, subRepo, likeRepo, userRepo, rdb)

	h := handler.New(userSvc, videoSvc, commentSvc, likeSvc, subSvc, playlistSvc, tweetSvc, dashboardSvc)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: h.Router(cfg.JWT.Secret),
	}

	go func() {
		logger.L().Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
	if err := stopFlusher(sctx); err != nil {
		logger.L().Warn("view flusher drain interrupted", zap.Error(err))
	}
}
