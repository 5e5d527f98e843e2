package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/logger"
)

// ViewFlusher 播放计数的异步落库执行器。
// 读路径只往队列里丢视频 ID，worker 批量聚合后再写 views 列，
// 队列打满时丢弃计数（播放数允许少记，不允许拖慢读请求）。
type ViewFlusher struct {
	videos        repository.VideoRepository
	ch            chan string
	flushInterval time.Duration
}

func NewViewFlusher(videos repository.VideoRepository, queueSize int) *ViewFlusher {
	if queueSize <= 0 {
		queueSize = 10000
	}
	return &ViewFlusher{videos: videos, ch: make(chan string, queueSize), flushInterval: time.Second}
}

// Bump 记一次播放，绝不阻塞调用方
func (f *ViewFlusher) Bump(videoID string) {
	select {
	case f.ch <- videoID:
	default:
	}
}

// Start 启动聚合 worker，返回停止函数（停止前做最后一次 flush）
func (f *ViewFlusher) Start() func(context.Context) error {
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(f.flushInterval)
		defer ticker.Stop()
		pending := make(map[string]int64)
		for {
			select {
			case id := <-f.ch:
				pending[id]++
			case <-ticker.C:
				f.flush(pending)
				pending = make(map[string]int64)
			case <-stop:
				// drain
				for {
					select {
					case id := <-f.ch:
						pending[id]++
					default:
						f.flush(pending)
						return
					}
				}
			}
		}
	}()
	return func(ctx context.Context) error {
		close(stop)
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (f *ViewFlusher) flush(pending map[string]int64) {
	for id, delta := range pending {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := f.videos.AddViews(ctx, id, delta); err != nil {
			logger.L().Warn("flush view count failed", zap.String("video_id", id), zap.Error(err))
		}
		cancel()
	}
}
