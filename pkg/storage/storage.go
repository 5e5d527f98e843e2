// Package storage is the binary-upload collaborator: it puts media into
// object storage and reports back the public URL plus, for videos, the
// probed duration. The engine only consumes the UploadResult.
package storage

import (
	"context"
)

type UploadResult struct {
	URL      string
	Duration float64 // seconds, videos only
}

type Uploader interface {
	// UploadVideo 上传视频文件并探测时长
	UploadVideo(ctx context.Context, localPath, objectName string) (UploadResult, error)
	// UploadImage 上传封面/头像等图片，返回可访问的 URL
	UploadImage(ctx context.Context, localPath, objectName, contentType string) (string, error)
}
