package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/d60-Lab/viewtube/config"
)

// MinioUploader 基于 MinIO 的对象存储实现
type MinioUploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioUploader(cfg *config.Config) (*MinioUploader, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	publicURL := cfg.MinIO.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIO.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIO.Endpoint)
	}
	u := &MinioUploader{client: client, bucket: cfg.MinIO.Bucket, publicURL: publicURL}
	if err := u.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *MinioUploader) ensureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

func (u *MinioUploader) UploadVideo(ctx context.Context, localPath, objectName string) (UploadResult, error) {
	duration, err := probeDuration(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("probe duration: %w", err)
	}
	_, err = u.client.FPutObject(ctx, u.bucket, objectName, localPath, minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return UploadResult{}, fmt.Errorf("put video object: %w", err)
	}
	return UploadResult{URL: u.objectURL(objectName), Duration: duration}, nil
}

func (u *MinioUploader) UploadImage(ctx context.Context, localPath, objectName, contentType string) (string, error) {
	_, err := u.client.FPutObject(ctx, u.bucket, objectName, localPath, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put image object: %w", err)
	}
	return u.objectURL(objectName), nil
}

func (u *MinioUploader) objectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, objectName)
}

// probeDuration 用 ffprobe 读取容器层的时长信息
func probeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, err
	}
	var meta struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		return 0, err
	}
	if meta.Format.Duration == "" {
		return 0, nil
	}
	return strconv.ParseFloat(meta.Format.Duration, 64)
}
