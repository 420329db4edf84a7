package minio

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	"sitesnap/internal/domain/entity"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Put stores data under key and returns the resulting object descriptor,
// including the public locator derived from the configured base URL.
func (u *Uploader) Put(ctx context.Context, key string, data []byte) (entity.StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	contentType := mimetype.Detect(data).String()

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return entity.StoredObject{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return entity.StoredObject{
		Key:      key,
		Size:     info.Size,
		Type:     contentType,
		Location: fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.cfg.PublicURL, "/"), u.cfg.Bucket, key),
	}, nil
}
