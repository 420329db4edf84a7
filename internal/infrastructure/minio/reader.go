package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type Reader struct {
	minioClient *minio.Client
	cfg         *ReaderConfig
}

func NewReader(minioClient *minio.Client, cfg *ReaderConfig) *Reader {
	return &Reader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Read fetches the full object stored under key. A missing object is an
// error; retrieval treats it as fatal for the whole request.
func (r *Reader) Read(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	obj, err := r.minioClient.GetObject(ctx, r.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}

	return data, nil
}
