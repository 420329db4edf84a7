package minio

import (
	"context"

	"sitesnap/internal/domain/entity"
)

type Uploader interface {
	Put(ctx context.Context, key string, data []byte) (entity.StoredObject, error)
}
