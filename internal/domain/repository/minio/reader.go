package minio

import "context"

type Reader interface {
	Read(ctx context.Context, key string) ([]byte, error)
}
