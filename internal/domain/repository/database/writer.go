package database

import (
	"context"

	"sitesnap/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, record *model.ImageRecord) error
}
