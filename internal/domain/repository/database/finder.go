package database

import (
	"context"

	"sitesnap/internal/domain/model"
)

type Finder interface {
	FindBySiteAndDate(ctx context.Context, site, date string) ([]model.ImageRecord, error)
}
