package abstraction

import (
	"context"

	"sitesnap/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, site string, files []entity.File) (entity.BatchReport, error)
}
