package broker

import (
	"context"

	"sitesnap/internal/domain/entity"
)

type Publisher interface {
	Publish(ctx context.Context, event entity.ImageStored) error
}
