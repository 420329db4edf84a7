package abstraction

import (
	"context"

	"sitesnap/internal/domain/entity"
)

// Archiver builds a downloadable archive of all images matching an exact
// (site, date) filter.
type Archiver interface {
	Archive(ctx context.Context, site, date string) (entity.Archive, error)
}
