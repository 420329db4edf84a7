package metadata

import "sitesnap/internal/domain/entity"

// Extractor pulls capture metadata out of raw image bytes. An error means the
// bytes hold no parsable metadata block; callers treat it as a skip signal,
// not a request failure.
type Extractor interface {
	Extract(data []byte) (*entity.Capture, error)
}
