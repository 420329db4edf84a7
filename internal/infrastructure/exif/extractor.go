package exif

import (
	"bytes"
	"fmt"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"

	"sitesnap/internal/domain/entity"
)

// Extractor reads capture metadata embedded by the device (timestamp, GPS,
// camera fields) out of raw image bytes.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decodes the EXIF block of data. It fails when the bytes are not a
// supported image encoding or carry no metadata block at all; per-field
// absence inside a valid block is not an error and produces nil pointers.
func (e *Extractor) Extract(data []byte) (*entity.Capture, error) {
	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode exif: %w", err)
	}

	capture := &entity.Capture{
		Fields: map[string]string{},
	}

	if dt, err := x.DateTime(); err == nil {
		capture.TakenAt = &dt
	}

	if lat, long, err := x.LatLong(); err == nil {
		capture.Latitude = &lat
		capture.Longitude = &long
	}

	if v := getString(x, goexif.Make); v != nil {
		capture.Fields["camera_make"] = *v
	}
	if v := getString(x, goexif.Model); v != nil {
		capture.Fields["camera_model"] = *v
	}

	return capture, nil
}

// helper to safely get a string tag, trimming null terminators
func getString(x *goexif.Exif, name goexif.FieldName) *string {
	tag, err := x.Get(name)
	if err != nil || tag == nil {
		return nil
	}

	val, err := tag.StringVal()
	if err != nil {
		return nil
	}

	val = strings.TrimRight(val, "\x00")
	if val == "" {
		return nil
	}

	return &val
}
