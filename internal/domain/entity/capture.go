package entity

import "time"

// Capture holds the metadata embedded in an image by the capturing device.
// Nil pointers mark fields the device did not record.
type Capture struct {
	TakenAt   *time.Time
	Latitude  *float64
	Longitude *float64
	Fields    map[string]string
}
