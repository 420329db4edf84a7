package model

import "time"

// ImageRecord is the document stored for every successfully processed upload.
// Records are immutable once written.
type ImageRecord struct {
	ID               string     `bson:"_id"`
	Filename         string     `bson:"filename"`
	BlobKey          string     `bson:"blob_key"`
	ImageURL         string     `bson:"image_url"`
	UploadTime       time.Time  `bson:"upload_time"`
	CaptureTime      *time.Time `bson:"capture_time"` // Pointer to allow null when EXIF has no timestamp
	CaptureDate      string     `bson:"capture_date"` // YYYY-MM-DD, empty when capture time is unknown
	Latitude         *float64   `bson:"latitude"`     // Pointer to allow null when GPS data is absent
	Longitude        *float64   `bson:"longitude"`
	Size             int64      `bson:"size"`
	ConstructionSite string     `bson:"construction_site"`
	Metadata         []Tag      `bson:"metadata"`
}

type Tag struct {
	Key   string `bson:"key"`
	Value string `bson:"value"`
}
