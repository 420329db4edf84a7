package entity

// ImageStored is published to the broker after an image is fully persisted.
type ImageStored struct {
	Key      string
	Site     string
	Filename string
}
