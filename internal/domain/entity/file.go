package entity

// File is one uploaded payload, detached from the transport layer.
type File struct {
	Name string
	Size int64
	Data []byte
}
