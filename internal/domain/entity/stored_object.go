package entity

type StoredObject struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}
