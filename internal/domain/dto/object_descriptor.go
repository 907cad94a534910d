package dto

// ObjectDescriptor describes bytes stored in the internal object store.
type ObjectDescriptor struct {
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	FileType string `json:"type"`
}
