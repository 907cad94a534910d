package entity

type UploadResult struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}
