package utils

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// mimeTypeToExtension covers types whose canonical extension differs from the
// one mimetype reports, or which mimetype does not know.
var mimeTypeToExtension = map[string]string{
	"application/json": ".json",
	"application/pdf":  ".pdf",
	"application/xml":  ".xml",
	"application/zip":  ".zip",
	"application/gzip": ".gz",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         ".xlsx",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   ".docx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",
	"application/x-tar":        ".tar",
	"application/vnd.rar":      ".rar",
	"application/x-sh":         ".sh",
	"application/octet-stream": ".bin",
	"audio/aac":                ".aac",
	"audio/mpeg":               ".mp3",
	"audio/ogg":                ".ogg",
	"audio/wav":                ".wav",
	"audio/webm":               ".webm",
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
	"text/css":                 ".css",
	"text/csv":                 ".csv",
	"text/html":                ".html",
	"text/javascript":          ".js",
	"text/plain":               ".txt",
	"text/xml":                 ".xml",
	"video/avi":                ".avi",
	"video/mpeg":               ".mpeg",
	"video/mp4":                ".mp4",
	"video/ogg":                ".ogv",
	"video/webm":               ".webm",
	"video/x-flv":              ".flv",
	"video/x-ms-wmv":           ".wmv",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// Parameters such as charset are ignored. Unknown types map to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	cleaned := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if ext, ok := mimeTypeToExtension[cleaned]; ok {
		return ext
	}

	if m := mimetype.Lookup(cleaned); m != nil && m.Extension() != "" {
		return m.Extension()
	}

	return ".bin"
}
