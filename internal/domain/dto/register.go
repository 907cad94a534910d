package dto

// RegisterRequest is the body accepted when registering an asset.
// A nil Variants map means "not supplied"; an empty one is an error for images.
type RegisterRequest struct {
	URL            string                    `json:"url,omitempty"`
	Key            string                    `json:"key,omitempty"`
	ContentType    string                    `json:"content_type,omitempty"`
	SizeBytes      *int64                    `json:"size_bytes,omitempty"`
	IsImage        bool                      `json:"is_image,omitempty"`
	OriginalWidth  *int                      `json:"original_width,omitempty"`
	OriginalHeight *int                      `json:"original_height,omitempty"`
	Variants       map[string]VariantRequest `json:"variants,omitempty"`
	DefaultVariant string                    `json:"default_variant,omitempty"`
}

type VariantRequest struct {
	URL         string `json:"url,omitempty"`
	Key         string `json:"key,omitempty"`
	Width       *int   `json:"width,omitempty"`
	Height      *int   `json:"height,omitempty"`
	SizeBytes   *int64 `json:"size_bytes,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// RegisterResponse carries the canonical URLs of a registered asset.
type RegisterResponse struct {
	ID             string            `json:"id"`
	URL            string            `json:"url"`
	ContentType    string            `json:"content_type,omitempty"`
	DefaultVariant string            `json:"default_variant,omitempty"`
	DefaultURL     string            `json:"default_url,omitempty"`
	Variants       map[string]string `json:"variants,omitempty"`
}
