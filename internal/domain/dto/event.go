package dto

// RegisteredEvent is published after an asset record is written.
type RegisteredEvent struct {
	ID             string   `json:"id"`
	DefaultVariant string   `json:"default_variant,omitempty"`
	Variants       []string `json:"variants,omitempty"`
	RegisteredAt   int64    `json:"registered_at"`
}
