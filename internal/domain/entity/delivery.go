package entity

import (
	"io"
	"net/http"
)

const (
	HeaderAssetID          = "X-Asset-Id"
	HeaderVariant          = "X-Asset-Variant"
	HeaderVariantRequested = "X-Asset-Variant-Requested"
	HeaderWidth            = "X-Asset-Width"
	HeaderHeight           = "X-Asset-Height"
	HeaderOriginalWidth    = "X-Original-Width"
	HeaderOriginalHeight   = "X-Original-Height"

	DefaultContentType = "application/octet-stream"
)

// Delivery is a resolved asset ready to be written to a client.
// Body is nil when only headers were requested.
type Delivery struct {
	Body   io.ReadCloser
	Header http.Header
}

// Close releases the upstream stream, if any.
func (d *Delivery) Close() error {
	if d.Body == nil {
		return nil
	}

	return d.Body.Close()
}
