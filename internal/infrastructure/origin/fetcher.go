// Package origin streams assets that live on external HTTP origins.
package origin

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"assetgate/internal/domain/entity"
	"assetgate/internal/domain/repository/objectstore"
)

type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher builds a fetcher whose timeouts bound connecting and waiting for
// response headers. Body transfer is bounded by the caller's context only.
func NewFetcher(cfg Config) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   time.Duration(cfg.ConnectTimeout) * time.Millisecond,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.ResponseHeaderTimeout = time.Duration(cfg.HeaderTimeout) * time.Millisecond

	return &Fetcher{
		client:    &http.Client{Transport: transport},
		userAgent: cfg.UserAgent,
	}
}

// FetchByURL opens url. Any answer other than 2xx counts as unavailable.
func (f *Fetcher) FetchByURL(ctx context.Context, url string) (*entity.Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", objectstore.ErrUnavailable, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Warn("origin request failed", "url", url, "err", err)

		return nil, fmt.Errorf("%w: %w", objectstore.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		logger.Warn("origin answered with failure", "url", url, "status", resp.StatusCode)

		return nil, fmt.Errorf("%w: origin status %d", objectstore.ErrUnavailable, resp.StatusCode)
	}

	return &entity.Object{
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
	}, nil
}
