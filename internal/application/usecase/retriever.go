package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dezh-tech/immortal/pkg/logger"

	"assetgate/internal/domain/asset"
	"assetgate/internal/domain/entity"
	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/database"
	"assetgate/internal/domain/repository/objectstore"
)

// Retriever implements the Retriever abstraction. It keeps no state between
// requests; every call re-reads the metadata store.
type Retriever struct {
	metadata     database.Retriever
	objects      objectstore.Getter
	origin       objectstore.Fetcher
	cacheControl string
}

// NewRetriever creates a Retriever. An empty cacheControl omits the header.
func NewRetriever(metadata database.Retriever, objects objectstore.Getter, origin objectstore.Fetcher,
	cacheControl string,
) *Retriever {
	return &Retriever{
		metadata:     metadata,
		objects:      objects,
		origin:       origin,
		cacheControl: cacheControl,
	}
}

// Retrieve resolves id and opens a stream on the chosen representation.
// The caller must close the returned delivery.
func (r *Retriever) Retrieve(ctx context.Context, id, token string) (*entity.Delivery, error) {
	a, res, err := r.resolve(ctx, id, token)
	if err != nil {
		return nil, r.fail(err)
	}

	obj, err := r.open(ctx, res.Location)
	if err != nil {
		return nil, r.fail(err)
	}

	retrievalsTotal.WithLabelValues("ok", string(res.Location.Mode)).Inc()

	return &entity.Delivery{
		Body:   obj.Body,
		Header: r.headers(a, res, obj),
	}, nil
}

// Describe resolves id like Retrieve without touching the object stores.
func (r *Retriever) Describe(ctx context.Context, id, token string) (*entity.Delivery, error) {
	a, res, err := r.resolve(ctx, id, token)
	if err != nil {
		return nil, r.fail(err)
	}

	return &entity.Delivery{Header: r.headers(a, res, nil)}, nil
}

func (r *Retriever) resolve(ctx context.Context, id, token string) (*model.Asset, *asset.Resolution, error) {
	rec, err := r.metadata.GetByID(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, database.ErrNotFound):
		return nil, nil, asset.NotFound(asset.SourceMetadata, fmt.Errorf("%w: %s", asset.ErrAssetNotFound, id))
	case errors.Is(err, model.ErrCorruptRecord):
		logger.Error("persisted asset record is corrupt", "id", id, "err", err)

		return nil, nil, asset.Internal(err)
	default:
		return nil, nil, asset.Upstream(fmt.Errorf("read metadata: %w", err))
	}

	a, err := rec.Asset(id)
	if err != nil {
		logger.Error("persisted asset record is corrupt", "id", id, "err", err)

		return nil, nil, asset.Internal(err)
	}

	res, err := asset.Resolve(a, ParseSelector(token))
	if err != nil {
		return nil, nil, err
	}

	if res.Fallback() {
		variantFallbacksTotal.WithLabelValues(string(res.Target), string(res.Served)).Inc()
		logger.Debug("variant fallback", "id", id, "target", res.Target, "served", res.Served)
	}

	return a, res, nil
}

func (r *Retriever) open(ctx context.Context, loc model.Location) (*entity.Object, error) {
	var (
		obj *entity.Object
		err error
	)

	switch loc.Mode {
	case model.InternalKey:
		obj, err = r.objects.GetByKey(ctx, loc.Ref)
	case model.ExternalURL:
		obj, err = r.origin.FetchByURL(ctx, loc.Ref)
	default:
		return nil, asset.Internal(fmt.Errorf("unknown storage mode %q", loc.Mode))
	}

	switch {
	case err == nil:
		return obj, nil
	case errors.Is(err, objectstore.ErrNotFound):
		return nil, asset.NotFound(asset.SourceObject, fmt.Errorf("%w: %s", asset.ErrObjectNotFound, loc.Ref))
	default:
		return nil, asset.Upstream(err)
	}
}

func (r *Retriever) fail(err error) error {
	var e *asset.Error
	if errors.As(err, &e) {
		retrievalsTotal.WithLabelValues(e.Kind.String(), string(e.Source)).Inc()
	} else {
		retrievalsTotal.WithLabelValues(asset.KindInternal.String(), "").Inc()
	}

	return err
}

// headers assembles response headers. obj is nil for Describe.
func (r *Retriever) headers(a *model.Asset, res *asset.Resolution, obj *entity.Object) http.Header {
	h := make(http.Header)
	h.Set(entity.HeaderAssetID, a.ID)

	contentType := res.ContentType
	if contentType == "" && obj != nil {
		contentType = obj.ContentType
	}
	if contentType == "" {
		contentType = entity.DefaultContentType
	}
	h.Set(headerContentType, contentType)

	switch {
	case res.SizeBytes != nil:
		h.Set(headerContentLength, strconv.FormatInt(*res.SizeBytes, 10))
	case obj != nil && obj.Size >= 0:
		h.Set(headerContentLength, strconv.FormatInt(obj.Size, 10))
	}

	if res.IsVariant() {
		h.Set(entity.HeaderVariant, string(res.Served))
		h.Set(entity.HeaderVariantRequested, string(res.Target))
		h.Set(entity.HeaderWidth, strconv.Itoa(res.Variant.Width))
		h.Set(entity.HeaderHeight, strconv.Itoa(res.Variant.Height))

		if res.OriginalWidth != nil {
			h.Set(entity.HeaderOriginalWidth, strconv.Itoa(*res.OriginalWidth))
		}
		if res.OriginalHeight != nil {
			h.Set(entity.HeaderOriginalHeight, strconv.Itoa(*res.OriginalHeight))
		}
	}

	if r.cacheControl != "" {
		h.Set("Cache-Control", r.cacheControl)
	}

	return h
}

// ParseSelector maps the path segment after an asset id to a variant name.
// Only an exact variant name selects; anything else is a vanity filename.
func ParseSelector(token string) model.VariantName {
	name, _ := model.ParseVariantName(token)

	return name
}

const (
	headerContentType   = "Content-Type"
	headerContentLength = "Content-Length"
)
