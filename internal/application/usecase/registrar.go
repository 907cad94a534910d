package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"

	"assetgate/internal/domain/asset"
	"assetgate/internal/domain/dto"
	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/broker"
	"assetgate/internal/domain/repository/database"
)

// Registrar implements the Registrar abstraction.
type Registrar struct {
	writer         database.Writer
	publisher      broker.Publisher
	defaultAddress string
}

// NewRegistrar creates a Registrar. publisher may be nil when no broker is configured.
func NewRegistrar(writer database.Writer, publisher broker.Publisher, address string) *Registrar {
	return &Registrar{
		writer:         writer,
		publisher:      publisher,
		defaultAddress: strings.TrimRight(address, "/"),
	}
}

// Register validates req and replaces any record stored under id.
// An empty id is replaced by a generated one.
func (r *Registrar) Register(ctx context.Context, id string, req dto.RegisterRequest,
) (*dto.RegisterResponse, error) {
	if id == "" {
		id = uuid.NewString()
	}

	a, err := asset.Validate(id, req)
	if err != nil {
		registrationsTotal.WithLabelValues("rejected", "").Inc()

		return nil, err
	}

	shape := "single"
	if _, ok := a.Shape.(*model.VariantSet); ok {
		shape = "variants"
	}

	if err := r.writer.Write(ctx, id, model.NewRecord(a)); err != nil {
		registrationsTotal.WithLabelValues("error", shape).Inc()
		logger.Error("failed to write asset record", "id", id, "err", err)

		return nil, asset.Upstream(fmt.Errorf("write metadata: %w", err))
	}

	registrationsTotal.WithLabelValues("ok", shape).Inc()
	r.publish(ctx, a)

	return r.describe(a), nil
}

// publish announces a written record. The write is not undone on failure:
// the previous record is already replaced.
func (r *Registrar) publish(ctx context.Context, a *model.Asset) {
	if r.publisher == nil {
		return
	}

	event := dto.RegisteredEvent{
		ID:           a.ID,
		RegisteredAt: time.Now().Unix(),
	}

	if set, ok := a.Shape.(*model.VariantSet); ok {
		event.DefaultVariant = string(set.Default)
		for _, n := range set.Names() {
			event.Variants = append(event.Variants, string(n))
		}
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to encode registration event", "id", a.ID, "err", err)

		return
	}

	if err := r.publisher.Publish(ctx, string(body)); err != nil {
		logger.Error("failed to publish registration event", "id", a.ID, "err", err)
	}
}

func (r *Registrar) describe(a *model.Asset) *dto.RegisterResponse {
	base := r.AssetURL(a.ID)
	resp := &dto.RegisterResponse{
		ID:          a.ID,
		URL:         base,
		ContentType: a.ContentType,
	}

	set, ok := a.Shape.(*model.VariantSet)
	if !ok {
		return resp
	}

	resp.DefaultVariant = string(set.Default)
	resp.DefaultURL = base + "/" + string(set.Default)
	resp.Variants = make(map[string]string, len(set.Variants))

	for _, n := range set.Names() {
		resp.Variants[string(n)] = base + "/" + string(n)
	}

	return resp
}

// AssetURL is the storage-independent URL of an asset.
func (r *Registrar) AssetURL(id string) string {
	return fmt.Sprintf("%s/%s", r.defaultAddress, url.PathEscape(id))
}
