package asset

import (
	"fmt"

	"assetgate/internal/domain/model"
)

// fallbackChains lists, per target, the variants tried in order.
var fallbackChains = map[model.VariantName][]model.VariantName{
	model.Thumb:    {model.Thumb, model.Medium, model.Original},
	model.Medium:   {model.Medium, model.Original},
	model.Large:    {model.Large, model.Medium, model.Original},
	model.Original: {model.Original},
}

// Resolution is the representation chosen for one request.
type Resolution struct {
	Location    model.Location
	ContentType string
	SizeBytes   *int64

	// Variant, Target and Served are set only for variant-bearing assets.
	Variant *model.Variant
	Target  model.VariantName
	Served  model.VariantName

	OriginalWidth  *int
	OriginalHeight *int
}

// IsVariant reports whether a variant was served.
func (r *Resolution) IsVariant() bool {
	return r.Variant != nil
}

// Fallback reports whether the served variant differs from the target.
func (r *Resolution) Fallback() bool {
	return r.Variant != nil && r.Served != r.Target
}

// Resolve chooses what to serve for a. requested is empty when the request
// named no recognized variant.
func Resolve(a *model.Asset, requested model.VariantName) (*Resolution, error) {
	switch s := a.Shape.(type) {
	case model.Single:
		return resolveSingle(a, s, requested)
	case *model.VariantSet:
		return resolveVariant(a, s, requested)
	default:
		return nil, Internal(fmt.Errorf("asset %s has unknown shape %T", a.ID, a.Shape))
	}
}

func resolveSingle(a *model.Asset, s model.Single, requested model.VariantName) (*Resolution, error) {
	if requested != "" {
		return nil, &Error{
			Kind:    KindInvalidRequest,
			Variant: string(requested),
			Err:     ErrVariantsNotSupported,
		}
	}

	if !s.Location.Valid() {
		return nil, Internal(fmt.Errorf("asset %s has no storage location", a.ID))
	}

	return &Resolution{
		Location:    s.Location,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
	}, nil
}

func resolveVariant(a *model.Asset, s *model.VariantSet, requested model.VariantName) (*Resolution, error) {
	target := s.Default
	if _, ok := model.ParseVariantName(string(requested)); ok {
		target = requested
	}

	for _, name := range fallbackChains[target] {
		v, ok := s.Variants[name]
		if !ok {
			continue
		}

		contentType := v.ContentType
		if contentType == "" {
			contentType = a.ContentType
		}
		size := v.SizeBytes

		res := &Resolution{
			Location:       v.Location,
			ContentType:    contentType,
			SizeBytes:      &size,
			Variant:        &v,
			Target:         target,
			Served:         name,
			OriginalWidth:  s.OriginalWidth,
			OriginalHeight: s.OriginalHeight,
		}

		// The original variant's own dimensions stand in for unregistered ones.
		if orig, ok := s.Variants[model.Original]; ok {
			if res.OriginalWidth == nil {
				res.OriginalWidth = &orig.Width
			}
			if res.OriginalHeight == nil {
				res.OriginalHeight = &orig.Height
			}
		}

		return res, nil
	}

	return nil, variantNotFound(target)
}
