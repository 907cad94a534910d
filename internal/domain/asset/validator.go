package asset

import (
	"fmt"
	"regexp"
	"sort"

	"assetgate/internal/domain/dto"
	"assetgate/internal/domain/model"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._~-]{0,127}$`)

// reservedIDs collide with fixed routes of the HTTP layer.
var reservedIDs = map[string]struct{}{
	"health":  {},
	"metrics": {},
	"objects": {},
}

// Validate turns a registration body into an Asset or rejects it whole.
// Variant-bearing results always carry a present default variant.
func Validate(id string, req dto.RegisterRequest) (*model.Asset, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	if req.SizeBytes != nil && *req.SizeBytes < 0 {
		return nil, validation("size_bytes", "", ErrInvalidValue)
	}

	a := &model.Asset{
		ID:          id,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	}

	if !req.IsImage || req.Variants == nil {
		loc, err := exactlyOneLocation("", req.URL, req.Key)
		if err != nil {
			return nil, err
		}
		a.Shape = model.Single{Location: loc, IsImage: req.IsImage}

		return a, nil
	}

	set, err := validateVariantSet(req)
	if err != nil {
		return nil, err
	}
	a.Shape = set

	return a, nil
}

// ValidateID checks an asset id against the accepted alphabet and reserved routes.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return validation("id", "", ErrInvalidID)
	}

	if _, ok := reservedIDs[id]; ok {
		return validation("id", "", fmt.Errorf("%w: %q is reserved", ErrInvalidID, id))
	}

	return nil
}

func validateVariantSet(req dto.RegisterRequest) (*model.VariantSet, error) {
	if len(req.Variants) == 0 {
		return nil, validation("variants", "", ErrNoVariants)
	}

	for _, dim := range []struct {
		field string
		value *int
	}{
		{"original_width", req.OriginalWidth},
		{"original_height", req.OriginalHeight},
	} {
		if dim.value != nil && *dim.value <= 0 {
			return nil, validation(dim.field, "", ErrInvalidValue)
		}
	}

	set := &model.VariantSet{
		Variants:       make(map[model.VariantName]model.Variant, len(req.Variants)),
		OriginalWidth:  req.OriginalWidth,
		OriginalHeight: req.OriginalHeight,
	}

	for _, key := range variantKeys(req.Variants) {
		name, ok := model.ParseVariantName(key)
		if !ok {
			return nil, validation("variants", key, ErrUnknownVariant)
		}

		v, err := validateVariant(key, req.Variants[key])
		if err != nil {
			return nil, err
		}
		set.Variants[name] = v
	}

	if req.URL != "" || req.Key != "" {
		loc, err := exactlyOneLocation("", req.URL, req.Key)
		if err != nil {
			return nil, err
		}
		set.Primary = &loc
	}

	if req.DefaultVariant == "" {
		set.Default = DefaultVariant(set.Variants, set.OriginalWidth)

		return set, nil
	}

	name, ok := model.ParseVariantName(req.DefaultVariant)
	if !ok || !set.Has(name) {
		return nil, validation("default_variant", req.DefaultVariant, ErrInvalidDefault)
	}
	set.Default = name

	return set, nil
}

func validateVariant(name string, v dto.VariantRequest) (model.Variant, error) {
	loc, err := exactlyOneLocation(name, v.URL, v.Key)
	if err != nil {
		return model.Variant{}, err
	}

	switch {
	case v.Width == nil:
		return model.Variant{}, validation("width", name, ErrIncompleteVariant)
	case v.Height == nil:
		return model.Variant{}, validation("height", name, ErrIncompleteVariant)
	case v.SizeBytes == nil:
		return model.Variant{}, validation("size_bytes", name, ErrIncompleteVariant)
	case *v.Width <= 0:
		return model.Variant{}, validation("width", name, ErrInvalidValue)
	case *v.Height <= 0:
		return model.Variant{}, validation("height", name, ErrInvalidValue)
	case *v.SizeBytes < 0:
		return model.Variant{}, validation("size_bytes", name, ErrInvalidValue)
	}

	return model.Variant{
		Location:    loc,
		Width:       *v.Width,
		Height:      *v.Height,
		SizeBytes:   *v.SizeBytes,
		ContentType: v.ContentType,
	}, nil
}

func exactlyOneLocation(variant, url, key string) (model.Location, error) {
	switch {
	case url != "" && key != "":
		return model.Location{}, validation("location", variant, ErrAmbiguousLocation)
	case url != "":
		return model.URLLocation(url), nil
	case key != "":
		return model.KeyLocation(key), nil
	default:
		return model.Location{}, validation("location", variant, ErrMissingLocation)
	}
}

// variantKeys orders recognized names canonically, then unknown names sorted.
func variantKeys(variants map[string]dto.VariantRequest) []string {
	keys := make([]string, 0, len(variants))
	for _, n := range model.VariantNames {
		if _, ok := variants[string(n)]; ok {
			keys = append(keys, string(n))
		}
	}

	unknown := make([]string, 0)
	for k := range variants {
		if _, ok := model.ParseVariantName(k); !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)

	return append(keys, unknown...)
}
