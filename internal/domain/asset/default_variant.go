package asset

import "assetgate/internal/domain/model"

// DefaultVariant picks the variant served when a request names none.
// It is computed once at registration and persisted.
//
// Priority: medium; original when the source is no wider than a medium;
// large; original; thumb. A missing originalWidth skips the size rule.
func DefaultVariant(variants map[model.VariantName]model.Variant, originalWidth *int) model.VariantName {
	has := func(n model.VariantName) bool {
		_, ok := variants[n]

		return ok
	}

	switch {
	case has(model.Medium):
		return model.Medium
	case has(model.Original) && originalWidth != nil && *originalWidth <= model.Medium.MaxPixels():
		return model.Original
	case has(model.Large):
		return model.Large
	case has(model.Original):
		return model.Original
	case has(model.Thumb):
		return model.Thumb
	default:
		return model.Original
	}
}
