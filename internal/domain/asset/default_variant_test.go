package asset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"assetgate/internal/domain/model"
)

func TestDefaultVariant_MediumAlwaysWins(t *testing.T) {
	t.Parallel()

	for _, set := range subsets() {
		if !slices.Contains(set, model.Medium) {
			continue
		}
		for _, width := range []*int{nil, intPtr(10), intPtr(1288), intPtr(9000)} {
			assert.Equal(t, model.Medium, DefaultVariant(variantsOf(set...), width), "%v", set)
		}
	}
}

func TestDefaultVariant_SmallOriginalWithoutMedium(t *testing.T) {
	t.Parallel()

	for _, set := range subsets() {
		if slices.Contains(set, model.Medium) || !slices.Contains(set, model.Original) {
			continue
		}
		for _, width := range []int{1, 640, model.MediumMaxPixels} {
			assert.Equal(t, model.Original, DefaultVariant(variantsOf(set...), intPtr(width)), "%v", set)
		}
	}
}

func TestDefaultVariant_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		variants []model.VariantName
		width    *int
		expected model.VariantName
	}{
		{"only thumb", []model.VariantName{model.Thumb}, nil, model.Thumb},
		{"only thumb with width", []model.VariantName{model.Thumb}, intPtr(100), model.Thumb},
		{"large over big original", []model.VariantName{model.Large, model.Original}, intPtr(4000), model.Large},
		{"large over original of unknown width", []model.VariantName{model.Large, model.Original}, nil, model.Large},
		{"small original over large", []model.VariantName{model.Large, model.Original}, intPtr(1000), model.Original},
		{"big original over thumb", []model.VariantName{model.Thumb, model.Original}, intPtr(5000), model.Original},
		{"unknown width original over thumb", []model.VariantName{model.Thumb, model.Original}, nil, model.Original},
		{"width one past medium", []model.VariantName{model.Thumb, model.Large, model.Original}, intPtr(1289), model.Large},
		{"large over thumb", []model.VariantName{model.Thumb, model.Large}, nil, model.Large},
		{"empty set", nil, nil, model.Original},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DefaultVariant(variantsOf(tt.variants...), tt.width))
		})
	}
}

func TestDefaultVariant_AlwaysPresent(t *testing.T) {
	t.Parallel()

	for _, set := range subsets() {
		for _, width := range []*int{nil, intPtr(500), intPtr(5000)} {
			got := DefaultVariant(variantsOf(set...), width)
			assert.Contains(t, set, got)
		}
	}
}
