package asset

import (
	"fmt"

	"assetgate/internal/domain/dto"
	"assetgate/internal/domain/model"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func variantReq(key string, width int) dto.VariantRequest {
	return dto.VariantRequest{
		Key:       key,
		Width:     intPtr(width),
		Height:    intPtr(width * 3 / 4),
		SizeBytes: int64Ptr(int64(width) * 10),
	}
}

// variantsOf builds a variant map with one entry per name, keyed "<name>.bin".
func variantsOf(names ...model.VariantName) map[model.VariantName]model.Variant {
	out := make(map[model.VariantName]model.Variant, len(names))
	for _, n := range names {
		out[n] = model.Variant{
			Location:  model.KeyLocation(fmt.Sprintf("%s.bin", n)),
			Width:     100,
			Height:    100,
			SizeBytes: 1,
		}
	}

	return out
}

// subsets enumerates every non-empty set of variant names.
func subsets() [][]model.VariantName {
	var out [][]model.VariantName
	for mask := 1; mask < 1<<len(model.VariantNames); mask++ {
		var set []model.VariantName
		for i, n := range model.VariantNames {
			if mask&(1<<i) != 0 {
				set = append(set, n)
			}
		}
		out = append(out, set)
	}

	return out
}

func variantAsset(def model.VariantName, names ...model.VariantName) *model.Asset {
	return &model.Asset{
		ID:          "A1",
		ContentType: "image/jpeg",
		Shape: &model.VariantSet{
			Variants: variantsOf(names...),
			Default:  def,
		},
	}
}
