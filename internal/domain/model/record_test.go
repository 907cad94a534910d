package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRecordAsset_Single(t *testing.T) {
	t.Parallel()

	r := &Record{StorageMode: InternalKey, PrimaryLocation: "docs/a.pdf", ContentType: "application/pdf"}

	a, err := r.Asset("A1")
	require.NoError(t, err)
	assert.Equal(t, "A1", a.ID)

	single, ok := a.Shape.(Single)
	require.True(t, ok)
	assert.Equal(t, KeyLocation("docs/a.pdf"), single.Location)
	assert.False(t, single.IsImage)
}

func TestRecordAsset_ImageWithoutVariantsIsSingle(t *testing.T) {
	t.Parallel()

	r := &Record{StorageMode: ExternalURL, PrimaryLocation: "https://cdn.example/x.png", IsImage: true}

	a, err := r.Asset("A2")
	require.NoError(t, err)

	single, ok := a.Shape.(Single)
	require.True(t, ok)
	assert.True(t, single.IsImage)
}

func TestRecordAsset_VariantSet(t *testing.T) {
	t.Parallel()

	raw := `{
		"storage_mode": "internal_key",
		"is_image": true,
		"original_width": 4416,
		"variants": {
			"medium": {"key": "a1/medium.webp", "width": 1288, "height": 966, "size_bytes": 1200, "content_type": "image/webp"},
			"original": {"url": "https://origin.example/a1.jpg", "width": 4416, "height": 3312, "size_bytes": 90000}
		},
		"default_variant": "medium"
	}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	a, err := r.Asset("A1")
	require.NoError(t, err)

	set, ok := a.Shape.(*VariantSet)
	require.True(t, ok)
	assert.Equal(t, Medium, set.Default)
	assert.Equal(t, []VariantName{Medium, Original}, set.Names())
	assert.Equal(t, KeyLocation("a1/medium.webp"), set.Variants[Medium].Location)
	assert.Equal(t, URLLocation("https://origin.example/a1.jpg"), set.Variants[Original].Location)
	assert.Nil(t, set.Primary)
	assert.Equal(t, 4416, *set.OriginalWidth)
}

func TestRecordAsset_Corrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record Record
	}{
		{"scalar without location", Record{StorageMode: InternalKey}},
		{"scalar with unknown mode", Record{StorageMode: "ftp", PrimaryLocation: "x"}},
		{"unknown variant key", Record{
			IsImage:        true,
			DefaultVariant: Medium,
			Variants:       map[VariantName]VariantRecord{"huge": {Key: "k"}},
		}},
		{"variant with both locations", Record{
			IsImage:        true,
			DefaultVariant: Medium,
			Variants:       map[VariantName]VariantRecord{Medium: {Key: "k", URL: "u"}},
		}},
		{"empty default", Record{
			IsImage:  true,
			Variants: map[VariantName]VariantRecord{Medium: {Key: "k"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.record.Asset("X")
			assert.ErrorIs(t, err, ErrCorruptRecord)
		})
	}
}

func TestRecordAsset_AbsentDefaultIsTolerated(t *testing.T) {
	t.Parallel()

	r := &Record{
		IsImage:        true,
		DefaultVariant: Medium,
		Variants:       map[VariantName]VariantRecord{Thumb: {Key: "t", Width: 200, Height: 150, SizeBytes: 10}},
	}

	a, err := r.Asset("X")
	require.NoError(t, err)
	assert.False(t, a.Shape.(*VariantSet).Has(Medium))
}

func TestNewRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	primary := URLLocation("https://origin.example/full.jpg")
	size := int64(512)
	in := &Asset{
		ID:          "A9",
		ContentType: "image/jpeg",
		SizeBytes:   &size,
		Shape: &VariantSet{
			Variants: map[VariantName]Variant{
				Thumb: {Location: KeyLocation("a9/t.jpg"), Width: 200, Height: 100, SizeBytes: 10},
				Large: {Location: URLLocation("https://cdn.example/l.jpg"), Width: 2400, Height: 1200, SizeBytes: 99},
			},
			Default:       Large,
			OriginalWidth: intPtr(5000),
			Primary:       &primary,
		},
	}

	rec := NewRecord(in)
	assert.Equal(t, ExternalURL, rec.StorageMode)
	assert.Equal(t, "a9/t.jpg", rec.Variants[Thumb].Key)
	assert.Equal(t, "https://cdn.example/l.jpg", rec.Variants[Large].URL)

	encoded, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	out, err := decoded.Asset("A9")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseVariantName(t *testing.T) {
	t.Parallel()

	for _, n := range VariantNames {
		got, ok := ParseVariantName(string(n))
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}

	for _, token := range []string{"", "Thumb", "photo.jpg", "small"} {
		_, ok := ParseVariantName(token)
		assert.False(t, ok, token)
	}

	assert.Equal(t, MediumMaxPixels, Medium.MaxPixels())
	assert.Equal(t, 0, Original.MaxPixels())
}
