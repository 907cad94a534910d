package model

import (
	"errors"
	"fmt"
)

// ErrCorruptRecord marks a persisted record that no validated write could have produced.
var ErrCorruptRecord = errors.New("corrupt asset record")

// Record is the persisted shape of an asset, keyed by asset id in the metadata store.
type Record struct {
	StorageMode     StorageMode                   `json:"storage_mode"`
	PrimaryLocation string                        `json:"primary_location,omitempty"`
	ContentType     string                        `json:"content_type,omitempty"`
	SizeBytes       *int64                        `json:"size_bytes,omitempty"`
	IsImage         bool                          `json:"is_image"`
	OriginalWidth   *int                          `json:"original_width,omitempty"`
	OriginalHeight  *int                          `json:"original_height,omitempty"`
	Variants        map[VariantName]VariantRecord `json:"variants,omitempty"`
	DefaultVariant  VariantName                   `json:"default_variant,omitempty"`
}

// VariantRecord stores a variant location as either URL or Key, never both.
type VariantRecord struct {
	URL         string `json:"url,omitempty"`
	Key         string `json:"key,omitempty"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type,omitempty"`
}

// NewRecord flattens a into its persisted shape.
func NewRecord(a *Asset) *Record {
	r := &Record{
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
	}

	switch s := a.Shape.(type) {
	case Single:
		r.StorageMode = s.Location.Mode
		r.PrimaryLocation = s.Location.Ref
		r.IsImage = s.IsImage

	case *VariantSet:
		r.IsImage = true
		r.OriginalWidth = s.OriginalWidth
		r.OriginalHeight = s.OriginalHeight
		r.DefaultVariant = s.Default
		r.Variants = make(map[VariantName]VariantRecord, len(s.Variants))

		for name, v := range s.Variants {
			vr := VariantRecord{
				Width:       v.Width,
				Height:      v.Height,
				SizeBytes:   v.SizeBytes,
				ContentType: v.ContentType,
			}
			if v.Location.Mode == ExternalURL {
				vr.URL = v.Location.Ref
			} else {
				vr.Key = v.Location.Ref
			}
			r.Variants[name] = vr
		}

		if s.Primary != nil {
			r.StorageMode = s.Primary.Mode
			r.PrimaryLocation = s.Primary.Ref
		} else if d, ok := s.Variants[s.Default]; ok {
			r.StorageMode = d.Location.Mode
		}
	}

	return r
}

// Asset rebuilds the in-memory asset. A default naming a recognized but absent
// variant is tolerated here and surfaces as not-found at resolution time.
func (r *Record) Asset(id string) (*Asset, error) {
	a := &Asset{
		ID:          id,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
	}

	primary := Location{Mode: r.StorageMode, Ref: r.PrimaryLocation}

	if !r.IsImage || len(r.Variants) == 0 {
		if !primary.Valid() {
			return nil, fmt.Errorf("%w: asset %s has no usable storage location", ErrCorruptRecord, id)
		}
		a.Shape = Single{Location: primary, IsImage: r.IsImage}

		return a, nil
	}

	if _, ok := ParseVariantName(string(r.DefaultVariant)); !ok {
		return nil, fmt.Errorf("%w: asset %s has invalid default variant %q", ErrCorruptRecord, id,
			r.DefaultVariant)
	}

	set := &VariantSet{
		Variants:       make(map[VariantName]Variant, len(r.Variants)),
		Default:        r.DefaultVariant,
		OriginalWidth:  r.OriginalWidth,
		OriginalHeight: r.OriginalHeight,
	}

	for name, vr := range r.Variants {
		if _, ok := ParseVariantName(string(name)); !ok {
			return nil, fmt.Errorf("%w: asset %s has unknown variant %q", ErrCorruptRecord, id, name)
		}

		loc, ok := vr.Location()
		if !ok {
			return nil, fmt.Errorf("%w: variant %s of asset %s has no single location", ErrCorruptRecord,
				name, id)
		}

		set.Variants[name] = Variant{
			Location:    loc,
			Width:       vr.Width,
			Height:      vr.Height,
			SizeBytes:   vr.SizeBytes,
			ContentType: vr.ContentType,
		}
	}

	if primary.Valid() {
		set.Primary = &primary
	}

	a.Shape = set

	return a, nil
}

// Location infers the addressing scheme from whichever field is populated.
func (v VariantRecord) Location() (Location, bool) {
	switch {
	case v.URL != "" && v.Key == "":
		return URLLocation(v.URL), true
	case v.Key != "" && v.URL == "":
		return KeyLocation(v.Key), true
	default:
		return Location{}, false
	}
}
