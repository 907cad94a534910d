package model

// Asset is the validated, in-memory form of an asset's metadata.
// Shape is either Single or *VariantSet; nothing else implements it.
type Asset struct {
	ID          string
	ContentType string
	SizeBytes   *int64
	Shape       Shape
}

type Shape interface {
	shape()
}

// Single is an asset backed by one unversioned object.
type Single struct {
	Location Location
	IsImage  bool
}

// VariantSet is an image asset with at least one pre-generated variant.
// Default always names a key present in Variants.
type VariantSet struct {
	Variants       map[VariantName]Variant
	Default        VariantName
	OriginalWidth  *int
	OriginalHeight *int
	// Primary is kept only so a re-read record matches what was registered.
	Primary *Location
}

func (Single) shape()      {}
func (*VariantSet) shape() {}

// Has reports whether name is registered.
func (v *VariantSet) Has(name VariantName) bool {
	_, ok := v.Variants[name]

	return ok
}

// Names returns the registered names in canonical order.
func (v *VariantSet) Names() []VariantName {
	names := make([]VariantName, 0, len(v.Variants))
	for _, n := range VariantNames {
		if v.Has(n) {
			names = append(names, n)
		}
	}

	return names
}
