package model

// VariantName identifies one pre-generated representation of an image asset.
type VariantName string

const (
	Thumb    VariantName = "thumb"
	Medium   VariantName = "medium"
	Large    VariantName = "large"
	Original VariantName = "original"
)

// Pixel bounds of the longest edge for each resized variant.
const (
	ThumbMaxPixels  = 200
	MediumMaxPixels = 1288
	LargeMaxPixels  = 2400
)

// VariantNames lists every recognized name, smallest first.
var VariantNames = []VariantName{Thumb, Medium, Large, Original}

// ParseVariantName reports whether token is exactly one of the recognized names.
func ParseVariantName(token string) (VariantName, bool) {
	switch VariantName(token) {
	case Thumb, Medium, Large, Original:
		return VariantName(token), true
	default:
		return "", false
	}
}

// MaxPixels returns the size bound of n, or 0 for original.
func (n VariantName) MaxPixels() int {
	switch n {
	case Thumb:
		return ThumbMaxPixels
	case Medium:
		return MediumMaxPixels
	case Large:
		return LargeMaxPixels
	default:
		return 0
	}
}

func (n VariantName) String() string {
	return string(n)
}

// Variant is one stored representation of an image.
type Variant struct {
	Location    Location
	Width       int
	Height      int
	SizeBytes   int64
	ContentType string
}
