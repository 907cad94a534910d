package model

// StorageMode names the addressing scheme of a Location.
type StorageMode string

const (
	ExternalURL StorageMode = "external_url"
	InternalKey StorageMode = "internal_key"
)

func (m StorageMode) Valid() bool {
	return m == ExternalURL || m == InternalKey
}

// Location points at bytes either by URL or by object-store key.
type Location struct {
	Mode StorageMode
	Ref  string
}

func URLLocation(url string) Location {
	return Location{Mode: ExternalURL, Ref: url}
}

func KeyLocation(key string) Location {
	return Location{Mode: InternalKey, Ref: key}
}

func (l Location) Valid() bool {
	return l.Mode.Valid() && l.Ref != ""
}
