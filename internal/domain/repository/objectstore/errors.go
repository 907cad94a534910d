package objectstore

import "errors"

var (
	// ErrNotFound means the store answered and the object does not exist.
	ErrNotFound = errors.New("object not found")
	// ErrUnavailable covers transport failures and non-success answers.
	ErrUnavailable = errors.New("object store unavailable")
)
