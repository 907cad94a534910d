package entity

import "io"

// Object is an open byte stream from a store. Size is -1 when unknown.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}
