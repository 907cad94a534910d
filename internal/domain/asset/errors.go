package asset

import (
	"errors"
	"fmt"
	"strings"

	"assetgate/internal/domain/model"
)

// Kind classifies a failure by how the caller should see it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindInvalidRequest
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidRequest:
		return "invalid_request"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Source names the layer that produced a not-found.
type Source string

const (
	SourceMetadata Source = "metadata"
	SourceVariant  Source = "variant"
	SourceObject   Source = "object"
)

var (
	ErrInvalidID            = errors.New("invalid asset id")
	ErrMissingLocation      = errors.New("missing storage location")
	ErrAmbiguousLocation    = errors.New("ambiguous storage location")
	ErrNoVariants           = errors.New("at least one variant required when variants are supplied")
	ErrUnknownVariant       = errors.New("unknown variant name")
	ErrIncompleteVariant    = errors.New("incomplete variant")
	ErrInvalidDefault       = errors.New("invalid default variant")
	ErrInvalidValue         = errors.New("invalid value")
	ErrAssetNotFound        = errors.New("asset not found")
	ErrVariantNotFound      = errors.New("variant not found")
	ErrObjectNotFound       = errors.New("object not found")
	ErrVariantsNotSupported = errors.New("variants not supported for this asset")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrIntegrity            = errors.New("asset record integrity error")
)

// Error is the typed failure raised by the resolution engine and its orchestration.
type Error struct {
	Kind    Kind
	Source  Source
	Field   string
	Variant string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder

	if e.Variant != "" {
		fmt.Fprintf(&b, "variant %s: ", e.Variant)
	}

	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}

	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString(e.Kind.String())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, treating untyped errors as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

func validation(field, variant string, err error) *Error {
	return &Error{Kind: KindValidation, Field: field, Variant: variant, Err: err}
}

// NotFound builds a not-found failure attributed to src.
func NotFound(src Source, err error) *Error {
	return &Error{Kind: KindNotFound, Source: src, Err: err}
}

// Upstream wraps a retryable store or origin failure.
func Upstream(err error) *Error {
	return &Error{Kind: KindUpstream, Err: fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)}
}

// Internal wraps a failure that should not be reachable through validated writes.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: fmt.Errorf("%w: %w", ErrIntegrity, err)}
}

func variantNotFound(target model.VariantName) *Error {
	return &Error{
		Kind:    KindNotFound,
		Source:  SourceVariant,
		Variant: string(target),
		Err:     ErrVariantNotFound,
	}
}
