// Package einops implements the rearrange pattern pipeline: tokenizing a
// pattern string, resolving axis sizes against a tensor shape, planning the
// execution (permutation, output shape, broadcast repeats), and applying the
// plan through the tensor shape primitives.
package einops

import (
	"fmt"

	"github.com/born-ml/einshape/internal/tensor"
)

// ErrorKind identifies the failure condition of a rearrange call.
type ErrorKind int

// Failure conditions, one per detectable violation.
const (
	// MissingArrow: the pattern lacks the "->" separator.
	MissingArrow ErrorKind = iota
	// MismatchedParentheses: an opening paren without a matching close.
	MismatchedParentheses
	// MultipleEllipsisInput: more than one "..." on the input side.
	MultipleEllipsisInput
	// EllipsisAsymmetry: "..." present on one side only.
	EllipsisAsymmetry
	// UnexpectedAxesLengthsKey: a supplied axis length names no pattern identifier.
	UnexpectedAxesLengthsKey
	// NotEnoughDimensions: the pattern names more axes than the tensor has.
	NotEnoughDimensions
	// MultipleUnknownDimensions: a composite group has more than one member
	// without a known size.
	MultipleUnknownDimensions
	// NonDivisibleCompositeSize: a composite axis size is not divisible by the
	// product of its known members.
	NonDivisibleCompositeSize
	// SizeMismatchComposite: a fully-known composite group disagrees with the
	// actual axis size.
	SizeMismatchComposite
	// DimensionSizeMismatch: a named axis's actual size disagrees with the
	// supplied length (and is not 1).
	DimensionSizeMismatch
	// ReshapeIncompatible: the final shape change is not realizable from the
	// current buffer.
	ReshapeIncompatible
)

// String returns the kind's name as it appears in error messages.
func (k ErrorKind) String() string {
	switch k {
	case MissingArrow:
		return "missing arrow"
	case MismatchedParentheses:
		return "mismatched parentheses"
	case MultipleEllipsisInput:
		return "multiple ellipsis on input side"
	case EllipsisAsymmetry:
		return "ellipsis asymmetry"
	case UnexpectedAxesLengthsKey:
		return "unexpected axes lengths key"
	case NotEnoughDimensions:
		return "not enough dimensions"
	case MultipleUnknownDimensions:
		return "multiple unknown dimensions"
	case NonDivisibleCompositeSize:
		return "non-divisible composite size"
	case SizeMismatchComposite:
		return "composite size mismatch"
	case DimensionSizeMismatch:
		return "dimension size mismatch"
	case ReshapeIncompatible:
		return "reshape incompatible"
	default:
		return "unknown"
	}
}

// Error is the single error type raised by the rearrange pipeline.
// Every failure is detected synchronously and aborts the call; callers can
// switch on Kind or use errors.As to inspect it.
type Error struct {
	Kind ErrorKind

	// RequestedShape is set for ReshapeIncompatible: the output shape the
	// executor could not realize.
	RequestedShape tensor.Shape

	msg   string
	cause error
}

// Error returns the human-readable message.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("rearrange: %s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("rearrange: %s: %s", e.Kind, e.msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// errorf builds an Error with a formatted message.
func errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// reshapeError wraps a shape primitive failure together with the shape the
// executor was asked to produce.
func reshapeError(requested tensor.Shape, cause error) *Error {
	return &Error{
		Kind:           ReshapeIncompatible,
		RequestedShape: requested.Clone(),
		msg:            fmt.Sprintf("cannot realize output shape %v", requested),
		cause:          cause,
	}
}
