// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package einops

import (
	internaleinops "github.com/born-ml/einshape/internal/einops"
	"github.com/born-ml/einshape/tensor"
)

// Type aliases for public API

// Axes maps axis names to caller-supplied lengths. nil is a valid empty
// mapping.
type Axes = internaleinops.Axes

// Error is the single error type raised by the rearrange pipeline.
type Error = internaleinops.Error

// ErrorKind identifies the failure condition of a rearrange call.
type ErrorKind = internaleinops.ErrorKind

// Failure conditions.
const (
	MissingArrow              ErrorKind = internaleinops.MissingArrow
	MismatchedParentheses     ErrorKind = internaleinops.MismatchedParentheses
	MultipleEllipsisInput     ErrorKind = internaleinops.MultipleEllipsisInput
	EllipsisAsymmetry         ErrorKind = internaleinops.EllipsisAsymmetry
	UnexpectedAxesLengthsKey  ErrorKind = internaleinops.UnexpectedAxesLengthsKey
	NotEnoughDimensions       ErrorKind = internaleinops.NotEnoughDimensions
	MultipleUnknownDimensions ErrorKind = internaleinops.MultipleUnknownDimensions
	NonDivisibleCompositeSize ErrorKind = internaleinops.NonDivisibleCompositeSize
	SizeMismatchComposite     ErrorKind = internaleinops.SizeMismatchComposite
	DimensionSizeMismatch     ErrorKind = internaleinops.DimensionSizeMismatch
	ReshapeIncompatible       ErrorKind = internaleinops.ReshapeIncompatible
)

// Pattern is a parsed rearrange pattern.
type Pattern = internaleinops.Pattern

// Token is one unit of a pattern side.
type Token = internaleinops.Token

// TokenKind distinguishes the three axis token shapes.
type TokenKind = internaleinops.TokenKind

// Axis token kinds.
const (
	TokenName     TokenKind = internaleinops.TokenName
	TokenGroup    TokenKind = internaleinops.TokenGroup
	TokenEllipsis TokenKind = internaleinops.TokenEllipsis
)

// PlanInfo describes how a pattern would be executed against a shape.
type PlanInfo = internaleinops.PlanInfo

// Repeat is one broadcast-materialized output axis in a described plan.
type Repeat = internaleinops.Repeat

// Rearrange transforms the layout of x according to the pattern.
//
// The input tensor is never mutated; the result is a fresh tensor on the
// same backend. Pass axis lengths to disambiguate composite splits or to
// size new output axes; nil is fine when the pattern is unambiguous.
//
// Example:
//
//	x := tensor.Rand[float32](tensor.Shape{10, 12}, backend)
//	y, err := einops.Rearrange(x, "h (w c) -> h w c", einops.Axes{"c": 3})
//	// y.Shape() == [10, 4, 3]
func Rearrange[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], pattern string, axes Axes) (*tensor.Tensor[T, B], error) {
	raw, err := internaleinops.Rearrange(x.Raw(), pattern, axes)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](raw, x.Backend()), nil
}

// RearrangeRaw is the dtype-generic form of Rearrange operating on raw
// tensors. Most users should use Rearrange instead.
func RearrangeRaw(x *tensor.RawTensor, pattern string, axes Axes) (*tensor.RawTensor, error) {
	return internaleinops.Rearrange(x, pattern, axes)
}

// ParsePattern tokenizes a pattern without resolving it against a shape.
func ParsePattern(pattern string) (*Pattern, error) {
	return internaleinops.Parse(pattern)
}

// Plan computes the execution strategy for a pattern against a shape without
// touching any data: the permutation, the output shape, and the broadcast
// repeats.
func Plan(shape tensor.Shape, pattern string, axes Axes) (*PlanInfo, error) {
	return internaleinops.Plan(shape, pattern, axes)
}
