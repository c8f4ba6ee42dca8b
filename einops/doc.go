// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package einops provides einops-style tensor rearrangement driven by a
// compact pattern language.
//
// # Overview
//
// A pattern names the axes of the input and the desired output, separated by
// "->". Rearrange computes the permutation, axis split/merge, and broadcast
// repeats needed to produce the requested layout:
//
//	y, err := einops.Rearrange(x, "b c h w -> b (h w) c", nil)
//
// Axis sizes are inferred from the input shape; ambiguous splits take
// caller-supplied lengths:
//
//	y, err := einops.Rearrange(x, "(h w) c -> h w c", einops.Axes{"h": 3})
//
// # Pattern language
//
//   - plain names bind one input axis each: "h w -> w h"
//   - a parenthesized group addresses one physical axis whose size is the
//     product of its members: "(h w) c", "h (w c)"
//   - "..." stands for a run of unnamed axes, preserved in order, and must
//     appear on both sides: "... h w -> ... (h w)"
//   - a name appearing only on the output side is created by broadcast and
//     needs a supplied length: "a 1 c -> a b c" with Axes{"b": 4}
//
// The identifier "1" is an ordinary name: it is conventionally used for
// singleton axes but its size is not enforced.
//
// # Errors
//
// Every failure is an *Error carrying an ErrorKind; use errors.As to inspect:
//
//	var rerr *einops.Error
//	if errors.As(err, &rerr) && rerr.Kind == einops.NotEnoughDimensions {
//	    ...
//	}
//
// # Guarantees
//
// Rearrange never mutates its input, allocates all intermediate state per
// call, and is fully deterministic: identical (tensor, pattern, axes) inputs
// produce bit-identical outputs.
package einops
