package einops

import "github.com/born-ml/einshape/internal/tensor"

// Axes maps axis names to caller-supplied lengths. Lengths disambiguate
// composite splits ("(h w)" needs at most one unknown member) and size new or
// singleton output axes. nil is a valid empty mapping.
type Axes map[string]int

// Rearrange transforms the layout of x according to the pattern, returning a
// fresh tensor. The input is never mutated; on any violation the call aborts
// with an *Error and no partial result.
//
// The pipeline is a single deterministic forward pass: validate the supplied
// lengths, tokenize, expand the ellipsis against the input rank, resolve
// every axis name to a size, plan the permutation and output shape, execute.
func Rearrange(x *tensor.RawTensor, pattern string, axes Axes) (*tensor.RawTensor, error) {
	plan, err := compile(x.Shape(), pattern, axes)
	if err != nil {
		return nil, err
	}
	return execute(x, plan)
}

// compile runs every pipeline stage short of the executor.
func compile(shape tensor.Shape, pattern string, axes Axes) (*execPlan, error) {
	if err := validateAxes(pattern, axes); err != nil {
		return nil, err
	}

	parsed, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	expanded, err := expandEllipsis(parsed, len(shape))
	if err != nil {
		return nil, err
	}

	bound, err := resolveAxes(expanded.Input, shape, axes)
	if err != nil {
		return nil, err
	}

	return buildPlan(expanded, bound, axes), nil
}

// execute applies a decided plan: permute on the fast path, materialize the
// broadcast repeats, then reinterpret the buffer to the final shape.
func execute(x *tensor.RawTensor, plan *execPlan) (*tensor.RawTensor, error) {
	cur := x
	var err error

	if len(plan.perm) > 0 {
		cur, err = tensor.TransposeAxes(cur, plan.perm...)
		if err != nil {
			return nil, reshapeError(plan.outShape, err)
		}
	}

	// Descending index order keeps earlier repeat indices stable while later
	// axes are inserted. Each repeat adds a size-1 axis and expands it, which
	// copies data; this step is never a view.
	for i := len(plan.repeats) - 1; i >= 0; i-- {
		step := plan.repeats[i]

		cur, err = tensor.Unsqueeze(cur, step.index)
		if err != nil {
			return nil, reshapeError(plan.outShape, err)
		}

		target := cur.Shape().Clone()
		target[step.index] = step.size
		cur, err = tensor.Expand(cur, target)
		if err != nil {
			return nil, reshapeError(plan.outShape, err)
		}
	}

	out, err := tensor.Reshape(cur, plan.outShape)
	if err != nil {
		return nil, reshapeError(plan.outShape, err)
	}
	return out, nil
}
