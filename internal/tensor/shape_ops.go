package tensor

import "fmt"

// Reshape returns a new tensor with the given shape, sharing the underlying
// buffer. This is a pure reinterpretation of the row-major layout: the element
// count must match, and no data is moved.
//
// One dimension may be -1, in which case it is inferred from the remaining
// dimensions.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Reshape: input tensor is nil")
	}

	totalElements := x.NumElements()
	inferIdx := -1
	product := 1
	for i, dim := range newShape {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, fmt.Errorf("Reshape: can only have one -1 dimension")
			}
			inferIdx = i
		case dim <= 0:
			return nil, fmt.Errorf("Reshape: dimensions must be positive, got %d", dim)
		default:
			product *= dim
		}
	}

	actualShape := make(Shape, len(newShape))
	copy(actualShape, newShape)

	if inferIdx >= 0 {
		if product == 0 || totalElements%product != 0 {
			return nil, fmt.Errorf("Reshape: cannot infer dimension for shape %v from %d elements", newShape, totalElements)
		}
		actualShape[inferIdx] = totalElements / product
	}

	newTotal := 1
	for _, dim := range actualShape {
		newTotal *= dim
	}
	if newTotal != totalElements {
		return nil, fmt.Errorf("Reshape: cannot reshape %d elements to shape %v (%d elements)", totalElements, actualShape, newTotal)
	}

	// Same data, new header
	result := x.Clone()
	result.shape = actualShape
	result.stride = actualShape.ComputeStrides()
	return result, nil
}

// TransposeAxes permutes dimensions according to the given permutation and
// materializes the result in row-major order. With no axes given, all
// dimensions are reversed.
func TransposeAxes(x *RawTensor, axes ...int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("TransposeAxes: input tensor is nil")
	}

	ndim := len(x.shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		return nil, fmt.Errorf("TransposeAxes: axes length %d must match tensor dimensions %d", len(axes), ndim)
	}

	newShape := make(Shape, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("TransposeAxes: axis %d out of range [0, %d)", ax, ndim)
		}
		newShape[i] = x.shape[ax]
	}

	result, err := NewRaw(newShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("TransposeAxes: %w", err)
	}

	switch x.dtype {
	case Float32:
		transposeData(x.AsFloat32(), result.AsFloat32(), x.shape, newShape, axes)
	case Float64:
		transposeData(x.AsFloat64(), result.AsFloat64(), x.shape, newShape, axes)
	case Int32:
		transposeData(x.AsInt32(), result.AsInt32(), x.shape, newShape, axes)
	case Int64:
		transposeData(x.AsInt64(), result.AsInt64(), x.shape, newShape, axes)
	case Uint8:
		transposeData(x.AsUint8(), result.AsUint8(), x.shape, newShape, axes)
	case Bool:
		transposeData(x.AsBool(), result.AsBool(), x.shape, newShape, axes)
	default:
		return nil, fmt.Errorf("TransposeAxes: unsupported dtype %v", x.dtype)
	}
	return result, nil
}

func transposeData[T DType](in, out []T, oldShape, newShape Shape, axes []int) {
	ndim := len(oldShape)
	oldStrides := oldShape.ComputeStrides()
	newStrides := newShape.ComputeStrides()

	total := 1
	for _, d := range newShape {
		total *= d
	}

	idx := make([]int, ndim)
	for i := 0; i < total; i++ {
		// Decompose the output index into coordinates
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			idx[j] = tmp % newShape[j]
			tmp /= newShape[j]
		}

		oldFlat := 0
		for j := 0; j < ndim; j++ {
			oldFlat += idx[j] * oldStrides[axes[j]]
		}

		newFlat := 0
		for j := 0; j < ndim; j++ {
			newFlat += idx[j] * newStrides[j]
		}

		out[newFlat] = in[oldFlat]
	}
}

// Squeeze removes dimensions of size 1 at the specified axes.
// If no axes are specified, removes all dimensions of size 1.
func Squeeze(x *RawTensor, axes ...int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Squeeze: input tensor is nil")
	}

	newShape := make(Shape, 0, len(x.shape))

	if len(axes) == 0 {
		for _, dim := range x.shape {
			if dim != 1 {
				newShape = append(newShape, dim)
			}
		}
	} else {
		axisSet := make(map[int]bool)
		for _, ax := range axes {
			if ax < 0 {
				ax = len(x.shape) + ax
			}
			axisSet[ax] = true
		}
		for i, dim := range x.shape {
			if axisSet[i] {
				if dim != 1 {
					return nil, fmt.Errorf("Squeeze: cannot squeeze axis %d with size %d (must be 1)", i, dim)
				}
			} else {
				newShape = append(newShape, dim)
			}
		}
	}

	if len(newShape) == 0 {
		newShape = Shape{1} // Scalar
	}

	return Reshape(x, newShape)
}

// Unsqueeze adds dimensions of size 1 at the specified axes.
func Unsqueeze(x *RawTensor, axes ...int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Unsqueeze: input tensor is nil")
	}

	if len(axes) == 0 {
		return nil, fmt.Errorf("Unsqueeze: at least one axis required")
	}

	newNdim := len(x.shape) + len(axes)
	newShape := make(Shape, newNdim)

	axisSet := make(map[int]bool)
	for _, ax := range axes {
		orig := ax
		if ax < 0 {
			ax = newNdim + ax
		}
		if ax < 0 || ax >= newNdim {
			return nil, fmt.Errorf("Unsqueeze: axis %d out of range [0, %d)", orig, newNdim)
		}
		axisSet[ax] = true
	}

	oldIdx := 0
	for i := 0; i < newNdim; i++ {
		if axisSet[i] {
			newShape[i] = 1
		} else {
			newShape[i] = x.shape[oldIdx]
			oldIdx++
		}
	}

	return Reshape(x, newShape)
}

// Expand broadcasts a tensor to a larger shape, materializing the repeated
// data. Unlike Reshape this always allocates: every size-1 source dimension
// being widened is copied along the target dimension.
func Expand(x *RawTensor, targetShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Expand: input tensor is nil")
	}

	xShape := x.shape
	if len(targetShape) < len(xShape) {
		return nil, fmt.Errorf("Expand: target shape must have at least as many dimensions as input")
	}

	// Align from the right, padding missing leading dimensions with 1
	paddedShape := make(Shape, len(targetShape))
	diff := len(targetShape) - len(xShape)
	for i := 0; i < diff; i++ {
		paddedShape[i] = 1
	}
	copy(paddedShape[diff:], xShape)

	for i := range targetShape {
		if paddedShape[i] != 1 && paddedShape[i] != targetShape[i] {
			return nil, fmt.Errorf("Expand: cannot expand dimension %d from %d to %d", i, paddedShape[i], targetShape[i])
		}
	}

	result, err := NewRaw(targetShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}

	switch x.dtype {
	case Float32:
		expandData(x.AsFloat32(), result.AsFloat32(), paddedShape, targetShape)
	case Float64:
		expandData(x.AsFloat64(), result.AsFloat64(), paddedShape, targetShape)
	case Int32:
		expandData(x.AsInt32(), result.AsInt32(), paddedShape, targetShape)
	case Int64:
		expandData(x.AsInt64(), result.AsInt64(), paddedShape, targetShape)
	case Uint8:
		expandData(x.AsUint8(), result.AsUint8(), paddedShape, targetShape)
	case Bool:
		expandData(x.AsBool(), result.AsBool(), paddedShape, targetShape)
	default:
		return nil, fmt.Errorf("Expand: unsupported dtype %v", x.dtype)
	}

	return result, nil
}

func expandData[T DType](in, out []T, srcShape, dstShape Shape) {
	srcStrides := srcShape.ComputeStrides()
	ndim := len(dstShape)

	total := 1
	for _, d := range dstShape {
		total *= d
	}

	dstIdx := make([]int, ndim)
	for i := 0; i < total; i++ {
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			dstIdx[j] = tmp % dstShape[j]
			tmp /= dstShape[j]
		}

		srcFlat := 0
		for j := 0; j < ndim; j++ {
			if srcShape[j] == 1 {
				// Broadcast: always read index 0
				continue
			}
			srcFlat += dstIdx[j] * srcStrides[j]
		}

		out[i] = in[srcFlat]
	}
}
