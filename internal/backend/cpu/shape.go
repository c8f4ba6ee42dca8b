package cpu

import (
	"fmt"

	"github.com/born-ml/einshape/internal/tensor"
)

// Reshape reinterprets the tensor's shape without moving data.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := tensor.Reshape(t, newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// Transpose permutes the tensor's dimensions according to the given axes.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	result, err := tensor.TransposeAxes(t, axes...)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}
	return result
}

// Expand broadcasts the tensor to a new shape, materializing repeated data.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := tensor.Expand(x, newShape)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}
	return result
}

// Unsqueeze adds a dimension of size 1 at the specified position.
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	result, err := tensor.Unsqueeze(x, dim)
	if err != nil {
		panic(fmt.Sprintf("unsqueeze: %v", err))
	}
	return result
}

// Squeeze removes a dimension of size 1 at the specified position.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	result, err := tensor.Squeeze(x, dim)
	if err != nil {
		panic(fmt.Sprintf("squeeze: %v", err))
	}
	return result
}
