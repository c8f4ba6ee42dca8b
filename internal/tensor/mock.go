package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for in-package tests.
// It delegates to the raw shape primitives and panics on error, so tests in
// this package can exercise Tensor plumbing without importing a real backend
// (which would create an import cycle).
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Reshape reinterprets the tensor's shape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	result, err := Reshape(t, newShape)
	if err != nil {
		panic(fmt.Sprintf("mock reshape: %v", err))
	}
	return result
}

// Transpose permutes tensor dimensions.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	result, err := TransposeAxes(t, axes...)
	if err != nil {
		panic(fmt.Sprintf("mock transpose: %v", err))
	}
	return result
}

// Expand broadcasts the tensor to a larger shape.
func (m *MockBackend) Expand(x *RawTensor, shape Shape) *RawTensor {
	result, err := Expand(x, shape)
	if err != nil {
		panic(fmt.Sprintf("mock expand: %v", err))
	}
	return result
}

// Unsqueeze adds a dimension of size 1.
func (m *MockBackend) Unsqueeze(x *RawTensor, dim int) *RawTensor {
	result, err := Unsqueeze(x, dim)
	if err != nil {
		panic(fmt.Sprintf("mock unsqueeze: %v", err))
	}
	return result
}

// Squeeze removes a dimension of size 1.
func (m *MockBackend) Squeeze(x *RawTensor, dim int) *RawTensor {
	result, err := Squeeze(x, dim)
	if err != nil {
		panic(fmt.Sprintf("mock squeeze: %v", err))
	}
	return result
}
