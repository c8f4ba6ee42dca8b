package tensor

// Backend defines the interface a compute backend must implement to serve the
// rearrange executor. Backends own the actual memory operations: permutation,
// broadcast materialization, and shape reinterpretation.
type Backend interface {
	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reinterpret shape (view).
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Permute dimensions (copies).

	// Shape operations (broadcast).
	Expand(x *RawTensor, shape Shape) *RawTensor // Broadcast to shape (copies).

	// Manipulation operations.
	Unsqueeze(x *RawTensor, dim int) *RawTensor // Add dimension of size 1.
	Squeeze(x *RawTensor, dim int) *RawTensor   // Remove dimension of size 1.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}
