// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense array type consumed by einshape's
// rearrange operation.
//
// # Overview
//
// Tensors are dense, rectangular, row-major arrays. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Shape reinterpretation, permutation, and broadcast expansion
//   - Zero-copy views where possible (reshape shares the buffer)
//   - A Backend interface owning the memory operations
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/einshape/backend/cpu"
//	    "github.com/born-ml/einshape/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Arange[int32](0, 12, backend) // Shape: [12]
//	    y := x.Reshape(3, 4)                      // Shape: [3, 4]
//	    z := y.Transpose(1, 0)                    // Shape: [4, 3]
//	}
//
// # Supported Data Types
//
// The tensor package supports the following element types via the DType
// constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//
// # Memory Management
//
// Reshape is a pure reinterpretation and shares the underlying buffer with
// the source; Transpose and Expand materialize fresh data. Buffers are
// reference-counted, so views are cheap.
package tensor
