// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/einshape/internal/tensor"

// Backend defines the interface a compute backend must implement.
// Backends own the actual memory operations the rearrange executor delegates
// to: shape reinterpretation, permutation, and broadcast materialization.
//
// Implementations:
//   - backend/cpu: pure Go host-memory backend
//
// Example:
//
//	import (
//	    "github.com/born-ml/einshape/backend/cpu"
//	    "github.com/born-ml/einshape/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := x.Transpose(1, 0) // Uses backend.Transpose under the hood
type Backend = tensor.Backend
