// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host-memory compute backend.
//
// It implements tensor.Backend with pure Go shape operations: reshape as a
// zero-copy reinterpretation, transpose and expand as materializing copies.
package cpu
