// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package einops_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/einshape/backend/cpu"
	"github.com/born-ml/einshape/einops"
	"github.com/born-ml/einshape/tensor"
)

func TestRearrange_ShapeScenarios(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name    string
		shape   tensor.Shape
		pattern string
		axes    einops.Axes
		want    tensor.Shape
	}{
		{
			name:    "transpose",
			shape:   tensor.Shape{3, 4},
			pattern: "h w -> w h",
			want:    tensor.Shape{4, 3},
		},
		{
			name:    "split with hint",
			shape:   tensor.Shape{10, 12},
			pattern: "h (w c) -> h w c",
			axes:    einops.Axes{"c": 3},
			want:    tensor.Shape{10, 4, 3},
		},
		{
			name:    "ellipsis merge",
			shape:   tensor.Shape{2, 3, 4, 5},
			pattern: "... h w -> ... (h w)",
			want:    tensor.Shape{2, 3, 20},
		},
		{
			name:    "broadcast new axis",
			shape:   tensor.Shape{3, 1, 5},
			pattern: "a 1 c -> a b c",
			axes:    einops.Axes{"b": 4},
			want:    tensor.Shape{3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := tensor.Rand[float32](tt.shape, backend)
			y, err := einops.Rearrange(x, tt.pattern, tt.axes)
			require.NoError(t, err)
			assert.True(t, y.Shape().Equal(tt.want), "got shape %v, want %v", y.Shape(), tt.want)
			assert.Equal(t, x.DType(), y.DType())
		})
	}
}

func TestRearrange_Values(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	y, err := einops.Rearrange(x, "h w -> w h", nil)
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, y.Data())
	assert.Equal(t, float32(4), y.At(0, 1))
}

func TestRearrange_BroadcastValues(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3, 1}, backend)
	require.NoError(t, err)

	y, err := einops.Rearrange(x, "a 1 -> a b", einops.Axes{"b": 2})
	require.NoError(t, err)

	assert.True(t, y.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float32{10, 10, 20, 20, 30, 30}, y.Data())
}

func TestRearrange_IdentityPreservesInput(t *testing.T) {
	backend := cpu.New()

	x := tensor.Arange[int32](0, 24, backend).Reshape(2, 3, 4)
	y, err := einops.Rearrange(x, "a b c -> a b c", nil)
	require.NoError(t, err)

	assert.Equal(t, x.Data(), y.Data())
	assert.True(t, x.Shape().Equal(tensor.Shape{2, 3, 4}))
}

func TestRearrange_ErrorKinds(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name    string
		shape   tensor.Shape
		pattern string
		axes    einops.Axes
		want    einops.ErrorKind
	}{
		{
			name:    "missing arrow",
			shape:   tensor.Shape{3},
			pattern: "a b",
			want:    einops.MissingArrow,
		},
		{
			name:    "not enough dimensions",
			shape:   tensor.Shape{3, 4},
			pattern: "a b c -> c b a",
			want:    einops.NotEnoughDimensions,
		},
		{
			name:    "composite resolution failure",
			shape:   tensor.Shape{3, 4},
			pattern: "a (b c) -> a b c",
			axes:    einops.Axes{"b": 3},
			want:    einops.NonDivisibleCompositeSize,
		},
		{
			name:    "multiple unknown composite members",
			shape:   tensor.Shape{12, 10},
			pattern: "(a b c) d -> a b c d",
			want:    einops.MultipleUnknownDimensions,
		},
		{
			name:    "unexpected axes lengths key",
			shape:   tensor.Shape{3, 4},
			pattern: "h w -> w h",
			axes:    einops.Axes{"z": 2},
			want:    einops.UnexpectedAxesLengthsKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := tensor.Rand[float32](tt.shape, backend)
			_, err := einops.Rearrange(x, tt.pattern, tt.axes)
			require.Error(t, err)

			var rerr *einops.Error
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tt.want, rerr.Kind)
		})
	}
}

func TestParsePattern(t *testing.T) {
	p, err := einops.ParsePattern("b c h w -> b (h w) c")
	require.NoError(t, err)
	require.Len(t, p.Input, 4)
	require.Len(t, p.Output, 3)
	assert.Equal(t, einops.TokenGroup, p.Output[1].Kind)
	assert.Equal(t, []string{"h", "w"}, p.Output[1].Members)
}

func TestPlan(t *testing.T) {
	info, err := einops.Plan(tensor.Shape{12, 10}, "(h w) c -> h w c", einops.Axes{"h": 3})
	require.NoError(t, err)
	assert.Nil(t, info.Permutation)
	assert.True(t, info.OutputShape.Equal(tensor.Shape{3, 4, 10}))
	assert.Empty(t, info.Repeats)
}
