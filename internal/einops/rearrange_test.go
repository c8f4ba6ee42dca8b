package einops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/einshape/internal/tensor"
)

// rawSeq creates a raw float32 tensor filled with 0, 1, 2, ...
func rawSeq(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}
	return raw
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	return rerr.Kind
}

func TestRearrange_Identity(t *testing.T) {
	x := rawSeq(t, tensor.Shape{2, 3, 4})

	y, err := Rearrange(x, "a b c -> a b c", nil)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3, 4}, y.Shape())
	assert.Equal(t, x.AsFloat32(), y.AsFloat32())
	assert.Equal(t, tensor.Float32, y.DType())
}

func TestRearrange_Transpose(t *testing.T) {
	x := rawSeq(t, tensor.Shape{2, 3})

	y, err := Rearrange(x, "h w -> w h", nil)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 2}, y.Shape())
	assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, y.AsFloat32())
}

func TestRearrange_DoubleTransposeInverse(t *testing.T) {
	x := rawSeq(t, tensor.Shape{3, 4})

	y, err := Rearrange(x, "h w -> w h", nil)
	require.NoError(t, err)
	z, err := Rearrange(y, "w h -> h w", nil)
	require.NoError(t, err)

	assert.Equal(t, x.Shape(), z.Shape())
	assert.Equal(t, x.AsFloat32(), z.AsFloat32())
}

func TestRearrange_SplitMergeInverse(t *testing.T) {
	x := rawSeq(t, tensor.Shape{12, 10})

	split, err := Rearrange(x, "(h w) c -> h w c", Axes{"h": 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 4, 10}, split.Shape())

	merged, err := Rearrange(split, "h w c -> (h w) c", nil)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{12, 10}, merged.Shape())
	assert.Equal(t, x.AsFloat32(), merged.AsFloat32())
}

func TestRearrange_SplitWithHint(t *testing.T) {
	x := rawSeq(t, tensor.Shape{10, 12})

	y, err := Rearrange(x, "h (w c) -> h w c", Axes{"c": 3})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{10, 4, 3}, y.Shape())
	// Pure reinterpretation: flat order is unchanged.
	assert.Equal(t, x.AsFloat32(), y.AsFloat32())
}

func TestRearrange_Ellipsis(t *testing.T) {
	x := rawSeq(t, tensor.Shape{2, 3, 4, 5})

	y, err := Rearrange(x, "... h w -> ... (h w)", nil)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3, 20}, y.Shape())
	assert.Equal(t, x.AsFloat32(), y.AsFloat32())
}

func TestRearrange_EllipsisRank2(t *testing.T) {
	x := rawSeq(t, tensor.Shape{3, 4})

	y, err := Rearrange(x, "... h w -> ... (h w)", nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{12}, y.Shape())
}

func TestRearrange_BroadcastNewAxis(t *testing.T) {
	x := rawSeq(t, tensor.Shape{3, 1, 5})

	y, err := Rearrange(x, "a 1 c -> a b c", Axes{"b": 4})
	require.NoError(t, err)

	require.Equal(t, tensor.Shape{3, 4, 5}, y.Shape())

	// Every slice along the new axis equals the original singleton slice.
	in := x.AsFloat32()
	out := y.AsFloat32()
	for a := 0; a < 3; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 5; c++ {
				assert.Equal(t, in[a*5+c], out[a*20+b*5+c], "a=%d b=%d c=%d", a, b, c)
			}
		}
	}
}

func TestRearrange_WidenSingletonAxis(t *testing.T) {
	x := rawSeq(t, tensor.Shape{3, 1, 5})

	y, err := Rearrange(x, "a b c -> a b c", Axes{"b": 4})
	require.NoError(t, err)

	require.Equal(t, tensor.Shape{3, 4, 5}, y.Shape())
	in := x.AsFloat32()
	out := y.AsFloat32()
	for a := 0; a < 3; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 5; c++ {
				assert.Equal(t, in[a*5+c], out[a*20+b*5+c])
			}
		}
	}
}

func TestRearrange_InputNeverMutated(t *testing.T) {
	x := rawSeq(t, tensor.Shape{2, 3})
	before := append([]float32(nil), x.AsFloat32()...)

	_, err := Rearrange(x, "h w -> w h", nil)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, before, x.AsFloat32())
}

func TestRearrange_DTypePreservation(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int64, tensor.CPU)
		require.NoError(t, err)
		data := raw.AsInt64()
		for i := range data {
			data[i] = int64(i * 100)
		}

		y, err := Rearrange(raw, "h w -> w h", nil)
		require.NoError(t, err)
		assert.Equal(t, tensor.Int64, y.DType())
		assert.Equal(t, []int64{0, 300, 100, 400, 200, 500}, y.AsInt64())
	})

	t.Run("uint8", func(t *testing.T) {
		raw, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Uint8, tensor.CPU)
		require.NoError(t, err)
		copy(raw.AsUint8(), []uint8{1, 2, 3, 4})

		y, err := Rearrange(raw, "h w -> w h", nil)
		require.NoError(t, err)
		assert.Equal(t, tensor.Uint8, y.DType())
		assert.Equal(t, []uint8{1, 3, 2, 4}, y.AsUint8())
	})

	t.Run("bool", func(t *testing.T) {
		raw, err := tensor.NewRaw(tensor.Shape{1, 2}, tensor.Bool, tensor.CPU)
		require.NoError(t, err)
		copy(raw.AsBool(), []bool{true, false})

		y, err := Rearrange(raw, "h w -> w h", nil)
		require.NoError(t, err)
		assert.Equal(t, tensor.Bool, y.DType())
		assert.Equal(t, []bool{true, false}, y.AsBool())
	})
}

func TestRearrange_Errors(t *testing.T) {
	t.Run("pattern longer than rank", func(t *testing.T) {
		x := rawSeq(t, tensor.Shape{3, 4})
		_, err := Rearrange(x, "a b c -> c b a", nil)
		assert.Equal(t, NotEnoughDimensions, kindOf(t, err))
	})

	t.Run("underdetermined composite must not silently succeed", func(t *testing.T) {
		x := rawSeq(t, tensor.Shape{3, 4})
		_, err := Rearrange(x, "a (b c) -> a b c", Axes{"b": 3})
		assert.Equal(t, NonDivisibleCompositeSize, kindOf(t, err))
	})

	t.Run("composite with two unknowns", func(t *testing.T) {
		x := rawSeq(t, tensor.Shape{12, 10})
		_, err := Rearrange(x, "(a b c) d -> a b c d", nil)
		assert.Equal(t, MultipleUnknownDimensions, kindOf(t, err))
	})

	t.Run("unknown axes lengths key", func(t *testing.T) {
		x := rawSeq(t, tensor.Shape{3, 4})
		_, err := Rearrange(x, "h w -> w h", Axes{"q": 7})
		assert.Equal(t, UnexpectedAxesLengthsKey, kindOf(t, err))
	})

	t.Run("new output axis without a length is not realizable", func(t *testing.T) {
		x := rawSeq(t, tensor.Shape{3})
		_, err := Rearrange(x, "a -> a b", nil)
		require.Error(t, err)

		var rerr *Error
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, ReshapeIncompatible, rerr.Kind)
		assert.Equal(t, tensor.Shape{3, 0}, rerr.RequestedShape)
	})
}
