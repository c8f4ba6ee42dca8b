package cpu

import (
	"testing"

	"github.com/born-ml/einshape/internal/tensor"
)

// Verify that CPUBackend implements the tensor Backend interface.
var _ tensor.Backend = (*CPUBackend)(nil)

func newRawSeq(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}
	return raw
}

func TestBackendIdentity(t *testing.T) {
	b := New()
	if b.Name() != "CPU" {
		t.Errorf("Name() = %q, want CPU", b.Name())
	}
	if b.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", b.Device())
	}
}

func TestBackendShapeOps(t *testing.T) {
	b := New()
	x := newRawSeq(t, tensor.Shape{2, 3})

	t.Run("Reshape", func(t *testing.T) {
		y := b.Reshape(x, tensor.Shape{3, 2})
		if !y.Shape().Equal(tensor.Shape{3, 2}) {
			t.Errorf("shape = %v, want [3 2]", y.Shape())
		}
	})

	t.Run("Transpose", func(t *testing.T) {
		y := b.Transpose(x, 1, 0)
		want := []float32{0, 3, 1, 4, 2, 5}
		got := y.AsFloat32()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("data = %v, want %v", got, want)
			}
		}
	})

	t.Run("Unsqueeze Expand Squeeze", func(t *testing.T) {
		y := b.Unsqueeze(x, 0)
		if !y.Shape().Equal(tensor.Shape{1, 2, 3}) {
			t.Fatalf("shape = %v, want [1 2 3]", y.Shape())
		}
		z := b.Expand(y, tensor.Shape{4, 2, 3})
		if !z.Shape().Equal(tensor.Shape{4, 2, 3}) {
			t.Fatalf("shape = %v, want [4 2 3]", z.Shape())
		}
		w := b.Squeeze(y, 0)
		if !w.Shape().Equal(tensor.Shape{2, 3}) {
			t.Fatalf("shape = %v, want [2 3]", w.Shape())
		}
	})
}

func TestBackendPanicsOnInvalidOp(t *testing.T) {
	b := New()
	x := newRawSeq(t, tensor.Shape{2, 3})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for incompatible reshape")
		}
	}()
	b.Reshape(x, tensor.Shape{4, 4})
}
