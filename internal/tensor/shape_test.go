package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{name: "scalar", shape: Shape{}, want: 1},
		{name: "vector", shape: Shape{5}, want: 5},
		{name: "matrix", shape: Shape{3, 4}, want: 12},
		{name: "rank 4", shape: Shape{2, 3, 4, 5}, want: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.NumElements(); got != tt.want {
				t.Errorf("NumElements() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() on valid shape: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate() accepted a zero dimension")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("Validate() accepted a negative dimension")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides() = %v, want %v", strides, want)
			break
		}
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	clone := s.Clone()
	if !s.Equal(clone) {
		t.Errorf("clone %v not equal to original %v", clone, s)
	}
	clone[0] = 9
	if s[0] != 2 {
		t.Error("mutating clone changed the original")
	}
	if s.Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank compared equal")
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{name: "equal", a: Shape{3, 5}, b: Shape{3, 5}, want: Shape{3, 5}},
		{name: "widen left", a: Shape{3, 1}, b: Shape{3, 5}, want: Shape{3, 5}, broadcast: true},
		{name: "missing leading dim", a: Shape{5}, b: Shape{3, 5}, want: Shape{3, 5}, broadcast: true},
		{name: "incompatible", a: Shape{3, 4}, b: Shape{3, 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v vs %v", tt.a, tt.b)
				}
				return
			}
			if err != nil {
				t.Fatalf("BroadcastShapes failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("shape = %v, want %v", got, tt.want)
			}
			if broadcast != tt.broadcast {
				t.Errorf("broadcast = %v, want %v", broadcast, tt.broadcast)
			}
		})
	}
}
