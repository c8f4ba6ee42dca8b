package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case uint8:
		one = uint8(1)
	case bool:
		one = true
	}

	for i := range data {
		data[i] = one.(T)
	}
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = rand.Float32() //nolint:gosec // G404: math/rand is intentional for test data
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = rand.Float64() //nolint:gosec // G404: math/rand is intentional for test data
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive).
// Only works with numeric types.
//
// Example:
//
//	t := tensor.Arange[int32](0, 12, backend) // [0, 1, ..., 11]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	var dummy T
	var n int
	switch any(dummy).(type) {
	case float32:
		n = int(any(end).(float32) - any(start).(float32))
	case float64:
		n = int(any(end).(float64) - any(start).(float64))
	case int32:
		n = int(any(end).(int32) - any(start).(int32))
	case int64:
		n = int(any(end).(int64) - any(start).(int64))
	case uint8:
		n = int(any(end).(uint8) - any(start).(uint8))
	default:
		panic("Arange does not support bool tensors")
	}
	if n <= 0 {
		panic("Arange: end must be greater than start")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		switch v := any(start).(type) {
		case float32:
			data[i] = any(v + float32(i)).(T)
		case float64:
			data[i] = any(v + float64(i)).(T)
		case int32:
			data[i] = any(v + int32(i)).(T)
		case int64:
			data[i] = any(v + int64(i)).(T)
		case uint8:
			data[i] = any(v + uint8(i)).(T)
		}
	}
	return t
}
