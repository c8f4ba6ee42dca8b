// Package cpu implements the host-memory backend for the einshape tensor core.
package cpu

import (
	"github.com/born-ml/einshape/internal/tensor"
)

// CPUBackend implements tensor shape operations on the host CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}
