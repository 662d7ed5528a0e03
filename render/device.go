// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host owns the device; mirrors only borrow it to allocate and fill
// their buffers. DeviceHandle is an alias for gpucontext.DeviceProvider.
// Providers that also expose HalDevice() any and HalQueue() any can back a
// HALMirror directly.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNoDevice is returned when no usable HAL device is available.
var ErrNoDevice = errors.New("render: no HAL device")

// halProvider is implemented by device providers that expose wgpu HAL objects.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halFromProvider resolves the HAL device and queue behind a provider.
func halFromProvider(p DeviceHandle) (hal.Device, hal.Queue, error) {
	if p == nil {
		return nil, nil, ErrNoDevice
	}
	hp, ok := p.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("%w: provider does not expose HAL types", ErrNoDevice)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: provider HalDevice is not hal.Device", ErrNoDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: provider HalQueue is not hal.Queue", ErrNoDevice)
	}
	return device, queue, nil
}

// NullDeviceHandle is a DeviceHandle with no device behind it.
// Used for headless runs where mirrors stay on the CPU.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports an unnamed adapter of unknown type.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}
