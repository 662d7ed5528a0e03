// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice opens a device on the noop HAL backend.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// halHandle is a DeviceHandle that also exposes HAL objects.
type halHandle struct {
	NullDeviceHandle
	device any
	queue  any
}

func (h halHandle) HalDevice() any { return h.device }
func (h halHandle) HalQueue() any  { return h.queue }

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
	if info := handle.AdapterInfo(); info.Name != "" || info.Type != gpucontext.AdapterTypeUnknown {
		t.Errorf("NullDeviceHandle.AdapterInfo() = %+v, want unnamed Unknown adapter", info)
	}

	acceptProvider := func(_ gpucontext.DeviceProvider) {}
	acceptProvider(handle)
}

func TestHalFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tests := []struct {
		name    string
		p       DeviceHandle
		wantErr bool
	}{
		{"nil provider", nil, true},
		{"no HAL accessors", NullDeviceHandle{}, true},
		{"wrong device type", halHandle{device: "x", queue: queue}, true},
		{"wrong queue type", halHandle{device: device, queue: 1}, true},
		{"valid", halHandle{device: device, queue: queue}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, q, err := halFromProvider(tt.p)
			if tt.wantErr {
				if !errors.Is(err, ErrNoDevice) {
					t.Errorf("err = %v, want ErrNoDevice", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != device || q != queue {
				t.Error("resolved device or queue differs from provider")
			}
		})
	}
}
