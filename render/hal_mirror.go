// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/mcubes/mesh"
	"github.com/gogpu/wgpu/hal"
)

// DrawCall describes the buffers a HALMirror hands to the host for one draw.
// The host records it into its own render pass with a pipeline built from
// VertexLayout and MeshShaderWGSL.
type DrawCall struct {
	Vertices    hal.Buffer
	Indices     hal.Buffer
	IndexFormat gputypes.IndexFormat
	IndexCount  uint32
	Stride      uint64
}

// EncodeFunc records a draw for a HALMirror.
type EncodeFunc func(dc DrawCall) error

// VertexStride returns the interleaved vertex size in bytes for attrs.
// Positions and normals are always present; normals are zero when the
// source has none. Colors are appended when attrs has mesh.Color.
func VertexStride(attrs mesh.VertexAttribute) uint64 {
	n := mesh.PositionWidth + mesh.NormalWidth
	if attrs.Has(mesh.Color) {
		n += mesh.ColorWidth
	}
	return uint64(n * 4)
}

// VertexLayout returns the vertex buffer layout matching the interleaved
// data a HALMirror uploads for arenas with attrs.
func VertexLayout(attrs mesh.VertexAttribute) []gputypes.VertexBufferLayout {
	vattrs := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
		{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
	}
	if attrs.Has(mesh.Color) {
		vattrs = append(vattrs, gputypes.VertexAttribute{
			Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2,
		})
	}
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride(attrs),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  vattrs,
		},
	}
}

// HALMirror mirrors an arena into wgpu HAL vertex and index buffers.
//
// Buffers grow to fit the source and are reused across refreshes. A failed
// upload is logged and leaves the mirror stale so the next frame retries.
type HALMirror struct {
	device hal.Device
	queue  hal.Queue
	encode EncodeFunc
	label  string
	logger *slog.Logger

	src   *mesh.Arena
	stale bool

	vbuf, ibuf     hal.Buffer
	vcap, icap     uint64
	indexCount     uint32
	stride         uint64
	vstage, istage []byte
}

// HALMirrorOption configures a HALMirror.
type HALMirrorOption func(*HALMirror)

// WithEncoder sets the function that records draws.
func WithEncoder(fn EncodeFunc) HALMirrorOption {
	return func(m *HALMirror) { m.encode = fn }
}

// WithLabel sets the label prefix used for GPU buffers.
func WithLabel(label string) HALMirrorOption {
	return func(m *HALMirror) { m.label = label }
}

// WithMirrorLogger sets the logger for upload failures.
func WithMirrorLogger(l *slog.Logger) HALMirrorOption {
	return func(m *HALMirror) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewHALMirror creates a mirror on device and queue.
func NewHALMirror(device hal.Device, queue hal.Queue, opts ...HALMirrorOption) (*HALMirror, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	m := &HALMirror{
		device: device,
		queue:  queue,
		label:  "mcubes_mesh",
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NewHALMirrorFromProvider creates a mirror on the HAL device behind p.
func NewHALMirrorFromProvider(p DeviceHandle, opts ...HALMirrorOption) (*HALMirror, error) {
	device, queue, err := halFromProvider(p)
	if err != nil {
		return nil, err
	}
	return NewHALMirror(device, queue, opts...)
}

// SetSource implements Mirror.
func (m *HALMirror) SetSource(a *mesh.Arena) {
	m.src = a
	m.stale = true
}

// MarkStale implements Mirror.
func (m *HALMirror) MarkStale() { m.stale = true }

// IsStale implements Mirror.
func (m *HALMirror) IsStale() bool { return m.stale }

// RefreshIfStale implements Mirror.
func (m *HALMirror) RefreshIfStale() bool {
	if !m.stale || m.src == nil || m.device == nil {
		return false
	}
	if err := m.upload(m.src); err != nil {
		m.logger.Warn("mesh upload failed", "label", m.label, "err", err)
		return false
	}
	m.stale = false
	return true
}

func (m *HALMirror) upload(a *mesh.Arena) error {
	m.stride = VertexStride(a.Attributes())
	m.vstage = packVertices(m.vstage[:0], a)
	m.istage = packIndices(m.istage[:0], a.Indices())
	m.indexCount = uint32(a.NumIndices())

	if len(m.vstage) == 0 || len(m.istage) == 0 {
		return nil
	}

	var err error
	m.vbuf, m.vcap, err = m.ensureBuffer(m.vbuf, m.vcap, uint64(len(m.vstage)),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst, m.label+"_vertices")
	if err != nil {
		return err
	}
	m.ibuf, m.icap, err = m.ensureBuffer(m.ibuf, m.icap, uint64(len(m.istage)),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst, m.label+"_indices")
	if err != nil {
		return err
	}

	m.queue.WriteBuffer(m.vbuf, 0, m.vstage)
	m.queue.WriteBuffer(m.ibuf, 0, m.istage)
	return nil
}

// ensureBuffer returns a buffer of at least size bytes, replacing buf when
// it is too small. Sizes are rounded up to 4 bytes for WriteBuffer.
func (m *HALMirror) ensureBuffer(buf hal.Buffer, capacity, size uint64, usage gputypes.BufferUsage, label string) (hal.Buffer, uint64, error) {
	if buf != nil && capacity >= size {
		return buf, capacity, nil
	}
	if buf != nil {
		m.device.DestroyBuffer(buf)
	}
	size = (size + 3) &^ 3
	nb, err := m.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("create %s: %w", label, err)
	}
	return nb, size, nil
}

// Draw implements Mirror. Empty geometry draws nothing.
func (m *HALMirror) Draw() error {
	if m.stale {
		return ErrStale
	}
	if m.indexCount == 0 || m.vbuf == nil || m.encode == nil {
		return nil
	}
	return m.encode(DrawCall{
		Vertices:    m.vbuf,
		Indices:     m.ibuf,
		IndexFormat: gputypes.IndexFormatUint32,
		IndexCount:  m.indexCount,
		Stride:      m.stride,
	})
}

// Release implements Mirror.
func (m *HALMirror) Release() {
	if m.device != nil {
		if m.vbuf != nil {
			m.device.DestroyBuffer(m.vbuf)
		}
		if m.ibuf != nil {
			m.device.DestroyBuffer(m.ibuf)
		}
	}
	m.vbuf, m.ibuf = nil, nil
	m.vcap, m.icap = 0, 0
	m.src = nil
	m.device = nil
}

// IndexCount returns the number of indices uploaded by the last refresh.
func (m *HALMirror) IndexCount() uint32 { return m.indexCount }

// VertexBytes returns the size of the vertex data uploaded by the last refresh.
func (m *HALMirror) VertexBytes() int { return len(m.vstage) }

// packVertices interleaves position, normal and optional color.
func packVertices(dst []byte, a *mesh.Arena) []byte {
	pos := a.Vertices()
	nrm := a.Normals()
	col := a.Colors()
	n := a.NumVertices()

	var word [4]byte
	put := func(v float32) {
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(v))
		dst = append(dst, word[:]...)
	}
	for i := range n {
		p := pos[i*mesh.PositionWidth:]
		put(p[0])
		put(p[1])
		put(p[2])
		if nrm != nil {
			q := nrm[i*mesh.NormalWidth:]
			put(q[0])
			put(q[1])
			put(q[2])
		} else {
			put(0)
			put(0)
			put(0)
		}
		if col != nil {
			c := col[i*mesh.ColorWidth:]
			put(c[0])
			put(c[1])
			put(c[2])
			put(c[3])
		}
	}
	return dst
}

func packIndices(dst []byte, idx []uint32) []byte {
	for _, v := range idx {
		dst = binary.LittleEndian.AppendUint32(dst, v)
	}
	return dst
}
