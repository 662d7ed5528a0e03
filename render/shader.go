// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// MeshShaderWGSL is a lit flat-color shader for the layout returned by
// VertexLayout without colors. The uniform holds the view-projection
// matrix, the light direction and the base color.
//
//go:embed shaders/mesh.wgsl
var MeshShaderWGSL string

// CompileMeshShader compiles MeshShaderWGSL to SPIR-V words.
func CompileMeshShader() ([]uint32, error) {
	return compileWGSL(MeshShaderWGSL)
}

func compileWGSL(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("render: compile mesh shader: %w", err)
	}

	// SPIR-V words are little-endian.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// CreateMeshShaderModule compiles the mesh shader and creates a module on
// device. The caller destroys it with device.DestroyShaderModule.
func CreateMeshShaderModule(device hal.Device) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	code, err := CompileMeshShader()
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "mcubes_mesh_shader",
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
}
