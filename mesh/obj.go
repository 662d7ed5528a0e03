// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteOBJ serializes the logical content of a as Wavefront OBJ.
//
// Positions are written as "v" lines, normals as "vn" and texture
// coordinates as "vt" when present. Each primitive becomes one "f" line
// with 1-based indices referencing the matching v/vt/vn entries.
func WriteOBJ(w io.Writer, a *Arena) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	writeTuple := func(tag string, s []float32, width int) {
		for i := 0; i+width <= len(s); i += width {
			buf = append(buf[:0], tag...)
			for k := range width {
				buf = append(buf, ' ')
				buf = strconv.AppendFloat(buf, float64(s[i+k]), 'g', -1, 32)
			}
			buf = append(buf, '\n')
			_, _ = bw.Write(buf)
		}
	}

	writeTuple("v", a.Vertices(), PositionWidth)
	writeTuple("vt", a.UVs(), UVWidth)
	writeTuple("vn", a.Normals(), NormalWidth)

	hasUV, hasN := a.HasUVs(), a.HasNormals()
	idx := a.Indices()
	vpp := a.VertsPerPrimitive()
	for p := 0; p+vpp <= len(idx); p += vpp {
		buf = append(buf[:0], 'f')
		for k := range vpp {
			ref := uint64(idx[p+k]) + 1
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, ref, 10)
			switch {
			case hasUV && hasN:
				buf = append(buf, '/')
				buf = strconv.AppendUint(buf, ref, 10)
				buf = append(buf, '/')
				buf = strconv.AppendUint(buf, ref, 10)
			case hasN:
				buf = append(buf, '/', '/')
				buf = strconv.AppendUint(buf, ref, 10)
			case hasUV:
				buf = append(buf, '/')
				buf = strconv.AppendUint(buf, ref, 10)
			}
		}
		buf = append(buf, '\n')
		_, _ = bw.Write(buf)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mesh: write obj: %w", err)
	}
	return nil
}

// SaveOBJ writes a to the named file as Wavefront OBJ.
func SaveOBJ(path string, a *Arena) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mesh: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("mesh: close %s: %w", path, cerr)
		}
	}()
	return WriteOBJ(f, a)
}
