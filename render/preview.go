// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"slices"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/mcubes/mesh"
)

// ErrUnsupportedPrimitive is returned when a preview is requested for an
// arena that does not hold triangles.
var ErrUnsupportedPrimitive = errors.New("render: preview needs triangles")

// PreviewOptions configures RenderPreview.
type PreviewOptions struct {
	Width, Height int

	// Supersample renders at this multiple of the output size and filters
	// down. Values below 1 mean 1.
	Supersample int

	// Yaw and Pitch rotate the mesh in radians before the orthographic
	// projection along -Z.
	Yaw, Pitch float64

	Background color.RGBA
	Base       color.RGBA

	// Caption is drawn in the top-left corner when non-empty.
	Caption string
}

// DefaultPreviewOptions returns a 512x512 three-quarter view.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:       512,
		Height:      512,
		Supersample: 2,
		Yaw:         math.Pi / 6,
		Pitch:       -math.Pi / 8,
		Background:  color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Base:        color.RGBA{R: 210, G: 180, B: 120, A: 255},
	}
}

type projTri struct {
	p     [3][2]float32
	depth float32
	shade float32
}

// RenderPreview draws a flat-shaded orthographic view of a using painter's
// ordering. Empty arenas produce a background-only image.
func RenderPreview(a *mesh.Arena, opt PreviewOptions) (*image.RGBA, error) {
	if a.Primitive() != mesh.Triangles {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedPrimitive, a.Primitive())
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("render: invalid preview size %dx%d", opt.Width, opt.Height)
	}
	ss := max(opt.Supersample, 1)
	w, h := opt.Width*ss, opt.Height*ss

	big := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(big, big.Bounds(), image.NewUniform(opt.Background), image.Point{}, xdraw.Src)

	tris := project(a, opt, w, h)
	slices.SortFunc(tris, func(x, y projTri) int {
		switch {
		case x.depth < y.depth:
			return -1
		case x.depth > y.depth:
			return 1
		}
		return 0
	})

	z := vector.NewRasterizer(1, 1)
	for i := range tris {
		fillTriangle(z, big, &tris[i], opt.Base)
	}

	out := big
	if ss > 1 {
		out = image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
		xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)
	}

	if opt.Caption != "" {
		d := font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(color.RGBA{R: 235, G: 235, B: 235, A: 255}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(6, 16),
		}
		d.DrawString(opt.Caption)
	}
	return out, nil
}

// project rotates, fits and flattens the arena's triangles into pixel space.
func project(a *mesh.Arena, opt PreviewOptions, w, h int) []projTri {
	lo, hi, ok := a.Bounds()
	if !ok || a.NumPrimitives() == 0 {
		return nil
	}
	var center [3]float32
	var radius float32
	for k := range 3 {
		center[k] = (lo[k] + hi[k]) / 2
		radius = max(radius, hi[k]-lo[k])
	}
	// Half the bounding-box diagonal fits any rotation.
	radius *= float32(math.Sqrt(3)) / 2
	if radius == 0 {
		radius = 1
	}
	fit := float32(min(w, h)) / (2 * radius) * 0.95

	cy, sy := float32(math.Cos(opt.Yaw)), float32(math.Sin(opt.Yaw))
	cp, sp := float32(math.Cos(opt.Pitch)), float32(math.Sin(opt.Pitch))
	rotate := func(v []float32) [3]float32 {
		x, y, z := v[0]-center[0], v[1]-center[1], v[2]-center[2]
		x, z = cy*x+sy*z, -sy*x+cy*z
		y, z = cp*y-sp*z, sp*y+cp*z
		return [3]float32{x, y, z}
	}

	// Light from the upper left, toward the viewer.
	light := normalize3([3]float32{-0.4, 0.6, 1})

	verts := a.Vertices()
	idx := a.Indices()
	tris := make([]projTri, 0, len(idx)/3)
	for t := 0; t+2 < len(idx); t += 3 {
		var r [3][3]float32
		for k := range 3 {
			i := int(idx[t+k]) * mesh.PositionWidth
			r[k] = rotate(verts[i : i+3])
		}
		n := normalize3(cross3(sub3(r[1], r[0]), sub3(r[2], r[0])))
		d := n[0]*light[0] + n[1]*light[1] + n[2]*light[2]
		var pt projTri
		for k := range 3 {
			pt.p[k] = [2]float32{
				float32(w)/2 + r[k][0]*fit,
				float32(h)/2 - r[k][1]*fit,
			}
			pt.depth += r[k][2]
		}
		pt.shade = 0.2 + 0.8*float32(math.Abs(float64(d)))
		tris = append(tris, pt)
	}
	return tris
}

// fillTriangle rasterizes one triangle into its pixel bounding box.
func fillTriangle(z *vector.Rasterizer, dst *image.RGBA, t *projTri, base color.RGBA) {
	minX, minY := t.p[0][0], t.p[0][1]
	maxX, maxY := minX, minY
	for _, p := range t.p[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	r := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX)))+1, int(math.Ceil(float64(maxY)))+1,
	).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(t.p[0][0]-ox, t.p[0][1]-oy)
	z.LineTo(t.p[1][0]-ox, t.p[1][1]-oy)
	z.LineTo(t.p[2][0]-ox, t.p[2][1]-oy)
	z.ClosePath()

	c := color.RGBA{
		R: uint8(float32(base.R) * t.shade),
		G: uint8(float32(base.G) * t.shade),
		B: uint8(float32(base.B) * t.shade),
		A: base.A,
	}
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

// SavePNG encodes img as PNG at path.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
