// SPDX-License-Identifier: Unlicense OR MIT

/*
Package canvas resolves the drawing rectangle of a visualization
widget.

A widget's canvas is determined by up to four sources: an explicit
size option, the measured size of the containing element, a margin
option and a default canvas. Resolve combines them under a fixed
precedence and falls back to the default canvas whenever the
combination leaves no usable drawing area.
*/
package canvas

import (
	"vizui.org/f32"
	"vizui.org/unit"
)

// A Dim is an optional dimension. The zero value is unset.
type Dim struct {
	V   float32
	Set bool
}

// Px returns the Dim for v pixels.
func Px(v float32) Dim {
	return Dim{V: v, Set: true}
}

// Size is a requested canvas size. Unset fields fall through to the
// container measurement and then to the default canvas. A field that
// is set but negative invalidates the whole canvas.
type Size struct {
	Width, Height Dim
}

// Margin is requested spacing inside the canvas edges. Unset fields
// fall back to the default canvas insets.
type Margin struct {
	Left, Top, Right, Bottom Dim
}

// Measured is a container content-box measurement. A dimension that
// is zero or negative means no valid measurement exists on that
// axis.
type Measured struct {
	Width, Height float32
}

// Canvas is a resolved drawing rectangle: the outer size and the
// insets from its edges to the drawable area. A resolved Canvas
// never has a negative width or height.
type Canvas struct {
	Width, Height float32
	Inset         f32.Inset
}

// Drawable returns the size of the area inside the insets.
func (c Canvas) Drawable() f32.Point {
	return f32.Point{
		X: c.Width - c.Inset.Horizontal(),
		Y: c.Height - c.Inset.Vertical(),
	}
}

// Resolve computes the final canvas.
//
// Each dimension resolves independently: the explicit size if set
// and non-negative, else the measured container size if positive,
// else the default canvas dimension. Validity is then judged on the
// whole set: if either resolved dimension is negative, or the
// margins on an axis sum to more than that axis, def is returned
// unchanged and the margins are ignored.
//
// Resolve is total. Every input combination yields a well formed
// Canvas; the worst case is def passed straight through.
func Resolve(size Size, measured Measured, margin Margin, def Canvas) Canvas {
	width := dimension(size.Width, measured.Width, def.Width)
	height := dimension(size.Height, measured.Height, def.Height)
	if width < 0 || height < 0 {
		return def
	}
	in := f32.Inset{
		Top:    inset(margin.Top, def.Inset.Top),
		Right:  inset(margin.Right, def.Inset.Right),
		Bottom: inset(margin.Bottom, def.Inset.Bottom),
		Left:   inset(margin.Left, def.Inset.Left),
	}
	if in.Horizontal() > width || in.Vertical() > height {
		return def
	}
	return Canvas{Width: width, Height: height, Inset: in}
}

// dimension resolves a single axis. A negative explicit dimension
// with no measurement to fall back on stays negative so that Resolve
// rejects the whole set.
func dimension(explicit Dim, measured, def float32) float32 {
	if explicit.Set && explicit.V >= 0 {
		return explicit.V
	}
	if measured > 0 {
		return measured
	}
	if explicit.Set {
		return explicit.V
	}
	return def
}

func inset(m Dim, def float32) float32 {
	if m.Set {
		return m.V
	}
	return def
}

// ContentBox derives a content-box measurement from an outer size by
// subtracting padding on both sides of each axis. An axis that ends
// up non-positive reports no measurement.
func ContentBox(outer f32.Point, padding f32.Inset) Measured {
	m := Measured{
		Width:  outer.X - padding.Horizontal(),
		Height: outer.Y - padding.Vertical(),
	}
	if m.Width < 0 {
		m.Width = 0
	}
	if m.Height < 0 {
		m.Height = 0
	}
	return m
}

// SizeOf converts unit-valued dimensions to a pixel Size.
func SizeOf(c unit.Converter, width, height unit.Value) Size {
	return Size{
		Width:  Px(c.Px(width)),
		Height: Px(c.Px(height)),
	}
}

// MarginOf converts unit-valued margins to a pixel Margin.
func MarginOf(c unit.Converter, top, right, bottom, left unit.Value) Margin {
	return Margin{
		Top:    Px(c.Px(top)),
		Right:  Px(c.Px(right)),
		Bottom: Px(c.Px(bottom)),
		Left:   Px(c.Px(left)),
	}
}
