// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scroll normalizes scroll targets into offset deltas for a
scroll strategy.

Offsets are stored as the negation of the logical scroll position:
moving content further left or up makes the offset more negative.
The strategy that performs the actual positioning receives deltas in
this space and reports absolute positions back for reconciliation.
*/
package scroll

import (
	"vizui.org/canvas"
	"vizui.org/f32"
)

// Direction constrains which axes participate in scroll operations.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
	Both
)

// Axes reports whether d includes the horizontal and vertical axes.
func (d Direction) Axes() (horizontal, vertical bool) {
	switch d {
	case Horizontal:
		return true, false
	case Vertical:
		return false, true
	case Both:
		return true, true
	default:
		panic("invalid Direction")
	}
}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Both:
		return "Both"
	default:
		panic("invalid Direction")
	}
}

// Location is a scroll target: either a scalar Distance applied
// along the scroll direction, or a structured Point.
type Location interface {
	normalize(d Direction) Offset
}

// Distance is a scalar scroll target. It applies to every axis the
// scroll direction includes.
type Distance float32

// Point is a structured scroll target. Left and Top take precedence
// over X and Y when both are set; an axis with neither field set is
// left unchanged.
type Point struct {
	Left, Top canvas.Dim
	X, Y      canvas.Dim
}

// Offset is a normalized {left, top} scroll offset or delta. An axis
// whose Has flag is unset is left unchanged.
type Offset struct {
	Left, Top       float32
	HasLeft, HasTop bool
}

// Zero reports whether o changes nothing on either axis.
func (o Offset) Zero() bool {
	return (!o.HasLeft || o.Left == 0) && (!o.HasTop || o.Top == 0)
}

// Normalize reduces a scroll target to an offset for the given
// direction.
func Normalize(loc Location, d Direction) Offset {
	return loc.normalize(d)
}

func (v Distance) normalize(d Direction) Offset {
	horizontal, vertical := d.Axes()
	var o Offset
	if horizontal {
		o.Left = -float32(v)
		o.HasLeft = true
	}
	if vertical {
		o.Top = -float32(v)
		o.HasTop = true
	}
	return o
}

func (p Point) normalize(Direction) Offset {
	left := coalesce(p.Left, p.X)
	top := coalesce(p.Top, p.Y)
	var o Offset
	if left.Set {
		o.Left = -left.V
		o.HasLeft = true
	}
	if top.Set {
		o.Top = -top.V
		o.HasTop = true
	}
	return o
}

func coalesce(a, b canvas.Dim) canvas.Dim {
	if a.Set {
		return a
	}
	return b
}

// Delta computes the scroll distance from the current offset to
// target, per axis. An axis the target leaves unset, or that the
// direction excludes, yields a zero distance. A Delta for which
// Zero reports true requires no strategy call.
func Delta(current, target Offset, d Direction) Offset {
	horizontal, vertical := d.Axes()
	o := Offset{HasLeft: horizontal, HasTop: vertical}
	if horizontal && target.HasLeft {
		o.Left = current.Left - target.Left
	}
	if vertical && target.HasTop {
		o.Top = current.Top - target.Top
	}
	return o
}

// MaxOffset is the largest scrollable position for the given content
// and viewport sizes. It is never negative on either axis.
func MaxOffset(content, viewport f32.Point) f32.Point {
	m := content.Sub(viewport)
	if m.X < 0 {
		m.X = 0
	}
	if m.Y < 0 {
		m.Y = 0
	}
	return m
}
