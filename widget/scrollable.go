// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget provides the scrollable container.

A Scrollable performs no positioning itself: it normalizes scroll
requests against its saved offset and hands the resulting deltas to
a Strategy, the collaborator that does the actual scrolling. The
saved offset is the authoritative position; Update reconciles it
with fresh measurements.
*/
package widget

import (
	"vizui.org/f32"
	"vizui.org/scroll"
)

// Strategy performs the actual scroll positioning. ScrollTo receives
// the distance to travel per axis in the sign convention of
// scroll.Delta.
type Strategy interface {
	ScrollTo(delta scroll.Offset)
}

// Config is the scrollable configuration.
type Config struct {
	Direction scroll.Direction
	RTL       bool
	Disabled  bool
}

// Scrollable is a container with a bounded scrollable content area.
//
// The zero value is a horizontal, enabled scrollable with no
// strategy attached. Call Update with measurements before issuing
// scrolls.
type Scrollable struct {
	Config   Config
	Strategy Strategy

	// offset is the saved position in negated offset space:
	// offset.X == -scrollLeft, offset.Y == -scrollTop.
	offset   f32.Point
	viewport f32.Point
	content  f32.Point
	dpr      float32
	anchor   scroll.RightAnchor
}

// Offset returns the saved absolute scroll offset. Both axes are
// always present.
func (s *Scrollable) Offset() scroll.Offset {
	return scroll.Offset{
		Left: s.offset.X, Top: s.offset.Y,
		HasLeft: true, HasTop: true,
	}
}

// ViewportSize returns the last measured viewport size.
func (s *Scrollable) ViewportSize() f32.Point {
	return s.viewport
}

// ContentSize returns the last measured content size.
func (s *Scrollable) ContentSize() f32.Point {
	return s.content
}

// MaxOffset returns the largest scrollable position for the current
// measurements.
func (s *Scrollable) MaxOffset() f32.Point {
	return scroll.MaxOffset(s.content, s.viewport)
}

// ScrollBy scrolls by distance along the scroll direction. Disabled
// scrollables ignore the request.
func (s *Scrollable) ScrollBy(distance float32) {
	if s.Config.Disabled {
		return
	}
	rel := scroll.Normalize(scroll.Distance(distance), s.Config.Direction)
	target := s.offset
	if rel.HasLeft {
		target.X += rel.Left
	}
	if rel.HasTop {
		target.Y += rel.Top
	}
	s.moveTo(target)
}

// ScrollTo scrolls to the target position. Axes the target leaves
// unset keep their current offset. Disabled scrollables ignore the
// request.
func (s *Scrollable) ScrollTo(p scroll.Point) {
	if s.Config.Disabled {
		return
	}
	t := scroll.Normalize(p, s.Config.Direction)
	target := s.offset
	if t.HasLeft {
		target.X = t.Left
	}
	if t.HasTop {
		target.Y = t.Top
	}
	s.moveTo(target)
}

// moveTo clamps target into the scrollable range and forwards the
// resulting delta to the strategy. A zero delta is a no-op: scrolling
// to the current position must not reach the strategy.
func (s *Scrollable) moveTo(target f32.Point) {
	max := s.MaxOffset()
	target.X = clampOffset(target.X, max.X)
	target.Y = clampOffset(target.Y, max.Y)
	d := scroll.Delta(s.Offset(), scroll.Offset{
		Left: target.X, Top: target.Y,
		HasLeft: true, HasTop: true,
	}, s.Config.Direction)
	if d.Zero() {
		return
	}
	if d.HasLeft {
		s.offset.X -= d.Left
	}
	if d.HasTop {
		s.offset.Y -= d.Top
	}
	s.saveAnchor()
	if s.Strategy != nil {
		s.Strategy.ScrollTo(d)
	}
}

// clampOffset constrains a negated offset to [-max, 0].
func clampOffset(v, max float32) float32 {
	if v > 0 {
		return 0
	}
	if v < -max {
		return -max
	}
	return v
}

// Update reconciles the scrollable with fresh measurements. The
// saved offset is clamped into the new scrollable range; in
// right-to-left mode the horizontal position is first recomputed
// from the right-edge anchor.
func (s *Scrollable) Update(viewport, content f32.Point, dpr float32) {
	s.viewport, s.content, s.dpr = viewport, content, dpr
	horizontal, _ := s.Config.Direction.Axes()
	if horizontal && s.Config.RTL {
		left := s.anchor.Reanchor(-s.offset.X, viewport.X, content.X, dpr)
		s.offset.X = -left
	}
	max := s.MaxOffset()
	s.offset.X = clampOffset(s.offset.X, max.X)
	s.offset.Y = clampOffset(s.offset.Y, max.Y)
}

// saveAnchor records the right-edge distance after a position
// change, so that later reanchoring sees the current position.
func (s *Scrollable) saveAnchor() {
	horizontal, _ := s.Config.Direction.Axes()
	if horizontal && s.Config.RTL {
		s.anchor.Save(-s.offset.X, s.viewport.X, s.content.X, s.dpr)
	}
}
