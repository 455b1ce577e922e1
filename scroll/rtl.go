// SPDX-License-Identifier: Unlicense OR MIT

package scroll

// RightAnchor keeps the horizontal scroll position stable in
// right-to-left mode by tracking the distance from the right edge
// instead of the raw left position. The distance survives viewport
// resizes and device pixel ratio changes, both of which shift the
// left position under a right-aligned layout.
//
// RightAnchor works in positive scrollLeft space, not in the negated
// Offset space; the owning widget converts. The zero value anchors
// to the right edge, where right-to-left content starts.
type RightAnchor struct {
	scrollRight float32
	clientWidth float32
	dpr         float32
}

// Save records the current position as a right-edge distance.
func (a *RightAnchor) Save(left, clientWidth, scrollWidth, dpr float32) {
	a.scrollRight = scrollWidth - clientWidth - left
	a.clientWidth = clientWidth
	a.dpr = dpr
}

// ScrollRight returns the tracked distance from the right edge.
func (a *RightAnchor) ScrollRight() float32 {
	return a.scrollRight
}

// Reanchor recomputes the left position after a layout change. It
// returns left unchanged unless the client width or the device pixel
// ratio moved. A recomputed position at or below zero clamps to zero
// and resets the anchor to the maximum left position,
// scrollWidth - clientWidth.
func (a *RightAnchor) Reanchor(left, clientWidth, scrollWidth, dpr float32) float32 {
	if clientWidth == a.clientWidth && dpr == a.dpr {
		return left
	}
	a.clientWidth = clientWidth
	a.dpr = dpr
	max := scrollWidth - clientWidth
	if max < 0 {
		max = 0
	}
	left = max - a.scrollRight
	if left <= 0 {
		left = 0
		a.scrollRight = max
	}
	return left
}
