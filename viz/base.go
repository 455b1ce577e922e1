// SPDX-License-Identifier: Unlicense OR MIT

/*
Package viz provides the common base of SVG visualization widgets.

Base owns canvas resolution and redraw scheduling. A concrete
visualization embeds or holds a Base, reacts to its redraws, and
draws into the document the Base maintains. Host-framework concerns
such as component registration stay with the host.
*/
package viz

import (
	"github.com/google/uuid"

	"vizui.org/canvas"
	"vizui.org/f32"
	"vizui.org/svg"
)

// Scheduler defers work until after the current layout pass. A nil
// Scheduler runs the work synchronously.
type Scheduler func(func())

// Config is the visualization configuration.
type Config struct {
	Size     canvas.Size
	Margin   canvas.Margin
	Disabled bool
}

// Base is the core of an SVG visualization widget.
type Base struct {
	Config        Config
	DefaultCanvas canvas.Canvas
	Schedule      Scheduler

	// OnRedraw receives the document skeleton whenever the resolved
	// canvas changes. A nil OnRedraw disables redraws.
	OnRedraw func(*svg.Document)

	measured canvas.Measured
	canvas   canvas.Canvas
	clipID   string
}

// New returns a Base with a fresh per-instance definition namespace.
func New(cfg Config, def canvas.Canvas) *Base {
	b := &Base{
		Config:        cfg,
		DefaultCanvas: def,
		clipID:        "vizui-clip-" + uuid.NewString(),
	}
	b.canvas = b.resolve()
	return b
}

// Canvas returns the current resolved canvas.
func (b *Base) Canvas() canvas.Canvas {
	return b.canvas
}

// ClipID returns the per-instance clip definition id.
func (b *Base) ClipID() string {
	return b.clipID
}

// Resize records a fresh container measurement, re-resolves the
// canvas and schedules a redraw if the canvas changed.
func (b *Base) Resize(m canvas.Measured) {
	b.measured = m
	b.refresh()
}

// SetOption applies an option change. Changes that affect the
// resolved canvas schedule a redraw.
func (b *Base) SetOption(opt Option) {
	next, dirty := Apply(b.Config, opt)
	b.Config = next
	if dirty {
		b.refresh()
	}
}

func (b *Base) resolve() canvas.Canvas {
	return canvas.Resolve(b.Config.Size, b.measured, b.Config.Margin, b.DefaultCanvas)
}

func (b *Base) refresh() {
	c := b.resolve()
	if c == b.canvas {
		return
	}
	b.canvas = c
	b.redraw()
}

func (b *Base) redraw() {
	if b.Config.Disabled || b.OnRedraw == nil {
		return
	}
	draw := func() { b.OnRedraw(b.Document()) }
	if b.Schedule != nil {
		b.Schedule(draw)
		return
	}
	draw()
}

// Document builds the SVG skeleton for the current canvas, with the
// drawing group clipped to the drawable area.
func (b *Base) Document() *svg.Document {
	d := svg.NewDocument(b.canvas)
	d.ClipRect(b.clipID, f32.Rectangle{Max: b.canvas.Drawable()})
	d.ClipGroup(b.clipID)
	return d
}
