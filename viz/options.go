// SPDX-License-Identifier: Unlicense OR MIT

package viz

import "vizui.org/canvas"

// Option is a single configuration change.
type Option interface {
	apply(Config) Config
	// dirty reports whether the change can move the resolved canvas.
	dirty() bool
}

// SetSize replaces the size option.
type SetSize canvas.Size

// SetMargin replaces the margin option.
type SetMargin canvas.Margin

// SetDisabled toggles redraws.
type SetDisabled bool

func (o SetSize) apply(cfg Config) Config {
	cfg.Size = canvas.Size(o)
	return cfg
}

func (o SetSize) dirty() bool { return true }

func (o SetMargin) apply(cfg Config) Config {
	cfg.Margin = canvas.Margin(o)
	return cfg
}

func (o SetMargin) dirty() bool { return true }

func (o SetDisabled) apply(cfg Config) Config {
	cfg.Disabled = bool(o)
	return cfg
}

func (o SetDisabled) dirty() bool { return false }

// Apply reduces an option change to a new configuration and reports
// whether the resolved canvas must be recomputed. Apply is pure.
func Apply(cfg Config, opt Option) (Config, bool) {
	return opt.apply(cfg), opt.dirty()
}
