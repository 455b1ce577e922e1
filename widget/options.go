// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/exp/slices"

	"vizui.org/scroll"
)

// Option is a single configuration change.
type Option interface {
	apply(Config) Config
}

// SetDirection changes the scroll direction.
type SetDirection scroll.Direction

// SetRTL toggles right-to-left mode.
type SetRTL bool

// SetDisabled toggles whether scroll requests are honored.
type SetDisabled bool

func (o SetDirection) apply(cfg Config) Config {
	cfg.Direction = scroll.Direction(o)
	return cfg
}

func (o SetRTL) apply(cfg Config) Config {
	cfg.RTL = bool(o)
	return cfg
}

func (o SetDisabled) apply(cfg Config) Config {
	cfg.Disabled = bool(o)
	return cfg
}

// Effect is a deferred side effect produced by an option change.
type Effect uint8

const (
	// EffectResetHorizontal zeroes the horizontal offset with a
	// corrective scroll. Issued when the horizontal axis leaves the
	// scroll direction, so no stale offset survives on an axis that
	// is no longer scrollable.
	EffectResetHorizontal Effect = iota
	// EffectResetVertical is EffectResetHorizontal for the vertical
	// axis.
	EffectResetVertical
	// EffectReanchor re-saves the right-to-left anchor from the
	// current position.
	EffectReanchor
)

func (e Effect) String() string {
	switch e {
	case EffectResetHorizontal:
		return "ResetHorizontal"
	case EffectResetVertical:
		return "ResetVertical"
	case EffectReanchor:
		return "Reanchor"
	default:
		panic("invalid Effect")
	}
}

// Apply reduces an option change to a new configuration and the side
// effects the owning widget must run. Apply is pure; it never touches
// widget state.
func Apply(cfg Config, opt Option) (Config, []Effect) {
	next := opt.apply(cfg)
	var effects []Effect
	if next.Direction != cfg.Direction {
		oldH, oldV := cfg.Direction.Axes()
		newH, newV := next.Direction.Axes()
		if oldH && !newH {
			effects = append(effects, EffectResetHorizontal)
		}
		if oldV && !newV {
			effects = append(effects, EffectResetVertical)
		}
	}
	if next.RTL != cfg.RTL {
		if horizontal, _ := next.Direction.Axes(); horizontal && next.RTL {
			effects = append(effects, EffectReanchor)
		}
	}
	return next, effects
}

// ApplyAll reduces a batch of option changes in order, deduplicating
// the collected effects.
func ApplyAll(cfg Config, opts ...Option) (Config, []Effect) {
	var all []Effect
	for _, opt := range opts {
		var effects []Effect
		cfg, effects = Apply(cfg, opt)
		for _, e := range effects {
			if !slices.Contains(all, e) {
				all = append(all, e)
			}
		}
	}
	return cfg, all
}

// SetOption applies an option change to the scrollable and runs the
// resulting effects.
func (s *Scrollable) SetOption(opt Option) {
	next, effects := Apply(s.Config, opt)
	s.Config = next
	s.run(effects)
}

// SetOptions applies a batch of option changes.
func (s *Scrollable) SetOptions(opts ...Option) {
	next, effects := ApplyAll(s.Config, opts...)
	s.Config = next
	s.run(effects)
}

func (s *Scrollable) run(effects []Effect) {
	for _, e := range effects {
		switch e {
		case EffectResetHorizontal:
			s.resetAxis(true)
		case EffectResetVertical:
			s.resetAxis(false)
		case EffectReanchor:
			s.saveAnchor()
		default:
			panic("invalid Effect")
		}
	}
}

// resetAxis issues a corrective scroll zeroing the offset on one
// axis. It bypasses the direction mask: the axis being reset has
// just left the scroll direction.
func (s *Scrollable) resetAxis(horizontal bool) {
	var d scroll.Offset
	switch {
	case horizontal && s.offset.X != 0:
		d = scroll.Offset{Left: s.offset.X, HasLeft: true}
		s.offset.X = 0
	case !horizontal && s.offset.Y != 0:
		d = scroll.Offset{Top: s.offset.Y, HasTop: true}
		s.offset.Y = 0
	default:
		return
	}
	if s.Strategy != nil {
		s.Strategy.ScrollTo(d)
	}
}
