// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"vizui.org/canvas"
	"vizui.org/f32"
	"vizui.org/scroll"
)

type recordingStrategy struct {
	calls []scroll.Offset
}

func (r *recordingStrategy) ScrollTo(d scroll.Offset) {
	r.calls = append(r.calls, d)
}

func newScrollable(cfg Config) (*Scrollable, *recordingStrategy) {
	strategy := &recordingStrategy{}
	s := &Scrollable{Config: cfg, Strategy: strategy}
	s.Update(f32.Pt(400, 300), f32.Pt(1000, 900), 1)
	return s, strategy
}

func TestScrollBy(t *testing.T) {
	s, strategy := newScrollable(Config{Direction: scroll.Horizontal})

	s.ScrollBy(5)
	want := scroll.Offset{Left: 5, HasLeft: true}
	if len(strategy.calls) != 1 || strategy.calls[0] != want {
		t.Fatalf("strategy calls: got %+v, want [%+v]", strategy.calls, want)
	}
	if got := s.Offset(); got.Left != -5 {
		t.Errorf("offset: got %+v, want Left=-5", got)
	}

	// A zero distance is a no-op.
	s.ScrollBy(0)
	if len(strategy.calls) != 1 {
		t.Errorf("zero distance reached the strategy: %+v", strategy.calls)
	}
}

func TestScrollToCurrentPositionIsNoop(t *testing.T) {
	s, strategy := newScrollable(Config{Direction: scroll.Both})

	s.ScrollTo(scroll.Point{Left: canvas.Px(30), Top: canvas.Px(40)})
	if len(strategy.calls) != 1 {
		t.Fatalf("strategy calls: got %d, want 1", len(strategy.calls))
	}

	// Scrolling to where we already are must not call the strategy.
	s.ScrollTo(scroll.Point{Left: canvas.Px(30), Top: canvas.Px(40)})
	if len(strategy.calls) != 1 {
		t.Errorf("redundant scroll reached the strategy: %+v", strategy.calls)
	}
}

func TestScrollToXYFallback(t *testing.T) {
	s, _ := newScrollable(Config{Direction: scroll.Both})

	s.ScrollTo(scroll.Point{X: canvas.Px(30), Y: canvas.Px(40)})
	want := scroll.Offset{Left: -30, Top: -40, HasLeft: true, HasTop: true}
	if got := s.Offset(); got != want {
		t.Errorf("offset: got %+v, want %+v", got, want)
	}
}

func TestScrollClampsToContent(t *testing.T) {
	s, _ := newScrollable(Config{Direction: scroll.Both})

	// Content is 1000x900 in a 400x300 viewport.
	s.ScrollTo(scroll.Point{Left: canvas.Px(5000), Top: canvas.Px(-50)})
	want := scroll.Offset{Left: -600, Top: 0, HasLeft: true, HasTop: true}
	if got := s.Offset(); got != want {
		t.Errorf("offset: got %+v, want %+v", got, want)
	}
}

func TestDisabledIgnoresScrolls(t *testing.T) {
	s, strategy := newScrollable(Config{Direction: scroll.Both, Disabled: true})

	s.ScrollBy(5)
	s.ScrollTo(scroll.Point{Left: canvas.Px(30)})
	if len(strategy.calls) != 0 {
		t.Errorf("disabled scrollable called the strategy: %+v", strategy.calls)
	}
}

func TestDirectionChangeResetsInactiveAxis(t *testing.T) {
	s, strategy := newScrollable(Config{Direction: scroll.Both})

	s.ScrollTo(scroll.Point{Left: canvas.Px(30), Top: canvas.Px(40)})
	strategy.calls = nil

	s.SetOption(SetDirection(scroll.Vertical))

	// The horizontal offset is zeroed with a corrective scroll.
	want := []scroll.Offset{{Left: -30, HasLeft: true}}
	if diff := cmp.Diff(want, strategy.calls); diff != "" {
		t.Errorf("corrective scroll mismatch (-want +got):\n%s", diff)
	}
	if got := s.Offset(); got.Left != 0 || got.Top != -40 {
		t.Errorf("offset: got %+v, want Left=0 Top=-40", got)
	}
}

func TestDirectionChangeWithZeroOffsetIsQuiet(t *testing.T) {
	s, strategy := newScrollable(Config{Direction: scroll.Both})

	s.SetOption(SetDirection(scroll.Horizontal))
	if len(strategy.calls) != 0 {
		t.Errorf("zero offset produced a corrective scroll: %+v", strategy.calls)
	}
}

func TestUpdateClampsSavedOffset(t *testing.T) {
	s, _ := newScrollable(Config{Direction: scroll.Both})
	s.ScrollTo(scroll.Point{Left: canvas.Px(600), Top: canvas.Px(600)})

	// Content shrinks: the saved offset must fold back into range.
	s.Update(f32.Pt(400, 300), f32.Pt(500, 400), 1)
	want := scroll.Offset{Left: -100, Top: -100, HasLeft: true, HasTop: true}
	if got := s.Offset(); got != want {
		t.Errorf("offset after update: got %+v, want %+v", got, want)
	}
}

func TestUpdateRTLReanchors(t *testing.T) {
	s, _ := newScrollable(Config{Direction: scroll.Horizontal, RTL: true})

	// left=100 means 500 from the right edge (content 1000,
	// viewport 400).
	s.ScrollTo(scroll.Point{Left: canvas.Px(100)})

	// The viewport grows by 100: the right-edge distance wins and
	// the left position gives way.
	s.Update(f32.Pt(500, 300), f32.Pt(1000, 900), 1)
	if got := s.Offset(); got.Left != 0 {
		t.Errorf("offset after reanchor: got %+v, want Left=0", got)
	}
}

func TestUpdateRTLClampReset(t *testing.T) {
	s, _ := newScrollable(Config{Direction: scroll.Horizontal, RTL: true})
	s.ScrollTo(scroll.Point{Left: canvas.Px(50)})

	// Growing the viewport beyond the preserved right-edge distance
	// clamps the position to zero instead of going negative.
	s.Update(f32.Pt(600, 300), f32.Pt(1000, 900), 1)
	if got := s.Offset(); got.Left != 0 {
		t.Errorf("offset: got %+v, want Left=0", got)
	}
}

func TestApplyAllDeduplicatesEffects(t *testing.T) {
	cfg := Config{Direction: scroll.Both}
	next, effects := ApplyAll(cfg,
		SetDirection(scroll.Vertical),
		SetDirection(scroll.Both),
		SetDirection(scroll.Horizontal),
	)
	if next.Direction != scroll.Horizontal {
		t.Errorf("direction: got %v, want Horizontal", next.Direction)
	}
	want := []Effect{EffectResetHorizontal, EffectResetVertical}
	if diff := cmp.Diff(want, effects); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}
}

func TestRTLToggleReanchors(t *testing.T) {
	cfg := Config{Direction: scroll.Horizontal}
	_, effects := Apply(cfg, SetRTL(true))
	want := []Effect{EffectReanchor}
	if diff := cmp.Diff(want, effects); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}

	// RTL on a vertical-only scrollable changes nothing horizontal.
	cfg = Config{Direction: scroll.Vertical}
	if _, effects := Apply(cfg, SetRTL(true)); len(effects) != 0 {
		t.Errorf("vertical RTL toggle produced effects: %v", effects)
	}
}
