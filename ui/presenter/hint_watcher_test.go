package presenter

import (
	"testing"
	"time"

	"piclabel/domain/flow"
)

type stubStateSource struct{ state flow.State }

func (s *stubStateSource) Current() flow.State { return s.state }

type mockHintView struct {
	shown  []string
	hidden int
}

func (v *mockHintView) ShowHint(text string) { v.shown = append(v.shown, text) }
func (v *mockHintView) HideHint()            { v.hidden++ }

func TestHintWatcher_ShowsAfterDelayWhileIdle(t *testing.T) {
	src := &stubStateSource{state: flow.StateIdle}
	view := &mockHintView{}
	w := NewHintWatcher(src, view, discardLogger, "hint!", 100*time.Millisecond)

	base := time.Unix(0, 0)
	w.Start(base)

	w.Tick(base.Add(50 * time.Millisecond))
	if len(view.shown) != 0 {
		t.Fatal("hint shown before delay elapsed")
	}
	w.Tick(base.Add(150 * time.Millisecond))
	if len(view.shown) != 1 || view.shown[0] != "hint!" {
		t.Fatalf("expected hint after delay, got %v", view.shown)
	}
	// Only once.
	w.Tick(base.Add(300 * time.Millisecond))
	if len(view.shown) != 1 {
		t.Fatalf("hint must show only once, got %v", view.shown)
	}
}

func TestHintWatcher_RetiredOncePhotoPicked(t *testing.T) {
	src := &stubStateSource{state: flow.StateIdle}
	view := &mockHintView{}
	w := NewHintWatcher(src, view, discardLogger, "", 100*time.Millisecond)

	base := time.Unix(0, 0)
	w.Start(base)
	w.OnState(flow.StateIdle, flow.StateAcquiring)

	w.Tick(base.Add(time.Second))
	if len(view.shown) != 0 {
		t.Fatalf("hint must never appear after an acquisition, got %v", view.shown)
	}
}

func TestHintWatcher_SkipsWhenNotIdleAtDeadline(t *testing.T) {
	src := &stubStateSource{state: flow.StateClassifying}
	view := &mockHintView{}
	w := NewHintWatcher(src, view, discardLogger, "", 100*time.Millisecond)

	base := time.Unix(0, 0)
	w.Start(base)
	w.Tick(base.Add(time.Second))
	if len(view.shown) != 0 {
		t.Fatalf("hint must not appear while busy, got %v", view.shown)
	}
	// Retired for good; returning to idle does not resurrect it.
	src.state = flow.StateIdle
	w.Tick(base.Add(2 * time.Second))
	if len(view.shown) != 0 {
		t.Fatalf("hint resurrected after retirement: %v", view.shown)
	}
}
