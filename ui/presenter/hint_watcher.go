package presenter

import (
	"log/slog"
	"sync/atomic"
	"time"

	"piclabel/domain/flow"
)

// HintView shows and hides the first-run hint message.
type HintView interface {
	ShowHint(text string)
	HideHint()
}

// HintWatcher shows a hint message shortly after the screen first appears,
// and only while the user has not picked a photo yet. It is driven by the UI
// tick, so the view is only ever touched on the UI thread. The done flag is
// atomic because OnState fires on the FSM goroutine.
type HintWatcher struct {
	FSM    flow.StateSource
	View   HintView
	Logger *slog.Logger
	Text   string

	delay      time.Duration
	appearedAt time.Time
	shown      bool
	done       atomic.Bool
}

// NewHintWatcher constructs a hint watcher; delay counts from Start.
func NewHintWatcher(fsm flow.StateSource, view HintView, logger *slog.Logger, text string, delay time.Duration) *HintWatcher {
	if text == "" {
		text = "Take or choose a photo to classify it."
	}
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	return &HintWatcher{FSM: fsm, View: view, Logger: logger, Text: text, delay: delay}
}

// Start marks the first appearance of the screen.
func (w *HintWatcher) Start(now time.Time) {
	if w == nil {
		return
	}
	w.appearedAt = now
}

// OnState retires the watcher once the user triggers any acquisition; the
// hint never comes back afterwards.
func (w *HintWatcher) OnState(prev, next flow.State) {
	if w == nil {
		return
	}
	if next != flow.StateIdle {
		w.done.Store(true)
	}
}

// Tick shows the hint once the delay elapsed while still idle.
func (w *HintWatcher) Tick(now time.Time) {
	if w == nil || w.View == nil || w.shown || w.done.Load() {
		return
	}
	if w.appearedAt.IsZero() || now.Sub(w.appearedAt) < w.delay {
		return
	}
	if w.FSM != nil && w.FSM.Current() != flow.StateIdle {
		w.done.Store(true)
		return
	}
	w.View.ShowHint(w.Text)
	w.shown = true
	if w.Logger != nil {
		w.Logger.Debug("hint shown")
	}
}
