package flow

import (
	"log/slog"
	"runtime/debug"
)

// FSM manages the pick-and-classify state transitions. Events are serialized
// through a buffered channel processed by a single loop goroutine; listeners
// run on that goroutine.
//
// Overlapping work is permitted: a new acquisition while a classification is
// in flight moves straight back to acquiring, and the stale completion's
// outcome event is still accepted (last one wins, as the display does).
type FSM struct {
	state     State
	logger    *slog.Logger
	closed    bool
	events    chan interface{}
	listeners []StateListener
}

// NewFSM constructs the machine in StateIdle and starts the event loop.
func NewFSM(logger *slog.Logger) *FSM {
	f := &FSM{state: StateIdle, logger: logger, events: make(chan interface{}, 64)}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("fsm panic", "error", r, "stack", stack)
				}
			}
		}()
		f.loop()
	}()
	return f
}

// events
type (
	evtAcquire       struct{}
	evtPhotoReady    struct{}
	evtAcquireFailed struct{}
	evtOutcome       struct{ ok bool }
	evtHalt          struct{}
	evtAddListener   struct{ l StateListener }
)

func (f *FSM) loop() {
	for ev := range f.events {
		switch e := ev.(type) {
		case evtAddListener:
			f.listeners = append(f.listeners, e.l)
		case evtAcquire:
			if f.state != StateHalt {
				f.transition(StateAcquiring)
			}
		case evtPhotoReady:
			if f.state == StateAcquiring {
				f.transition(StateClassifying)
			}
		case evtAcquireFailed:
			// Silent abort: the picker closed or the image was unreadable.
			if f.state == StateAcquiring {
				f.transition(StateIdle)
			}
		case evtOutcome:
			if f.state == StateClassifying {
				if e.ok {
					f.transition(StateDone)
				} else {
					f.transition(StateFailed)
				}
			}
		case evtHalt:
			f.transition(StateHalt)
		}
	}
	f.closed = true
}

func (f *FSM) transition(next State) {
	prev := f.state
	if prev == next {
		return
	}
	f.state = next
	if f.logger != nil {
		f.logger.Debug("flow state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

// Public API implements contracts
func (f *FSM) AddListener(l StateListener) { f.events <- evtAddListener{l: l} }
func (f *FSM) Current() State              { return f.state }
func (f *FSM) EventAcquire()               { f.events <- evtAcquire{} }
func (f *FSM) EventPhotoReady()            { f.events <- evtPhotoReady{} }
func (f *FSM) EventAcquireFailed()         { f.events <- evtAcquireFailed{} }
func (f *FSM) EventOutcome(ok bool)        { f.events <- evtOutcome{ok: ok} }
func (f *FSM) EventHalt()                  { f.events <- evtHalt{} }

func (f *FSM) Close() {
	if f.closed {
		return
	}
	close(f.events)
}

// Ensure contract satisfaction
var _ FSMContract = (*FSM)(nil)
