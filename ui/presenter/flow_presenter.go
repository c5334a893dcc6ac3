package presenter

import (
	"time"

	"piclabel/domain/flow"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// FlowPresenter queues state transitions from the FSM listener (which runs on
// the FSM goroutine) and reflects the most recent one on the UI tick.
type FlowPresenter struct {
	eng     flow.StateSource
	view    StateView
	latest  flow.State
	pending chan flow.State
}

func NewFlowPresenter(eng flow.StateSource, view StateView) *FlowPresenter {
	return &FlowPresenter{eng: eng, view: view, pending: make(chan flow.State, 16)}
}

// OnState queues a transitioned state from the FSM listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *FlowPresenter) OnState(prev, next flow.State) {
	if p == nil {
		return
	}
	select {
	case p.pending <- next:
	default:
	}
}

// Tick drains queued states and updates the view with the most recent one.
func (p *FlowPresenter) Tick(now time.Time) {
	if p == nil || p.eng == nil || p.view == nil {
		return
	}
	var last flow.State
	seen := false
	for {
		select {
		case s := <-p.pending:
			last = s
			seen = true
		default:
			if seen && last != p.latest {
				p.latest = last
				p.view.SetStateLabel("State: " + last.String())
			}
			return
		}
	}
}
