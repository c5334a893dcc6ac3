package flow

// State enumerates the finite states of the pick-and-classify cycle.
type State int

const (
	StateIdle State = iota
	StateAcquiring
	StateClassifying
	StateDone
	StateFailed
	StateHalt
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAcquiring:
		return "acquiring"
	case StateClassifying:
		return "classifying"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	case StateHalt:
		return "halt"
	default:
		return "unknown"
	}
}

// StateListener is called on each successful state transition.
type StateListener func(prev, next State)

// Interface slices for consumers (presenters).
type StateSource interface{ Current() State }

type AcquireOps interface {
	EventAcquire()
	EventPhotoReady()
	EventAcquireFailed()
}

type OutcomeOps interface{ EventOutcome(ok bool) }

type Lifecycle interface {
	EventHalt()
	Close()
}

// FSMContract aggregate for DI.
type FSMContract interface {
	StateSource
	AcquireOps
	OutcomeOps
	Lifecycle
	AddListener(StateListener)
}
