package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback. The
// zero value is usable (methods are nil-safe).
type Loop struct {
	Flow     *FlowPresenter
	Classify *ClassifyPresenter
	Stats    *StatsPresenter
	Hint     *HintWatcher
	Schedule func()
}

func NewLoop(fl *FlowPresenter, cl *ClassifyPresenter, st *StatsPresenter, hint *HintWatcher, schedule func()) *Loop {
	return &Loop{Flow: fl, Classify: cl, Stats: st, Hint: hint, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Flow != nil {
		l.Flow.Tick(now)
	}
	// Drain completed classifications before stats so counters stay current.
	if l.Classify != nil {
		l.Classify.Tick()
	}
	if l.Stats != nil {
		l.Stats.Tick(now)
	}
	if l.Hint != nil {
		l.Hint.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
