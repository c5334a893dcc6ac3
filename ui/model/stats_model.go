package model

import (
	"time"
)

// StatsModel tracks how many classifications were submitted and completed and
// the observed inference latencies. It is decoupled from the UI; presenters
// should poll Values() and update views. The zero value is ready to use.
type StatsModel struct {
	submitted    int
	completed    int
	lastLatency  time.Duration
	totalLatency time.Duration
}

// NewStatsModel returns a pointer to a ready-to-use StatsModel.
func NewStatsModel() *StatsModel { return &StatsModel{} }

// OnSubmit records one dispatched classification request.
func (m *StatsModel) OnSubmit() {
	if m == nil {
		return
	}
	m.submitted++
}

// OnComplete records one finished classification and its latency.
func (m *StatsModel) OnComplete(latency time.Duration) {
	if m == nil {
		return
	}
	m.completed++
	m.lastLatency = latency
	m.totalLatency += latency
}

// Values returns submission/completion counts and the last and average
// latency. Average is zero until the first completion.
func (m *StatsModel) Values() (submitted, completed int, last, avg time.Duration) {
	if m == nil {
		return 0, 0, 0, 0
	}
	submitted = m.submitted
	completed = m.completed
	last = m.lastLatency
	if m.completed > 0 {
		avg = m.totalLatency / time.Duration(m.completed)
	}
	return
}
