package presenter

import (
	"time"

	"piclabel/ui/model"
)

// StatsView displays classification counters and latencies.
type StatsView interface {
	SetStats(submitted, completed int, last, avg time.Duration)
}

// StatsPresenter forwards stats model values to the view.
type StatsPresenter struct {
	stats *model.StatsModel
	view  StatsView
}

// NewStatsPresenter returns a new StatsPresenter.
func NewStatsPresenter(stats *model.StatsModel, view StatsView) *StatsPresenter {
	return &StatsPresenter{stats: stats, view: view}
}

// Tick pushes the current stats values to the view.
func (p *StatsPresenter) Tick(now time.Time) {
	if p == nil || p.stats == nil || p.view == nil {
		return
	}
	submitted, completed, last, avg := p.stats.Values()
	p.view.SetStats(submitted, completed, last, avg)
}
