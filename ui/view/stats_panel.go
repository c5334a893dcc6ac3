package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatsPanel updates classification counters and latency labels.
type StatsPanel interface {
	SetStats(submitted, completed int, last, avg time.Duration)
}

type statsPanel struct {
	countLbl   *LabelWidget
	latencyLbl *LabelWidget
}

// NewStatsPanel creates count and latency labels in a grid layout at
// (row, startCol) and (row, startCol+1).
func NewStatsPanel(row, startCol int) StatsPanel {
	s := &statsPanel{countLbl: Label(Width(16)), latencyLbl: Label(Width(22))}
	Grid(s.countLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.latencyLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.countLbl.Configure(Txt("Photos: 0/0"))
	s.latencyLbl.Configure(Txt("Last: - Avg: -"))
	return s
}

// SetStats updates both labels. Counts read completed/submitted.
func (s *statsPanel) SetStats(submitted, completed int, last, avg time.Duration) {
	if s == nil {
		return
	}
	if s.countLbl != nil {
		s.countLbl.Configure(Txt(fmt.Sprintf("Photos: %d/%d", completed, submitted)))
	}
	if s.latencyLbl != nil {
		if completed == 0 {
			s.latencyLbl.Configure(Txt("Last: - Avg: -"))
			return
		}
		s.latencyLbl.Configure(Txt(fmt.Sprintf("Last: %dms Avg: %dms",
			last.Milliseconds(), avg.Milliseconds())))
	}
}
