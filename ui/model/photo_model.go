package model

import (
	"piclabel/domain/acquire"
)

// PhotoModel holds the currently displayed photo. At most one snapshot is
// live at a time; a new acquisition replaces the previous one.
// No synchronization needed: updates occur on the UI thread tick.
type PhotoModel struct {
	current *acquire.PhotoSnapshot
}

func NewPhotoModel() *PhotoModel { return &PhotoModel{} }

// Set replaces the live snapshot. Nil clears it.
func (m *PhotoModel) Set(snap *acquire.PhotoSnapshot) {
	if m == nil {
		return
	}
	m.current = snap
}

// Current returns the live snapshot (may be nil).
func (m *PhotoModel) Current() *acquire.PhotoSnapshot {
	if m == nil {
		return nil
	}
	return m.current
}

// LastRequestID returns the id of the live snapshot, or "" when none.
func (m *PhotoModel) LastRequestID() string {
	if m == nil || m.current == nil {
		return ""
	}
	return m.current.ID
}
