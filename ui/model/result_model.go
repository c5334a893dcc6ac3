package model

// ResultModel tracks the result panel content and visibility. The zero value
// is hidden and usable. UI-tick-thread only.
type ResultModel struct {
	visible bool
	text    string
}

func NewResultModel() *ResultModel { return &ResultModel{} }

// Show sets the outcome text and marks the panel visible.
func (m *ResultModel) Show(text string) {
	if m == nil {
		return
	}
	m.text = text
	m.visible = true
}

// Hide clears visibility; the text is kept for the next Show to overwrite.
func (m *ResultModel) Hide() {
	if m == nil {
		return
	}
	m.visible = false
}

// Visible reports whether the panel should be shown.
func (m *ResultModel) Visible() bool {
	if m == nil {
		return false
	}
	return m.visible
}

// Text returns the current outcome text.
func (m *ResultModel) Text() string {
	if m == nil {
		return ""
	}
	return m.text
}
