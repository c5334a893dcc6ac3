package view

import (
	"log/slog"
	"time"

	"piclabel/config"
	"piclabel/domain/acquire"
	"piclabel/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats    StatsPanel
	Settings SettingsPanel
	Preview  PhotoPreview

	// Widgets
	StateLabel  *LabelWidget
	ResultLabel *LabelWidget
	HintLabel   *LabelWidget
	TakeBtn     *ButtonWidget
	ChooseBtn   *ButtonWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	ShowOutcome(text string)
	HideResult()
	ShowHint(text string)
	HideHint()
	ShowPhoto(snap *acquire.PhotoSnapshot)
	SetStats(submitted, completed int, last, avg time.Duration)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. cameraAvailable disables the take-photo button
// when the platform has no capture backend. Handlers are invoked on user actions.
func (rv *RootView) Build(onTakePhoto, onChoosePhoto, onExit func(), cameraAvailable bool) {
	if rv == nil {
		return
	}
	// Row 0: stats, state label, buttons frame
	rv.Stats = NewStatsPanel(0, 0)
	rv.StateLabel = Label(Txt("State: idle"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.TakeBtn = Button(Txt("Take Photo"), Style(theme.StylePrimaryButton), Command(onTakePhoto))
	Grid(rv.TakeBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	if !cameraAvailable {
		rv.TakeBtn.Configure(State("disabled"))
	}
	rv.ChooseBtn = Button(Txt("Choose Photo"), Style(theme.StylePrimaryButton), Command(onChoosePhoto))
	Grid(rv.ChooseBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	themeBtn := Button(Txt("Toggle Theme"), Command(func() { theme.ToggleDark() }))
	Grid(themeBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Style(theme.StyleDangerButton), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: hint + result labels. Both start blank; "hidden" means empty
	// text so the grid never reflows when they appear.
	rv.HintLabel = Label(Txt(""), Style(theme.StyleHintLabel))
	Grid(rv.HintLabel, Row(1), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	rv.ResultLabel = Label(Txt(""), Style(theme.StyleResultLabel))
	Grid(rv.ResultLabel, Row(1), Column(2), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.2m"))

	// Settings rows
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.Settings.Build(2)

	// Photo preview placement
	rv.Preview = NewPhotoPreview(endRow)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// ShowOutcome reveals the result panel with the outcome text.
func (rv *RootView) ShowOutcome(text string) {
	if rv != nil && rv.ResultLabel != nil {
		rv.ResultLabel.Configure(Txt(text))
	}
}

// HideResult blanks the result panel while acquisition is open.
func (rv *RootView) HideResult() {
	if rv != nil && rv.ResultLabel != nil {
		rv.ResultLabel.Configure(Txt(""))
	}
}

// ShowHint displays the first-run hint message.
func (rv *RootView) ShowHint(text string) {
	if rv != nil && rv.HintLabel != nil {
		rv.HintLabel.Configure(Txt(text))
	}
}

// HideHint blanks the hint message.
func (rv *RootView) HideHint() {
	if rv != nil && rv.HintLabel != nil {
		rv.HintLabel.Configure(Txt(""))
	}
}

// ShowPhoto proxies to the underlying preview view.
func (rv *RootView) ShowPhoto(snap *acquire.PhotoSnapshot) {
	if rv != nil && rv.Preview != nil && snap != nil {
		rv.Preview.UpdatePhoto(snap.Image)
	}
}

// SetStats proxies to the stats panel.
func (rv *RootView) SetStats(submitted, completed int, last, avg time.Duration) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetStats(submitted, completed, last, avg)
	}
}

var _ UI = (*RootView)(nil)
