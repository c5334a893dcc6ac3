package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"piclabel/config"
	"piclabel/domain/classify"
	"piclabel/ui/presenter"
	"piclabel/ui/theme"
)

const tick = 100 * time.Millisecond

type app struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	width   int
	height  int
	afterID string

	container *AppContainer
	loop      *presenter.Loop
}

// NewApp prepares the main window and the dependency container. The pipeline
// is constructed by the caller so a model load failure never reaches the UI.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string,
	logger *slog.Logger, pipeline classify.Classifier,
) *app {
	a := &app{cfg: cfg, cfgPath: cfgPath, logger: logger, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))

	a.container = BuildContainer(cfg, logger, cfgPath, pipeline)
	return a
}

// Start builds the widget tree, kicks off the update loop and blocks until
// the window closes.
func (a *app) Start() {
	theme.InitStyles()

	c := a.container
	c.RootView.Build(
		func() { c.AcquirePresenter.TakePhoto() },
		func() { c.AcquirePresenter.ChoosePhoto(a.pickFile()) },
		a.exitHandler,
		c.Screen.Available(),
	)

	a.loop = presenter.NewLoop(c.FlowPresenter, c.ClassifyPresenter, c.StatsPresenter, c.Hint, a.scheduleUpdate)
	c.Hint.Start(time.Now())
	a.scheduleUpdate()

	App.Wait()
}

// pickFile opens the native file-open dialog and returns the chosen path.
// Cancellation returns "" and the caller no-ops.
func (a *app) pickFile() string {
	paths := GetOpenFile(Title("Choose Photo"))
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.container != nil && a.container.Flow != nil {
		a.container.Flow.EventHalt()
		a.container.Flow.Close()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}
