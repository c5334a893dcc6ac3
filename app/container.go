package app

import (
	"log/slog"
	"time"

	"piclabel/config"
	"piclabel/domain/acquire"
	"piclabel/domain/classify"
	"piclabel/domain/flow"
	"piclabel/ui/model"
	"piclabel/ui/presenter"
	"piclabel/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	// Models
	Photos *model.PhotoModel
	Result *model.ResultModel
	Stats  *model.StatsModel

	// Domain
	Files    *acquire.FileSource
	Screen   *acquire.ScreenSource
	Pipeline classify.Classifier
	Flow     flow.FSMContract

	// View
	RootView *view.RootView
	UI       view.UI

	// Presenters
	FlowPresenter     *presenter.FlowPresenter
	ClassifyPresenter *presenter.ClassifyPresenter
	AcquirePresenter  *presenter.AcquirePresenter
	StatsPresenter    *presenter.StatsPresenter
	Hint              *presenter.HintWatcher
	Loop              *presenter.Loop
}

// BuildContainer constructs all components. The classifier pipeline is built
// by the caller beforehand (startup fail-fast); no widget is created here.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string, pipeline classify.Classifier) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Pipeline: pipeline}
	c.Photos = model.NewPhotoModel()
	c.Result = model.NewResultModel()
	c.Stats = model.NewStatsModel()

	c.Files = acquire.NewFileSource(logger)
	c.Screen = acquire.NewScreenSource(logger, cfg.ForegroundWindow)
	c.Flow = flow.NewFSM(logger)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	c.FlowPresenter = presenter.NewFlowPresenter(c.Flow, c.UI)
	c.ClassifyPresenter = presenter.NewClassifyPresenter(
		c.Pipeline, c.UI, c.Flow, c.Result, c.Stats,
		func() float64 { return cfg.Threshold },
		func() int { return cfg.TopK },
		logger,
	)
	c.AcquirePresenter = presenter.NewAcquirePresenter(
		c.Files, c.Screen, c.Flow, c.UI, c.Photos, c.Result, c.ClassifyPresenter, logger)
	c.StatsPresenter = presenter.NewStatsPresenter(c.Stats, c.UI)
	c.Hint = presenter.NewHintWatcher(c.Flow, c.UI, logger, "",
		time.Duration(cfg.HintDelayMs)*time.Millisecond)

	c.Flow.AddListener(c.FlowPresenter.OnState)
	c.Flow.AddListener(c.Hint.OnState)
	return c
}
