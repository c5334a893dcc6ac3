package presenter

import (
	"log/slog"

	"piclabel/domain/acquire"
	"piclabel/domain/flow"
	"piclabel/ui/model"
)

// AcquireView covers the UI surface touched while acquiring a photo.
type AcquireView interface {
	ShowPhoto(snap *acquire.PhotoSnapshot)
	HideResult()
	HideHint()
}

// Submitter forwards an acquired photo to classification.
type Submitter interface{ Submit(*acquire.PhotoSnapshot) }

// AcquirePresenter owns presentation logic for the take-photo and
// choose-photo actions: it hides any previous result while acquisition runs,
// previews the acquired image and submits it for classification.
type AcquirePresenter struct {
	files  acquire.Loader
	screen acquire.Grabber
	flow   flow.AcquireOps
	view   AcquireView
	photos *model.PhotoModel
	result *model.ResultModel
	submit Submitter
	logger *slog.Logger
}

func NewAcquirePresenter(files acquire.Loader, screen acquire.Grabber, fl flow.AcquireOps,
	view AcquireView, photos *model.PhotoModel, result *model.ResultModel,
	submit Submitter, logger *slog.Logger,
) *AcquirePresenter {
	return &AcquirePresenter{
		files:  files,
		screen: screen,
		flow:   fl,
		view:   view,
		photos: photos,
		result: result,
		submit: submit,
		logger: logger,
	}
}

// ChoosePhoto handles a picked file path. An empty path means the picker was
// cancelled and silently no-ops, per platform convention.
func (p *AcquirePresenter) ChoosePhoto(path string) {
	if p == nil || p.view == nil {
		return
	}
	if path == "" {
		return
	}
	p.begin()
	if p.files == nil {
		p.abort("no file source", nil)
		return
	}
	snap, err := p.files.Load(path)
	if err != nil {
		p.abort("photo load failed", err)
		return
	}
	p.accept(snap)
}

// TakePhoto captures from the screen source. No-op when capture is
// unavailable (the button is disabled in that case anyway).
func (p *AcquirePresenter) TakePhoto() {
	if p == nil || p.view == nil {
		return
	}
	if p.screen == nil || !p.screen.Available() {
		return
	}
	p.begin()
	snap, err := p.screen.Grab()
	if err != nil {
		p.abort("capture failed", err)
		return
	}
	p.accept(snap)
}

// begin hides stale UI state while the acquisition flow is open.
func (p *AcquirePresenter) begin() {
	if p.flow != nil {
		p.flow.EventAcquire()
	}
	if p.result != nil {
		p.result.Hide()
	}
	p.view.HideResult()
	p.view.HideHint()
}

// abort logs and returns without UI feedback; acquisition failures are
// silent by contract.
func (p *AcquirePresenter) abort(msg string, err error) {
	if p.logger != nil {
		p.logger.Error(msg, "error", err)
	}
	if p.flow != nil {
		p.flow.EventAcquireFailed()
	}
}

func (p *AcquirePresenter) accept(snap *acquire.PhotoSnapshot) {
	if snap == nil || snap.Image == nil {
		p.abort("empty snapshot", nil)
		return
	}
	if p.photos != nil {
		p.photos.Set(snap)
	}
	p.view.ShowPhoto(snap)
	if p.flow != nil {
		p.flow.EventPhotoReady()
	}
	if p.submit != nil {
		p.submit.Submit(snap)
	}
	if p.logger != nil {
		p.logger.Info("photo acquired", "request_id", snap.ID, "source", snap.Source)
	}
}
