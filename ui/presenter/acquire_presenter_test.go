package presenter

import (
	"errors"
	"image"
	"testing"

	"piclabel/domain/acquire"
	"piclabel/ui/model"
)

type mockLoader struct {
	snap *acquire.PhotoSnapshot
	err  error
	got  []string
}

func (m *mockLoader) Load(path string) (*acquire.PhotoSnapshot, error) {
	m.got = append(m.got, path)
	return m.snap, m.err
}

type mockGrabber struct {
	snap      *acquire.PhotoSnapshot
	err       error
	available bool
	grabs     int
}

func (m *mockGrabber) Grab() (*acquire.PhotoSnapshot, error) {
	m.grabs++
	return m.snap, m.err
}
func (m *mockGrabber) Available() bool { return m.available }

type mockAcquireView struct {
	photos      int
	hideResult  int
	hideHint    int
	lastPhotoID string
}

func (v *mockAcquireView) ShowPhoto(snap *acquire.PhotoSnapshot) {
	v.photos++
	if snap != nil {
		v.lastPhotoID = snap.ID
	}
}
func (v *mockAcquireView) HideResult() { v.hideResult++ }
func (v *mockAcquireView) HideHint()   { v.hideHint++ }

type mockAcquireFlow struct {
	acquires, ready, failed int
}

func (f *mockAcquireFlow) EventAcquire()       { f.acquires++ }
func (f *mockAcquireFlow) EventPhotoReady()    { f.ready++ }
func (f *mockAcquireFlow) EventAcquireFailed() { f.failed++ }

type mockSubmitter struct{ snaps []*acquire.PhotoSnapshot }

func (s *mockSubmitter) Submit(snap *acquire.PhotoSnapshot) { s.snaps = append(s.snaps, snap) }

func testSnapshot(id string) *acquire.PhotoSnapshot {
	return &acquire.PhotoSnapshot{ID: id, Image: image.NewRGBA(image.Rect(0, 0, 2, 2)), Source: "file"}
}

func TestAcquirePresenter_ChoosePhotoHappyPath(t *testing.T) {
	loader := &mockLoader{snap: testSnapshot("req-42")}
	view := &mockAcquireView{}
	fl := &mockAcquireFlow{}
	sub := &mockSubmitter{}
	photos := model.NewPhotoModel()
	result := model.NewResultModel()
	result.Show("stale text")
	p := NewAcquirePresenter(loader, &mockGrabber{}, fl, view, photos, result, sub, discardLogger)

	p.ChoosePhoto("/photos/cat.jpg")

	if view.hideResult != 1 || view.hideHint != 1 {
		t.Fatalf("result/hint must be hidden during acquisition: hideResult=%d hideHint=%d", view.hideResult, view.hideHint)
	}
	if result.Visible() {
		t.Fatal("result model should be hidden until classification completes")
	}
	if view.photos != 1 || view.lastPhotoID != "req-42" {
		t.Fatalf("photo not previewed: photos=%d id=%q", view.photos, view.lastPhotoID)
	}
	if fl.acquires != 1 || fl.ready != 1 || fl.failed != 0 {
		t.Fatalf("flow events wrong: %+v", fl)
	}
	if len(sub.snaps) != 1 || sub.snaps[0].ID != "req-42" {
		t.Fatalf("snapshot not submitted: %v", sub.snaps)
	}
	if photos.LastRequestID() != "req-42" {
		t.Fatalf("photo model not updated, got %q", photos.LastRequestID())
	}
}

func TestAcquirePresenter_CancelledPickerIsSilentNoop(t *testing.T) {
	loader := &mockLoader{snap: testSnapshot("req-1")}
	view := &mockAcquireView{}
	fl := &mockAcquireFlow{}
	sub := &mockSubmitter{}
	p := NewAcquirePresenter(loader, &mockGrabber{}, fl, view, model.NewPhotoModel(), model.NewResultModel(), sub, discardLogger)

	p.ChoosePhoto("")

	if len(loader.got) != 0 || view.hideResult != 0 || fl.acquires != 0 || len(sub.snaps) != 0 {
		t.Fatalf("cancellation must not touch anything: loads=%d hides=%d acquires=%d submits=%d",
			len(loader.got), view.hideResult, fl.acquires, len(sub.snaps))
	}
}

func TestAcquirePresenter_LoadFailureIsSilentToUI(t *testing.T) {
	loader := &mockLoader{err: errors.New("decode photo: unknown format")}
	view := &mockAcquireView{}
	fl := &mockAcquireFlow{}
	sub := &mockSubmitter{}
	p := NewAcquirePresenter(loader, &mockGrabber{}, fl, view, model.NewPhotoModel(), model.NewResultModel(), sub, discardLogger)

	p.ChoosePhoto("/photos/broken.bin")

	if view.photos != 0 || len(sub.snaps) != 0 {
		t.Fatalf("failed load must not preview or submit: photos=%d submits=%d", view.photos, len(sub.snaps))
	}
	if fl.failed != 1 {
		t.Fatalf("expected one acquire-failed event, got %d", fl.failed)
	}
}

func TestAcquirePresenter_TakePhotoUnavailableBackend(t *testing.T) {
	view := &mockAcquireView{}
	fl := &mockAcquireFlow{}
	grab := &mockGrabber{available: false, snap: testSnapshot("req-9")}
	p := NewAcquirePresenter(&mockLoader{}, grab, fl, view, model.NewPhotoModel(), model.NewResultModel(), &mockSubmitter{}, discardLogger)

	p.TakePhoto()

	if grab.grabs != 0 || fl.acquires != 0 {
		t.Fatalf("unavailable backend must be a no-op: grabs=%d acquires=%d", grab.grabs, fl.acquires)
	}
}

func TestAcquirePresenter_TakePhotoHappyPath(t *testing.T) {
	view := &mockAcquireView{}
	fl := &mockAcquireFlow{}
	sub := &mockSubmitter{}
	grab := &mockGrabber{available: true, snap: testSnapshot("req-7")}
	p := NewAcquirePresenter(&mockLoader{}, grab, fl, view, model.NewPhotoModel(), model.NewResultModel(), sub, discardLogger)

	p.TakePhoto()

	if grab.grabs != 1 || view.photos != 1 || len(sub.snaps) != 1 {
		t.Fatalf("take photo failed: grabs=%d photos=%d submits=%d", grab.grabs, view.photos, len(sub.snaps))
	}
}
