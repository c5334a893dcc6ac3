package view

import (
	"image"

	"piclabel/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PhotoPreview abstracts the picked-photo preview. It owns one LabelWidget
// and provides methods to update or reset it.
type PhotoPreview interface {
	UpdatePhoto(img image.Image)
	Reset()
}

type photoPreview struct {
	photoLabel *LabelWidget
	prevPhoto  *Img // last Tk photo image instance, deleted before replacement
}

const (
	// Max preview dimensions; scaling is proportional.
	maxPreviewW = 480
	maxPreviewH = 320
)

// NewPhotoPreview creates the preview label, grids it and returns the view.
func NewPhotoPreview(row int) PhotoPreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, 240, 160))
	pngBytes := images.EncodePNG(placeholder)
	photo := NewPhoto(Data(pngBytes))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(lbl, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &photoPreview{photoLabel: lbl, prevPhoto: photo}
}

func (v *photoPreview) UpdatePhoto(img image.Image) {
	if v == nil || v.photoLabel == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, maxPreviewW, maxPreviewH)
	pngBytes := images.EncodePNG(scaled)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.photoLabel.Configure(Image(newPhoto))
}

func (v *photoPreview) Reset() {
	if v == nil || v.photoLabel == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 240, 160))
	pngBytes := images.EncodePNG(placeholder)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.photoLabel.Configure(Image(v.prevPhoto))
}
