package classify

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// CenterCropScale crops img to a square about its center and scales it to
// edge x edge, the fixed preprocessing policy the model expects.
func CenterCropScale(img image.Image, edge int) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("preprocess: nil image")
	}
	if edge <= 0 {
		return nil, fmt.Errorf("preprocess: invalid edge %d", edge)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("preprocess: empty image %v", b)
	}
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	cropped := imaging.CropCenter(img, side, side)
	return resize.Resize(uint(edge), uint(edge), cropped, resize.Lanczos3), nil
}

// TensorData converts img into the CHW float32 plane layout the model input
// tensor expects, applying the center-crop/scale policy and the per-channel
// mean/std normalization from meta. Zero mean/std falls back to plain [0,1].
func TensorData(img image.Image, meta Metadata) ([]float32, error) {
	scaled, err := CenterCropScale(img, meta.ImageSize)
	if err != nil {
		return nil, err
	}

	b := scaled.Bounds()
	width, height := b.Dx(), b.Dy()
	data := make([]float32, 3*width*height)
	plane := width * height

	normalize := meta.Std[0] != 0 || meta.Std[1] != 0 || meta.Std[2] != 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, _ := scaled.At(b.Min.X+x, b.Min.Y+y).RGBA()
			rv := float32(r) / 65535.0
			gv := float32(g) / 65535.0
			bv := float32(bl) / 65535.0
			if normalize {
				rv = (rv - meta.Mean[0]) / meta.Std[0]
				gv = (gv - meta.Mean[1]) / meta.Std[1]
				bv = (bv - meta.Mean[2]) / meta.Std[2]
			}
			idx := y*width + x
			data[idx] = rv
			data[plane+idx] = gv
			data[2*plane+idx] = bv
		}
	}
	return data, nil
}
