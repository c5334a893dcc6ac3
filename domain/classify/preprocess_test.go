package classify

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCenterCropScale_Dimensions(t *testing.T) {
	img := solidImage(640, 480, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	out, err := CenterCropScale(img, 224)
	if err != nil {
		t.Fatal(err)
	}
	b := out.Bounds()
	if b.Dx() != 224 || b.Dy() != 224 {
		t.Fatalf("expected 224x224, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestCenterCropScale_Errors(t *testing.T) {
	if _, err := CenterCropScale(nil, 224); err == nil {
		t.Fatal("nil image must error")
	}
	if _, err := CenterCropScale(solidImage(10, 10, color.RGBA{}), 0); err == nil {
		t.Fatal("zero edge must error")
	}
	if _, err := CenterCropScale(image.NewRGBA(image.Rect(0, 0, 0, 0)), 224); err == nil {
		t.Fatal("empty image must error")
	}
}

func TestTensorData_PlainLayout(t *testing.T) {
	// Pure red image, no normalization: the R plane is 1, G and B are 0.
	img := solidImage(8, 8, color.RGBA{R: 255, A: 255})
	meta := Metadata{ImageSize: 4}
	data, err := TensorData(img, meta)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 3*4*4 {
		t.Fatalf("expected 48 values, got %d", len(data))
	}
	plane := 4 * 4
	for i := 0; i < plane; i++ {
		if math.Abs(float64(data[i])-1.0) > 1e-3 {
			t.Fatalf("red plane value %d = %v, want 1", i, data[i])
		}
		if data[plane+i] != 0 || data[2*plane+i] != 0 {
			t.Fatalf("green/blue planes must be zero at %d: %v %v", i, data[plane+i], data[2*plane+i])
		}
	}
}

func TestTensorData_Normalized(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	meta := Metadata{
		ImageSize: 2,
		Mean:      [3]float32{0.5, 0.5, 0.5},
		Std:       [3]float32{0.25, 0.25, 0.25},
	}
	data, err := TensorData(img, meta)
	if err != nil {
		t.Fatal(err)
	}
	// (1.0 - 0.5) / 0.25 = 2.0 on every channel.
	for i, v := range data {
		if math.Abs(float64(v)-2.0) > 1e-3 {
			t.Fatalf("value %d = %v, want 2.0", i, v)
		}
	}
}
