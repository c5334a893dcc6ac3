package acquire

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// OrientationNormal is the EXIF orientation value for an upright image.
const OrientationNormal = 1

// ReadOrientation extracts the EXIF orientation tag (1..8) from r. Any
// missing tag, non-EXIF input or parse failure yields OrientationNormal;
// orientation is ambient metadata and never an error.
func ReadOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return OrientationNormal
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return OrientationNormal
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return OrientationNormal
	}
	return v
}

// ApplyOrientation returns img transformed so it displays upright for the
// given EXIF orientation value. Unknown values return img unchanged.
func ApplyOrientation(img image.Image, orientation int) image.Image {
	if img == nil {
		return nil
	}
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
