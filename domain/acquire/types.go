package acquire

import (
	"image"
	"time"
)

// PhotoSnapshot carries one acquired photo and its metadata. The image is
// already orientation-corrected; at most one snapshot is live in the UI at a
// time.
type PhotoSnapshot struct {
	ID         string // request id, used in logs and completion bookkeeping
	Image      image.Image
	Source     string // "file" or "screen"
	Path       string // origin path for file sources, empty otherwise
	AcquiredAt time.Time
}

// Loader acquires a photo from a file path.
type Loader interface {
	Load(path string) (*PhotoSnapshot, error)
}

// Grabber acquires a photo from the platform capture backend.
type Grabber interface {
	Grab() (*PhotoSnapshot, error)
	Available() bool
}
