package acquire

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// FileSource loads photos from disk, the desktop analogue of the photo
// library picker. Decoded images are orientation-corrected from their EXIF
// metadata before being handed out.
type FileSource struct {
	logger *slog.Logger
}

// NewFileSource returns a FileSource logging through logger.
func NewFileSource(logger *slog.Logger) *FileSource {
	return &FileSource{logger: logger}
}

// Load reads, decodes and orientation-corrects the image at path.
func (s *FileSource) Load(path string) (*PhotoSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}

	orientation := ReadOrientation(bytes.NewReader(data))

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode photo %s: %w", path, err)
	}
	img = ApplyOrientation(img, orientation)

	snap := &PhotoSnapshot{
		ID:         uuid.New().String(),
		Image:      img,
		Source:     "file",
		Path:       path,
		AcquiredAt: time.Now(),
	}
	if s.logger != nil {
		s.logger.Debug("photo loaded",
			"request_id", snap.ID,
			"path", path,
			"format", format,
			"orientation", orientation,
			"width", img.Bounds().Dx(),
			"height", img.Bounds().Dy(),
		)
	}
	return snap, nil
}

var _ Loader = (*FileSource)(nil)
