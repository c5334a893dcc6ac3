package acquire

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vova616/screenshot"
)

// ScreenSource captures the screen, the desktop analogue of the camera. When
// foregroundWindow is set and the platform can resolve the active window's
// rectangle, the capture is cropped to it.
type ScreenSource struct {
	logger           *slog.Logger
	foregroundWindow bool
}

// NewScreenSource returns a ScreenSource. foregroundWindow selects cropping
// to the active window where supported.
func NewScreenSource(logger *slog.Logger, foregroundWindow bool) *ScreenSource {
	return &ScreenSource{logger: logger, foregroundWindow: foregroundWindow}
}

// Available reports whether a capture backend exists on this platform. The
// take-photo action is disabled in the UI when it returns false.
func (s *ScreenSource) Available() bool {
	r, err := screenshot.ScreenRect()
	return err == nil && !r.Empty()
}

// Grab captures one frame and wraps it in a snapshot. Screen captures carry
// no orientation metadata; they are always upright.
func (s *ScreenSource) Grab() (*PhotoSnapshot, error) {
	if s.foregroundWindow {
		if rect, ok := foregroundWindowRect(); ok {
			if img, err := screenshot.CaptureRect(rect); err == nil && img != nil {
				return s.wrap(img, "screen"), nil
			} else if s.logger != nil {
				s.logger.Debug("foreground capture failed, falling back to full screen", "error", err)
			}
		}
	}
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	if img == nil {
		return nil, fmt.Errorf("capture screen: empty frame")
	}
	return s.wrap(img, "screen"), nil
}

func (s *ScreenSource) wrap(img image.Image, source string) *PhotoSnapshot {
	snap := &PhotoSnapshot{
		ID:         uuid.New().String(),
		Image:      img,
		Source:     source,
		AcquiredAt: time.Now(),
	}
	if s.logger != nil {
		s.logger.Debug("screen captured",
			"request_id", snap.ID,
			"width", img.Bounds().Dx(),
			"height", img.Bounds().Dy(),
		)
	}
	return snap
}

var _ Grabber = (*ScreenSource)(nil)
