//go:build !windows

package acquire

import "image"

// foregroundWindowRect is unsupported off Windows; captures fall back to the
// full screen.
func foregroundWindowRect() (image.Rectangle, bool) {
	return image.Rectangle{}, false
}
