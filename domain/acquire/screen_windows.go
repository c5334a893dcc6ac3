//go:build windows

package acquire

import (
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetDesktopWindowProc = user32.NewProc("GetDesktopWindow")
)

// winRect matches the Win32 RECT layout.
type winRect struct {
	Left, Top, Right, Bottom int32
}

// foregroundWindowRect returns the screen rectangle of the active window.
// The desktop window itself is rejected so full-screen fallback applies.
func foregroundWindowRect() (image.Rectangle, bool) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return image.Rectangle{}, false
	}
	desktop, _, _ := procGetDesktopWindowProc.Call()
	if hwnd == desktop {
		return image.Rectangle{}, false
	}
	var r winRect
	ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return image.Rectangle{}, false
	}
	rect := image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
	if rect.Empty() {
		return image.Rectangle{}, false
	}
	return rect, true
}
