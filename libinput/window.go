package libinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window adapts a glfw window to the camera's window requirements.
type Window struct {
	*glfw.Window
}

func NewWindow(w *glfw.Window) *Window {
	if glfw.RawMouseMotionSupported() {
		w.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	return &Window{Window: w}
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.GetFramebufferSize()
}

func (w *Window) SetCursorLocked(locked bool) {
	mode := glfw.CursorNormal
	if locked {
		mode = glfw.CursorDisabled
	}
	if w.GetInputMode(glfw.CursorMode) == mode {
		return
	}
	// glfw re-centers the cursor when the mode changes, restore the position so cursor deltas stay continuous
	x, y := w.GetCursorPos()
	w.SetInputMode(glfw.CursorMode, mode)
	w.SetCursorPos(x, y)
}
