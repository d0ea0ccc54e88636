package libcam

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the part of the windowing layer the camera needs.
// The camera borrows it and never closes or destroys it.
type Window interface {
	FramebufferSize() (width, height int)
	// Hides and captures the cursor while mouse-look is active.
	SetCursorLocked(locked bool)
}

// Input reports the polled state of the current frame.
type Input interface {
	IsKeyDown(key glfw.Key) bool
	CursorPos() mgl32.Vec2
}

// Shader receives the camera matrices.
// Implementations are expected to write the uniform without requiring the program to be bound.
type Shader interface {
	SetUniform(name string, value any)
}

var (
	ErrNilCollaborator = errors.New("camera collaborator is nil")
	ErrInvalidAspect   = errors.New("aspect ratio must be positive")
	ErrAspectUnset     = errors.New("aspect ratio has not been set")
	ErrInvalidFrustum  = errors.New("invalid frustum settings")
	ErrDegenerateBasis = errors.New("degenerate camera basis")
	ErrInvalidSettings = errors.New("invalid camera settings")
	ErrInvalidDelta    = errors.New("delta time must not be negative")
)
