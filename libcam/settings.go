package libcam

import (
	"fmt"

	"simplegl/libutil"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraSettings struct {
	Position mgl32.Vec3
	// vertical field of view in degrees
	Fov float32
	// degrees of rotation per pixel of cursor motion per second
	Sensitivity float32
}

func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		Position:    mgl32.Vec3{0, 1, 6},
		Fov:         45,
		Sensitivity: 6,
	}
}

func (s CameraSettings) Validate() error {
	if !libutil.FiniteVec3(s.Position) {
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidSettings, s.Position)
	}
	if err := validateFov(s.Fov); err != nil {
		return err
	}
	if !(s.Sensitivity >= 0) || !libutil.Finite(s.Sensitivity) {
		return fmt.Errorf("%w: sensitivity %v must be finite and not negative", ErrInvalidSettings, s.Sensitivity)
	}
	return nil
}

// comparisons are written so that NaN fails them
func validateFov(fov float32) error {
	if !(fov > 0 && fov < 180) {
		return fmt.Errorf("%w: fov %v must be within (0, 180) degrees", ErrInvalidSettings, fov)
	}
	return nil
}

type FrustumSettings struct {
	ProjectionUniform string
	ViewUniform       string
	Up                mgl32.Vec3
	Forward           mgl32.Vec3
	Near, Far         float32
}

func DefaultFrustumSettings() FrustumSettings {
	return FrustumSettings{
		ProjectionUniform: "u_projection",
		ViewUniform:       "u_view",
		Up:                mgl32.Vec3{0, 1, 0},
		Forward:           mgl32.Vec3{0, 0, -1},
		Near:              0.01,
		Far:               100,
	}
}

func (s FrustumSettings) Validate() error {
	if s.ProjectionUniform == "" || s.ViewUniform == "" {
		return fmt.Errorf("%w: uniform names must not be empty", ErrInvalidFrustum)
	}
	if !(s.Near > 0) || !(s.Far > 0) || !libutil.Finite(s.Far) {
		return fmt.Errorf("%w: clipping planes %v, %v must be positive and finite", ErrInvalidFrustum, s.Near, s.Far)
	}
	if !(s.Near < s.Far) {
		return fmt.Errorf("%w: near plane %v must be closer than far plane %v", ErrInvalidFrustum, s.Near, s.Far)
	}
	return validateBasis(s.Forward, s.Up)
}

func validateBasis(forward, up mgl32.Vec3) error {
	if !libutil.FiniteVec3(forward) || !libutil.FiniteVec3(up) {
		return fmt.Errorf("%w: forward %v and up %v must be finite", ErrDegenerateBasis, forward, up)
	}
	if forward.Len() == 0 || up.Len() == 0 {
		return fmt.Errorf("%w: forward %v and up %v must not be zero", ErrDegenerateBasis, forward, up)
	}
	if libutil.Parallel(forward.Normalize(), up.Normalize()) {
		return fmt.Errorf("%w: forward %v is parallel to up %v", ErrDegenerateBasis, forward, up)
	}
	return nil
}

// KeyBindings maps movement directions to keys. glfw.KeyUnknown leaves a direction unbound.
type KeyBindings struct {
	Forward, Backward glfw.Key
	Left, Right       glfw.Key
	Up, Down          glfw.Key
	Sprint, Crawl     glfw.Key
}

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:  glfw.KeyW,
		Backward: glfw.KeyS,
		Left:     glfw.KeyA,
		Right:    glfw.KeyD,
		Up:       glfw.KeySpace,
		Down:     glfw.KeyC,
		Sprint:   glfw.KeyLeftShift,
		Crawl:    glfw.KeyLeftControl,
	}
}

type MovementSettings struct {
	// units per second
	Speed float32
	// applied while the sprint key is held
	SpeedMultMax float32
	// applied while the crawl key is held
	SpeedMultMin float32
	Keys         KeyBindings
}

func DefaultMovementSettings() MovementSettings {
	return MovementSettings{
		Speed:        5,
		SpeedMultMax: 2,
		SpeedMultMin: 0.5,
		Keys:         DefaultKeyBindings(),
	}
}

func (s MovementSettings) Validate() error {
	if !(s.Speed >= 0) || !libutil.Finite(s.Speed) {
		return fmt.Errorf("%w: speed %v must be finite and not negative", ErrInvalidSettings, s.Speed)
	}
	if !(s.SpeedMultMin > 0 && s.SpeedMultMin <= 1) {
		return fmt.Errorf("%w: minimum speed multiplier %v must be within (0, 1]", ErrInvalidSettings, s.SpeedMultMin)
	}
	if !(s.SpeedMultMax >= 1) || !libutil.Finite(s.SpeedMultMax) {
		return fmt.Errorf("%w: maximum speed multiplier %v must be finite and at least 1", ErrInvalidSettings, s.SpeedMultMax)
	}
	return nil
}
