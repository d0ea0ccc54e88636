package libcam

import (
	"fmt"

	"simplegl/libutil"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the persistent part of the camera state.
type Pose struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	WorldUp  mgl32.Vec3
	// in degrees
	Fov float32
}

func (cam *Camera) Pose() Pose {
	return Pose{
		Position: cam.position,
		Forward:  cam.forward,
		WorldUp:  cam.worldUp,
		Fov:      cam.fov,
	}
}

// SetPose restores a pose. The camera is left unchanged if the pose is invalid.
// Mouse-look is re-armed so the next held frame does not jump.
func (cam *Camera) SetPose(p Pose) error {
	if !libutil.FiniteVec3(p.Position) {
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidSettings, p.Position)
	}
	if err := validateFov(p.Fov); err != nil {
		return err
	}
	if err := validateBasis(p.Forward, p.WorldUp); err != nil {
		return err
	}
	cam.position = p.Position
	cam.forward = p.Forward.Normalize()
	cam.worldUp = p.WorldUp.Normalize()
	cam.fov = p.Fov
	cam.updateBasis()
	cam.Rotate(0, 0)
	if !cam.initialClick {
		cam.window.SetCursorLocked(false)
		cam.initialClick = true
	}
	return nil
}
