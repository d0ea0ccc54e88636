package libcam

import (
	"fmt"

	"simplegl/libutil"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the largest angle in degrees the view direction may be tilted away from the horizon.
const MaxPitch float32 = 89

// Camera is a first-person fly camera.
//
// The window, input and shader are borrowed; the camera never releases them.
// Right, up, view and projection are derived from the other fields and are never set directly.
type Camera struct {
	window Window
	input  Input
	shader Shader

	projectionUniform string
	viewUniform       string

	aspect float32

	position mgl32.Vec3
	forward  mgl32.Vec3
	worldUp  mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	near, far float32

	fov          float32
	sensitivity  float32
	speed        float32
	speedMultMax float32
	speedMultMin float32
	keys         KeyBindings

	activationKey glfw.Key
	initialClick  bool
	lastCursor    mgl32.Vec2
}

func New(window Window, input Input, shader Shader) (*Camera, error) {
	if window == nil {
		return nil, fmt.Errorf("%w: window", ErrNilCollaborator)
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input", ErrNilCollaborator)
	}
	if shader == nil {
		return nil, fmt.Errorf("%w: shader", ErrNilCollaborator)
	}

	cam := &Camera{
		window:        window,
		input:         input,
		shader:        shader,
		activationKey: glfw.KeyLeftAlt,
		initialClick:  true,
	}
	cam.applyCameraSettings(DefaultCameraSettings())
	cam.applyFrustumSettings(DefaultFrustumSettings())
	cam.applyMovementSettings(DefaultMovementSettings())
	return cam, nil
}

func (cam *Camera) CameraSettings(s CameraSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	cam.applyCameraSettings(s)
	return nil
}

func (cam *Camera) applyCameraSettings(s CameraSettings) {
	cam.position = s.Position
	cam.fov = s.Fov
	cam.sensitivity = s.Sensitivity
}

func (cam *Camera) FrustumSettings(s FrustumSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	cam.applyFrustumSettings(s)
	return nil
}

func (cam *Camera) applyFrustumSettings(s FrustumSettings) {
	cam.projectionUniform = s.ProjectionUniform
	cam.viewUniform = s.ViewUniform
	cam.worldUp = s.Up.Normalize()
	cam.forward = s.Forward.Normalize()
	cam.near = s.Near
	cam.far = s.Far
	cam.updateBasis()
	cam.Rotate(0, 0)
}

func (cam *Camera) MovementSettings(s MovementSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	cam.applyMovementSettings(s)
	return nil
}

func (cam *Camera) applyMovementSettings(s MovementSettings) {
	cam.speed = s.Speed
	cam.speedMultMax = s.SpeedMultMax
	cam.speedMultMin = s.SpeedMultMin
	cam.keys = s.Keys
}

// Settings returns the camera settings currently in effect.
func (cam *Camera) Settings() CameraSettings {
	return CameraSettings{
		Position:    cam.position,
		Fov:         cam.fov,
		Sensitivity: cam.sensitivity,
	}
}

func (cam *Camera) Movement() MovementSettings {
	return MovementSettings{
		Speed:        cam.speed,
		SpeedMultMax: cam.speedMultMax,
		SpeedMultMin: cam.speedMultMin,
		Keys:         cam.keys,
	}
}

func (cam *Camera) SetActivationKey(key glfw.Key) {
	cam.activationKey = key
}

// UpdateAspect stores width/height. The projection picks it up on the next UpdateMatrix.
func (cam *Camera) UpdateAspect(width, height float32) error {
	if !(width > 0) || !(height > 0) || !libutil.Finite(width) || !libutil.Finite(height) {
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidAspect, width, height)
	}
	cam.aspect = width / height
	return nil
}

// FitWindow sets the aspect ratio from the window's framebuffer.
// A minimized window reports a zero size; the previous aspect ratio is kept in that case.
func (cam *Camera) FitWindow() error {
	w, h := cam.window.FramebufferSize()
	return cam.UpdateAspect(float32(w), float32(h))
}

// UpdateMatrix uploads the projection and view matrix to the shader.
func (cam *Camera) UpdateMatrix() error {
	proj, err := cam.Projection()
	if err != nil {
		return err
	}
	cam.shader.SetUniform(cam.projectionUniform, proj)
	cam.shader.SetUniform(cam.viewUniform, cam.View())
	return nil
}

func (cam *Camera) Projection() (mgl32.Mat4, error) {
	if !(cam.aspect > 0) {
		return mgl32.Ident4(), ErrAspectUnset
	}
	return mgl32.Perspective(mgl32.DegToRad(cam.fov), cam.aspect, cam.near, cam.far), nil
}

func (cam *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(cam.position, cam.position.Add(cam.forward), cam.up)
}

func (cam *Camera) ViewProjection() (mgl32.Mat4, error) {
	proj, err := cam.Projection()
	if err != nil {
		return proj, err
	}
	return proj.Mul4(cam.View()), nil
}

// UpdateMovement applies mouse-look and keyboard movement for one frame.
func (cam *Camera) UpdateMovement(dt float32) error {
	if !(dt >= 0) || !libutil.Finite(dt) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}

	cam.look(dt)
	cam.move(dt)
	return nil
}

func (cam *Camera) look(dt float32) {
	if !cam.isDown(cam.activationKey) {
		if !cam.initialClick {
			cam.window.SetCursorLocked(false)
			cam.initialClick = true
		}
		return
	}

	cursor := cam.input.CursorPos()
	if cam.initialClick {
		// the first frame only establishes the reference point
		cam.window.SetCursorLocked(true)
		cam.lastCursor = cursor
		cam.initialClick = false
		return
	}

	delta := cursor.Sub(cam.lastCursor)
	cam.lastCursor = cursor
	if delta.X() == 0 && delta.Y() == 0 {
		return
	}

	scale := cam.sensitivity * dt
	cam.Rotate(-delta.X()*scale, -delta.Y()*scale)
}

// Rotate turns the camera by yaw degrees about the world up axis and pitch degrees about the right axis.
// Pitch is clamped so the view direction stays within MaxPitch of the horizon.
// Rotate(0, 0) only pulls a steeper view direction back to MaxPitch.
func (cam *Camera) Rotate(yaw, pitch float32) {
	current := cam.Pitch()
	target := libutil.Clamp(current+pitch, -MaxPitch, MaxPitch)
	if pitch = target - current; pitch != 0 {
		q := mgl32.QuatRotate(mgl32.DegToRad(pitch), cam.right)
		cam.forward = q.Rotate(cam.forward).Normalize()
	}
	if yaw != 0 {
		q := mgl32.QuatRotate(mgl32.DegToRad(yaw), cam.worldUp)
		cam.forward = q.Rotate(cam.forward).Normalize()
	}
	cam.updateBasis()
}

// Pitch returns the angle in degrees between the view direction and the horizon.
func (cam *Camera) Pitch() float32 {
	sin := libutil.Clamp(cam.forward.Dot(cam.worldUp), -1, 1)
	return math32.Asin(sin) * libutil.Rad2Deg
}

func (cam *Camera) move(dt float32) {
	var x, y, z float32
	if cam.isDown(cam.keys.Forward) {
		z += 1
	}
	if cam.isDown(cam.keys.Backward) {
		z -= 1
	}
	if cam.isDown(cam.keys.Right) {
		x += 1
	}
	if cam.isDown(cam.keys.Left) {
		x -= 1
	}
	if cam.isDown(cam.keys.Up) {
		y += 1
	}
	if cam.isDown(cam.keys.Down) {
		y -= 1
	}
	if x == 0 && y == 0 && z == 0 {
		return
	}

	mult := float32(1)
	if cam.isDown(cam.keys.Sprint) {
		mult = cam.speedMultMax
	} else if cam.isDown(cam.keys.Crawl) {
		mult = cam.speedMultMin
	}

	dir := cam.forward.Mul(z).Add(cam.right.Mul(x)).Add(cam.worldUp.Mul(y))
	cam.position = cam.position.Add(dir.Mul(cam.speed * mult * dt))
}

func (cam *Camera) isDown(key glfw.Key) bool {
	return key != glfw.KeyUnknown && cam.input.IsKeyDown(key)
}

func (cam *Camera) updateBasis() {
	cam.right = cam.forward.Cross(cam.worldUp).Normalize()
	cam.up = cam.right.Cross(cam.forward).Normalize()
}

func (cam *Camera) Position() mgl32.Vec3    { return cam.position }
func (cam *Camera) Forward() mgl32.Vec3     { return cam.forward }
func (cam *Camera) Right() mgl32.Vec3       { return cam.right }
func (cam *Camera) Up() mgl32.Vec3          { return cam.up }
func (cam *Camera) WorldUp() mgl32.Vec3     { return cam.worldUp }
func (cam *Camera) Aspect() float32         { return cam.aspect }
func (cam *Camera) Fov() float32            { return cam.fov }
func (cam *Camera) Near() float32           { return cam.near }
func (cam *Camera) Far() float32            { return cam.far }
func (cam *Camera) Speed() float32          { return cam.speed }
func (cam *Camera) Sensitivity() float32    { return cam.sensitivity }
func (cam *Camera) ActivationKey() glfw.Key { return cam.activationKey }

// IsLooking reports whether mouse-look engaged on a previous frame and the activation key is still held.
func (cam *Camera) IsLooking() bool {
	return !cam.initialClick
}
