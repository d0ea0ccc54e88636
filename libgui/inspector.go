package libgui

import (
	"fmt"

	"simplegl/libcam"

	"github.com/inkyblackness/imgui-go/v4"
)

// CameraInspector is a panel that shows and edits a camera.
// Edits go through the camera's settings setters, so invalid values are rejected and reported.
type CameraInspector struct {
	Visible bool
	cam     *libcam.Camera
	edit    cameraEdit
	err     error
}

// the values a user can change in the panel
type cameraEdit struct {
	Position    [3]float32
	Fov         float32
	Sensitivity float32
	Speed       float32
}

func NewCameraInspector(cam *libcam.Camera) *CameraInspector {
	return &CameraInspector{
		Visible: true,
		cam:     cam,
	}
}

func (ci *CameraInspector) Toggle() {
	ci.Visible = !ci.Visible
}

// Err returns the error of the last rejected edit.
func (ci *CameraInspector) Err() error {
	return ci.err
}

func (ci *CameraInspector) pull() {
	settings := ci.cam.Settings()
	ci.edit = cameraEdit{
		Position:    settings.Position,
		Fov:         settings.Fov,
		Sensitivity: settings.Sensitivity,
		Speed:       ci.cam.Speed(),
	}
}

// push applies the edited values, keeping everything else the camera has configured.
func (ci *CameraInspector) push() {
	settings := ci.cam.Settings()
	settings.Position = ci.edit.Position
	settings.Fov = ci.edit.Fov
	settings.Sensitivity = ci.edit.Sensitivity
	movement := ci.cam.Movement()
	movement.Speed = ci.edit.Speed

	// an edit is applied whole or not at all
	if ci.err = settings.Validate(); ci.err != nil {
		return
	}
	if ci.err = movement.Validate(); ci.err != nil {
		return
	}
	if ci.err = ci.cam.CameraSettings(settings); ci.err != nil {
		return
	}
	ci.err = ci.cam.MovementSettings(movement)
}

// Draw lays out the panel. It must be called between ImGui.NewFrame and ImGui.Draw.
func (ci *CameraInspector) Draw() {
	if !ci.Visible {
		return
	}
	ci.pull()

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionOnce, imgui.Vec2{})
	imgui.BeginV("Camera", &ci.Visible, imgui.WindowFlagsAlwaysAutoResize)
	defer imgui.End()

	changed := false
	changed = imgui.DragFloat3("Position", &ci.edit.Position) || changed
	changed = imgui.SliderFloat("Fov", &ci.edit.Fov, 1, 179) || changed
	changed = imgui.SliderFloat("Sensitivity", &ci.edit.Sensitivity, 0, 30) || changed
	changed = imgui.SliderFloat("Speed", &ci.edit.Speed, 0.1, 50) || changed
	if changed {
		ci.push()
	}

	imgui.Separator()
	fwd, up := ci.cam.Forward(), ci.cam.Up()
	imgui.Text(fmt.Sprintf("Forward %6.3f %6.3f %6.3f", fwd[0], fwd[1], fwd[2]))
	imgui.Text(fmt.Sprintf("Up      %6.3f %6.3f %6.3f", up[0], up[1], up[2]))
	imgui.Text(fmt.Sprintf("Pitch   %6.2f", ci.cam.Pitch()))
	imgui.Text(fmt.Sprintf("Aspect  %6.3f", ci.cam.Aspect()))
	if ci.cam.IsLooking() {
		imgui.Text("Looking")
	}

	if ci.err != nil {
		imgui.PushStyleColor(imgui.StyleColorText, imgui.Vec4{X: 1, Y: 0.4, Z: 0.4, W: 1})
		imgui.Text(ci.err.Error())
		imgui.PopStyleColor()
	}
}
