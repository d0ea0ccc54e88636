package libcam_test

import (
	"testing"

	"simplegl/libcam"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrustumSettingsValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *libcam.FrustumSettings)
		err    error
	}{
		{"near equals far", func(s *libcam.FrustumSettings) { s.Near, s.Far = 10, 10 }, libcam.ErrInvalidFrustum},
		{"near beyond far", func(s *libcam.FrustumSettings) { s.Near, s.Far = 100, 1 }, libcam.ErrInvalidFrustum},
		{"zero near", func(s *libcam.FrustumSettings) { s.Near = 0 }, libcam.ErrInvalidFrustum},
		{"negative near", func(s *libcam.FrustumSettings) { s.Near = -1 }, libcam.ErrInvalidFrustum},
		{"empty uniform", func(s *libcam.FrustumSettings) { s.ViewUniform = "" }, libcam.ErrInvalidFrustum},
		{"zero forward", func(s *libcam.FrustumSettings) { s.Forward = mgl32.Vec3{} }, libcam.ErrDegenerateBasis},
		{"zero up", func(s *libcam.FrustumSettings) { s.Up = mgl32.Vec3{} }, libcam.ErrDegenerateBasis},
		{"parallel", func(s *libcam.FrustumSettings) { s.Forward = mgl32.Vec3{0, -2, 0} }, libcam.ErrDegenerateBasis},
		{"nan near", func(s *libcam.FrustumSettings) { s.Near = math32.NaN() }, libcam.ErrInvalidFrustum},
		{"nan far", func(s *libcam.FrustumSettings) { s.Far = math32.NaN() }, libcam.ErrInvalidFrustum},
		{"infinite far", func(s *libcam.FrustumSettings) { s.Far = math32.Inf(1) }, libcam.ErrInvalidFrustum},
		{"nan forward", func(s *libcam.FrustumSettings) { s.Forward = mgl32.Vec3{math32.NaN(), 0, -1} }, libcam.ErrDegenerateBasis},
		{"infinite up", func(s *libcam.FrustumSettings) { s.Up = mgl32.Vec3{0, math32.Inf(1), 0} }, libcam.ErrDegenerateBasis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			settings := libcam.DefaultFrustumSettings()
			tt.modify(&settings)

			err := f.cam.FrustumSettings(settings)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, float32(0.01), f.cam.Near())
			assert.Equal(t, float32(100), f.cam.Far())
			assert.Equal(t, mgl32.Vec3{0, 0, -1}, f.cam.Forward())
		})
	}
}

func TestFrustumSettingsNormalizesBasis(t *testing.T) {
	f := newFixture(t)
	settings := libcam.DefaultFrustumSettings()
	settings.Forward = mgl32.Vec3{3, 0, 0}
	settings.Up = mgl32.Vec3{0, 0, 2}
	settings.Near, settings.Far = 0.5, 500
	require.NoError(t, f.cam.FrustumSettings(settings))

	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, f.cam.Forward())
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, f.cam.WorldUp())
	assertVec3InDelta(t, mgl32.Vec3{0, -1, 0}, f.cam.Right())
	assertOrthonormal(t, f.cam)
	assert.Equal(t, float32(0.5), f.cam.Near())
	assert.Equal(t, float32(500), f.cam.Far())
}

func TestPitchedForwardKeepsCameraUpOrthogonal(t *testing.T) {
	f := newFixture(t)
	settings := libcam.DefaultFrustumSettings()
	settings.Forward = mgl32.Vec3{0, 1, -1}
	require.NoError(t, f.cam.FrustumSettings(settings))

	assert.InDelta(t, 45, f.cam.Pitch(), 0.01)
	assertOrthonormal(t, f.cam)
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, f.cam.WorldUp())
}

func TestCameraSettings(t *testing.T) {
	f := newFixture(t)

	err := f.cam.CameraSettings(libcam.CameraSettings{Position: mgl32.Vec3{1, 2, 3}, Fov: 70, Sensitivity: 2})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, f.cam.Position())
	assert.Equal(t, float32(70), f.cam.Fov())
	assert.Equal(t, float32(2), f.cam.Sensitivity())

	for _, fov := range []float32{0, -10, 180, 270} {
		err := f.cam.CameraSettings(libcam.CameraSettings{Fov: fov, Sensitivity: 1})
		assert.ErrorIs(t, err, libcam.ErrInvalidSettings, "fov %v", fov)
	}
	err = f.cam.CameraSettings(libcam.CameraSettings{Fov: 60, Sensitivity: -1})
	assert.ErrorIs(t, err, libcam.ErrInvalidSettings)
	assert.Equal(t, float32(70), f.cam.Fov())
}

func TestCameraSettingsRejectsNonFinite(t *testing.T) {
	f := newFixture(t)
	before := f.cam.Settings()

	invalid := []libcam.CameraSettings{
		{Fov: math32.NaN(), Sensitivity: 1},
		{Fov: 60, Sensitivity: math32.NaN()},
		{Fov: 60, Sensitivity: math32.Inf(1)},
		{Position: mgl32.Vec3{math32.NaN(), 0, 0}, Fov: 60, Sensitivity: 1},
		{Position: mgl32.Vec3{0, 0, math32.Inf(-1)}, Fov: 60, Sensitivity: 1},
	}
	for _, s := range invalid {
		assert.ErrorIs(t, f.cam.CameraSettings(s), libcam.ErrInvalidSettings, "%+v", s)
	}
	assert.Equal(t, before, f.cam.Settings())
}

func TestCameraSettingsDoesNotUploadMatrices(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.cam.UpdateAspect(4, 3))

	require.NoError(t, f.cam.CameraSettings(libcam.DefaultCameraSettings()))
	assert.Zero(t, f.shader.calls)
}

func TestSettingsAreIndependent(t *testing.T) {
	f := newFixture(t)

	movement := libcam.DefaultMovementSettings()
	movement.Speed = 12
	require.NoError(t, f.cam.MovementSettings(movement))

	frustum := libcam.DefaultFrustumSettings()
	frustum.Far = 1000
	require.NoError(t, f.cam.FrustumSettings(frustum))

	camera := libcam.DefaultCameraSettings()
	camera.Fov = 90
	require.NoError(t, f.cam.CameraSettings(camera))

	assert.Equal(t, float32(12), f.cam.Speed())
	assert.Equal(t, float32(1000), f.cam.Far())
	assert.Equal(t, float32(90), f.cam.Fov())
	assert.Equal(t, float32(6), f.cam.Sensitivity())
}

func TestMovementSettingsValidation(t *testing.T) {
	f := newFixture(t)

	invalid := []libcam.MovementSettings{
		{Speed: -1, SpeedMultMax: 2, SpeedMultMin: 0.5},
		{Speed: 5, SpeedMultMax: 0.5, SpeedMultMin: 0.5},
		{Speed: 5, SpeedMultMax: 2, SpeedMultMin: 0},
		{Speed: 5, SpeedMultMax: 2, SpeedMultMin: 1.5},
		{Speed: math32.NaN(), SpeedMultMax: 2, SpeedMultMin: 0.5},
		{Speed: math32.Inf(1), SpeedMultMax: 2, SpeedMultMin: 0.5},
		{Speed: 5, SpeedMultMax: math32.NaN(), SpeedMultMin: 0.5},
		{Speed: 5, SpeedMultMax: 2, SpeedMultMin: math32.NaN()},
	}
	for _, s := range invalid {
		assert.ErrorIs(t, f.cam.MovementSettings(s), libcam.ErrInvalidSettings, "%+v", s)
	}
	assert.Equal(t, float32(5), f.cam.Speed())
}

func TestCustomKeyBindings(t *testing.T) {
	f := newFixture(t)
	movement := libcam.DefaultMovementSettings()
	movement.Keys.Forward = glfw.KeyUp
	movement.Keys.Sprint = glfw.KeyUnknown
	require.NoError(t, f.cam.MovementSettings(movement))
	start := f.cam.Position()

	f.input.press(glfw.KeyW)
	require.NoError(t, f.cam.UpdateMovement(1))
	assert.Equal(t, start, f.cam.Position())

	f.input.release(glfw.KeyW)
	f.input.press(glfw.KeyUp, glfw.KeyLeftShift)
	require.NoError(t, f.cam.UpdateMovement(1))
	assertVec3InDelta(t, start.Add(mgl32.Vec3{0, 0, -5}), f.cam.Position())
}

func TestSettingsReflectCurrentState(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, libcam.DefaultCameraSettings(), f.cam.Settings())
	assert.Equal(t, libcam.DefaultMovementSettings(), f.cam.Movement())

	movement := f.cam.Movement()
	movement.Speed = 12
	require.NoError(t, f.cam.MovementSettings(movement))
	assert.Equal(t, movement, f.cam.Movement())

	settings := f.cam.Settings()
	settings.Fov = 70
	require.NoError(t, f.cam.CameraSettings(settings))
	assert.Equal(t, settings, f.cam.Settings())
}
