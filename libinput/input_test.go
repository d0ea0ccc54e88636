package libinput_test

import (
	"testing"

	"simplegl/libcam"
	"simplegl/libinput"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type fakeContext struct {
	x, y    float64
	keys    map[glfw.Key]glfw.Action
	buttons map[glfw.MouseButton]glfw.Action
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		keys:    map[glfw.Key]glfw.Action{},
		buttons: map[glfw.MouseButton]glfw.Action{},
	}
}

func (c *fakeContext) GetCursorPos() (float64, float64) {
	return c.x, c.y
}

func (c *fakeContext) GetKey(key glfw.Key) glfw.Action {
	if a, ok := c.keys[key]; ok {
		return a
	}
	return glfw.Release
}

func (c *fakeContext) GetMouseButton(button glfw.MouseButton) glfw.Action {
	if a, ok := c.buttons[button]; ok {
		return a
	}
	return glfw.Release
}

var _ libcam.Input = &libinput.Manager{}

func TestInitialState(t *testing.T) {
	ctx := newFakeContext()
	ctx.x, ctx.y = 120, 80
	ctx.keys[glfw.KeyW] = glfw.Press

	input := libinput.NewManager(ctx)

	assert.Equal(t, mgl32.Vec2{120, 80}, input.CursorPos())
	assert.Equal(t, mgl32.Vec2{}, input.CursorDelta())
	assert.True(t, input.IsKeyDown(glfw.KeyW))
	assert.False(t, input.IsKeyTap(glfw.KeyW), "a key held at startup is not a tap")
	assert.InDelta(t, 1./60., input.TimeDelta(), 1e-5)
}

func TestKeyTapAndHold(t *testing.T) {
	ctx := newFakeContext()
	input := libinput.NewManager(ctx)

	ctx.keys[glfw.KeyLeftAlt] = glfw.Press
	input.Update(ctx)
	assert.True(t, input.IsKeyDown(glfw.KeyLeftAlt))
	assert.True(t, input.IsKeyTap(glfw.KeyLeftAlt))

	ctx.keys[glfw.KeyLeftAlt] = glfw.Repeat
	input.Update(ctx)
	assert.True(t, input.IsKeyDown(glfw.KeyLeftAlt))
	assert.False(t, input.IsKeyTap(glfw.KeyLeftAlt))

	ctx.keys[glfw.KeyLeftAlt] = glfw.Release
	input.Update(ctx)
	assert.False(t, input.IsKeyDown(glfw.KeyLeftAlt))
}

func TestMouseButtons(t *testing.T) {
	ctx := newFakeContext()
	input := libinput.NewManager(ctx)

	ctx.buttons[glfw.MouseButtonRight] = glfw.Press
	input.Update(ctx)
	assert.True(t, input.IsMouseDown(glfw.MouseButtonRight))
	assert.True(t, input.IsMouseTap(glfw.MouseButtonRight))
	assert.False(t, input.IsMouseDown(glfw.MouseButtonLeft))

	input.Update(ctx)
	assert.False(t, input.IsMouseTap(glfw.MouseButtonRight))
}

func TestCursorDelta(t *testing.T) {
	ctx := newFakeContext()
	input := libinput.NewManager(ctx)

	ctx.x, ctx.y = 10, -4
	input.Update(ctx)
	assert.Equal(t, mgl32.Vec2{10, -4}, input.CursorDelta())

	ctx.x, ctx.y = 15, -4
	input.Update(ctx)
	assert.Equal(t, mgl32.Vec2{5, 0}, input.CursorDelta())
	assert.Equal(t, mgl32.Vec2{15, -4}, input.CursorPos())
}

func TestUnknownKeyIsNeverDown(t *testing.T) {
	ctx := newFakeContext()
	input := libinput.NewManager(ctx)

	assert.False(t, input.IsKeyDown(glfw.KeyUnknown))
	assert.False(t, input.IsKeyTap(glfw.KeyUnknown))
	assert.False(t, input.IsKeyDown(glfw.KeyLast+1))
}

func TestTimeDeltaNonNegative(t *testing.T) {
	ctx := newFakeContext()
	input := libinput.NewManager(ctx)

	for n := 0; n < 5; n++ {
		input.Update(ctx)
		assert.GreaterOrEqual(t, input.TimeDelta(), float32(0))
	}
}
