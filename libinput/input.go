package libinput

import (
	"simplegl/libutil"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

// Context is the polling surface of a window. *glfw.Window implements it.
type Context interface {
	GetCursorPos() (x, y float64)
	GetKey(key glfw.Key) glfw.Action
	GetMouseButton(button glfw.MouseButton) glfw.Action
}

type Manager struct {
	curr  inputState
	prev  inputState
	clock *libutil.Clock
}

type inputState struct {
	time         float32
	cursorPos    mgl32.Vec2
	keys         []bool
	mousebuttons []bool
}

func NewManager(ctx Context) *Manager {
	i := &Manager{
		curr: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
		prev: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
		clock: libutil.NewClock(),
	}

	i.Update(ctx)
	i.prev.cursorPos = i.curr.cursorPos
	// Make sure dTime != 0 to avoid possible errors
	i.prev.time = i.curr.time - 1./60.
	i.prev.keys = slices.Clone(i.curr.keys)
	i.prev.mousebuttons = slices.Clone(i.curr.mousebuttons)

	return i
}

func (i *Manager) CursorDelta() mgl32.Vec2 {
	return i.curr.cursorPos.Sub(i.prev.cursorPos)
}

func (i *Manager) CursorPos() mgl32.Vec2 {
	return i.curr.cursorPos
}

// TimeDelta is the time in seconds between the last two updates.
func (i *Manager) TimeDelta() float32 {
	return i.curr.time - i.prev.time
}

func (i *Manager) IsKeyDown(key glfw.Key) bool {
	if key < 0 || int(key) >= len(i.curr.keys) {
		return false
	}
	return i.curr.keys[key]
}

func (i *Manager) IsKeyTap(key glfw.Key) bool {
	if key < 0 || int(key) >= len(i.curr.keys) {
		return false
	}
	return i.curr.keys[key] && !i.prev.keys[key]
}

func (i *Manager) IsMouseDown(button glfw.MouseButton) bool {
	if button < 0 || int(button) >= len(i.curr.mousebuttons) {
		return false
	}
	return i.curr.mousebuttons[button]
}

func (i *Manager) IsMouseTap(button glfw.MouseButton) bool {
	if button < 0 || int(button) >= len(i.curr.mousebuttons) {
		return false
	}
	return i.curr.mousebuttons[button] && !i.prev.mousebuttons[button]
}

func (i *Manager) Update(ctx Context) {
	keys := i.prev.keys
	mousebuttons := i.prev.mousebuttons
	i.prev = i.curr
	cursorX, cursorY := ctx.GetCursorPos()

	for key := int(glfw.KeySpace); key <= int(glfw.KeyLast); key++ {
		keys[key] = ctx.GetKey(glfw.Key(key)) != glfw.Release
	}

	for button := 0; button <= int(glfw.MouseButtonLast); button++ {
		mousebuttons[button] = ctx.GetMouseButton(glfw.MouseButton(button)) != glfw.Release
	}

	i.curr = inputState{
		time:         i.clock.Elapsed(),
		cursorPos:    mgl32.Vec2{float32(cursorX), float32(cursorY)},
		keys:         keys,
		mousebuttons: mousebuttons,
	}
}
