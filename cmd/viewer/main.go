package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime"
	"unsafe"

	"simplegl/libcam"
	"simplegl/libdraw"
	"simplegl/libgl"
	"simplegl/libgui"
	"simplegl/libinput"
	"simplegl/libio"
	"simplegl/libutil"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type arguments struct {
	Width, Height              int
	Fov                        float64
	Sensitivity                float64
	Speed                      float64
	PosePath                   string
	EnableCompatibilityProfile bool
	VSync                      bool
}

var Arguments = arguments{
	Width:       1600,
	Height:      900,
	Fov:         float64(libcam.DefaultCameraSettings().Fov),
	Sensitivity: float64(libcam.DefaultCameraSettings().Sensitivity),
	Speed:       float64(libcam.DefaultMovementSettings().Speed),
	PosePath:    "camera.pose",
	VSync:       true,
}

func main() {
	flag.IntVar(&Arguments.Width, "width", Arguments.Width, "window width")
	flag.IntVar(&Arguments.Height, "height", Arguments.Height, "window height")
	flag.Float64Var(&Arguments.Fov, "fov", Arguments.Fov, "vertical field of view in degrees")
	flag.Float64Var(&Arguments.Sensitivity, "sensitivity", Arguments.Sensitivity, "mouse-look degrees per pixel per second")
	flag.Float64Var(&Arguments.Speed, "speed", Arguments.Speed, "movement speed in units per second")
	flag.StringVar(&Arguments.PosePath, "pose", Arguments.PosePath, "camera pose file, saved with F5 and loaded with F9")
	flag.BoolVar(&Arguments.EnableCompatibilityProfile, "enable-compatibility-profile", Arguments.EnableCompatibilityProfile, "")
	flag.BoolVar(&Arguments.VSync, "vsync", Arguments.VSync, "")
	flag.Parse()

	runtime.LockOSThread()
	err := glfw.Init()
	check(err)
	defer glfw.Terminate()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	if Arguments.EnableCompatibilityProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	ctx, err := glfw.CreateWindow(Arguments.Width, Arguments.Height, "Camera Viewer", nil, nil)
	check(err)
	ctx.MakeContextCurrent()
	if Arguments.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(libutil.InvalidAddress)
		}
		return addr
	})
	check(err)

	libgl.State = libgl.NewGlStateManager()
	libgl.EnableDebugOutput()

	input := libinput.NewManager(ctx)
	window := libinput.NewWindow(ctx)

	directShader, err := libgl.NewPipelineFromSource(Res_DirectVshSrc, Res_DirectFshSrc)
	check(err)
	defer directShader.Delete()
	dd := libdraw.NewDirectDrawBuffer(directShader)
	defer dd.Delete()

	imguiShader, err := libgl.NewPipelineFromSource(Res_ImguiVshSrc, Res_ImguiFshSrc)
	check(err)
	defer imguiShader.Delete()
	gui := libgui.NewImGui(ctx, imguiShader)
	defer gui.Delete()

	cam, err := libcam.New(window, input, directShader.VertexStage())
	check(err)
	settings := cam.Settings()
	settings.Fov = float32(Arguments.Fov)
	settings.Sensitivity = float32(Arguments.Sensitivity)
	check(cam.CameraSettings(settings))
	movement := cam.Movement()
	movement.Speed = float32(Arguments.Speed)
	check(cam.MovementSettings(movement))
	check(cam.FitWindow())

	if _, err := os.Stat(Arguments.PosePath); err == nil {
		loadPose(cam)
	}

	inspector := libgui.NewCameraInspector(cam)

	resized := false
	wireframe := false
	ctx.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		resized = true
	})

	libgl.State.ClearColor(0.08, 0.09, 0.11, 1)
	clock := libutil.NewClock()

	for !ctx.ShouldClose() {
		glfw.PollEvents()
		input.Update(ctx)
		dt := clock.Lap()

		if resized {
			resized = false
			// minimized windows report a zero framebuffer, the last aspect stays valid
			if err := cam.FitWindow(); err != nil && !errors.Is(err, libcam.ErrInvalidAspect) {
				log.Panic(err)
			}
		}

		if input.IsKeyTap(glfw.KeyEscape) {
			ctx.SetShouldClose(true)
		}
		if input.IsKeyTap(glfw.KeyF1) {
			inspector.Toggle()
		}
		if input.IsKeyTap(glfw.KeyF2) {
			wireframe = !wireframe
		}
		if input.IsKeyTap(glfw.KeyF5) {
			savePose(cam)
		}
		if input.IsKeyTap(glfw.KeyF9) {
			loadPose(cam)
		}

		if !gui.WantsInput() || cam.IsLooking() {
			check(cam.UpdateMovement(dt))
		}
		check(cam.UpdateMatrix())

		fbWidth, fbHeight := ctx.GetFramebufferSize()
		libgl.State.Viewport(0, 0, fbWidth, fbHeight)
		libgl.State.SetEnabled(libgl.DepthTest)
		libgl.State.DepthMask(true)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		libgl.State.Wireframe(wireframe)
		drawScene(dd)
		dd.Draw(cam.Position())
		libgl.State.Wireframe(false)

		gui.NewFrame()
		inspector.Draw()
		gui.Draw()

		ctx.SwapBuffers()
	}
}

// marker boxes placed around the origin, colored by quadrant
var markers = []struct {
	min, max mgl32.Vec3
	color    mgl32.Vec3
}{
	{mgl32.Vec3{2, 0, 2}, mgl32.Vec3{3, 1, 3}, mgl32.Vec3{0.9, 0.3, 0.3}},
	{mgl32.Vec3{-3, 0, 2}, mgl32.Vec3{-2, 2, 3}, mgl32.Vec3{0.3, 0.9, 0.3}},
	{mgl32.Vec3{-3, 0, -3}, mgl32.Vec3{-2, 0.5, -2}, mgl32.Vec3{0.3, 0.3, 0.9}},
	{mgl32.Vec3{2, 0, -3}, mgl32.Vec3{3, 3, -2}, mgl32.Vec3{0.9, 0.8, 0.3}},
}

func drawScene(dd *libdraw.DirectBuffer) {
	dd.Unshaded()
	dd.Stroke(0.02)
	dd.Color(0.4, 0.4, 0.45)
	dd.Grid(mgl32.Vec3{}, 20, 40)
	dd.Stroke(0.04)
	dd.Axes(mgl32.Vec3{0, 0.01, 0}, 1)

	dd.Shaded()
	for _, m := range markers {
		dd.Color3(m.color)
		dd.Box(m.min, m.max)
	}
	dd.Color(0.9, 0.9, 0.9)
	dd.UvSphere(mgl32.Vec3{0, 1, 0}, 0.3)
	dd.Unshaded()
	dd.Stroke(0.02)
	dd.CircleLine(mgl32.Vec3{0, 0.01, 0}, mgl32.Vec3{0, 1, 0}, 0.6)
}

func savePose(cam *libcam.Camera) {
	if err := libio.SavePose(Arguments.PosePath, cam.Pose()); err != nil {
		log.Printf("could not save camera pose: %v\n", err)
		return
	}
	log.Printf("saved camera pose to %s\n", Arguments.PosePath)
}

func loadPose(cam *libcam.Camera) {
	pose, err := libio.LoadPose(Arguments.PosePath)
	if err == nil {
		err = cam.SetPose(pose)
	}
	if err != nil {
		log.Printf("could not load camera pose: %v\n", err)
		return
	}
	log.Printf("loaded camera pose from %s\n", Arguments.PosePath)
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
