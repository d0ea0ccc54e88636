package libgl

import (
	"github.com/go-gl/gl/v4.5-core/gl"
)

type GlCapability uint32

const (
	DepthTest              GlCapability = gl.DEPTH_TEST
	Blend                  GlCapability = gl.BLEND
	ScissorTest            GlCapability = gl.SCISSOR_TEST
	PolygonOffsetFill      GlCapability = gl.POLYGON_OFFSET_FILL
	DebugOutput            GlCapability = gl.DEBUG_OUTPUT
	DebugOutputSynchronous GlCapability = gl.DEBUG_OUTPUT_SYNCHRONOUS
)

// Capabilities that SetEnabled leaves untouched.
var persistentCaps = map[GlCapability]bool{
	DebugOutput:            true,
	DebugOutputSynchronous: true,
}

type GlBlendFactor uint32

const (
	BlendZero             GlBlendFactor = gl.ZERO
	BlendOne              GlBlendFactor = gl.ONE
	BlendSrcAlpha         GlBlendFactor = gl.SRC_ALPHA
	BlendOneMinusSrcAlpha GlBlendFactor = gl.ONE_MINUS_SRC_ALPHA
)

type GlBlendEquation uint32

const (
	BlendFuncAdd      GlBlendEquation = gl.FUNC_ADD
	BlendFuncSubtract GlBlendEquation = gl.FUNC_SUBTRACT
)

type GlDepthFunc uint32

const (
	DepthFuncLess   GlDepthFunc = gl.LESS
	DepthFuncLEqual GlDepthFunc = gl.LEQUAL
	DepthFuncAlways GlDepthFunc = gl.ALWAYS
)

// GlStateManager caches GL state to skip redundant driver calls.
// All state changes have to go through it, otherwise the cache goes stale.
type GlStateManager struct {
	Caps                           map[GlCapability]bool
	TextureUnits, SamplerUnits     []uint32
	ProgramPipeline, VertexArray   uint32
	ActiveTextureUnit              int
	ViewportRect, ScissorRect      [4]int
	BlendFactorSrc, BlendFactorDst GlBlendFactor
	BlendEquationMode              GlBlendEquation
	DepthFuncFn                    GlDepthFunc
	DepthWriteMask                 bool
	ClearColorRGBA                 [4]float32
	PolygonOffsets                 [2]float32
	RasterMode                     uint32
}

var State *GlStateManager

func NewGlStateManager() *GlStateManager {
	return &GlStateManager{
		Caps:           map[GlCapability]bool{},
		TextureUnits:   make([]uint32, 32),
		SamplerUnits:   make([]uint32, 32),
		DepthWriteMask: true,
		DepthFuncFn:    DepthFuncLess,
		RasterMode:     gl.FILL,
	}
}

func (s *GlStateManager) Enable(cap GlCapability) {
	if s.Caps[cap] {
		return
	}
	gl.Enable(uint32(cap))
	s.Caps[cap] = true
}

func (s *GlStateManager) Disable(cap GlCapability) {
	if !s.Caps[cap] {
		return
	}
	gl.Disable(uint32(cap))
	s.Caps[cap] = false
}

// SetEnabled enables exactly the given capabilities and disables every other one.
func (s *GlStateManager) SetEnabled(caps ...GlCapability) {
	want := make(map[GlCapability]bool, len(caps))
	for _, c := range caps {
		want[c] = true
	}
	for c, on := range s.Caps {
		if on && !want[c] && !persistentCaps[c] {
			s.Disable(c)
		}
	}
	for c := range want {
		s.Enable(c)
	}
}

func (s *GlStateManager) BlendFunc(sfactor, dfactor GlBlendFactor) {
	if s.BlendFactorSrc == sfactor && s.BlendFactorDst == dfactor {
		return
	}
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
	s.BlendFactorSrc = sfactor
	s.BlendFactorDst = dfactor
}

func (s *GlStateManager) BlendEquation(mode GlBlendEquation) {
	if s.BlendEquationMode == mode {
		return
	}
	gl.BlendEquation(uint32(mode))
	s.BlendEquationMode = mode
}

func (s *GlStateManager) DepthFunc(fn GlDepthFunc) {
	if s.DepthFuncFn == fn {
		return
	}
	gl.DepthFunc(uint32(fn))
	s.DepthFuncFn = fn
}

func (s *GlStateManager) DepthMask(flag bool) {
	if s.DepthWriteMask == flag {
		return
	}
	gl.DepthMask(flag)
	s.DepthWriteMask = flag
}

// Wireframe switches the rasterization of both faces between lines and filled polygons.
func (s *GlStateManager) Wireframe(enabled bool) {
	mode := uint32(gl.FILL)
	if enabled {
		mode = gl.LINE
	}
	if s.RasterMode == mode {
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
	s.RasterMode = mode
}

func (s *GlStateManager) PolygonOffset(factor, units float32) {
	if s.PolygonOffsets[0] == factor && s.PolygonOffsets[1] == units {
		return
	}
	gl.PolygonOffset(factor, units)
	s.PolygonOffsets = [2]float32{factor, units}
}

func (s *GlStateManager) BindTexture(target uint32, texture uint32) {
	if s.TextureUnits[s.ActiveTextureUnit] == texture {
		return
	}
	gl.BindTexture(target, texture)
	s.TextureUnits[s.ActiveTextureUnit] = texture
}

func (s *GlStateManager) ActiveTexture(unit int) {
	if s.ActiveTextureUnit == unit {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	s.ActiveTextureUnit = unit
}

func (s *GlStateManager) BindSampler(unit int, sampler uint32) {
	if s.SamplerUnits[unit] == sampler {
		return
	}
	gl.BindSampler(uint32(unit), sampler)
	s.SamplerUnits[unit] = sampler
}

func (s *GlStateManager) BindProgramPipeline(pipeline uint32) {
	if s.ProgramPipeline == pipeline {
		return
	}
	gl.BindProgramPipeline(pipeline)
	s.ProgramPipeline = pipeline
}

func (s *GlStateManager) BindVertexArray(array uint32) {
	if s.VertexArray == array {
		return
	}
	gl.BindVertexArray(array)
	s.VertexArray = array
}

func (s *GlStateManager) Viewport(x, y, w, h int) {
	if s.ViewportRect == [4]int{x, y, w, h} {
		return
	}
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
	s.ViewportRect = [4]int{x, y, w, h}
}

func (s *GlStateManager) Scissor(x, y, w, h int) {
	if s.ScissorRect == [4]int{x, y, w, h} {
		return
	}
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
	s.ScissorRect = [4]int{x, y, w, h}
}

func (s *GlStateManager) ClearColor(r, g, b, a float32) {
	if s.ClearColorRGBA == [4]float32{r, g, b, a} {
		return
	}
	gl.ClearColor(r, g, b, a)
	s.ClearColorRGBA = [4]float32{r, g, b, a}
}
