package libdraw

import (
	"simplegl/libgl"
	"simplegl/libutil"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// 3 floats position + 3 floats color + 3 floats normal
const vertexFloats = 3 + 3 + 3
const vertexStride = vertexFloats * 4

// DirectBuffer collects triangles on the cpu and draws them all at once.
// The view and projection uniforms of the vertex stage are expected to be set by the camera.
type DirectBuffer struct {
	vao       libgl.UnboundVertexArray
	vbo       libgl.UnboundBuffer
	shader    libgl.UnboundShaderPipeline
	data      []float32
	color     mgl32.Vec3
	stroke    float32
	shaded    bool
	autoShade bool
	normal    mgl32.Vec3
}

func NewDirectDrawBuffer(shader libgl.UnboundShaderPipeline) *DirectBuffer {
	vao := libgl.NewVertexArray()
	vao.Attribute(0, 0, 3, gl.FLOAT, false, 0)
	vao.Attribute(0, 1, 3, gl.FLOAT, false, 3*4)
	vao.Attribute(0, 2, 3, gl.FLOAT, false, 6*4)
	vao.SetDebugLabel("direct_draw")
	vbo := libgl.NewBuffer()
	vbo.Storage(1e6, gl.DYNAMIC_STORAGE_BIT)
	vbo.SetDebugLabel("direct_draw")
	vao.VertexBuffer(0, vbo, 0, vertexStride)

	db := newDirectBuffer()
	db.vao = vao
	db.vbo = vbo
	db.shader = shader
	return db
}

func newDirectBuffer() *DirectBuffer {
	return &DirectBuffer{
		data:   []float32{},
		color:  mgl32.Vec3{1, 1, 1},
		stroke: 0.05,
	}
}

func (db *DirectBuffer) Stroke(width float32) {
	db.stroke = width
}

func (db *DirectBuffer) Shaded() {
	db.shaded = true
}

func (db *DirectBuffer) Unshaded() {
	db.shaded = false
}

func (db *DirectBuffer) Color(r, g, b float32) {
	db.color[0] = r
	db.color[1] = g
	db.color[2] = b
}

func (db *DirectBuffer) Color3(c mgl32.Vec3) {
	db.Color(c[0], c[1], c[2])
}

func (db *DirectBuffer) Vert(pos mgl32.Vec3) {
	var normal mgl32.Vec3
	if db.shaded {
		normal = db.normal
	}
	db.data = append(db.data, pos[0], pos[1], pos[2], db.color[0], db.color[1], db.color[2], normal[0], normal[1], normal[2])
}

// VertexCount is the number of vertices queued since the last Draw or Clear.
func (db *DirectBuffer) VertexCount() int {
	return len(db.data) / vertexFloats
}

// A--B
// | /
// C
func (db *DirectBuffer) Tri(a, b, c mgl32.Vec3) {
	if db.shaded && db.autoShade {
		ab := b.Sub(a)
		ac := c.Sub(a)
		db.normal = ab.Cross(ac).Normalize()
	}
	db.Vert(a)
	db.Vert(c)
	db.Vert(b)
}

// A--B
// |  |
// C--D
func (db *DirectBuffer) Quad(a, b, c, d mgl32.Vec3) {
	db.Tri(a, b, c)
	db.Tri(d, c, b)
}

// A--B, drawn as two crossed quads of stroke width
func (db *DirectBuffer) Line(a, b mgl32.Vec3) {
	v := b.Sub(a)
	normal := libutil.Perpendicular(v).Normalize().Mul(db.stroke / 2)
	bitangent := normal.Cross(v).Normalize().Mul(db.stroke / 2)
	db.Quad(a.Add(normal), b.Add(normal), a.Sub(normal), b.Sub(normal))
	db.Quad(a.Add(bitangent), b.Add(bitangent), a.Sub(bitangent), b.Sub(bitangent))
}

// Box draws the solid axis aligned box spanned by min and max.
func (db *DirectBuffer) Box(min, max mgl32.Vec3) {
	c := boxCorners(min, max)
	// -x, +x, -y, +y, -z, +z
	db.normal = mgl32.Vec3{-1, 0, 0}
	db.Quad(c[2], c[6], c[0], c[4])
	db.normal = mgl32.Vec3{1, 0, 0}
	db.Quad(c[7], c[3], c[5], c[1])
	db.normal = mgl32.Vec3{0, -1, 0}
	db.Quad(c[0], c[4], c[1], c[5])
	db.normal = mgl32.Vec3{0, 1, 0}
	db.Quad(c[6], c[2], c[7], c[3])
	db.normal = mgl32.Vec3{0, 0, -1}
	db.Quad(c[3], c[2], c[1], c[0])
	db.normal = mgl32.Vec3{0, 0, 1}
	db.Quad(c[6], c[7], c[4], c[5])
}

// BoxLine draws the twelve edges of the axis aligned box spanned by min and max.
func (db *DirectBuffer) BoxLine(min, max mgl32.Vec3) {
	c := boxCorners(min, max)
	for i := 0; i < 8; i++ {
		// each edge joins two corners that differ in a single axis
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				db.Line(c[i], c[i|bit])
			}
		}
	}
}

// corner i has max.x if bit 0 is set, max.y for bit 1 and max.z for bit 2
func boxCorners(min, max mgl32.Vec3) [8]mgl32.Vec3 {
	var c [8]mgl32.Vec3
	for i := range c {
		c[i] = min
		if i&1 != 0 {
			c[i][0] = max[0]
		}
		if i&2 != 0 {
			c[i][1] = max[1]
		}
		if i&4 != 0 {
			c[i][2] = max[2]
		}
	}
	return c
}

// Grid draws cells x cells squares on the xz plane through center, spanning extent in each direction.
func (db *DirectBuffer) Grid(center mgl32.Vec3, extent float32, cells int) {
	if cells <= 0 {
		return
	}
	step := 2 * extent / float32(cells)
	for i := 0; i <= cells; i++ {
		offset := -extent + float32(i)*step
		db.Line(center.Add(mgl32.Vec3{offset, 0, -extent}), center.Add(mgl32.Vec3{offset, 0, extent}))
		db.Line(center.Add(mgl32.Vec3{-extent, 0, offset}), center.Add(mgl32.Vec3{extent, 0, offset}))
	}
}

// Axes draws the x, y and z axis in red, green and blue.
func (db *DirectBuffer) Axes(origin mgl32.Vec3, length float32) {
	color := db.color
	db.Color(1, 0, 0)
	db.Line(origin, origin.Add(mgl32.Vec3{length, 0, 0}))
	db.Color(0, 1, 0)
	db.Line(origin, origin.Add(mgl32.Vec3{0, length, 0}))
	db.Color(0, 0, 1)
	db.Line(origin, origin.Add(mgl32.Vec3{0, 0, length}))
	db.color = color
}

func (db *DirectBuffer) circleSides(r float32) int {
	return 24 + (int)(0.6*r)
}

// center, normal, radius
func (db *DirectBuffer) CircleLine(c, n mgl32.Vec3, r float32) {
	db.RegularPolyLine(c, n, r, db.circleSides(r))
}

// center, normal, radius, sides
func (db *DirectBuffer) RegularPolyLine(c, n mgl32.Vec3, r float32, s int) {
	db.normal = n.Normalize()
	step := 2 * math32.Pi / float32(s)
	r0, r1 := r-db.stroke/2, r+db.stroke/2
	rot := mgl32.HomogRotate3D(step, n.Normalize()).Mat3()
	v0 := libutil.Perpendicular(n).Normalize()
	for i := 0; i < s; i++ {
		v1 := rot.Mul3x1(v0)
		db.Quad(c.Add(v0.Mul(r0)), c.Add(v0.Mul(r1)), c.Add(v1.Mul(r0)), c.Add(v1.Mul(r1)))
		v0 = v1
	}
}

// center, radius
func (db *DirectBuffer) UvSphere(c mgl32.Vec3, r float32) {
	db.autoShade = true
	rings, segments := db.circleSides(r)/2, db.circleSides(r)

	dTheta := math32.Pi / float32(rings)
	dPhi := -math32.Pi / float32(segments)

	prevRing := make([]mgl32.Vec3, segments)
	currRing := make([]mgl32.Vec3, segments)

	for ring := 0; ring < rings+1; ring++ {
		theta := float32(ring) * dTheta
		for segment := 0; segment < segments; segment++ {
			phi := 2 * float32(segment) * dPhi
			x := r * math32.Sin(theta) * math32.Cos(phi)
			y := r * math32.Cos(theta)
			z := r * math32.Sin(theta) * math32.Sin(phi)
			currRing[segment] = c.Add(mgl32.Vec3{x, y, z})
			if segment > 0 && ring > 0 {
				db.Quad(currRing[segment-1], currRing[segment], prevRing[segment-1], prevRing[segment])
			}
		}
		if ring > 0 {
			db.Quad(currRing[segments-1], currRing[0], prevRing[segments-1], prevRing[0])
		}
		currRing, prevRing = prevRing, currRing
	}
	db.autoShade = false
}

// Draw uploads and renders everything queued, then clears the buffer.
func (db *DirectBuffer) Draw(camPos mgl32.Vec3) {
	if len(db.data) == 0 {
		return
	}

	bufferSize := len(db.data) * 4
	if db.vbo.Grow(bufferSize) {
		db.vao.RefreshVertexBuffer(0, db.vbo)
	}
	db.vbo.Write(0, db.data)

	db.vao.Bind()
	db.shader.Bind()
	db.shader.FragmentStage().SetUniform("u_camera_position", camPos)
	libgl.State.SetEnabled(libgl.DepthTest, libgl.PolygonOffsetFill)
	libgl.State.DepthFunc(libgl.DepthFuncLess)
	libgl.State.DepthMask(true)
	libgl.State.PolygonOffset(-1, -1)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(db.VertexCount()))

	db.Clear()
}

func (db *DirectBuffer) Clear() {
	db.data = db.data[0:0]
}

func (db *DirectBuffer) Delete() {
	db.vao.Delete()
	db.vbo.Delete()
}
