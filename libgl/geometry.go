package libgl

import (
	"encoding/binary"
	"log"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// UnboundBuffer is an immutable storage buffer. Its contents can be rewritten, its size only
// changes through Grow which replaces the underlying gl object.
type UnboundBuffer interface {
	LabeledGlObject
	Id() uint32
	Storage(size int, flags uint32)
	Grow(size int) bool
	Write(offset int, data any)
	Size() int
	Delete()
}

type buffer struct {
	glId  uint32
	size  int
	flags uint32
	label string
}

func NewBuffer() UnboundBuffer {
	b := &buffer{}
	gl.CreateBuffers(1, &b.glId)
	return b
}

func (b *buffer) Id() uint32 {
	return b.glId
}

func (b *buffer) Size() int {
	return b.size
}

func (b *buffer) SetDebugLabel(label string) {
	b.label = label
	setObjectLabel(gl.BUFFER, b.glId, label)
}

// Storage allocates size bytes of uninitialized storage. It can only be called once.
func (b *buffer) Storage(size int, flags uint32) {
	if b.size != 0 {
		log.Panicf("buffer %d already has storage", b.glId)
	}
	if size <= 0 {
		log.Panicf("buffer %d storage size must be positive, got %d", b.glId, size)
	}
	gl.NamedBufferStorage(b.glId, size, nil, flags)
	b.size = size
	b.flags = flags
}

// Grow replaces the buffer with a larger one when it cannot hold size bytes and copies the old contents.
// It reports whether the id changed, vertex arrays referencing the old id have to be refreshed then.
func (b *buffer) Grow(size int) bool {
	if size <= b.size {
		return false
	}
	capacity := GrowSize(b.size, size)

	var id uint32
	gl.CreateBuffers(1, &id)
	gl.NamedBufferStorage(id, capacity, nil, b.flags)
	if b.size > 0 {
		gl.CopyNamedBufferSubData(b.glId, id, 0, 0, b.size)
	}
	gl.DeleteBuffers(1, &b.glId)
	b.glId = id
	b.size = capacity
	if b.label != "" {
		setObjectLabel(gl.BUFFER, b.glId, b.label)
	}
	return true
}

// GrowSize is the capacity a buffer of current bytes grows to when it has to hold required bytes.
// Small buffers double, large ones grow by a quarter until they fit.
func GrowSize(current, required int) int {
	if required > 2*current {
		return required
	}
	// 16 KiB holds 256 mat4
	if current < 16_384 {
		return 2 * current
	}
	capacity := current
	for capacity < required {
		capacity += capacity / 4
	}
	return capacity
}

func (b *buffer) Write(offset int, data any) {
	size := binary.Size(data)
	if size < 0 {
		log.Panicf("%T does not have a fixed size", data)
	}
	if offset+size > b.size {
		log.Panicf("write of %d bytes at %d overflows buffer %d of %d bytes", size, offset, b.glId, b.size)
	}
	if size == 0 {
		return
	}
	gl.NamedBufferSubData(b.glId, offset, size, Pointer(data))
}

func (b *buffer) Delete() {
	gl.DeleteBuffers(1, &b.glId)
	b.glId = 0
	b.size = 0
}

type UnboundVertexArray interface {
	LabeledGlObject
	Id() uint32
	Attribute(binding, location, components int, dataType uint32, normalized bool, offset int)
	VertexBuffer(binding int, vbo UnboundBuffer, offset, stride int)
	RefreshVertexBuffer(binding int, vbo UnboundBuffer)
	ElementBuffer(ebo UnboundBuffer)
	Bind() BoundVertexArray
	Delete()
}

type BoundVertexArray interface {
	UnboundVertexArray
}

type vertexBinding struct {
	offset, stride int
}

type vertexArray struct {
	glId     uint32
	bindings map[int]vertexBinding
}

func NewVertexArray() UnboundVertexArray {
	vao := &vertexArray{bindings: map[int]vertexBinding{}}
	gl.CreateVertexArrays(1, &vao.glId)
	return vao
}

func (vao *vertexArray) Id() uint32 {
	return vao.glId
}

func (vao *vertexArray) SetDebugLabel(label string) {
	setObjectLabel(gl.VERTEX_ARRAY, vao.glId, label)
}

func (vao *vertexArray) Bind() BoundVertexArray {
	State.BindVertexArray(vao.glId)
	return vao
}

// Attribute enables the attribute at location and sources it from the given buffer binding.
func (vao *vertexArray) Attribute(binding, location, components int, dataType uint32, normalized bool, offset int) {
	gl.EnableVertexArrayAttrib(vao.glId, uint32(location))
	gl.VertexArrayAttribFormat(vao.glId, uint32(location), int32(components), dataType, normalized, uint32(offset))
	gl.VertexArrayAttribBinding(vao.glId, uint32(location), uint32(binding))
}

func (vao *vertexArray) VertexBuffer(binding int, vbo UnboundBuffer, offset, stride int) {
	vao.bindings[binding] = vertexBinding{offset, stride}
	gl.VertexArrayVertexBuffer(vao.glId, uint32(binding), vbo.Id(), offset, int32(stride))
}

// RefreshVertexBuffer attaches vbo with the offset and stride of the previous VertexBuffer call, used after Grow.
func (vao *vertexArray) RefreshVertexBuffer(binding int, vbo UnboundBuffer) {
	b, ok := vao.bindings[binding]
	if !ok {
		log.Panicf("binding %d of vertex array %d was never set", binding, vao.glId)
	}
	vao.VertexBuffer(binding, vbo, b.offset, b.stride)
}

func (vao *vertexArray) ElementBuffer(ebo UnboundBuffer) {
	gl.VertexArrayElementBuffer(vao.glId, ebo.Id())
}

func (vao *vertexArray) Delete() {
	gl.DeleteVertexArrays(1, &vao.glId)
	vao.glId = 0
}
