package libutil_test

import (
	"testing"

	"simplegl/libutil"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), libutil.Clamp(float32(3), 0, 1))
	assert.Equal(t, float32(0), libutil.Clamp(float32(-3), 0, 1))
	assert.Equal(t, float32(0.5), libutil.Clamp(float32(0.5), 0, 1))
	assert.Equal(t, 89, libutil.Clamp(120, -89, 89))
}

func TestPerpendicular(t *testing.T) {
	vectors := []mgl32.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, -1},
		{1, 2, 3},
		{-0.3, 0.9, 0.1},
	}
	for _, v := range vectors {
		p := libutil.Perpendicular(v)
		assert.InDelta(t, 0, p.Dot(v), 1e-5, "%v is not perpendicular to %v", p, v)
		assert.NotZero(t, p.Len())
	}
}

func TestParallel(t *testing.T) {
	assert.True(t, libutil.Parallel(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -3, 0}))
	assert.False(t, libutil.Parallel(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -1}))
}

func TestFinite(t *testing.T) {
	assert.True(t, libutil.Finite(0))
	assert.True(t, libutil.Finite(-1e30))
	assert.False(t, libutil.Finite(math32.NaN()))
	assert.False(t, libutil.Finite(math32.Inf(1)))
	assert.False(t, libutil.Finite(math32.Inf(-1)))

	assert.True(t, libutil.FiniteVec3(mgl32.Vec3{1, 2, 3}))
	assert.False(t, libutil.FiniteVec3(mgl32.Vec3{1, math32.NaN(), 3}))
	assert.False(t, libutil.FiniteVec3(mgl32.Vec3{1, 2, math32.Inf(1)}))
}
