package libgl_test

import (
	"testing"

	"simplegl/libgl"

	"github.com/stretchr/testify/assert"
)

func TestGrowSize(t *testing.T) {
	tests := []struct {
		current, required, expected int
	}{
		{0, 100, 100},
		{1024, 1500, 2048},
		{1024, 5000, 5000},
		{32_768, 40_000, 40_960},
		{32_768, 70_000, 70_000},
	}
	for _, tt := range tests {
		actual := libgl.GrowSize(tt.current, tt.required)
		assert.Equal(t, tt.expected, actual, "GrowSize(%d, %d)", tt.current, tt.required)
		assert.GreaterOrEqual(t, actual, tt.required)
	}
}
