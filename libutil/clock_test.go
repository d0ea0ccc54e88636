package libutil_test

import (
	"testing"
	"time"

	"simplegl/libutil"

	"github.com/stretchr/testify/assert"
)

func TestClockElapsedNonDecreasing(t *testing.T) {
	clock := libutil.NewClock()

	first := clock.Elapsed()
	time.Sleep(2 * time.Millisecond)
	second := clock.Elapsed()

	assert.GreaterOrEqual(t, first, float32(0))
	assert.GreaterOrEqual(t, second, first)
	assert.Greater(t, second, float32(0.001))
}

func TestClockRestart(t *testing.T) {
	clock := libutil.NewClock()
	time.Sleep(20 * time.Millisecond)
	assert.Greater(t, clock.Elapsed(), float32(0.015))

	clock.Restart()
	assert.Less(t, clock.Elapsed(), float32(0.015))
}

func TestClockLap(t *testing.T) {
	clock := libutil.NewClock()
	time.Sleep(10 * time.Millisecond)

	lap := clock.Lap()
	assert.Greater(t, lap, float32(0.005))
	assert.Less(t, clock.Elapsed(), lap)
}
