package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	assert.Equal(t, 480, ParseClock("08:00"))
	assert.Equal(t, 485, ParseClock("8:05"))
	assert.Equal(t, 0, ParseClock(""))
	assert.Equal(t, 30, ParseClock("ab:30"))
	assert.Equal(t, 540, ParseClock("9:xx"))
	assert.Equal(t, 420, ParseClock("7"))
	assert.Equal(t, 0, ParseClock(":"))
}

func TestDurationClampsNegative(t *testing.T) {
	assert.Equal(t, 90, Duration("08:00", "09:30"))
	assert.Equal(t, 0, Duration("10:00", "09:00"))
	assert.Equal(t, 0, Duration("09:00", "09:00"))
	assert.Equal(t, 0, Duration("garbage", "garbage"))
}

func TestOverlapsHalfOpen(t *testing.T) {
	// Touching boundaries do not overlap.
	assert.False(t, Overlaps(8*60, 9*60, 9*60, 10*60))
	assert.True(t, Overlaps(8*60, 10*60, 9*60, 9*60+30))

	// Symmetry.
	assert.Equal(t,
		Overlaps(480, 570, 540, 600),
		Overlaps(540, 600, 480, 570),
	)

	// Containment.
	assert.True(t, Overlaps(480, 660, 500, 520))
	assert.False(t, Overlaps(480, 480, 480, 600))
}
