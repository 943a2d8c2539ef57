package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBountyAnchors(t *testing.T) {
	assert.Equal(t, int64(0), BountyForLevel(0))
	assert.Equal(t, int64(3_000_000_000), BountyForLevel(50))
}

func TestBountyExactAtCheckpoints(t *testing.T) {
	for _, cp := range bountyCheckpoints {
		assert.Equal(t, cp.Value, BountyForLevel(cp.Level), "checkpoint level %d", cp.Level)
	}
}

func TestBountyLinearBetweenCheckpoints(t *testing.T) {
	// Midpoint between (40, 1_057_000_000) and (45, 1_500_000_000): the span
	// is odd so the interpolation floors.
	low, high := BountyForLevel(40), BountyForLevel(45)
	mid := BountyForLevel(42)
	expected := low + 2*(high-low)/5
	assert.Equal(t, expected, mid)

	// (1, 1_000_000) .. (5, 10_000_000) at level 3.
	assert.Equal(t, int64(1_000_000+2*(10_000_000-1_000_000)/4), BountyForLevel(3))
}

func TestBountyClamps(t *testing.T) {
	assert.Equal(t, int64(0), BountyForLevel(-7))
	assert.Equal(t, int64(3_000_000_000), BountyForLevel(120))
}

func TestBountyMonotonic(t *testing.T) {
	prev := int64(-1)
	for level := -5; level <= 120; level++ {
		v := BountyForLevel(level)
		assert.GreaterOrEqual(t, v, prev, "bounty decreased at level %d", level)
		prev = v
	}
}
