package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"level-bot/model"
)

func TestNewCurveDefaults(t *testing.T) {
	c := NewCurve(model.CurveConfig{})
	assert.Equal(t, ShapeExponential, c.Shape)
	assert.Equal(t, 1.75, c.Multiplier)
	assert.Equal(t, 50, c.MaxLevel)

	c = NewCurve(model.CurveConfig{Shape: "cubic", Multiplier: -2, MaxLevel: 0})
	assert.Equal(t, ShapeExponential, c.Shape)
	assert.Equal(t, 1.75, c.Multiplier)
	assert.Equal(t, 50, c.MaxLevel)
}

func TestLevelForXPExponential(t *testing.T) {
	c := Curve{Shape: ShapeExponential, Multiplier: 1.75, MaxLevel: 50}

	// floor(sqrt(400/100) * 1.75) = floor(3.5) = 3
	assert.Equal(t, 3, c.LevelForXP(400))
	assert.Equal(t, 0, c.LevelForXP(0))
	assert.Equal(t, 0, c.LevelForXP(-5))
}

func TestLevelForXPLinear(t *testing.T) {
	c := Curve{Shape: ShapeLinear, Multiplier: 1.0, MaxLevel: 50}

	assert.Equal(t, 0, c.LevelForXP(999))
	assert.Equal(t, 1, c.LevelForXP(1000))
	assert.Equal(t, 5, c.LevelForXP(5500))
	assert.Equal(t, int64(5000), c.XPForLevel(5))
}

func TestLevelForXPLogarithmic(t *testing.T) {
	c := Curve{Shape: ShapeLogarithmic, Multiplier: 2.0, MaxLevel: 50}

	assert.Equal(t, 0, c.LevelForXP(0))
	// ln(900/100 + 1) * 2 = ln(10)*2 ≈ 4.605
	assert.Equal(t, 4, c.LevelForXP(900))
}

func TestLevelForXPMonotonicAndClamped(t *testing.T) {
	curves := []Curve{
		{Shape: ShapeLinear, Multiplier: 1.0, MaxLevel: 50},
		{Shape: ShapeLogarithmic, Multiplier: 1.75, MaxLevel: 50},
		{Shape: ShapeExponential, Multiplier: 1.75, MaxLevel: 50},
	}

	for _, c := range curves {
		t.Run(c.Shape, func(t *testing.T) {
			prev := 0
			for xp := int64(0); xp <= 2_000_000; xp += 997 {
				level := c.LevelForXP(xp)
				assert.GreaterOrEqual(t, level, prev, "level must not decrease at xp=%d", xp)
				assert.GreaterOrEqual(t, level, 0)
				assert.LessOrEqual(t, level, c.MaxLevel)
				prev = level
			}
		})
	}
}

func TestXPForLevelRoundTripReaches(t *testing.T) {
	// The floor in both directions makes an exact round trip impossible, but
	// the XP reported for a level must itself map back to at least that level
	// minus the floor loss, and never to a higher one.
	c := Curve{Shape: ShapeExponential, Multiplier: 1.75, MaxLevel: 50}
	for level := 1; level <= 50; level++ {
		xp := c.XPForLevel(level)
		back := c.LevelForXP(xp)
		assert.InDelta(t, level, back, 1, "level %d (xp=%d) mapped back to %d", level, xp, back)
	}
}

func TestXPForLevelClampsInput(t *testing.T) {
	c := Curve{Shape: ShapeLinear, Multiplier: 2.0, MaxLevel: 10}
	assert.Equal(t, int64(0), c.XPForLevel(-3))
	assert.Equal(t, c.XPForLevel(10), c.XPForLevel(99))
}
