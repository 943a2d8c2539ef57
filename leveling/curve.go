package leveling

import (
	"math"

	"level-bot/model"
)

// Curve shapes.
const (
	ShapeLinear      = "linear"
	ShapeLogarithmic = "logarithmic"
	ShapeExponential = "exponential"
)

// Default curve parameters, used when the config omits them.
const (
	DefaultShape      = ShapeExponential
	DefaultMultiplier = 1.75
	DefaultMaxLevel   = 50
)

// Curve is a pure bidirectional mapping between accumulated XP and a discrete
// level. Because both directions floor their result, XPForLevel(LevelForXP(xp))
// generally differs from xp; stored progress depends on that, so the rounding
// must not be "fixed".
type Curve struct {
	Shape      string
	Multiplier float64
	MaxLevel   int
}

// NewCurve builds a curve from config, falling back to defaults for missing
// or unknown values.
func NewCurve(cfg model.CurveConfig) Curve {
	c := Curve{Shape: cfg.Shape, Multiplier: cfg.Multiplier, MaxLevel: cfg.MaxLevel}
	switch c.Shape {
	case ShapeLinear, ShapeLogarithmic, ShapeExponential:
	default:
		c.Shape = DefaultShape
	}
	if c.Multiplier <= 0 {
		c.Multiplier = DefaultMultiplier
	}
	if c.MaxLevel <= 0 {
		c.MaxLevel = DefaultMaxLevel
	}
	return c
}

// LevelForXP returns the level reached at xp, clamped to [0, MaxLevel].
func (c Curve) LevelForXP(xp int64) int {
	if xp <= 0 {
		return 0
	}
	x := float64(xp)
	var level int
	switch c.Shape {
	case ShapeLinear:
		level = int(math.Floor(x / (1000 * c.Multiplier)))
	case ShapeLogarithmic:
		level = int(math.Floor(math.Log(x/100+1) * c.Multiplier))
	default: // exponential
		level = int(math.Floor(math.Sqrt(x/100) * c.Multiplier))
	}
	if level < 0 {
		level = 0
	}
	if level > c.MaxLevel {
		level = c.MaxLevel
	}
	return level
}

// XPForLevel returns the XP required to reach level, clamping the input to
// [0, MaxLevel].
func (c Curve) XPForLevel(level int) int64 {
	if level <= 0 {
		return 0
	}
	if level > c.MaxLevel {
		level = c.MaxLevel
	}
	l := float64(level)
	switch c.Shape {
	case ShapeLinear:
		return int64(math.Floor(l * 1000 * c.Multiplier))
	case ShapeLogarithmic:
		return int64(math.Floor((math.Exp(l/c.Multiplier) - 1) * 100))
	default: // exponential
		return int64(math.Floor(math.Pow(l/c.Multiplier, 2) * 100))
	}
}
