package partycle

import (
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten/color"
)

// Lerper does a linear interpolation between lhs and rhs using
// the factor f. A value for f of 0 returns lhs, a value of 1 returns rhs.
type Lerper[T any] func(f float64, lhs, rhs T) T

func LerpVec(f float64, lhs, rhs gm.Vec) gm.Vec {
	return lhs.Add(rhs.Sub(lhs).Mul(f))
}

func LerpFloat[T ~float32 | ~float64](f float64, lhs, rhs T) T {
	return (rhs-lhs)*T(f) + lhs
}

func LerpColor(f float64, lhs, rhs color.Color) color.Color {
	return lhs.Lerp(rhs, float32(f))
}

// Curve maps the age of a particle in the range [0, 1] to a value.
type Curve[T any] struct {
	// Without a Lerper, the value of the closest
	// preceding point of the curve is used.
	Lerper Lerper[T]

	Values []CurveValue[T]
}

type CurveValue[T any] struct {
	Time  float64
	Value T
}

func (c Curve[T]) HasValues() bool {
	return len(c.Values) > 0
}

func (c Curve[T]) ValueAt(t float64) T {
	if len(c.Values) == 0 {
		var zeroValue T
		return zeroValue
	}

	first, last := c.Values[0], c.Values[len(c.Values)-1]

	if t <= first.Time {
		return first.Value
	}

	if t >= last.Time {
		return last.Value
	}

	for idx := 0; idx < len(c.Values)-1; idx++ {
		lhs, rhs := c.Values[idx], c.Values[idx+1]
		if t >= rhs.Time {
			continue
		}

		if c.Lerper == nil || rhs.Time <= lhs.Time {
			return lhs.Value
		}

		f := (t - lhs.Time) / (rhs.Time - lhs.Time)
		return c.Lerper(f, lhs.Value, rhs.Value)
	}

	return last.Value
}

func StaticValueCurve[T any](value T) Curve[T] {
	return Curve[T]{
		Values: []CurveValue[T]{{Value: value}},
	}
}

// EquidistantCurve spreads the values evenly over the range [0, 1].
func EquidistantCurve[T any](lerper Lerper[T], firstValue, secondValue T, values ...T) Curve[T] {
	all := append([]T{firstValue, secondValue}, values...)

	divider := float64(len(all) - 1)

	curveValues := make([]CurveValue[T], 0, len(all))
	for idx, value := range all {
		curveValues = append(curveValues, CurveValue[T]{
			Time:  float64(idx) / divider,
			Value: value,
		})
	}

	return Curve[T]{
		Lerper: lerper,
		Values: curveValues,
	}
}
