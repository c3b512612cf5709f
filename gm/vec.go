package gm

import (
	"fmt"
	"math"
)

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

// Vec is a 2d vector.
type Vec struct {
	X, Y float64
}

// VecSplat creates a vector with both components set to the given value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

// VecFromAngle creates a vector with the given direction and length.
func VecFromAngle(angle Rad, length float64) Vec {
	return Vec{X: angle.Cos() * length, Y: angle.Sin() * length}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns the direction of the vector.
func (v Vec) Angle() Rad {
	return Rad(math.Atan2(v.Y, v.X))
}

// WithLength returns a vector with the same direction and the given length.
func (v Vec) WithLength(length float64) Vec {
	return VecFromAngle(v.Angle(), length)
}

// WithAngle returns a vector with the same length pointing in the given direction.
func (v Vec) WithAngle(angle Rad) Vec {
	return VecFromAngle(angle, v.Length())
}

// ClampLength returns the vector with its length limited to maxLength.
func (v Vec) ClampLength(maxLength float64) Vec {
	if v.LengthSqr() <= maxLength*maxLength {
		return v
	}

	return v.WithLength(maxLength)
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
