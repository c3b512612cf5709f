package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomUnitVec returns a vector of length one pointing in a random direction.
func RandomUnitVec() Vec {
	return VecFromAngle(RandomAngle(), 1)
}
