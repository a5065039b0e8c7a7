package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Accelerate1D returns v after accelerating by a for dt.
func Accelerate1D(v, a, dt float32) float32 {
	return v + a*dt
}

// Decelerate1D moves v toward zero by d*dt without passing it. The sign is
// taken from v itself, so a resting body stays at rest.
func Decelerate1D(v, d, dt float32) float32 {
	step := d * dt
	switch {
	case v > 0:
		return max(v-step, 0)
	case v < 0:
		return min(v+step, 0)
	default:
		return 0
	}
}

// sign returns -1, 0 or 1.
func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absFloat(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// reflect flips the components of v selected by axis.
func reflect(v mgl32.Vec2, flipX, flipY bool) mgl32.Vec2 {
	if flipX {
		v[0] = -v[0]
	}
	if flipY {
		v[1] = -v[1]
	}
	return v
}
