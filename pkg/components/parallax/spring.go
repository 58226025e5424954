package parallax

import (
	"strconv"

	"github.com/recera/haven/pkg/view"
)

const (
	// Damp is the per-frame smoothing factor for every spring
	Damp = 0.15

	RotationGain = 14
	MaxPitch     = 16
	MaxYaw       = 18

	// OrientationRange is the tilt, in degrees, that maps to a full offset
	OrientationRange = 40
	OrientationGain  = 0.6
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Spring smooths the raw pointer offset and derives the scene rotation from
// it. X and Y follow the pointer; RX (pitch) and RY (yaw) are degrees.
type Spring struct {
	X, Y   float64
	RX, RY float64
}

// Step advances the spring one frame toward the raw offset
func (s *Spring) Step(rawX, rawY float64) {
	s.X += (rawX - s.X) * Damp
	s.Y += (rawY - s.Y) * Damp

	targetRX := Clamp(s.Y*-RotationGain, -MaxPitch, MaxPitch)
	targetRY := Clamp(s.X*RotationGain, -MaxYaw, MaxYaw)

	s.RX += (targetRX - s.RX) * Damp
	s.RY += (targetRY - s.RY) * Damp
}

// Normalize maps a client point to its offset from the centre of r, as a
// fraction of r's size. Points inside r land in [-0.5, 0.5].
func Normalize(r view.Rect, x, y float64) (float64, float64) {
	if r.Width == 0 || r.Height == 0 {
		return 0, 0
	}
	cx, cy := r.Center()
	return (x - cx) / r.Width, (y - cy) / r.Height
}

// FromOrientation converts device tilt to a pointer offset. Tilting the top
// of the device away moves the scene up.
func FromOrientation(gamma, beta float64) (float64, float64) {
	gx := Clamp(gamma/OrientationRange, -1, 1)
	gy := Clamp(beta/OrientationRange, -1, 1)
	return gx * OrientationGain, gy * -OrientationGain
}

func num(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SceneTransform shifts and tilts the whole scene
func SceneTransform(rx, ry, tx, ty float64) string {
	return "translateX(" + num(tx*8) + "px) translateY(" + num(ty*8) + "px) rotateX(" +
		num(rx) + "deg) rotateY(" + num(ry) + "deg)"
}

// LayerTransform moves a house layer against the pointer and pushes it out by
// its depth
func LayerTransform(depth, tx, ty float64) string {
	return "translate3d(" + num(tx*depth*-20) + "px, " + num(ty*depth*-20) + "px, " + num(depth*100) + "px)"
}

// MoonTransform counter-translates the moon and rolls it with the yaw
func MoonTransform(tx, ty, ry float64) string {
	return "translate3d(" + num(tx*-30) + "px, " + num(ty*-20) + "px, 0) rotate(" + num(ry*-5) + "deg)"
}

// StarTransform drifts a star; near stars (high depth) move the most
func StarTransform(depth, tx, ty float64) string {
	return "translate3d(" + num(tx*depth*15) + "px, " + num(ty*depth*10) + "px, 0)"
}
