package scene

import (
	gomath "math"

	"github.com/Faultbox/wobble/pkg/math"
)

// Animator swings the figure back and forth around the X axis.
//
// Each Update moves the angle by Rate*dt in the current direction and, in
// the same step, turns it back toward zero once |angle| exceeds Bound. The
// angle may overshoot Bound by at most one step before heading back.
type Animator struct {
	Rate  float64 // Degrees per second
	Bound float64 // Degrees

	angle     float64
	direction float64
}

// NewAnimator returns an animator at angle 0 moving in the positive direction.
func NewAnimator(rate, bound float64) *Animator {
	return &Animator{
		Rate:      rate,
		Bound:     bound,
		direction: 1,
	}
}

// Update advances the swing by dt seconds.
func (a *Animator) Update(dt float64) {
	a.angle += gomath.Abs(a.Rate) * dt * a.direction
	// Point the direction inward rather than toggling it, so a step too
	// short to get back inside the bound cannot flip it outward again.
	switch {
	case a.angle > a.Bound:
		a.direction = -1
	case a.angle < -a.Bound:
		a.direction = 1
	}
}

// Angle returns the current swing angle in degrees.
func (a *Animator) Angle() float64 {
	return a.angle
}

// Direction returns +1 or -1.
func (a *Animator) Direction() int {
	return int(a.direction)
}

// ModelTransform returns the transform for the current angle.
func (a *Animator) ModelTransform() math.Mat4 {
	return ModelTransform(a.angle)
}

// ModelTransform builds the figure's model matrix for a swing angle in
// degrees. Applied to a local point it rotates about X by angle, moves
// along Z by angle/100, then turns the figure 90 degrees about Y so the
// swing plane faces the viewer.
func ModelTransform(angle float64) math.Mat4 {
	swing := math.RotateX(math.DegToRad(angle))
	shift := math.Translate(0, 0, float32(angle/100))
	turn := math.RotateY(math.DegToRad(90))
	return turn.Mul(shift).Mul(swing)
}
