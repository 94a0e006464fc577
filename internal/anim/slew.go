// Package anim provides the position animator used by the list: a
// bounded linear approach ("slew") that moves a value toward its target
// at a fixed maximum rate per second. Unlike a spring it cannot
// overshoot and reaches the target exactly in a finite number of steps.
package anim

// Slew advances current toward target by at most dt*rate, never past it.
func Slew(current, target, dt, rate float64) float64 {
	diff := target - current
	if diff == 0 {
		return current
	}
	step := dt * rate
	if step < 0 {
		step = 0
	}
	if diff > 0 {
		if step > diff {
			step = diff
		}
		return current + step
	}
	if step > -diff {
		step = -diff
	}
	return current - step
}

// Pair tracks an animated scalar: the value currently displayed and the
// value the layout wants it to reach.
type Pair struct {
	Current float64
	Target  float64
}

// Snap sets both sides of the pair to v, ending any animation.
func (p *Pair) Snap(v float64) {
	p.Current = v
	p.Target = v
}

// Update slews Current toward Target for an elapsed time of dt seconds.
func (p *Pair) Update(dt, rate float64) {
	p.Current = Slew(p.Current, p.Target, dt, rate)
}

// Settled reports whether the pair has reached its target.
func (p Pair) Settled() bool {
	return p.Current == p.Target
}
