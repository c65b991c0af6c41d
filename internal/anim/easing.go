package anim

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float32) float32

// Standard is the Material standard curve, cubic-bezier(0.4, 0, 0.2, 1).
var Standard = CubicBezier(0.4, 0, 0.2, 1)

// Linear performs no easing.
func Linear(t float32) float32 {
	return t
}

// CubicBezier returns the easing of the CSS cubic-bezier(x1, y1, x2, y2) timing function.
// The end points are fixed at (0, 0) and (1, 1).
func CubicBezier(x1, y1, x2, y2 float32) Easing {
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(solveX(t, x1, x2), y1, y2)
	}
}

// solveX finds the curve parameter u for which x(u) == x.
func solveX(x, x1, x2 float32) float32 {
	const epsilon = 1e-5

	// Newton's method converges quickly for well-behaved curves.
	u := x
	for i := 0; i < 8; i++ {
		dx := bezier(u, x1, x2) - x
		if abs(dx) < epsilon {
			return u
		}
		d := bezierSlope(u, x1, x2)
		if abs(d) < 1e-6 {
			break
		}
		u -= dx / d
	}

	// Fall back to bisection.
	lo, hi := float32(0), float32(1)
	u = x
	for i := 0; i < 32; i++ {
		v := bezier(u, x1, x2)
		if abs(v-x) < epsilon {
			break
		}
		if v < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func bezier(u, p1, p2 float32) float32 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float32) float32 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
