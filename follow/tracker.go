package follow

import "gonum.org/v1/gonum/spatial/r3"

// Tracking is the tracker's output for one frame.
type Tracking struct {
	Velocity r3.Vec
	Moving   bool
	LookAt   r3.Vec
}

// Track derives the target velocity from the previously observed position
// and updates the look-at point. A zero displacement never divides by dt.
func Track(s *State, target r3.Vec, dt float64) Tracking {
	if s == nil {
		return Tracking{LookAt: target}
	}

	var out Tracking
	delta := r3.Sub(target, s.prev)
	if delta != (r3.Vec{}) && dt > 0 {
		out.Moving = true
		out.Velocity = r3.Scale(1/dt, delta)
	}

	out.LookAt = r3.Add(target, mulElem(out.Velocity, s.params.AheadFactor))
	s.lookAt = out.LookAt
	s.prev = target
	return out
}

func mulElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}
