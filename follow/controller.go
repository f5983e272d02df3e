package follow

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame describes what happened to a camera during one update.
type Frame struct {
	Tracking
	InDeadZone bool
	Centered   bool
	Moved      bool
	Phase      Phase
}

// Advance runs the dead-zone and travel state machine against the look-at
// point computed by Track and returns the new camera position. Only x and y
// are ever written.
func Advance(s *State, camera, target r3.Vec, moving bool, dt float64) (r3.Vec, Frame) {
	var f Frame
	if s == nil {
		return camera, f
	}

	diffX := math.Abs(target.X - camera.X)
	diffY := math.Abs(target.Y - camera.Y)
	dz := s.params.DeadZone
	f.InDeadZone = diffX <= dz.X && diffY <= dz.Y
	limit := s.params.CenteredThreshold
	f.Centered = diffX < limit && diffY < limit
	s.centered = f.Centered

	if dt <= 0 {
		f.Phase = s.Phase()
		return camera, f
	}

	if f.InDeadZone && !f.Centered && !moving && !s.traveling {
		s.settle.Tick(dt)
	} else {
		s.settle.Reset()
	}

	if !f.InDeadZone {
		s.traveling = true
	}

	if s.traveling || s.settle.Finished() {
		camera.X += (s.lookAt.X - camera.X) * s.params.Lerp
		camera.Y += (s.lookAt.Y - camera.Y) * s.params.Lerp
		f.Moved = true

		if f.Centered && !moving {
			s.traveling = false
		}
	}

	f.Phase = s.Phase()
	return camera, f
}

// Step is the full per-frame transition: track the target, then advance the
// camera toward the new look-at point.
func Step(s *State, camera, target r3.Vec, dt float64) (r3.Vec, Frame) {
	tr := Track(s, target, dt)
	next, f := Advance(s, camera, target, tr.Moving, dt)
	f.Tracking = tr
	return next, f
}
