package follow

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// TargetRef identifies the tracked entity. The follow package never resolves
// it; the host looks it up each frame.
type TargetRef uint64

// Phase is the logical camera state derived from the traveling flag and the
// settle timer.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSettling
	PhaseTraveling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSettling:
		return "settling"
	case PhaseTraveling:
		return "traveling"
	default:
		return "unknown"
	}
}

// State binds one camera to one target.
type State struct {
	target    TargetRef
	params    Params
	prev      r3.Vec
	lookAt    r3.Vec
	traveling bool
	settle    SettleTimer
	centered  bool
}

// Bind creates a state with the default settle delay and interpolation
// constants.
func Bind(target TargetRef, deadZone r2.Vec, aheadFactor r3.Vec) *State {
	p := DefaultParams()
	p.DeadZone = deadZone
	p.AheadFactor = aheadFactor
	return newState(target, p)
}

func BindDefault(target TargetRef) *State {
	return newState(target, DefaultParams())
}

func BindParams(target TargetRef, p Params) (*State, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("follow: bind target=%d: %w", target, err)
	}
	return newState(target, p), nil
}

func newState(target TargetRef, p Params) *State {
	return &State{
		target: target,
		params: p,
		settle: NewSettleTimer(p.SettleDelay),
	}
}

// Center snaps the camera onto the target in the x/y plane and seeds the
// tracker so the first frame sees no motion.
func (s *State) Center(camera, target r3.Vec) r3.Vec {
	if s == nil {
		return camera
	}
	camera.X = target.X
	camera.Y = target.Y
	s.prev = target
	s.lookAt = target
	s.centered = true
	return camera
}

// Retune swaps the tuning parameters. The target binding is never changed.
func (s *State) Retune(p Params) error {
	if s == nil {
		return nil
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("follow: retune target=%d: %w", s.target, err)
	}
	s.params = p
	s.settle.SetDuration(p.SettleDelay)
	return nil
}

func (s *State) Target() TargetRef {
	return s.target
}

func (s *State) DeadZone() r2.Vec {
	return s.params.DeadZone
}

func (s *State) AheadFactor() r3.Vec {
	return s.params.AheadFactor
}

func (s *State) Params() Params {
	return s.params
}

func (s *State) LookAt() r3.Vec {
	return s.lookAt
}

func (s *State) PrevTargetPosition() r3.Vec {
	return s.prev
}

func (s *State) Traveling() bool {
	return s.traveling
}

func (s *State) Settle() SettleTimer {
	return s.settle
}

// Centered reports whether the camera was centered on the target during the
// last evaluated frame.
func (s *State) Centered() bool {
	return s.centered
}

func (s *State) Phase() Phase {
	switch {
	case s.traveling:
		return PhaseTraveling
	case s.settle.Phase() != TimerUnarmed:
		return PhaseSettling
	default:
		return PhaseIdle
	}
}
