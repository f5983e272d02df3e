package follow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const frameDT = 1.0 / 60.0

func centeredState(t *testing.T, target r3.Vec) (*State, r3.Vec) {
	t.Helper()
	s := BindDefault(7)
	cam := s.Center(r3.Vec{Z: 10}, target)
	return s, cam
}

func planarDistance(a, b r3.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestBindDefaults(t *testing.T) {
	s := BindDefault(42)
	assert.Equal(t, TargetRef(42), s.Target())
	assert.Equal(t, r2.Vec{X: 30, Y: 15}, s.DeadZone())
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, s.AheadFactor())
	assert.Equal(t, 0.4, s.Settle().Duration())
	assert.Equal(t, TimerUnarmed, s.Settle().Phase())
	assert.False(t, s.Traveling())
	assert.Equal(t, r3.Vec{}, s.PrevTargetPosition())
	assert.Equal(t, PhaseIdle, s.Phase())

	custom := Bind(3, r2.Vec{X: 50, Y: 20}, r3.Vec{X: 0.8, Y: 0.8, Z: 0.8})
	assert.Equal(t, r2.Vec{X: 50, Y: 20}, custom.DeadZone())
	assert.Equal(t, DefaultLerp, custom.Params().Lerp)
	assert.Equal(t, DefaultCenteredThreshold, custom.Params().CenteredThreshold)
}

func TestBindParamsRejectsInvalid(t *testing.T) {
	p := DefaultParams()
	p.DeadZone.X = -1
	_, err := BindParams(1, p)
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestCenterSnapsCameraAndSeedsTracker(t *testing.T) {
	s := BindDefault(1)
	target := r3.Vec{X: -150, Y: 12, Z: 3}
	cam := s.Center(r3.Vec{X: 500, Y: 500, Z: 999}, target)

	assert.Equal(t, r3.Vec{X: -150, Y: 12, Z: 999}, cam)
	assert.Equal(t, target, s.PrevTargetPosition())
	assert.Equal(t, target, s.LookAt())

	next, f := Step(s, cam, target, frameDT)
	assert.Equal(t, cam, next)
	assert.False(t, f.Moving)
	assert.False(t, s.Traveling())
}

func TestStationaryTargetNeverMovesCamera(t *testing.T) {
	s, cam := centeredState(t, r3.Vec{})
	for i := 0; i < 100; i++ {
		var f Frame
		cam, f = Step(s, cam, r3.Vec{}, frameDT)
		require.False(t, s.Traveling(), "frame %d", i)
		require.False(t, f.Moved, "frame %d", i)
		require.Equal(t, r3.Vec{Z: 10}, cam, "frame %d", i)
	}
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestStepOutsideDeadZoneStartsTraveling(t *testing.T) {
	s, cam := centeredState(t, r3.Vec{})

	cam, f := Step(s, cam, r3.Vec{X: 100}, 1.0)

	assert.True(t, f.Moving)
	assert.False(t, f.InDeadZone)
	assert.True(t, s.Traveling())
	assert.Equal(t, PhaseTraveling, f.Phase)
	assert.InDelta(t, 100, f.Velocity.X, 1e-9)
	assert.InDelta(t, 200, s.LookAt().X, 1e-9)
	assert.InDelta(t, 4.0, cam.X, 1e-9)
	assert.InDelta(t, 0, cam.Y, 1e-9)
	assert.Equal(t, 10.0, cam.Z)
}

func TestTravelTriggerFromAnyState(t *testing.T) {
	cases := []struct {
		name  string
		setup func(s *State, cam r3.Vec) r3.Vec
		jump  r3.Vec
	}{
		{
			name:  "idle",
			setup: func(s *State, cam r3.Vec) r3.Vec { return cam },
			jump:  r3.Vec{X: 31},
		},
		{
			name: "settling",
			setup: func(s *State, cam r3.Vec) r3.Vec {
				cam, _ = Step(s, cam, r3.Vec{X: 10}, frameDT)
				cam, _ = Step(s, cam, r3.Vec{X: 10}, frameDT)
				if s.Phase() != PhaseSettling {
					panic("expected settling")
				}
				return cam
			},
			jump: r3.Vec{Y: -16},
		},
		{
			name: "already_traveling",
			setup: func(s *State, cam r3.Vec) r3.Vec {
				cam, _ = Step(s, cam, r3.Vec{X: 200}, frameDT)
				return cam
			},
			jump: r3.Vec{X: 400},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, cam := centeredState(t, r3.Vec{})
			cam = c.setup(s, cam)
			_, f := Step(s, cam, c.jump, frameDT)
			assert.False(t, f.InDeadZone)
			assert.True(t, s.Traveling())
			assert.Equal(t, TimerUnarmed, s.Settle().Phase())
		})
	}
}

func TestDeadZoneContainmentUntilSettleFires(t *testing.T) {
	cases := []r3.Vec{
		{X: 30, Y: 15},
		{X: -29, Y: 4},
		{X: 5, Y: -15},
	}
	for _, target := range cases {
		s, cam := centeredState(t, r3.Vec{})
		start := cam

		cam, f := Step(s, cam, target, frameDT)
		require.True(t, f.Moving)
		require.True(t, f.InDeadZone)
		require.False(t, f.Moved)

		// 20 stationary frames is 1/3 s, short of the 0.4 s settle delay.
		for i := 0; i < 20; i++ {
			cam, f = Step(s, cam, target, frameDT)
			require.False(t, f.Moved, "target %v frame %d", target, i)
			require.Equal(t, start, cam, "target %v frame %d", target, i)
			require.False(t, s.Traveling())
			require.Equal(t, PhaseSettling, s.Phase())
		}
	}
}

func TestEventualCenteringIsMonotone(t *testing.T) {
	s, cam := centeredState(t, r3.Vec{})
	target := r3.Vec{X: 25, Y: -12}

	cam, _ = Step(s, cam, target, frameDT)
	last := planarDistance(cam, target)
	movedAny := false
	for i := 0; i < 2000; i++ {
		var f Frame
		cam, f = Step(s, cam, target, frameDT)
		d := planarDistance(cam, target)
		require.LessOrEqual(t, d, last, "frame %d", i)
		require.False(t, s.Traveling(), "frame %d", i)
		last = d
		movedAny = movedAny || f.Moved
	}

	assert.True(t, movedAny)
	assert.Less(t, math.Abs(cam.X-target.X), DefaultCenteredThreshold)
	assert.Less(t, math.Abs(cam.Y-target.Y), DefaultCenteredThreshold)
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestTravelingClearsOnceTargetStopsAndCameraArrives(t *testing.T) {
	s, cam := centeredState(t, r3.Vec{})
	target := r3.Vec{X: 300, Y: 120}

	cam, _ = Step(s, cam, target, frameDT)
	require.True(t, s.Traveling())

	for i := 0; i < 5000 && s.Traveling(); i++ {
		cam, _ = Step(s, cam, target, frameDT)
	}
	assert.False(t, s.Traveling())
	assert.Less(t, math.Abs(cam.X-target.X), DefaultCenteredThreshold)
	assert.Less(t, math.Abs(cam.Y-target.Y), DefaultCenteredThreshold)
}

func TestLookaheadLinearity(t *testing.T) {
	ahead := r3.Vec{X: 0.8, Y: 0.5, Z: 0}
	s := Bind(1, r2.Vec{X: 30, Y: 15}, ahead)
	pos := r3.Vec{X: -150}
	cam := s.Center(r3.Vec{}, pos)
	v := r3.Vec{X: 120, Y: -60}

	for i := 0; i < 240; i++ {
		pos = r3.Add(pos, r3.Scale(frameDT, v))
		var f Frame
		cam, f = Step(s, cam, pos, frameDT)
		require.InDelta(t, v.X, f.Velocity.X, 1e-6)
		require.InDelta(t, v.Y, f.Velocity.Y, 1e-6)
		require.InDelta(t, pos.X+v.X*ahead.X, s.LookAt().X, 1e-6)
		require.InDelta(t, pos.Y+v.Y*ahead.Y, s.LookAt().Y, 1e-6)
		require.InDelta(t, pos.Z, s.LookAt().Z, 1e-9)
	}
}

func TestIdempotentUnderUnchangedInput(t *testing.T) {
	target := r3.Vec{X: 5, Y: 5}
	s, cam := centeredState(t, target)

	cam1, f1 := Step(s, cam, target, frameDT)
	cam2, f2 := Step(s, cam1, target, frameDT)

	assert.Equal(t, target, s.PrevTargetPosition())
	assert.Equal(t, r3.Vec{}, f1.Velocity)
	assert.Equal(t, r3.Vec{}, f2.Velocity)
	assert.Equal(t, cam, cam1)
	assert.Equal(t, cam1, cam2)
}

func TestDegenerateDeltaTime(t *testing.T) {
	for _, dt := range []float64{0, -frameDT} {
		s, cam := centeredState(t, r3.Vec{})
		next, f := Step(s, cam, r3.Vec{X: 500}, dt)

		assert.Equal(t, cam, next)
		assert.False(t, f.Moving)
		assert.False(t, f.Moved)
		assert.Equal(t, r3.Vec{}, f.Velocity)
		assert.False(t, s.Traveling())
		assert.Equal(t, r3.Vec{X: 500}, s.LookAt())
		assert.Equal(t, r3.Vec{X: 500}, s.PrevTargetPosition())
		for _, c := range []float64{next.X, next.Y, s.LookAt().X} {
			assert.False(t, math.IsNaN(c))
		}
	}
}

func TestTeleportSpikesLookahead(t *testing.T) {
	s, cam := centeredState(t, r3.Vec{})
	_, f := Step(s, cam, r3.Vec{X: 1000}, frameDT)
	assert.InDelta(t, 60000, f.Velocity.X, 1e-6)
	assert.InDelta(t, 61000, s.LookAt().X, 1e-6)
}

func TestRetuneKeepsTarget(t *testing.T) {
	s := BindDefault(9)
	p := DefaultParams()
	p.DeadZone = r2.Vec{X: 80, Y: 40}
	p.Lerp = 0.1
	require.NoError(t, s.Retune(p))
	assert.Equal(t, TargetRef(9), s.Target())
	assert.Equal(t, r2.Vec{X: 80, Y: 40}, s.DeadZone())

	p.Lerp = 0
	require.ErrorIs(t, s.Retune(p), ErrInvalidParams)
	assert.Equal(t, 0.1, s.Params().Lerp)
}

func TestCustomLerpAndThreshold(t *testing.T) {
	p := DefaultParams()
	p.Lerp = 0.5
	p.CenteredThreshold = 10
	s, err := BindParams(1, p)
	require.NoError(t, err)
	cam := s.Center(r3.Vec{}, r3.Vec{})

	cam, f := Step(s, cam, r3.Vec{X: 40}, 1.0)
	assert.True(t, s.Traveling())
	assert.InDelta(t, 40, cam.X, 1e-9) // look_at = 80, half of it
	assert.False(t, f.Centered)

	cam, f = Step(s, cam, r3.Vec{X: 40}, 1.0)
	assert.True(t, f.Centered)
	assert.False(t, s.Traveling())
}
