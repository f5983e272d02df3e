package follow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSettleTimer(t *testing.T) {
	tests := []struct {
		name    string
		run     func(tm *SettleTimer)
		phase   TimerPhase
		elapsed float64
	}{
		{
			name:  "fresh",
			run:   func(tm *SettleTimer) {},
			phase: TimerUnarmed,
		},
		{
			name:    "counting",
			run:     func(tm *SettleTimer) { tm.Tick(0.1) },
			phase:   TimerCounting,
			elapsed: 0.1,
		},
		{
			name:    "finishes_and_clamps",
			run:     func(tm *SettleTimer) { tm.Tick(0.3); tm.Tick(0.3) },
			phase:   TimerFinished,
			elapsed: 0.4,
		},
		{
			name:    "stays_finished",
			run:     func(tm *SettleTimer) { tm.Tick(1); tm.Tick(1) },
			phase:   TimerFinished,
			elapsed: 0.4,
		},
		{
			name:  "reset_disarms",
			run:   func(tm *SettleTimer) { tm.Tick(1); tm.Reset() },
			phase: TimerUnarmed,
		},
		{
			name:  "negative_tick_ignored",
			run:   func(tm *SettleTimer) { tm.Tick(-1) },
			phase: TimerUnarmed,
		},
		{
			name:    "shrinking_duration_finishes",
			run:     func(tm *SettleTimer) { tm.Tick(0.3); tm.SetDuration(0.2) },
			phase:   TimerFinished,
			elapsed: 0.2,
		},
		{
			name:    "growing_duration_resumes",
			run:     func(tm *SettleTimer) { tm.Tick(1); tm.SetDuration(2) },
			phase:   TimerCounting,
			elapsed: 0.4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm := NewSettleTimer(0.4)
			tc.run(&tm)
			assert.Equal(t, tc.phase, tm.Phase())
			assert.InDelta(t, tc.elapsed, tm.Elapsed(), 1e-9)
			assert.Equal(t, tc.phase == TimerFinished, tm.Finished())
		})
	}
}

func TestZeroDurationFinishesOnFirstTick(t *testing.T) {
	tm := NewSettleTimer(0)
	tm.Tick(0.016)
	assert.True(t, tm.Finished())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
		ok     bool
	}{
		{"defaults", func(p *Params) {}, true},
		{"zero_dead_zone", func(p *Params) { p.DeadZone = r2.Vec{} }, true},
		{"negative_dead_zone_y", func(p *Params) { p.DeadZone.Y = -0.5 }, false},
		{"negative_settle", func(p *Params) { p.SettleDelay = -1 }, false},
		{"zero_lerp", func(p *Params) { p.Lerp = 0 }, false},
		{"lerp_above_one", func(p *Params) { p.Lerp = 1.5 }, false},
		{"full_lerp", func(p *Params) { p.Lerp = 1 }, true},
		{"negative_threshold", func(p *Params) { p.CenteredThreshold = -3 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			err := p.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidParams)
			}
		})
	}
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "traveling", PhaseTraveling.String())
	assert.Equal(t, "settling", PhaseSettling.String())
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "finished", TimerFinished.String())
}
