package follow

// TimerPhase is the tagged state of a SettleTimer.
type TimerPhase int

const (
	TimerUnarmed TimerPhase = iota
	TimerCounting
	TimerFinished
)

func (p TimerPhase) String() string {
	switch p {
	case TimerUnarmed:
		return "unarmed"
	case TimerCounting:
		return "counting"
	case TimerFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// SettleTimer is a one-shot countdown measured in seconds. Once finished it
// stays finished until Reset.
type SettleTimer struct {
	duration float64
	elapsed  float64
	phase    TimerPhase
}

func NewSettleTimer(duration float64) SettleTimer {
	if duration < 0 {
		duration = 0
	}
	return SettleTimer{duration: duration}
}

// Tick arms the timer if needed and advances it by dt seconds.
func (t *SettleTimer) Tick(dt float64) {
	if t == nil || dt < 0 || t.phase == TimerFinished {
		return
	}
	t.phase = TimerCounting
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.phase = TimerFinished
	}
}

func (t *SettleTimer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
	t.phase = TimerUnarmed
}

// SetDuration changes the countdown length without disarming the timer.
func (t *SettleTimer) SetDuration(duration float64) {
	if t == nil {
		return
	}
	if duration < 0 {
		duration = 0
	}
	t.duration = duration
	if t.phase == TimerUnarmed {
		return
	}
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.phase = TimerFinished
	} else {
		t.phase = TimerCounting
	}
}

func (t SettleTimer) Finished() bool { return t.phase == TimerFinished }
func (t SettleTimer) Phase() TimerPhase { return t.phase }
func (t SettleTimer) Elapsed() float64 { return t.elapsed }
func (t SettleTimer) Duration() float64 { return t.duration }
func (t SettleTimer) Remaining() float64 { return t.duration - t.elapsed }
