package focus

import "time"

// Mode is the countdown interval the timer is in.
type Mode string

const (
	Pomodoro   Mode = "pomodoro"
	ShortBreak Mode = "shortBreak"
	LongBreak  Mode = "longBreak"
)

// Timer is the countdown state machine. It is advanced one second at a
// time by Tick, so the CLI drives it with a real ticker and tests drive
// it directly. Completing a pomodoro records a session and switches to
// the short break; breaks switch back to pomodoro. The long break is
// only ever entered by hand -- there is no break-after-N cycling.
type Timer struct {
	Settings  Settings
	Mode      Mode
	Remaining int // seconds
	Running   bool
	Project   string

	now func() time.Time
}

// NewTimer starts out paused in pomodoro mode.
func NewTimer(settings Settings, project string) *Timer {
	t := &Timer{Settings: settings, Project: project, now: time.Now}
	t.SetMode(Pomodoro)
	return t
}

// Start resumes the countdown.
func (t *Timer) Start() { t.Running = true }

// Pause halts the countdown without recording anything.
func (t *Timer) Pause() { t.Running = false }

// SetMode switches interval and resets the countdown, paused.
func (t *Timer) SetMode(m Mode) {
	t.Running = false
	t.Mode = m
	t.Remaining = t.Settings.Minutes(m) * 60
}

// Tick advances the countdown by one second. When a running pomodoro
// reaches zero it returns the completed session to append to the log;
// break completions return nil.
func (t *Timer) Tick() *Session {
	if !t.Running {
		return nil
	}
	if t.Remaining > 0 {
		t.Remaining--
		return nil
	}

	done := t.Mode
	switch done {
	case Pomodoro:
		t.SetMode(ShortBreak)
	default:
		t.SetMode(Pomodoro)
	}

	if done != Pomodoro {
		return nil
	}
	sess := NewSession(t.now(), t.Settings.Pomodoro, true, t.Project)
	return &sess
}

// Reset puts the current mode back to its full length. Abandoning a
// running pomodoro still counts: the elapsed whole minutes are recorded
// as an incomplete session.
func (t *Timer) Reset() *Session {
	var sess *Session
	if t.Running && t.Mode == Pomodoro {
		elapsed := t.Settings.Pomodoro - t.Remaining/60
		if elapsed > 0 {
			s := NewSession(t.now(), elapsed, false, t.Project)
			sess = &s
		}
	}
	t.Running = false
	t.Remaining = t.Settings.Minutes(t.Mode) * 60
	return sess
}

// Clock renders the remaining time as MM:SS.
func (t *Timer) Clock() (minutes, seconds int) {
	return t.Remaining / 60, t.Remaining % 60
}
