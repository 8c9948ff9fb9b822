package focus

import (
	"testing"
	"time"

	"tableflip.dev/ritmo/pkg/store"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 12, 9, 30, 0, 0, time.Local)
}

func runUntilDone(t *testing.T, timer *Timer, limit int) *Session {
	t.Helper()
	for i := 0; i < limit; i++ {
		if sess := timer.Tick(); sess != nil {
			return sess
		}
		if !timer.Running {
			return nil
		}
	}
	t.Fatalf("timer never completed within %d ticks", limit)
	return nil
}

func TestPomodoroCompletionRecordsSessionAndSwitches(t *testing.T) {
	timer := NewTimer(Settings{Pomodoro: 1, ShortBreak: 1, LongBreak: 2}, "Vender Sites")
	timer.now = fixedClock
	timer.Start()

	sess := runUntilDone(t, timer, 62)
	if sess == nil {
		t.Fatalf("expected a recorded session")
	}
	if !sess.Completed || sess.Duration != 1 {
		t.Fatalf("expected completed 1-minute session, got %+v", sess)
	}
	if sess.Project != "Vender Sites" {
		t.Fatalf("unexpected project: %s", sess.Project)
	}
	if sess.Date != "2025-03-12" {
		t.Fatalf("unexpected date: %s", sess.Date)
	}

	if timer.Mode != ShortBreak {
		t.Fatalf("pomodoro must auto-switch to short break, got %s", timer.Mode)
	}
	if timer.Running {
		t.Fatalf("timer pauses after completing an interval")
	}
}

func TestBreakCompletionReturnsToPomodoro(t *testing.T) {
	timer := NewTimer(Settings{Pomodoro: 25, ShortBreak: 1, LongBreak: 2}, "")
	timer.now = fixedClock
	timer.SetMode(ShortBreak)
	timer.Start()

	for i := 0; i < 62; i++ {
		if sess := timer.Tick(); sess != nil {
			t.Fatalf("breaks must not record sessions, got %+v", sess)
		}
		if !timer.Running {
			break
		}
	}
	if timer.Mode != Pomodoro {
		t.Fatalf("break must switch back to pomodoro, got %s", timer.Mode)
	}
}

func TestLongBreakIsNeverEnteredAutomatically(t *testing.T) {
	timer := NewTimer(Settings{Pomodoro: 1, ShortBreak: 1, LongBreak: 2}, "")
	timer.now = fixedClock

	// Run two full pomodoro/break cycles; long break never shows up.
	for cycle := 0; cycle < 2; cycle++ {
		timer.Start()
		runUntilDone(t, timer, 62)
		if timer.Mode == LongBreak {
			t.Fatalf("long break must be manual only")
		}
		timer.Start()
		runUntilDone(t, timer, 62)
		if timer.Mode != Pomodoro {
			t.Fatalf("expected pomodoro after break, got %s", timer.Mode)
		}
	}
}

func TestResetRecordsAbandonedPomodoro(t *testing.T) {
	timer := NewTimer(Settings{Pomodoro: 25, ShortBreak: 5, LongBreak: 15}, "Design")
	timer.now = fixedClock
	timer.Start()

	// 30 seconds in: 24:30 on the clock, one whole minute elapsed.
	for i := 0; i < 30; i++ {
		timer.Tick()
	}
	sess := timer.Reset()
	if sess == nil {
		t.Fatalf("abandoning a running pomodoro must record a session")
	}
	if sess.Completed {
		t.Fatalf("abandoned session must be incomplete")
	}
	if sess.Duration != 1 {
		t.Fatalf("expected 1 elapsed minute, got %d", sess.Duration)
	}
	if timer.Remaining != 25*60 {
		t.Fatalf("reset must restore the full countdown, got %d", timer.Remaining)
	}
}

func TestResetAtFullLengthRecordsNothing(t *testing.T) {
	timer := NewTimer(DefaultSettings(), "")
	timer.Start()
	if sess := timer.Reset(); sess != nil {
		t.Fatalf("nothing elapsed, nothing to record, got %+v", sess)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	timer := NewTimer(DefaultSettings(), "")
	timer.Start()
	timer.Tick()
	remaining := timer.Remaining
	timer.Pause()
	timer.Tick()
	if timer.Remaining != remaining {
		t.Fatalf("paused timer must not advance")
	}
}

func TestStoreSettingsFallback(t *testing.T) {
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	s := NewStore(p)

	if got := s.Settings(); got != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}

	if err := s.SaveSettings(Settings{Pomodoro: 50, ShortBreak: 10, LongBreak: 20}); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if got := s.Settings(); got.Pomodoro != 50 || got.ShortBreak != 10 || got.LongBreak != 20 {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestStoreSessionsAppendOnly(t *testing.T) {
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	s := NewStore(p)

	first := NewSession(fixedClock(), 25, true, "Design")
	second := NewSession(fixedClock().Add(30*time.Minute), 10, false, "")
	if err := s.Append(first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(second); err != nil {
		t.Fatalf("append: %v", err)
	}

	sessions := s.Sessions()
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[1].Project != NoProject {
		t.Fatalf("empty project must default to %q, got %q", NoProject, sessions[1].Project)
	}
}
