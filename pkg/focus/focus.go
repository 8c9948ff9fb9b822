// Package focus is the pomodoro side of the dashboard: configurable
// durations, a tick-driven countdown, and the append-only session log
// the time statistics are computed from.
package focus

import (
	"time"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/store"
)

// NoProject tags sessions recorded without a project.
const NoProject = "Sem projeto"

// Session is one completed or abandoned focus interval. Duration is in
// minutes. The log is append-only; there is no edit or delete path.
type Session struct {
	Date      string `json:"date"`
	Duration  int    `json:"duration"`
	Completed bool   `json:"completed"`
	Project   string `json:"project"`
	Timestamp string `json:"timestamp"`
}

// Settings holds the configured interval lengths, in minutes.
type Settings struct {
	Pomodoro   int `json:"pomodoro"`
	ShortBreak int `json:"shortBreak"`
	LongBreak  int `json:"longBreak"`
}

// DefaultSettings is the classic 25/5/15 split.
func DefaultSettings() Settings {
	return Settings{Pomodoro: 25, ShortBreak: 5, LongBreak: 15}
}

// Minutes returns the configured length for a mode.
func (s Settings) Minutes(m Mode) int {
	switch m {
	case ShortBreak:
		return s.ShortBreak
	case LongBreak:
		return s.LongBreak
	default:
		return s.Pomodoro
	}
}

// Store persists sessions and settings.
type Store struct {
	p store.Persistence
}

func NewStore(p store.Persistence) *Store {
	return &Store{p: p}
}

// Sessions loads the session log; missing data reads as empty.
func (s *Store) Sessions() []Session {
	sessions := []Session{}
	s.p.Load(store.KeyPomodoroSessions, &sessions)
	return sessions
}

// Append records a session at the end of the log.
func (s *Store) Append(sess Session) error {
	sessions := append(s.Sessions(), sess)
	return s.p.Save(store.KeyPomodoroSessions, sessions)
}

// Settings loads the configured durations, falling back to defaults.
func (s *Store) Settings() Settings {
	settings := DefaultSettings()
	s.p.Load(store.KeyPomodoroSettings, &settings)
	if settings.Pomodoro <= 0 {
		settings.Pomodoro = DefaultSettings().Pomodoro
	}
	if settings.ShortBreak <= 0 {
		settings.ShortBreak = DefaultSettings().ShortBreak
	}
	if settings.LongBreak <= 0 {
		settings.LongBreak = DefaultSettings().LongBreak
	}
	return settings
}

// SaveSettings stores the configured durations.
func (s *Store) SaveSettings(settings Settings) error {
	return s.p.Save(store.KeyPomodoroSettings, settings)
}

// NewSession stamps a session record for the current wall clock.
func NewSession(now time.Time, duration int, completed bool, project string) Session {
	if project == "" {
		project = NoProject
	}
	return Session{
		Date:      dateutil.FormatISO(now),
		Duration:  duration,
		Completed: completed,
		Project:   project,
		Timestamp: now.Format(time.RFC3339),
	}
}
