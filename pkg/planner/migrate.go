package planner

import (
	"time"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/store"
)

// misspelled calendar key some earlier builds wrote.
const legacyCalendarKey = "calendarData"

// MigrationReport says what a migration run touched.
type MigrationReport struct {
	CalendarDays int
	WeekDays     int
}

// Migrate folds retired storage layouts into the canonical schema:
// a calendarData document becomes calendarDatabase (when none exists
// yet), and the weekday-name map under weeklyPlannerData is written
// onto the matching dates of the week containing ref. Legacy documents
// are removed once folded so the migration does not re-apply.
func (s *Store) Migrate(ref time.Time) (MigrationReport, error) {
	report := MigrationReport{}

	cal := Calendar{}
	if !s.p.Load(store.KeyCalendarDatabase, &cal) {
		legacy := Calendar{}
		if s.p.Load(legacyCalendarKey, &legacy) && len(legacy) > 0 {
			if err := s.p.Save(store.KeyCalendarDatabase, legacy); err != nil {
				return report, err
			}
			if err := s.p.Remove(legacyCalendarKey); err != nil {
				return report, err
			}
			report.CalendarDays = len(legacy)
			cal = legacy
		}
	}

	week := map[string]DayRecord{}
	if !s.p.Load(store.KeyLegacyWeeklyPlanner, &week) || len(week) == 0 {
		return report, nil
	}

	start := dateutil.StartOfWeek(ref)
	for i, weekday := range dateutil.WeekdayNames {
		rec, ok := week[weekday]
		if !ok {
			continue
		}
		if rec.Tasks == nil {
			rec.Tasks = []Task{}
		}
		if err := s.Save(start.AddDate(0, 0, i), rec); err != nil {
			return report, err
		}
		report.WeekDays++
	}
	if err := s.p.Remove(store.KeyLegacyWeeklyPlanner); err != nil {
		return report, err
	}
	return report, nil
}
