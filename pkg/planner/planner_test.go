package planner

import (
	"testing"
	"time"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/store"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return NewStore(p)
}

func TestAddAndToggleTaskRoundTrip(t *testing.T) {
	s := testStore(t)
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)

	first, err := s.AddTask(day, "escrever relatório")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := s.AddTask(day, "revisar código"); err != nil {
		t.Fatalf("add task: %v", err)
	}

	if _, err := s.ToggleTask(day, first.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	rec, ok := s.Day(day)
	if !ok {
		t.Fatalf("expected record for %s", dateutil.FormatISO(day))
	}
	if len(rec.Tasks) != 2 {
		t.Fatalf("toggle must preserve task count, got %d", len(rec.Tasks))
	}
	if !rec.Tasks[0].Completed || rec.Tasks[1].Completed {
		t.Fatalf("only the targeted task should flip: %+v", rec.Tasks)
	}

	// Toggling back restores the original flags.
	if _, err := s.ToggleTask(day, first.ID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	rec, _ = s.Day(day)
	if rec.Tasks[0].Completed {
		t.Fatalf("expected task back to pending")
	}
}

func TestToggleUnknownTask(t *testing.T) {
	s := testStore(t)
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	if _, err := s.AddTask(day, "tarefa"); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := s.ToggleTask(day, "deadbeef"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestRemoveTaskKeepsOthers(t *testing.T) {
	s := testStore(t)
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	a, _ := s.AddTask(day, "a")
	b, _ := s.AddTask(day, "b")

	if err := s.RemoveTask(day, a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	rec, _ := s.Day(day)
	if len(rec.Tasks) != 1 || rec.Tasks[0].ID != b.ID {
		t.Fatalf("expected only task b to remain: %+v", rec.Tasks)
	}
}

func TestWeekAlwaysSevenDays(t *testing.T) {
	s := testStore(t)
	wed := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.Local)
	if err := s.SetProject(wed, "Vender Sites"); err != nil {
		t.Fatalf("set project: %v", err)
	}

	week := s.Week(wed)
	if len(week) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(week))
	}
	if week[0].Weekday != "Domingo" || week[0].Date != "2025-03-09" {
		t.Fatalf("week must start on Sunday: %+v", week[0])
	}
	if week[3].Record.Project != "Vender Sites" {
		t.Fatalf("Wednesday should carry the saved project: %+v", week[3])
	}
	for i, d := range week {
		if i == 3 {
			continue
		}
		if d.Record.Project != NoProject {
			t.Fatalf("empty days must synthesize %q, got %q", NoProject, d.Record.Project)
		}
		if d.Record.Tasks == nil {
			t.Fatalf("synthesized record needs an empty task list")
		}
	}
}

func TestMonthGridCoversWholeWeeks(t *testing.T) {
	s := testStore(t)
	// March 2025 starts on a Saturday and ends on a Monday.
	cells := s.MonthGrid(2025, time.March)

	if len(cells)%7 != 0 {
		t.Fatalf("grid must span whole weeks, got %d cells", len(cells))
	}
	if cells[0].Date.Weekday() != time.Sunday {
		t.Fatalf("grid must start on Sunday, got %v", cells[0].Date.Weekday())
	}
	if cells[len(cells)-1].Date.Weekday() != time.Saturday {
		t.Fatalf("grid must end on Saturday, got %v", cells[len(cells)-1].Date.Weekday())
	}
	if cells[0].InMonth {
		t.Fatalf("leading cell should belong to February")
	}

	inMonth := 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
	}
	if inMonth != 31 {
		t.Fatalf("expected 31 March days, got %d", inMonth)
	}
}

func TestMonthGridFlagsDaysWithRecords(t *testing.T) {
	s := testStore(t)
	day := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.Local)
	if _, err := s.AddTask(day, "tarefa"); err != nil {
		t.Fatalf("add task: %v", err)
	}

	for _, c := range s.MonthGrid(2025, time.March) {
		if c.Key == "2025-03-20" && !c.HasTasks {
			t.Fatalf("expected 2025-03-20 flagged as having data")
		}
		if c.Key == "2025-03-21" && c.HasTasks {
			t.Fatalf("2025-03-21 has no record")
		}
	}
}

func TestMigrateLegacyWeeklyPlanner(t *testing.T) {
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	legacy := map[string]DayRecord{
		"Segunda-feira": {Project: "Curso de IA", Tasks: []Task{{Text: "aula 3"}}},
	}
	if err := p.Save(store.KeyLegacyWeeklyPlanner, legacy); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}

	s := NewStore(p)
	ref := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local) // Wednesday
	report, err := s.Migrate(ref)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if report.WeekDays != 1 {
		t.Fatalf("expected 1 migrated day, got %d", report.WeekDays)
	}

	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	rec, ok := s.Day(monday)
	if !ok || rec.Project != "Curso de IA" {
		t.Fatalf("expected Monday record, got %+v ok=%v", rec, ok)
	}

	// Legacy document is gone, so a second run is a no-op.
	report, err = s.Migrate(ref)
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if report.WeekDays != 0 {
		t.Fatalf("migration must not re-apply, got %d", report.WeekDays)
	}
}

func TestMigrateMisspelledCalendarKey(t *testing.T) {
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	legacy := Calendar{"2025-03-01": {Project: "Design", Tasks: []Task{}}}
	if err := p.Save("calendarData", legacy); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}

	s := NewStore(p)
	if _, err := s.Migrate(time.Now()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, ok := s.Calendar()["2025-03-01"]; !ok {
		t.Fatalf("expected calendarData folded into calendarDatabase")
	}
	if _, ok := p.Get("calendarData"); ok {
		t.Fatalf("legacy key should be removed")
	}
}
