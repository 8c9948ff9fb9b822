// Package planner is the calendar/task store: one optional DayRecord per
// calendar date, plus the derived week and month views the dashboard is
// built around.
package planner

import (
	"crypto/md5"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/store"
)

// NoProject is the synthesized project label for days without a record.
const NoProject = "Sem projeto definido"

// Task is a single planned item. IDs are assigned at creation so edits
// and deletes survive reordering.
type Task struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// DayRecord is a calendar date's assigned project and task list. Field
// names match the stored database schema.
type DayRecord struct {
	Project string `json:"projeto"`
	Tasks   []Task `json:"tarefas"`
}

// Calendar maps ISO day keys (YYYY-MM-DD) to day records.
type Calendar map[string]DayRecord

// WeekDay is one entry of the seven-day week view.
type WeekDay struct {
	Weekday string
	Date    string
	Record  DayRecord
}

// DayCell is one cell of the month grid.
type DayCell struct {
	Date     time.Time
	Key      string
	InMonth  bool
	HasTasks bool
}

// Store reads and writes the calendar database. It is passed explicitly
// to whoever needs it; there is no shared module-level calendar.
type Store struct {
	p store.Persistence
}

func NewStore(p store.Persistence) *Store {
	return &Store{p: p}
}

// Calendar loads the full calendar map. A missing or unreadable
// document reads as an empty calendar.
func (s *Store) Calendar() Calendar {
	cal := Calendar{}
	s.p.Load(store.KeyCalendarDatabase, &cal)
	return cal
}

// Day returns the record for the given date, if any.
func (s *Store) Day(date time.Time) (DayRecord, bool) {
	rec, ok := s.Calendar()[dateutil.FormatISO(date)]
	return rec, ok
}

// Save stores the record under date, replacing whatever was there.
func (s *Store) Save(date time.Time, rec DayRecord) error {
	cal := s.Calendar()
	cal[dateutil.FormatISO(date)] = rec
	return s.p.Save(store.KeyCalendarDatabase, cal)
}

// Week returns the seven days of the week containing ref, Sunday first.
// Days without a record get an empty one with the NoProject label.
func (s *Store) Week(ref time.Time) []WeekDay {
	cal := s.Calendar()
	start := dateutil.StartOfWeek(ref)

	week := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		key := dateutil.FormatISO(day)
		rec, ok := cal[key]
		if !ok {
			rec = DayRecord{Project: NoProject, Tasks: []Task{}}
		}
		week = append(week, WeekDay{
			Weekday: dateutil.WeekdayNames[i],
			Date:    key,
			Record:  rec,
		})
	}
	return week
}

// MonthGrid returns the month's day cells padded with leading and
// trailing days so the grid covers whole Sunday-to-Saturday weeks.
func (s *Store) MonthGrid(year int, month time.Month) []DayCell {
	cal := s.Calendar()
	first := dateutil.FirstOfMonth(year, month)
	last := dateutil.LastOfMonth(year, month)

	cells := make([]DayCell, 0, 42)
	add := func(day time.Time, inMonth bool) {
		key := dateutil.FormatISO(day)
		_, has := cal[key]
		cells = append(cells, DayCell{Date: day, Key: key, InMonth: inMonth, HasTasks: has})
	}

	for i := int(first.Weekday()); i > 0; i-- {
		add(first.AddDate(0, 0, -i), false)
	}
	for d := 1; d <= last.Day(); d++ {
		add(time.Date(year, month, d, 0, 0, 0, 0, time.Local), true)
	}
	for i := 1; i < 7-int(last.Weekday()); i++ {
		add(last.AddDate(0, 0, i), false)
	}
	return cells
}

// SetProject assigns the project name for date, creating the record if
// needed and keeping its tasks.
func (s *Store) SetProject(date time.Time, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("planner: project name required")
	}
	rec, ok := s.Day(date)
	if !ok {
		rec = DayRecord{Tasks: []Task{}}
	}
	rec.Project = name
	return s.Save(date, rec)
}

// AddTask appends a new pending task to date's record.
func (s *Store) AddTask(date time.Time, text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, errors.New("planner: task text required")
	}
	rec, ok := s.Day(date)
	if !ok {
		rec = DayRecord{Project: NoProject, Tasks: []Task{}}
	}
	task := Task{ID: taskID(date, text, len(rec.Tasks)), Text: text}
	rec.Tasks = append(rec.Tasks, task)
	if err := s.Save(date, rec); err != nil {
		return Task{}, err
	}
	return task, nil
}

// ToggleTask flips the completed flag of the task with the given id.
func (s *Store) ToggleTask(date time.Time, id string) (Task, error) {
	rec, ok := s.Day(date)
	if !ok {
		return Task{}, fmt.Errorf("planner: no record for %s", dateutil.FormatISO(date))
	}
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == id {
			rec.Tasks[i].Completed = !rec.Tasks[i].Completed
			if err := s.Save(date, rec); err != nil {
				return Task{}, err
			}
			return rec.Tasks[i], nil
		}
	}
	return Task{}, fmt.Errorf("planner: task %s not found", id)
}

// RemoveTask deletes the task with the given id from date's record.
func (s *Store) RemoveTask(date time.Time, id string) error {
	rec, ok := s.Day(date)
	if !ok {
		return fmt.Errorf("planner: no record for %s", dateutil.FormatISO(date))
	}
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == id {
			rec.Tasks = append(rec.Tasks[:i], rec.Tasks[i+1:]...)
			return s.Save(date, rec)
		}
	}
	return fmt.Errorf("planner: task %s not found", id)
}

// Projects returns the distinct project names in the calendar, sorted.
func (s *Store) Projects() []string {
	seen := map[string]struct{}{}
	for _, rec := range s.Calendar() {
		if rec.Project != "" && rec.Project != NoProject {
			seen[rec.Project] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func taskID(date time.Time, text string, n int) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s/%d/%s/%d", dateutil.FormatISO(date), n, text, time.Now().UnixNano())))
	return fmt.Sprintf("%x", sum[:4])
}
