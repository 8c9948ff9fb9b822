// Package stats is the aggregation engine: pure reductions over
// snapshots of the other stores. Nothing here is persisted; every
// number is recomputed from scratch on each call.
package stats

import (
	"math/rand"
	"time"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/focus"
	"tableflip.dev/ritmo/pkg/goal"
	"tableflip.dev/ritmo/pkg/planner"
)

// Range selects how far back sessions and transactions are considered.
// It gates the time and project statistics only.
type Range string

const (
	Week    Range = "week"
	Month   Range = "month"
	Quarter Range = "quarter"
	Year    Range = "year"
)

// Days returns how many days back the range reaches.
func (r Range) Days() int {
	switch r {
	case Month:
		return 30
	case Quarter:
		return 90
	case Year:
		return 365
	default:
		return 7
	}
}

// Snapshot is a point-in-time copy of every input store.
type Snapshot struct {
	Calendar     planner.Calendar
	SimpleGoals  []goal.Simple
	Patrimonials []goal.Patrimonial
	Accounts     []finance.Account
	Transactions []finance.Transaction
	Sessions     []focus.Session
}

// Stats bundles every derived view model.
type Stats struct {
	Tasks      TaskStats
	Financial  FinancialStats
	Time       TimeStats
	Projects   ProjectStats
	Integrated IntegratedStats
}

// Engine computes derived statistics. Jitter feeds the overview
// trend's balance series; leave it nil for fully deterministic output.
type Engine struct {
	Range  Range
	Now    func() time.Time
	Jitter *rand.Rand
}

// New returns an engine over the given range with a clock-seeded
// jitter source, matching the slight day-to-day variation the
// dashboard has always shown in its balance trend.
func New(r Range) *Engine {
	return &Engine{
		Range:  r,
		Now:    time.Now,
		Jitter: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// All computes every statistic over the snapshot.
func (e *Engine) All(s Snapshot) Stats {
	tasks := e.TaskStats(s)
	financial := e.FinancialStats(s)
	times := e.TimeStats(s)
	projects := e.ProjectStats(s)
	return Stats{
		Tasks:      tasks,
		Financial:  financial,
		Time:       times,
		Projects:   projects,
		Integrated: e.IntegratedStats(tasks, financial, times, projects),
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// inRange reports whether an ISO day key falls inside the window.
func (e *Engine) inRange(dateStr string) bool {
	day, err := dateutil.ParseISO(dateStr)
	if err != nil {
		return false
	}
	start := dateutil.Midnight(e.now()).AddDate(0, 0, -e.Range.Days())
	return !day.Before(start)
}

// lastDays returns the trailing n days ending today, oldest first.
func (e *Engine) lastDays(n int) []time.Time {
	today := dateutil.Midnight(e.now())
	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}

// rate is the shared guarded percentage: 0 when nothing counts.
func rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
