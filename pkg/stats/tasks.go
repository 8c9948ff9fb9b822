package stats

import (
	"strings"

	"tableflip.dev/ritmo/pkg/dateutil"
)

// TaskStats summarizes planner tasks and simple goals. The completion
// rate is computed over calendar tasks only; the completed and pending
// totals also fold in simple goals.
type TaskStats struct {
	Completed       int            `json:"completedTasks"`
	Pending         int            `json:"pendingTasks"`
	CompletionRate  float64        `json:"completionRate"`
	Categories      map[string]int `json:"tasksByCategory"`
	CompletionTrend []RatePoint    `json:"completionTrend"`
}

// RatePoint is one day of the completion trend.
type RatePoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

func (e *Engine) TaskStats(s Snapshot) TaskStats {
	completed, pending := 0, 0
	categories := map[string]int{}
	for _, rec := range s.Calendar {
		for _, t := range rec.Tasks {
			if t.Completed {
				completed++
			} else {
				pending++
			}
		}
		if rec.Project != "" {
			categories[firstWord(rec.Project)]++
		}
	}
	completionRate := rate(completed, completed+pending)

	for _, g := range s.SimpleGoals {
		if g.Completed {
			completed++
		} else {
			pending++
		}
	}

	trend := make([]RatePoint, 0, 7)
	for _, day := range e.lastDays(7) {
		key := dateutil.FormatISO(day)
		done, total := 0, 0
		if rec, ok := s.Calendar[key]; ok {
			for _, t := range rec.Tasks {
				total++
				if t.Completed {
					done++
				}
			}
		}
		trend = append(trend, RatePoint{Date: key, Rate: rate(done, total)})
	}

	return TaskStats{
		Completed:       completed,
		Pending:         pending,
		CompletionRate:  completionRate,
		Categories:      categories,
		CompletionTrend: trend,
	}
}

// firstWord buckets a project name by its leading token, so
// "Trabalho relatório" and "Trabalho reunião" land together.
func firstWord(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}
