package stats

import (
	"sort"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/focus"
)

// ProjectStats summarizes projects across the planner and the focus
// timer. Task counts come from calendar days that name a project; the
// time distribution comes from completed sessions in range.
type ProjectStats struct {
	TotalProjects  int               `json:"totalProjects"`
	ActiveProjects int               `json:"activeProjects"`
	CompletedTasks int               `json:"completedTasks"`
	PendingTasks   int               `json:"pendingTasks"`
	Progress       []ProjectProgress `json:"projectProgress"`
	Distribution   []ProjectShare    `json:"timeDistribution"`
	TimeTrend      []TimePoint       `json:"timeByProject"`
}

// ProjectProgress is one project's task completion.
type ProjectProgress struct {
	Name      string  `json:"name"`
	Progress  float64 `json:"progress"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
}

// ProjectShare is one project's slice of completed focus time.
type ProjectShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Minutes    int     `json:"minutes"`
}

// TimePoint is one day of completed focus minutes.
type TimePoint struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

func (e *Engine) ProjectStats(s Snapshot) ProjectStats {
	names := map[string]bool{}
	type counts struct{ completed, total int }
	perProject := map[string]*counts{}
	completedTasks, pendingTasks := 0, 0

	for _, rec := range s.Calendar {
		if rec.Project == "" {
			continue
		}
		names[rec.Project] = true
		c := perProject[rec.Project]
		if c == nil {
			c = &counts{}
			perProject[rec.Project] = c
		}
		for _, t := range rec.Tasks {
			c.total++
			if t.Completed {
				c.completed++
				completedTasks++
			} else {
				pendingTasks++
			}
		}
	}
	for _, sess := range s.Sessions {
		if sess.Project != "" && sess.Project != focus.NoProject {
			names[sess.Project] = true
		}
	}

	progress := make([]ProjectProgress, 0, len(perProject))
	for name, c := range perProject {
		progress = append(progress, ProjectProgress{
			Name:      name,
			Progress:  rate(c.completed, c.total),
			Completed: c.completed,
			Total:     c.total,
		})
	}
	sort.Slice(progress, func(i, j int) bool { return progress[i].Name < progress[j].Name })

	minutes := map[string]int{}
	totalMinutes := 0
	for _, sess := range s.Sessions {
		if !sess.Completed || !e.inRange(sess.Date) {
			continue
		}
		project := sess.Project
		if project == "" {
			project = focus.NoProject
		}
		minutes[project] += sess.Duration
		totalMinutes += sess.Duration
	}
	distribution := make([]ProjectShare, 0, len(minutes))
	for name, m := range minutes {
		share := 0.0
		if totalMinutes > 0 {
			share = float64(m) / float64(totalMinutes) * 100
		}
		distribution = append(distribution, ProjectShare{Name: name, Percentage: share, Minutes: m})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Minutes != distribution[j].Minutes {
			return distribution[i].Minutes > distribution[j].Minutes
		}
		return distribution[i].Name < distribution[j].Name
	})

	trend := make([]TimePoint, 0, 7)
	for _, day := range e.lastDays(7) {
		key := dateutil.FormatISO(day)
		m := 0
		for _, sess := range s.Sessions {
			if sess.Completed && sess.Date == key {
				m += sess.Duration
			}
		}
		trend = append(trend, TimePoint{Date: key, Minutes: m})
	}

	return ProjectStats{
		TotalProjects:  len(names),
		ActiveProjects: len(names),
		CompletedTasks: completedTasks,
		PendingTasks:   pendingTasks,
		Progress:       progress,
		Distribution:   distribution,
		TimeTrend:      trend,
	}
}
