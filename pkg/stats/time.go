package stats

import (
	"sort"
	"time"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/focus"
)

// TimeStats summarizes pomodoro sessions inside the active range.
// Focus time only counts completed sessions; the completion rate is
// over every session, abandoned ones included.
type TimeStats struct {
	TotalFocusTime       int               `json:"totalFocusTime"`
	TotalSessions        int               `json:"totalSessions"`
	AverageSessionLength float64           `json:"averageSessionLength"`
	CompletionRate       float64           `json:"completionRate"`
	MostProductiveDay    string            `json:"mostProductiveDay"`
	FocusTrend           []FocusPoint      `json:"focusTimeByDay"`
	ProductivityByHour   []HourProductivity `json:"productivityByHour"`
}

// FocusPoint is one day of completed focus minutes.
type FocusPoint struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

// HourProductivity scores one hour of the day from the sessions
// started in it. Hours with no sessions get a fixed working-hours
// baseline so the chart stays readable.
type HourProductivity struct {
	Hour         int     `json:"hour"`
	Productivity float64 `json:"productivity"`
	Sessions     int     `json:"sessions"`
	FocusTime    int     `json:"focusTime"`
}

func (e *Engine) TimeStats(s Snapshot) TimeStats {
	var sessions []focus.Session
	for _, sess := range s.Sessions {
		if e.inRange(sess.Date) {
			sessions = append(sessions, sess)
		}
	}

	focusTime, completedCount := 0, 0
	byDay := map[string]int{}
	for _, sess := range sessions {
		if !sess.Completed {
			continue
		}
		focusTime += sess.Duration
		completedCount++
		byDay[sess.Date] += sess.Duration
	}

	avg := 0.0
	if completedCount > 0 {
		avg = float64(focusTime) / float64(completedCount)
	}

	mostProductive := ""
	best := 0
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if byDay[day] > best {
			best = byDay[day]
			mostProductive = day
		}
	}

	trend := make([]FocusPoint, 0, 7)
	for _, day := range e.lastDays(7) {
		key := dateutil.FormatISO(day)
		trend = append(trend, FocusPoint{
			Date:    key,
			Day:     dateutil.WeekdayShort[day.Weekday()],
			Minutes: byDay[key],
		})
	}

	return TimeStats{
		TotalFocusTime:       focusTime,
		TotalSessions:        len(sessions),
		AverageSessionLength: avg,
		CompletionRate:       rate(completedCount, len(sessions)),
		MostProductiveDay:    mostProductive,
		FocusTrend:           trend,
		ProductivityByHour:   hourlyProductivity(sessions),
	}
}

func hourlyProductivity(sessions []focus.Session) []HourProductivity {
	type bucket struct {
		total, completed, minutes int
	}
	buckets := map[int]*bucket{}
	for _, sess := range sessions {
		ts, err := time.Parse(time.RFC3339, sess.Timestamp)
		if err != nil {
			continue
		}
		b := buckets[ts.Hour()]
		if b == nil {
			b = &bucket{}
			buckets[ts.Hour()] = b
		}
		b.total++
		if sess.Completed {
			b.completed++
			b.minutes += sess.Duration
		}
	}

	out := make([]HourProductivity, 0, 24)
	for hour := 0; hour < 24; hour++ {
		b := buckets[hour]
		if b == nil || b.total == 0 {
			out = append(out, HourProductivity{Hour: hour, Productivity: baselineProductivity(hour)})
			continue
		}
		score := rate(b.completed, b.total)*0.5 + float64(b.minutes)*0.5
		if score > 100 {
			score = 100
		}
		out = append(out, HourProductivity{
			Hour:         hour,
			Productivity: score,
			Sessions:     b.total,
			FocusTime:    b.minutes,
		})
	}
	return out
}

// baselineProductivity fills quiet hours: flat during working hours,
// tapering off with distance from early afternoon otherwise.
func baselineProductivity(hour int) float64 {
	if hour >= 8 && hour <= 18 {
		return 45
	}
	dist := hour - 13
	if dist < 0 {
		dist = -dist
	}
	score := 30 - dist
	if score < 10 {
		score = 10
	}
	return float64(score)
}
