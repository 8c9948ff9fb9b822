package calendar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/planner"
)

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	TaskStyle   lipgloss.Style
	TodayStyle  lipgloss.Style
	ShowHeader  bool
}

// Render produces a multi-line month grid from planner cells. The
// cells come in whole weeks, Sunday first; days outside the month are
// left blank.
func Render(cells []planner.DayCell, today time.Time, opts Options) string {
	if len(cells) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(dateutil.WeekdayShort, " ")))
	}

	for row := 0; row*7 < len(cells); row++ {
		var rendered []string
		for col := 0; col < 7; col++ {
			i := row*7 + col
			if i >= len(cells) {
				break
			}
			rendered = append(rendered, renderDay(cells[i], today, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(rendered, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(cell planner.DayCell, today time.Time, opts Options) string {
	if !cell.InMonth {
		return opts.EmptyStyle.Render("  ")
	}

	style := opts.EmptyStyle
	if cell.HasTasks {
		style = opts.TaskStyle
	}
	if dateutil.SameDay(cell.Date, today) {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(dayGlyph(cell.Date.Day()))
}

func dayGlyph(day int) string {
	if day < 0 || day >= len(whiteCircledDigits) {
		return "  "
	}
	return whiteCircledDigits[day]
}

var whiteCircledDigits = []string{
	"⓪",
	"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩",
	"⑪", "⑫", "⑬", "⑭", "⑮", "⑯", "⑰", "⑱", "⑲", "⑳",
	"㉑", "㉒", "㉓", "㉔", "㉕", "㉖", "㉗", "㉘", "㉙", "㉚",
	"㉛", "㉜", "㉝", "㉞", "㉟",
	"㊱", "㊲", "㊳", "㊴", "㊵", "㊶", "㊷", "㊸", "㊹", "㊺", "㊻", "㊼", "㊽", "㊾", "㊿",
}
