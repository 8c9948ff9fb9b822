package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"tableflip.dev/ritmo/pkg/goal"
	"tableflip.dev/ritmo/pkg/planner"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("a1b2c3d4  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Tasks prints a day's task list, one bullet per line.
func (pp *PrettyPrint) Tasks(tasks ...planner.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, task := range tasks {
		if pp.ShowID {
			_, _ = y.Print(task.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(task.ID)))
		}
		if task.Completed {
			_, _ = t.Print("✘ ")
			_, _ = done.Println(task.Text)
		} else {
			_, _ = t.Printf("• %s\n", task.Text)
		}
	}
	_, _ = t.Println("")
}

// Day prints one planner day: project heading then its tasks.
func (pp *PrettyPrint) Day(date string, rec planner.DayRecord) {
	pp.TitleWithCount(fmt.Sprintf("%s · %s", date, rec.Project), len(rec.Tasks))
	pp.Tasks(rec.Tasks...)
}

// SimpleGoals prints the checklist goals in the task style.
func (pp *PrettyPrint) SimpleGoals(goals []goal.Simple) {
	if len(goals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, g := range goals {
		if pp.ShowID {
			id := fmt.Sprintf("%d", g.ID)
			_, _ = y.Print(id)
			if pad := len(spacing) - len(id); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			} else {
				_, _ = y.Print(" ")
			}
		}
		if g.Completed {
			_, _ = t.Print("✘ ")
			_, _ = done.Println(g.Text)
		} else {
			_, _ = t.Printf("• %s\n", g.Text)
		}
	}
	_, _ = t.Println("")
}
