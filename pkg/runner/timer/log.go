package timer

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/focus"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

// Log prints the recorded sessions, oldest first.
type Log struct {
	Persistence store.Persistence
}

func (n *Log) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := app.New(n.Persistence)

	sessions, err := svc.Sessions(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Sessions", len(sessions))

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Project"), bold.Sprint("Minutes"), bold.Sprint("Completed"))
	for _, s := range sessions {
		project := s.Project
		if project == "" {
			project = focus.NoProject
		}
		done := "✔"
		if !s.Completed {
			done = faint.Sprint("✘")
		}
		tbl.AddRow(s.Date, project, s.Duration, done)
	}
	fmt.Println(tbl)
	fmt.Println("")
	return nil
}

// Settings saves the timer durations, in minutes.
type Settings struct {
	Settings    focus.Settings
	Persistence store.Persistence
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	svc := app.New(n.Persistence)
	return svc.SaveTimerSettings(ctx, n.Settings)
}
