// Package timer provides the interactive pomodoro countdown.
package timer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/focus"
	"tableflip.dev/ritmo/pkg/planner"
	"tableflip.dev/ritmo/pkg/store"
)

// Start runs one timer session in the foreground. Interrupting a
// running pomodoro records it as abandoned with the minutes elapsed.
type Start struct {
	Project     string
	Mode        focus.Mode
	Persistence store.Persistence
}

func (n *Start) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start, no persistence")
	}
	svc := app.New(n.Persistence)

	settings, err := svc.TimerSettings(ctx)
	if err != nil {
		return err
	}

	project := n.Project
	if project == "" {
		// Default to today's planner project when one is set.
		if rec, err := svc.Day(ctx, time.Now()); err == nil && rec.Project != planner.NoProject {
			project = rec.Project
		}
	}

	t := focus.NewTimer(settings, project)
	if n.Mode != "" {
		t.SetMode(n.Mode)
	}
	t.Start()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	label := project
	if label == "" {
		label = focus.NoProject
	}
	fmt.Println("")
	_, _ = bold.Printf("%s · %s\n", t.Mode, label)

	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		mm, ss := t.Clock()
		fmt.Printf("\r  %02d:%02d ", mm, ss)

		select {
		case <-ctx.Done():
			fmt.Println("")
			if sess := t.Reset(); sess != nil {
				if err := svc.RecordSession(context.Background(), *sess); err != nil {
					return err
				}
				_, _ = faint.Printf("abandoned after %d min\n", sess.Duration)
			}
			return nil
		case <-tick.C:
			before := t.Mode
			if sess := t.Tick(); sess != nil {
				fmt.Println("")
				if err := svc.RecordSession(ctx, *sess); err != nil {
					return err
				}
				_, _ = bold.Printf("done! %d min recorded, next up: %s\n", sess.Duration, t.Mode)
				return nil
			}
			if t.Mode != before {
				// A break ran out. Nothing to record.
				fmt.Println("")
				_, _ = bold.Printf("break over, next up: %s\n", t.Mode)
				return nil
			}
		}
	}
}
