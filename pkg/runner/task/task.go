// Package task provides runners for planner task mutations.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

// Add appends a task to a planner day and reprints it.
type Add struct {
	On          time.Time
	Text        string
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.AddTask(ctx, n.On, n.Text); err != nil {
		return err
	}
	return printDay(ctx, svc, n.On, false)
}

// Toggle flips a task's completion.
type Toggle struct {
	On          time.Time
	ID          string
	Persistence store.Persistence
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.ToggleTask(ctx, n.On, n.ID); err != nil {
		return err
	}
	return printDay(ctx, svc, n.On, true)
}

// Remove deletes a task from a planner day.
type Remove struct {
	On          time.Time
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	svc := app.New(n.Persistence)

	if err := svc.RemoveTask(ctx, n.On, n.ID); err != nil {
		return err
	}
	return printDay(ctx, svc, n.On, true)
}

func printDay(ctx context.Context, svc *app.Service, on time.Time, showID bool) error {
	rec, err := svc.Day(ctx, on)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	fmt.Println("")
	pp.Day(fmt.Sprintf("%s, %s", dateutil.WeekdayName(on), dateutil.FormatISO(on)), rec)
	return nil
}
