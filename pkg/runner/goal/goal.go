// Package goal provides runners for the checklist goals.
package goal

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

// Add creates a checklist goal.
type Add struct {
	Text        string
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.AddSimple(ctx, n.Text); err != nil {
		return err
	}
	return list(ctx, svc, false)
}

// Toggle flips a goal's completion.
type Toggle struct {
	ID          int64
	Persistence store.Persistence
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.ToggleSimple(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, svc, true)
}

// Remove deletes a goal.
type Remove struct {
	ID          int64
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	svc := app.New(n.Persistence)

	if err := svc.RemoveSimple(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, svc, true)
}

// List prints the checklist goals.
type List struct {
	ShowID      bool
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	return list(ctx, app.New(n.Persistence), n.ShowID)
}

func list(ctx context.Context, svc *app.Service, showID bool) error {
	goals, err := svc.SimpleGoals(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: showID}
	fmt.Println("")
	pp.TitleWithCount("Goals", len(goals))
	pp.SimpleGoals(goals)
	return nil
}
