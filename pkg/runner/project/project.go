// Package project provides runners for the planner's project names.
package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

// Set names the project for a planner day.
type Set struct {
	On          time.Time
	Name        string
	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	svc := app.New(n.Persistence)
	return svc.SetProject(ctx, n.On, n.Name)
}

// List prints the distinct project names in the planner.
type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := app.New(n.Persistence)

	projects, err := svc.Projects(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Projects", len(projects))
	for _, p := range projects {
		fmt.Printf("• %s\n", p)
	}
	fmt.Println("")
	return nil
}
