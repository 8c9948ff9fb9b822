// Package overview provides the runner that prints the aggregated
// statistics across planner, finances and focus time.
package overview

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/stats"
	"tableflip.dev/ritmo/pkg/store"
)

type Overview struct {
	Range       stats.Range
	Section     string // tasks, finance, time, projects or empty for all
	Watch       bool
	Persistence store.Persistence
}

func (n *Overview) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := app.New(n.Persistence)
	engine := stats.New(n.Range)

	if err := n.render(ctx, svc, engine); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := svc.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.render(ctx, svc, engine); err != nil {
				return err
			}
		}
	}
}

func (n *Overview) render(ctx context.Context, svc *app.Service, engine *stats.Engine) error {
	snap, err := svc.Snapshot(ctx)
	if err != nil {
		return err
	}
	all := engine.All(snap)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	switch n.Section {
	case "tasks":
		pp.TaskStats(all.Tasks)
	case "finance":
		pp.FinancialStats(all.Financial)
	case "time":
		pp.TimeStats(all.Time)
	case "projects":
		pp.ProjectStats(all.Projects)
	case "", "overview":
		pp.Overview(all)
	default:
		return fmt.Errorf("unknown section %q", n.Section)
	}
	return nil
}
