// Package week provides the runner that prints the weekly planner.
package week

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

type Week struct {
	ShowID      bool
	On          time.Time
	Persistence store.Persistence
}

func (n *Week) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := app.New(n.Persistence)

	days, err := svc.Week(ctx, n.On)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	for _, d := range days {
		pp.Day(fmt.Sprintf("%s, %s", d.Weekday, d.Date), d.Record)
	}
	return nil
}
