// Package day provides the runner that prints a single planner day.
package day

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

type Day struct {
	ShowID      bool
	On          time.Time
	Persistence store.Persistence
}

func (n *Day) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := app.New(n.Persistence)

	rec, err := svc.Day(ctx, n.On)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Day(fmt.Sprintf("%s, %s", dateutil.WeekdayName(n.On), dateutil.FormatISO(n.On)), rec)
	return nil
}
