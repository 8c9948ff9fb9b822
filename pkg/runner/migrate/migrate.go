// Package migrate folds legacy document keys into their canonical
// homes.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/store"
)

type Migrate struct {
	On          time.Time
	Persistence store.Persistence
}

func (n *Migrate) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not migrate, no persistence")
	}
	svc := app.New(n.Persistence)

	report, err := svc.Migrate(ctx, n.On)
	if err != nil {
		return err
	}

	if report.CalendarDays == 0 && report.WeekDays == 0 {
		fmt.Println("nothing to migrate")
		return nil
	}
	fmt.Printf("migrated %d calendar day(s) and %d weekly planner day(s)\n",
		report.CalendarDays, report.WeekDays)
	return nil
}
