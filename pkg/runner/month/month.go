// Package month provides the runner that renders the month calendar.
package month

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/store"
	"tableflip.dev/ritmo/pkg/ui/calendar"
)

type Month struct {
	Year        int
	Month       time.Month
	Persistence store.Persistence
}

func (n *Month) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := app.New(n.Persistence)

	cells, err := svc.MonthGrid(ctx, n.Year, n.Month)
	if err != nil {
		return err
	}

	title := lipgloss.NewStyle().Bold(true).Underline(true)
	fmt.Println("")
	fmt.Println(title.Render(fmt.Sprintf("%s %d", dateutil.MonthName(n.Month), n.Year)))
	fmt.Println(calendar.Render(cells, time.Now(), calendar.Options{
		HeaderStyle: lipgloss.NewStyle().Faint(true),
		EmptyStyle:  lipgloss.NewStyle().Faint(true),
		TaskStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TodayStyle:  lipgloss.NewStyle().Reverse(true),
		ShowHeader:  true,
	}))
	fmt.Println("")
	return nil
}
