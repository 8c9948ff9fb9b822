package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/runner/day"
	"tableflip.dev/ritmo/pkg/store"
)

func addDay(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one planner day",
		Example: `
ritmo day
ritmo day --on=2025-3-12
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := day.Day{
				ShowID:      io.ShowID,
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
