package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/runner/month"
	"tableflip.dev/ritmo/pkg/store"
)

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month calendar",
		Example: `
ritmo month
ritmo month --on=2025-4-1
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
			s := month.Month{
				Year:        on.Year(),
				Month:       on.Month(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
