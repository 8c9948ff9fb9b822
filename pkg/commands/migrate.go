package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/runner/migrate"
	"tableflip.dev/ritmo/pkg/store"
)

func addMigrate(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Fold legacy document keys into their canonical homes",
		Long: "Fold legacy document keys into their canonical homes. Weekday-keyed\n" +
			"weekly planner data lands on the current week's dates; pass --on to\n" +
			"anchor it to a different week.",
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
			s := migrate.Migrate{
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
