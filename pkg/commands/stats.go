package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/runner/overview"
	"tableflip.dev/ritmo/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}

	section := ""

	cmd := &cobra.Command{
		Use:       "stats [section]",
		Short:     "Show the aggregated dashboard",
		ValidArgs: []string{"tasks", "finance", "time", "projects", "overview"},
		Example: `
ritmo stats
ritmo stats finance --range=month
ritmo stats --watch
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.OnlyValidArgs(cmd, args); err != nil {
				return err
			}
			if len(args) > 0 {
				section = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r, err := ro.GetRange()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := overview.Overview{
				Range:       r,
				Section:     section,
				Watch:       ro.Watch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
