package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/runner/info"
	"tableflip.dev/ritmo/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show storage configuration and documents",
		Example: `
ritmo info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := info.Info{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
