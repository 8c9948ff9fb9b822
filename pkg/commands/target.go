package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/runner/target"
	"tableflip.dev/ritmo/pkg/store"
)

func addTarget(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage patrimonial savings targets",
		Example: `
ritmo target add Reserva de emergência --amount=10000 --account=1741786200000
ritmo target ls
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTargetAdd(cmd)
	addTargetRemove(cmd)
	addTargetList(cmd)

	topLevel.AddCommand(cmd)
}

func addTargetAdd(topLevel *cobra.Command) {
	name := ""
	amount := 0.0
	accountID := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a savings target",
		Example: `
ritmo target add Reserva de emergência --amount=10000 --account=1741786200000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a target name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := target.Add{
				Name:        name,
				Target:      amount,
				Account:     accountID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Target amount to save.")
	cmd.Flags().StringVarP(&accountID, "account", "a", "", "Account id whose balance tracks progress.")

	topLevel.AddCommand(cmd)
}

func addTargetRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a savings target",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a target id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := target.Remove{
				ID:          id,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTargetList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List savings targets with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := target.List{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
