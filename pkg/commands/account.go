package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/runner/account"
	"tableflip.dev/ritmo/pkg/store"
)

func addAccount(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage financial accounts",
		Example: `
ritmo account add Poupança --opening=500
ritmo account ls
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAccountAdd(cmd)
	addAccountEdit(cmd)
	addAccountList(cmd)

	topLevel.AddCommand(cmd)
}

func addAccountAdd(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Example: `
ritmo account add Poupança --opening=500
ritmo account add Tesouro --opening=1000 --investment --yield=1 --period=mensal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an account name")
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
			s := account.Add{
				Account:     accountFromOptions(name, ao),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAccountArgs(cmd, ao)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAccountEdit(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	io := &options.IDOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an account in place",
		Example: `
ritmo account edit 1741786200000 --yield=1.2
ritmo account edit 1741786200000 Tesouro Direto
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an account id")
			}
			io.ID = args[0]
			if len(args) > 1 {
				name = strings.Join(args[1:], " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			existing, ok := finance.FindAccount(finance.NewStore(p).Accounts(), io.ID)
			if !ok {
				return output.HandleError(fmt.Errorf("no account with id %s", io.ID))
			}

			if name != "" {
				existing.Name = name
			}
			if cmd.Flags().Changed("opening") {
				existing.Opening = ao.Opening
			}
			if cmd.Flags().Changed("icon") {
				existing.Icon = ao.Icon
			}
			if cmd.Flags().Changed("investment") {
				existing.Kind = finance.Regular
				if ao.Investment {
					existing.Kind = finance.Investment
				}
			}
			if cmd.Flags().Changed("yield") {
				existing.YieldRate = ao.YieldRate
			}
			if cmd.Flags().Changed("period") {
				existing.YieldPeriod = finance.YieldPeriod(ao.YieldPeriod)
			}

			s := account.Edit{
				Account:     existing,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAccountArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}

func addAccountList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List accounts with projected balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := account.List{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func accountFromOptions(name string, ao *options.AccountOptions) finance.Account {
	kind := finance.Regular
	if ao.Investment {
		kind = finance.Investment
	}
	return finance.Account{
		Name:        name,
		Opening:     ao.Opening,
		Icon:        ao.Icon,
		Kind:        kind,
		YieldRate:   ao.YieldRate,
		YieldPeriod: finance.YieldPeriod(ao.YieldPeriod),
	}
}
