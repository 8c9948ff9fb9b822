package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/runner/tx"
	"tableflip.dev/ritmo/pkg/store"
)

func addTx(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage the transaction ledger",
		Example: `
ritmo tx add 1200 salário --account=1741786200000
ritmo tx add 89.90 mercado --expense --tag=alimentação --account=1741786200000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTxAdd(cmd)
	addTxRemove(cmd)
	addTxList(cmd)

	topLevel.AddCommand(cmd)
}

func addTxAdd(topLevel *cobra.Command) {
	to := &options.TxOptions{}
	amount := 0.0
	description := ""

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Post a transaction",
		Example: `
ritmo tx add 1200 salário --account=1741786200000
ritmo tx add 89.90 mercado --expense --account=1741786200000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires an amount and a description")
			}
			var err error
			amount, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			description = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			kind := finance.Income
			if to.Expense {
				kind = finance.Expense
			}
			date := to.Date
			if date == "" {
				date = dateutil.FormatISO(time.Now())
			}

			s := tx.Post{
				Transaction: finance.Transaction{
					Kind:        kind,
					Amount:      amount,
					Description: description,
					Tag:         to.Tag,
					Date:        date,
					AccountID:   to.Account,
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTxArgs(cmd, to)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTxRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a transaction",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a transaction id")
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
			s := tx.Remove{
				ID:          id,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTxList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the ledger, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tx.List{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
