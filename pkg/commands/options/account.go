package options

import (
	"github.com/spf13/cobra"
)

// AccountOptions captures the flags shared by account commands.
type AccountOptions struct {
	Opening     float64
	Icon        string
	Investment  bool
	YieldRate   float64
	YieldPeriod string
}

func AddAccountArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().Float64Var(&o.Opening, "opening", 0,
		"Opening balance for the account.")
	cmd.Flags().StringVar(&o.Icon, "icon", "💰",
		"Icon shown next to the account.")
	cmd.Flags().BoolVar(&o.Investment, "investment", false,
		"Mark the account as an investment.")
	cmd.Flags().Float64Var(&o.YieldRate, "yield", 0,
		"Yield rate in percent. Investments only.")
	cmd.Flags().StringVar(&o.YieldPeriod, "period", "mensal",
		"Yield period. One of 'mensal' or 'anual'.")
}

// TxOptions captures the flags shared by transaction commands.
type TxOptions struct {
	Account string
	Tag     string
	Date    string
	Expense bool
}

func AddTxArgs(cmd *cobra.Command, o *TxOptions) {
	cmd.Flags().StringVarP(&o.Account, "account", "a", "",
		"Account id the transaction belongs to.")
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Free-form category tag.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Transaction date, example: --date=2025-03-12. Defaults to today.")
	cmd.Flags().BoolVarP(&o.Expense, "expense", "e", false,
		"Record an expense instead of income.")
}
