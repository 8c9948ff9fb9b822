package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/goal"
	"tableflip.dev/ritmo/pkg/stats"
)

func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Accounts prints one row per account with its projected balance.
func (pp *PrettyPrint) Accounts(accounts []finance.Account, txs []finance.Transaction) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Account"), bold.Sprint("Type"), bold.Sprint("Balance"), bold.Sprint("Monthly Yield"))
	for _, acc := range accounts {
		yield := "-"
		if acc.Kind == finance.Investment {
			yield = money(finance.MonthlyYield(acc, txs))
		}
		tbl.AddRow(acc.ID, acc.Name, string(acc.Kind), money(finance.Balance(acc, txs)), yield)
	}
	fmt.Println(tbl)

	faint := color.New(color.Faint)
	_, _ = faint.Printf("\ntotal %s\n\n", money(finance.TotalPatrimony(accounts, txs)))
}

// Transactions prints the ledger, most recent first when pre-sorted.
func (pp *PrettyPrint) Transactions(txs []finance.Transaction, accounts []finance.Account) {
	bold := color.New(color.Bold)
	income := color.New(color.FgGreen)
	expense := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Description"), bold.Sprint("Tag"), bold.Sprint("Account"), bold.Sprint("Amount"))
	for _, tx := range txs {
		amount := income.Sprintf("+%s", money(tx.Amount))
		if tx.Kind == finance.Expense {
			amount = expense.Sprintf("-%s", money(tx.Amount))
		}
		tbl.AddRow(tx.ID, tx.Date, tx.Description, tx.Tag, finance.AccountName(accounts, tx.AccountID), amount)
	}
	fmt.Println(tbl)
}

// Patrimonials prints the savings targets with progress.
func (pp *PrettyPrint) Patrimonials(goals []goal.Patrimonial, accounts []finance.Account) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Goal"), bold.Sprint("Current"), bold.Sprint("Target"), bold.Sprint("Progress"), bold.Sprint("Account"))
	for _, g := range goals {
		name := "-"
		if g.AccountID != "" {
			name = finance.AccountName(accounts, g.AccountID)
		}
		tbl.AddRow(g.ID, g.Name, money(g.Current), money(g.Target), percent(g.Progress()), name)
	}
	fmt.Println(tbl)
}

// Overview prints every aggregated section.
func (pp *PrettyPrint) Overview(s stats.Stats) {
	pp.TaskStats(s.Tasks)
	pp.FinancialStats(s.Financial)
	pp.TimeStats(s.Time)
	pp.ProjectStats(s.Projects)
	pp.IntegratedStats(s.Integrated)
}

func (pp *PrettyPrint) TaskStats(s stats.TaskStats) {
	pp.Title("Tasks")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("completed", s.Completed)
	tbl.AddRow("pending", s.Pending)
	tbl.AddRow("completion", percent(s.CompletionRate))
	fmt.Println(tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) FinancialStats(s stats.FinancialStats) {
	pp.Title("Finance")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("patrimony", money(s.TotalPatrimony))
	tbl.AddRow("income", money(s.TotalIncome))
	tbl.AddRow("expenses", money(s.TotalExpenses))
	tbl.AddRow("savings rate", percent(s.SavingsRate))
	tbl.AddRow("investment return", percent(s.InvestmentReturn))
	for _, a := range s.Allocation {
		tbl.AddRow(a.Name, money(a.Amount), percent(a.Value))
	}
	fmt.Println(tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) TimeStats(s stats.TimeStats) {
	pp.Title("Focus")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("focus time", fmt.Sprintf("%d min", s.TotalFocusTime))
	tbl.AddRow("sessions", s.TotalSessions)
	tbl.AddRow("completion", percent(s.CompletionRate))
	tbl.AddRow("avg session", fmt.Sprintf("%.1f min", s.AverageSessionLength))
	if s.MostProductiveDay != "" {
		tbl.AddRow("best day", s.MostProductiveDay)
	}
	fmt.Println(tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) ProjectStats(s stats.ProjectStats) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	pp.Title("Projects")
	if len(s.Distribution) == 0 {
		_, _ = faint.Println(" none")
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("Project"), bold.Sprint("Time"), bold.Sprint("Share"))
		for _, d := range s.Distribution {
			tbl.AddRow(d.Name, fmt.Sprintf("%d min", d.Minutes), percent(d.Percentage))
		}
		fmt.Println(tbl)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) IntegratedStats(s stats.IntegratedStats) {
	pp.Title("Scores")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("productivity", percent(s.ProductivityScore))
	tbl.AddRow("focus efficiency", percent(s.FocusEfficiency))
	tbl.AddRow("financial health", percent(s.FinancialHealth))
	tbl.AddRow("balance", percent(s.BalanceIndex))
	fmt.Println(tbl)
	pp.NewLine()

	pp.Title("Recommendations")
	for _, rec := range s.Recommendations {
		fmt.Printf("• %s\n", rec)
	}
	pp.NewLine()
}
