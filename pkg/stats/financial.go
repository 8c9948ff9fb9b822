package stats

import (
	"sort"

	"tableflip.dev/ritmo/pkg/dateutil"
	"tableflip.dev/ritmo/pkg/finance"
)

// FinancialStats summarizes the finance tracker. Patrimony and per
// account values are projections over the transaction log.
type FinancialStats struct {
	TotalPatrimony     float64               `json:"totalPatrimony"`
	TotalIncome        float64               `json:"totalIncome"`
	TotalExpenses      float64               `json:"totalExpenses"`
	SavingsRate        float64               `json:"savingsRate"`
	InvestmentReturn   float64               `json:"investmentReturn"`
	Allocation         []Allocation          `json:"investmentAllocation"`
	RecentTransactions []finance.Transaction `json:"recentTransactions"`
	PatrimonialTrend   []PatrimonyPoint      `json:"patrimonialTrend"`
}

// Allocation is one investment account's share of the invested total.
type Allocation struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	Amount       float64 `json:"amount"`
	MonthlyYield float64 `json:"monthlyYield"`
}

// PatrimonyPoint is one day of the reconstructed patrimony trend.
type PatrimonyPoint struct {
	Date      string  `json:"date"`
	Patrimony float64 `json:"patrimony"`
}

// NoInvestments labels the allocation placeholder shown when no
// investment account exists.
const NoInvestments = "Sem investimentos"

func (e *Engine) FinancialStats(s Snapshot) FinancialStats {
	patrimony := finance.TotalPatrimony(s.Accounts, s.Transactions)
	income := finance.TotalIncome(s.Transactions)
	expenses := finance.TotalExpense(s.Transactions)

	totalInvested := 0.0
	totalYield := 0.0
	var allocation []Allocation
	for _, acc := range s.Accounts {
		if acc.Kind != finance.Investment {
			continue
		}
		balance := finance.Balance(acc, s.Transactions)
		totalInvested += balance
		totalYield += finance.MonthlyYield(acc, s.Transactions)
	}
	for _, acc := range s.Accounts {
		if acc.Kind != finance.Investment {
			continue
		}
		balance := finance.Balance(acc, s.Transactions)
		share := 100.0
		if totalInvested > 0 {
			share = balance / totalInvested * 100
		}
		allocation = append(allocation, Allocation{
			Name:         acc.Name,
			Value:        share,
			Amount:       balance,
			MonthlyYield: finance.MonthlyYield(acc, s.Transactions),
		})
	}
	if len(allocation) == 0 {
		allocation = []Allocation{{Name: NoInvestments, Value: 100, Amount: 0}}
	}

	investmentReturn := 0.0
	if totalInvested > 0 {
		investmentReturn = totalYield / totalInvested * 100
	}

	recent := append([]finance.Transaction(nil), s.Transactions...)
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].Date != recent[j].Date {
			return recent[i].Date > recent[j].Date
		}
		return recent[i].ID > recent[j].ID
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	trend := make([]PatrimonyPoint, 0, 7)
	for _, day := range e.lastDays(7) {
		key := dateutil.FormatISO(day)
		// Walk the log backwards: today's patrimony minus every
		// transaction posted after this day.
		value := patrimony
		for _, tx := range s.Transactions {
			if tx.Date > key {
				value -= tx.Signed()
			}
		}
		trend = append(trend, PatrimonyPoint{Date: key, Patrimony: value})
	}

	return FinancialStats{
		TotalPatrimony:     patrimony,
		TotalIncome:        income,
		TotalExpenses:      expenses,
		SavingsRate:        finance.SavingsRate(s.Transactions),
		InvestmentReturn:   investmentReturn,
		Allocation:         allocation,
		RecentTransactions: recent,
		PatrimonialTrend:   trend,
	}
}
