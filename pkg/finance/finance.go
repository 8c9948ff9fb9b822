// Package finance holds accounts and the transaction log. Balances are
// a projection over the log: an account stores its opening amount and
// every posted transaction adjusts the derived balance, so removing a
// transaction reverses its effect with no compensating write.
package finance

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Kind classifies an account.
type Kind string

const (
	Regular    Kind = "regular"
	Investment Kind = "investment"
)

// YieldPeriod is how an investment account quotes its yield rate.
// Values match the stored database schema.
type YieldPeriod string

const (
	Monthly YieldPeriod = "mensal"
	Annual  YieldPeriod = "anual"
)

// TxKind tags a transaction as money in or money out.
type TxKind string

const (
	Income  TxKind = "income"
	Expense TxKind = "expense"
)

// Account is a financial bucket. Opening is the stored base amount;
// the live balance is Opening plus the net of posted transactions.
type Account struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Opening     float64     `json:"amount"`
	Icon        string      `json:"icon,omitempty"`
	Kind        Kind        `json:"type"`
	YieldRate   float64     `json:"yield,omitempty"`
	YieldPeriod YieldPeriod `json:"period,omitempty"`
}

// Transaction is one posted movement against an account. AccountID is
// a weak reference: it may stop resolving and readers fall back to a
// placeholder label instead of failing.
type Transaction struct {
	ID          int64   `json:"id"`
	Kind        TxKind  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Tag         string  `json:"tag,omitempty"`
	Date        string  `json:"date"`
	AccountID   string  `json:"account"`
}

// Signed returns the transaction amount with its direction applied.
func (t Transaction) Signed() float64 {
	if t.Kind == Expense {
		return -t.Amount
	}
	return t.Amount
}

// Balance projects an account's live balance from the transaction log.
func Balance(acc Account, txs []Transaction) float64 {
	ref := strconv.FormatInt(acc.ID, 10)
	balance := acc.Opening
	for _, tx := range txs {
		if tx.AccountID == ref {
			balance += tx.Signed()
		}
	}
	return balance
}

// TotalPatrimony sums every account's projected balance.
func TotalPatrimony(accounts []Account, txs []Transaction) float64 {
	total := 0.0
	for _, acc := range accounts {
		total += Balance(acc, txs)
	}
	return total
}

// TotalIncome sums income transactions.
func TotalIncome(txs []Transaction) float64 {
	total := 0.0
	for _, tx := range txs {
		if tx.Kind == Income {
			total += tx.Amount
		}
	}
	return total
}

// TotalExpense sums expense transactions.
func TotalExpense(txs []Transaction) float64 {
	total := 0.0
	for _, tx := range txs {
		if tx.Kind == Expense {
			total += tx.Amount
		}
	}
	return total
}

// SavingsRate is (income-expense)/income as a percentage. Zero income
// reads as zero; spending more than you earn goes negative, unclamped.
func SavingsRate(txs []Transaction) float64 {
	income := TotalIncome(txs)
	if income <= 0 {
		return 0
	}
	return (income - TotalExpense(txs)) / income * 100
}

// MonthlyYield estimates an investment account's monthly return from
// its projected balance. Annual-period rates are divided by twelve.
func MonthlyYield(acc Account, txs []Transaction) float64 {
	if acc.Kind != Investment {
		return 0
	}
	monthly := Balance(acc, txs) * (acc.YieldRate / 100)
	if acc.YieldPeriod == Annual {
		return monthly / 12
	}
	return monthly
}

// AccountName resolves a transaction's account reference, falling back
// to a placeholder when the reference no longer matches anything.
func AccountName(accounts []Account, accountID string) string {
	for _, acc := range accounts {
		if strconv.FormatInt(acc.ID, 10) == accountID {
			return acc.Name
		}
	}
	return "N/A"
}

// FindAccount looks an account up by its id rendered as a string.
func FindAccount(accounts []Account, accountID string) (Account, bool) {
	for _, acc := range accounts {
		if strconv.FormatInt(acc.ID, 10) == accountID {
			return acc, true
		}
	}
	return Account{}, false
}

// Validate checks the fields a transaction needs before posting.
func (t Transaction) Validate() error {
	if t.Amount <= 0 {
		return errors.New("finance: amount must be positive")
	}
	if t.Kind != Income && t.Kind != Expense {
		return fmt.Errorf("finance: unknown transaction kind %q", t.Kind)
	}
	if t.AccountID == "" {
		return errors.New("finance: transaction needs an account")
	}
	return nil
}

var (
	idMu sync.Mutex
	last int64
)

// NewID returns a creation-timestamp id, bumped when two records are
// created within the same millisecond.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= last {
		id = last + 1
	}
	last = id
	return id
}
