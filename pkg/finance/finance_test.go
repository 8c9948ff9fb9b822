package finance

import (
	"math"
	"strconv"
	"testing"

	"tableflip.dev/ritmo/pkg/store"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return NewStore(p)
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPostIncomeRaisesBalance(t *testing.T) {
	s := testStore(t)
	acc, err := s.AddAccount(Account{Name: "Carteira", Opening: 1000})
	if err != nil {
		t.Fatalf("add account: %v", err)
	}
	ref := strconv.FormatInt(acc.ID, 10)

	if _, err := s.Post(Transaction{Kind: Income, Amount: 250, Description: "salário", Date: "2025-03-10", AccountID: ref}); err != nil {
		t.Fatalf("post: %v", err)
	}

	balance, err := s.Balance(acc.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !almost(balance, 1250) {
		t.Fatalf("expected 1250, got %v", balance)
	}
}

func TestPostExpenseLowersBalance(t *testing.T) {
	s := testStore(t)
	acc, _ := s.AddAccount(Account{Name: "Banco", Opening: 1000})
	ref := strconv.FormatInt(acc.ID, 10)

	if _, err := s.Post(Transaction{Kind: Expense, Amount: 50, Description: "mercado", Date: "2025-03-10", AccountID: ref}); err != nil {
		t.Fatalf("post: %v", err)
	}

	balance, _ := s.Balance(acc.ID)
	if !almost(balance, 950) {
		t.Fatalf("expected 950, got %v", balance)
	}
	if got := TotalExpense(s.Transactions()); !almost(got, 50) {
		t.Fatalf("expected totalExpense 50, got %v", got)
	}
}

func TestRemoveTransactionReversesEffect(t *testing.T) {
	s := testStore(t)
	acc, _ := s.AddAccount(Account{Name: "Banco", Opening: 1000})
	ref := strconv.FormatInt(acc.ID, 10)

	tx, err := s.Post(Transaction{Kind: Expense, Amount: 75, Description: "jantar", Date: "2025-03-10", AccountID: ref})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if err := s.RemoveTransaction(tx.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	balance, _ := s.Balance(acc.ID)
	if !almost(balance, 1000) {
		t.Fatalf("removal must reverse the debit, got %v", balance)
	}
}

func TestPostValidation(t *testing.T) {
	s := testStore(t)
	acc, _ := s.AddAccount(Account{Name: "Banco", Opening: 0})
	ref := strconv.FormatInt(acc.ID, 10)

	if _, err := s.Post(Transaction{Kind: Income, Amount: 0, AccountID: ref}); err == nil {
		t.Fatalf("zero amount must fail")
	}
	if _, err := s.Post(Transaction{Kind: "transfer", Amount: 10, AccountID: ref}); err == nil {
		t.Fatalf("unknown kind must fail")
	}
	if _, err := s.Post(Transaction{Kind: Income, Amount: 10, AccountID: "12345"}); err == nil {
		t.Fatalf("unknown account must fail")
	}
}

func TestSavingsRate(t *testing.T) {
	if got := SavingsRate(nil); got != 0 {
		t.Fatalf("no income should read 0, got %v", got)
	}

	txs := []Transaction{
		{Kind: Income, Amount: 1000},
		{Kind: Expense, Amount: 400},
	}
	if got := SavingsRate(txs); !almost(got, 60) {
		t.Fatalf("expected 60, got %v", got)
	}

	// Spending beyond income goes negative, unclamped.
	txs = []Transaction{
		{Kind: Income, Amount: 100},
		{Kind: Expense, Amount: 150},
	}
	if got := SavingsRate(txs); !almost(got, -50) {
		t.Fatalf("expected -50, got %v", got)
	}
}

func TestMonthlyYield(t *testing.T) {
	monthly := Account{ID: 1, Kind: Investment, Opening: 1000, YieldRate: 1, YieldPeriod: Monthly}
	if got := MonthlyYield(monthly, nil); !almost(got, 10) {
		t.Fatalf("expected 10, got %v", got)
	}

	annual := Account{ID: 2, Kind: Investment, Opening: 1200, YieldRate: 12, YieldPeriod: Annual}
	if got := MonthlyYield(annual, nil); !almost(got, 12) {
		t.Fatalf("expected 12, got %v", got)
	}

	regular := Account{ID: 3, Kind: Regular, Opening: 1000, YieldRate: 5}
	if got := MonthlyYield(regular, nil); got != 0 {
		t.Fatalf("regular accounts do not yield, got %v", got)
	}
}

func TestAccountNamePlaceholder(t *testing.T) {
	accounts := []Account{{ID: 7, Name: "Corrente"}}
	if got := AccountName(accounts, "7"); got != "Corrente" {
		t.Fatalf("expected Corrente, got %s", got)
	}
	if got := AccountName(accounts, "99"); got != "N/A" {
		t.Fatalf("dangling reference should read N/A, got %s", got)
	}
}

func TestEditAccountKeepsKindRules(t *testing.T) {
	s := testStore(t)
	acc, _ := s.AddAccount(Account{Name: "CDB", Opening: 500, Kind: Investment, YieldRate: 1.1})
	acc.Kind = Regular
	if err := s.EditAccount(acc); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got := s.Accounts()[0]
	if got.YieldRate != 0 || got.YieldPeriod != "" {
		t.Fatalf("regular account must not keep yield fields: %+v", got)
	}
}
