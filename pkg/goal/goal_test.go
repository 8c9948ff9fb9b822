package goal

import (
	"testing"

	"tableflip.dev/ritmo/pkg/finance"
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

func TestSimpleGoalLifecycle(t *testing.T) {
	s := testStore(t)
	g, err := s.AddSimple("ler 12 livros")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	toggled, err := s.ToggleSimple(g.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected completed after toggle")
	}

	if err := s.RemoveSimple(g.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(s.SimpleGoals()); got != 0 {
		t.Fatalf("expected empty list, got %d", got)
	}
}

func TestAddPatrimonialSnapshotsLinkedBalance(t *testing.T) {
	s := testStore(t)
	acc := finance.Account{ID: 42, Name: "Poupança", Opening: 300}
	accounts := []finance.Account{acc}

	g, err := s.AddPatrimonial("Reserva", 1000, "42", accounts, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if g.Current != 300 {
		t.Fatalf("expected snapshot 300, got %v", g.Current)
	}
}

func TestRecomputeClampsToTarget(t *testing.T) {
	s := testStore(t)
	accounts := []finance.Account{{ID: 42, Name: "Poupança", Opening: 300}}
	g, err := s.AddPatrimonial("Reserva", 1000, "42", accounts, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	txs := []finance.Transaction{
		{Kind: finance.Income, Amount: 5000, AccountID: "42"},
	}
	changed, err := s.Recompute(accounts, txs)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !changed {
		t.Fatalf("expected a write")
	}
	got := s.Patrimonials()[0]
	if got.Current != g.Target {
		t.Fatalf("current must clamp to target, got %v", got.Current)
	}

	// Heavy spending clamps at the floor instead of going negative.
	txs = []finance.Transaction{
		{Kind: finance.Expense, Amount: 9000, AccountID: "42"},
	}
	if _, err := s.Recompute(accounts, txs); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got := s.Patrimonials()[0].Current; got != 0 {
		t.Fatalf("current must clamp at 0, got %v", got)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	s := testStore(t)
	accounts := []finance.Account{{ID: 42, Name: "Poupança", Opening: 300}}
	if _, err := s.AddPatrimonial("Reserva", 1000, "42", accounts, nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	txs := []finance.Transaction{{Kind: finance.Income, Amount: 100, AccountID: "42"}}
	changed, err := s.Recompute(accounts, txs)
	if err != nil || !changed {
		t.Fatalf("first recompute should change: changed=%v err=%v", changed, err)
	}
	changed, err = s.Recompute(accounts, txs)
	if err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	if changed {
		t.Fatalf("second recompute over identical inputs must be a no-op")
	}
}

func TestRecomputeSkipsUnlinkedGoals(t *testing.T) {
	s := testStore(t)
	if _, err := s.AddPatrimonial("Viagem", 2000, "", nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	changed, err := s.Recompute(nil, nil)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if changed {
		t.Fatalf("unlinked goals must not be rewritten")
	}
	if got := s.Patrimonials()[0].Current; got != 0 {
		t.Fatalf("unlinked goal keeps manual current, got %v", got)
	}
}

func TestRecomputeDanglingAccountUsesTransactions(t *testing.T) {
	s := testStore(t)
	if _, err := s.AddPatrimonial("Reserva", 1000, "77", nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	txs := []finance.Transaction{
		{Kind: finance.Income, Amount: 400, AccountID: "77"},
		{Kind: finance.Expense, Amount: 100, AccountID: "77"},
	}
	if _, err := s.Recompute(nil, txs); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got := s.Patrimonials()[0].Current; got != 300 {
		t.Fatalf("expected 300 from transactions alone, got %v", got)
	}
}
