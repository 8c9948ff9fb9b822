package app

import (
	"context"
	"strconv"
	"testing"
	"time"

	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/focus"
	"tableflip.dev/ritmo/pkg/store"
)

func testService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return New(p)
}

func TestNoPersistence(t *testing.T) {
	s := &Service{}
	if _, err := s.Accounts(context.Background()); err == nil {
		t.Fatal("expected an error without persistence")
	}
}

func TestPostRefreshesGoalProgress(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	acc, err := s.AddAccount(ctx, finance.Account{Name: "Poupança", Opening: 200, Kind: finance.Regular})
	if err != nil {
		t.Fatalf("failed to add account: %v", err)
	}
	accountID := strconv.FormatInt(acc.ID, 10)

	g, err := s.AddPatrimonial(ctx, "Reserva", 1000, accountID)
	if err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}
	if g.Current != 200 {
		t.Fatalf("expected snapshot of 200, got %v", g.Current)
	}

	tx, err := s.Post(ctx, finance.Transaction{
		Kind:        finance.Income,
		Amount:      300,
		Description: "depósito",
		Date:        "2025-03-12",
		AccountID:   accountID,
	})
	if err != nil {
		t.Fatalf("failed to post transaction: %v", err)
	}

	goals, err := s.Patrimonials(ctx)
	if err != nil {
		t.Fatalf("failed to list goals: %v", err)
	}
	if goals[0].Current != 500 {
		t.Fatalf("expected progress 500 after deposit, got %v", goals[0].Current)
	}

	if err := s.RemoveTransaction(ctx, tx.ID); err != nil {
		t.Fatalf("failed to remove transaction: %v", err)
	}
	goals, _ = s.Patrimonials(ctx)
	if goals[0].Current != 200 {
		t.Fatalf("expected progress back to 200 after removal, got %v", goals[0].Current)
	}
}

func TestSnapshotMirrorsStores(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	date := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	if _, err := s.AddTask(ctx, date, "escrever relatório"); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if err := s.RecordSession(ctx, focus.NewSession(date, 25, true, "Escrita")); err != nil {
		t.Fatalf("failed to record session: %v", err)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("failed to snapshot: %v", err)
	}
	if len(snap.Calendar) != 1 {
		t.Fatalf("expected one calendar day, got %d", len(snap.Calendar))
	}
	if len(snap.Sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(snap.Sessions))
	}
}

func TestDaySynthesizesEmptyRecord(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	rec, err := s.Day(ctx, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("failed to read day: %v", err)
	}
	if rec.Project == "" || len(rec.Tasks) != 0 {
		t.Fatalf("expected empty default record, got %+v", rec)
	}
}
