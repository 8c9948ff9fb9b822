package stats

import (
	"math"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/focus"
	"tableflip.dev/ritmo/pkg/goal"
	"tableflip.dev/ritmo/pkg/planner"
)

func testEngine(r Range) *Engine {
	return &Engine{
		Range: r,
		Now: func() time.Time {
			return time.Date(2025, time.March, 12, 9, 30, 0, 0, time.Local)
		},
	}
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEmptySnapshot(t *testing.T) {
	e := testEngine(Week)
	got := e.All(Snapshot{})

	if got.Financial.TotalPatrimony != 0 {
		t.Fatalf("expected zero patrimony, got %v", got.Financial.TotalPatrimony)
	}
	if got.Financial.SavingsRate != 0 {
		t.Fatalf("expected zero savings rate, got %v", got.Financial.SavingsRate)
	}
	if len(got.Financial.Allocation) != 1 {
		t.Fatalf("expected placeholder allocation, got %v", got.Financial.Allocation)
	}
	placeholder := got.Financial.Allocation[0]
	if placeholder.Name != NoInvestments || placeholder.Value != 100 || placeholder.Amount != 0 {
		t.Fatalf("unexpected placeholder: %+v", placeholder)
	}
	if got.Tasks.CompletionRate != 0 {
		t.Fatalf("expected zero completion rate, got %v", got.Tasks.CompletionRate)
	}
	if len(got.Tasks.CompletionTrend) != 7 {
		t.Fatalf("expected 7 trend points, got %d", len(got.Tasks.CompletionTrend))
	}
}

func TestInvestmentReturn(t *testing.T) {
	e := testEngine(Week)
	snap := Snapshot{
		Accounts: []finance.Account{{
			ID:          1,
			Name:        "Tesouro",
			Opening:     1000,
			Kind:        finance.Investment,
			YieldRate:   1,
			YieldPeriod: finance.Monthly,
		}},
	}
	got := e.FinancialStats(snap)

	if !almost(got.InvestmentReturn, 1.0) {
		t.Fatalf("expected 1%% return, got %v", got.InvestmentReturn)
	}
	if len(got.Allocation) != 1 {
		t.Fatalf("expected one allocation entry, got %d", len(got.Allocation))
	}
	alloc := got.Allocation[0]
	if !almost(alloc.MonthlyYield, 10) {
		t.Fatalf("expected 10 monthly yield, got %v", alloc.MonthlyYield)
	}
	if !almost(alloc.Value, 100) || !almost(alloc.Amount, 1000) {
		t.Fatalf("unexpected allocation: %+v", alloc)
	}
}

func TestTimeStatsCountsCompletedOnly(t *testing.T) {
	e := testEngine(Week)
	snap := Snapshot{
		Sessions: []focus.Session{
			{Date: "2025-03-11", Duration: 25, Completed: true, Timestamp: "2025-03-11T09:00:00-03:00"},
			{Date: "2025-03-11", Duration: 10, Completed: false, Timestamp: "2025-03-11T14:00:00-03:00"},
		},
	}
	got := e.TimeStats(snap)

	if got.TotalFocusTime != 25 {
		t.Fatalf("expected 25 focus minutes, got %d", got.TotalFocusTime)
	}
	if got.TotalSessions != 2 {
		t.Fatalf("expected 2 sessions, got %d", got.TotalSessions)
	}
	if !almost(got.CompletionRate, 50) {
		t.Fatalf("expected 50%% completion, got %v", got.CompletionRate)
	}
	if !almost(got.AverageSessionLength, 25) {
		t.Fatalf("expected 25 average, got %v", got.AverageSessionLength)
	}
	if got.MostProductiveDay != "2025-03-11" {
		t.Fatalf("unexpected most productive day: %q", got.MostProductiveDay)
	}
}

func TestRangeFiltersSessions(t *testing.T) {
	e := testEngine(Week)
	snap := Snapshot{
		Sessions: []focus.Session{
			{Date: "2025-03-10", Duration: 25, Completed: true},
			{Date: "2025-01-02", Duration: 25, Completed: true},
		},
	}
	if got := e.TimeStats(snap); got.TotalSessions != 1 {
		t.Fatalf("expected old session filtered out, got %d sessions", got.TotalSessions)
	}
	e.Range = Year
	if got := e.TimeStats(snap); got.TotalSessions != 2 {
		t.Fatalf("expected both sessions in year range, got %d sessions", got.TotalSessions)
	}
}

func TestTaskStatsFoldsGoalsAfterRate(t *testing.T) {
	e := testEngine(Week)
	snap := Snapshot{
		Calendar: planner.Calendar{
			"2025-03-11": {Project: "Trabalho relatório", Tasks: []planner.Task{
				{ID: "a", Text: "escrever", Completed: true},
				{ID: "b", Text: "revisar"},
			}},
		},
		SimpleGoals: []goal.Simple{{ID: 1, Text: "ler", Completed: true}},
	}
	got := e.TaskStats(snap)

	// Rate is over calendar tasks; the counts also include goals.
	if !almost(got.CompletionRate, 50) {
		t.Fatalf("expected 50%% rate, got %v", got.CompletionRate)
	}
	if got.Completed != 2 || got.Pending != 1 {
		t.Fatalf("expected 2 completed / 1 pending, got %d/%d", got.Completed, got.Pending)
	}
	if got.Categories["Trabalho"] != 1 {
		t.Fatalf("expected project bucketed by first word, got %v", got.Categories)
	}
}

func TestProjectDistribution(t *testing.T) {
	e := testEngine(Week)
	snap := Snapshot{
		Sessions: []focus.Session{
			{Date: "2025-03-11", Duration: 75, Completed: true, Project: "Escrita"},
			{Date: "2025-03-11", Duration: 25, Completed: true, Project: "Estudo"},
			{Date: "2025-03-11", Duration: 25, Completed: false, Project: "Estudo"},
		},
	}
	got := e.ProjectStats(snap)

	if got.TotalProjects != 2 {
		t.Fatalf("expected 2 projects, got %d", got.TotalProjects)
	}
	if len(got.Distribution) != 2 {
		t.Fatalf("expected 2 distribution entries, got %v", got.Distribution)
	}
	if got.Distribution[0].Name != "Escrita" || !almost(got.Distribution[0].Percentage, 75) {
		t.Fatalf("unexpected top share: %+v", got.Distribution[0])
	}
}

func TestBalanceIndex(t *testing.T) {
	even := []ProjectShare{{Percentage: 50}, {Percentage: 50}}
	if got := balanceIndex(even); !almost(got, 100) {
		t.Fatalf("expected 100 for even split, got %v", got)
	}
	skewed := []ProjectShare{{Percentage: 75}, {Percentage: 25}}
	if got := balanceIndex(skewed); !almost(got, 50) {
		t.Fatalf("expected 50 for 75/25 split, got %v", got)
	}
	if got := balanceIndex(nil); !almost(got, 100) {
		t.Fatalf("expected 100 with no shares, got %v", got)
	}
}

func TestRecommendationsThresholds(t *testing.T) {
	e := testEngine(Week)
	got := e.All(Snapshot{})

	want := []string{
		"Foque em completar mais tarefas antes de adicionar novas.",
		"Aumente sua taxa de economia para pelo menos 30% da renda.",
		"Use o timer Pomodoro regularmente para medir sua produtividade e melhorar o foco.",
	}
	recs := got.Integrated.Recommendations
	for _, w := range want {
		found := false
		for _, r := range recs {
			if r == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing recommendation %q in %v", w, recs)
		}
	}
}

func TestIdempotentWithoutJitter(t *testing.T) {
	e := testEngine(Month)
	snap := Snapshot{
		Calendar: planner.Calendar{
			"2025-03-10": {Project: "Estudo", Tasks: []planner.Task{{ID: "a", Text: "ler", Completed: true}}},
		},
		Accounts: []finance.Account{{ID: 1, Name: "Conta", Opening: 500, Kind: finance.Regular}},
		Transactions: []finance.Transaction{
			{ID: 2, Kind: finance.Income, Amount: 100, Description: "salário", Date: "2025-03-10", AccountID: "1"},
		},
		Sessions: []focus.Session{
			{Date: "2025-03-10", Duration: 25, Completed: true, Project: "Estudo", Timestamp: "2025-03-10T10:00:00-03:00"},
		},
	}

	first := e.All(snap)
	second := e.All(snap)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results without jitter")
	}
	if !almost(first.Financial.TotalPatrimony, 600) {
		t.Fatalf("expected 600 patrimony, got %v", first.Financial.TotalPatrimony)
	}
}

func TestPatrimonialTrendWalksBackwards(t *testing.T) {
	e := testEngine(Week)
	snap := Snapshot{
		Accounts: []finance.Account{{ID: 1, Name: "Conta", Opening: 100, Kind: finance.Regular}},
		Transactions: []finance.Transaction{
			{ID: 2, Kind: finance.Income, Amount: 50, Description: "pix", Date: "2025-03-11", AccountID: "1"},
		},
	}
	got := e.FinancialStats(snap)

	if len(got.PatrimonialTrend) != 7 {
		t.Fatalf("expected 7 points, got %d", len(got.PatrimonialTrend))
	}
	last := got.PatrimonialTrend[6]
	if last.Date != "2025-03-12" || !almost(last.Patrimony, 150) {
		t.Fatalf("unexpected final point: %+v", last)
	}
	first := got.PatrimonialTrend[0]
	if !almost(first.Patrimony, 100) {
		t.Fatalf("expected opening-only patrimony before the deposit, got %v", first.Patrimony)
	}
}
