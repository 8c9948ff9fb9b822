package stats

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/ritmo/pkg/dateutil"
)

// IntegratedStats is the cross-domain overview: composite scores, a
// week of combined trend data, and textual recommendations.
type IntegratedStats struct {
	ProductivityScore float64        `json:"productivityScore"`
	FocusEfficiency   float64        `json:"focusEfficiency"`
	FinancialHealth   float64        `json:"financialHealth"`
	BalanceIndex      float64        `json:"balanceIndex"`
	Recommendations   []string       `json:"recommendations"`
	OverallTrend      []OverallPoint `json:"overallTrend"`
}

// OverallPoint is one day of the combined trend.
type OverallPoint struct {
	Date         string  `json:"date"`
	Productivity float64 `json:"productivity"`
	Financial    float64 `json:"financial"`
	Balance      float64 `json:"balance"`
}

func (e *Engine) IntegratedStats(tasks TaskStats, financial FinancialStats, times TimeStats, projects ProjectStats) IntegratedStats {
	projectScore := rate(projects.CompletedTasks, projects.CompletedTasks+projects.PendingTasks)
	productivity := (tasks.CompletionRate + times.CompletionRate + projectScore) / 3

	savingsScore := financial.SavingsRate * 2
	if savingsScore > 100 {
		savingsScore = 100
	}
	investmentScore := financial.InvestmentReturn * 10
	if investmentScore > 100 {
		investmentScore = 100
	}
	health := (savingsScore + investmentScore) / 2

	balance := balanceIndex(projects.Distribution)

	trend := make([]OverallPoint, 0, 7)
	for _, day := range e.lastDays(7) {
		key := dateutil.FormatISO(day)
		dayRate := 0.0
		for _, p := range tasks.CompletionTrend {
			if p.Date == key {
				dayRate = p.Rate
				break
			}
		}
		b := balance
		if e.Jitter != nil {
			b += e.Jitter.Float64()*10 - e.Jitter.Float64()*10
		}
		if b < 0 {
			b = 0
		} else if b > 100 {
			b = 100
		}
		trend = append(trend, OverallPoint{
			Date:         key,
			Productivity: dayRate,
			Financial:    health,
			Balance:      b,
		})
	}

	return IntegratedStats{
		ProductivityScore: productivity,
		FocusEfficiency:   times.CompletionRate,
		FinancialHealth:   health,
		BalanceIndex:      balance,
		Recommendations:   recommendations(tasks, financial, times, projects),
		OverallTrend:      trend,
	}
}

// balanceIndex scores how evenly focus time spreads over projects:
// 100 for a perfectly even split, shrinking with the average
// deviation from the mean share.
func balanceIndex(distribution []ProjectShare) float64 {
	if len(distribution) == 0 {
		return 100
	}
	mean := 0.0
	for _, d := range distribution {
		mean += d.Percentage
	}
	mean /= float64(len(distribution))
	deviation := 0.0
	for _, d := range distribution {
		delta := d.Percentage - mean
		if delta < 0 {
			delta = -delta
		}
		deviation += delta
	}
	deviation /= float64(len(distribution))
	index := 100 - deviation*2
	if index < 0 {
		index = 0
	}
	return index
}

func recommendations(tasks TaskStats, financial FinancialStats, times TimeStats, projects ProjectStats) []string {
	var recs []string

	if tasks.CompletionRate < 50 {
		recs = append(recs, "Foque em completar mais tarefas antes de adicionar novas.")
	} else if tasks.CompletionRate > 80 {
		recs = append(recs, "Excelente taxa de conclusão! Considere adicionar mais tarefas ou projetos.")
	}

	if financial.SavingsRate < 20 {
		recs = append(recs, "Aumente sua taxa de economia para pelo menos 30% da renda.")
	}

	if times.TotalSessions < 5 {
		recs = append(recs, "Use o timer Pomodoro regularmente para medir sua produtividade e melhorar o foco.")
	} else if times.AverageSessionLength < 15 {
		recs = append(recs, "Tente manter sessões de foco mais longas para maior produtividade.")
	}

	for _, share := range projects.Distribution {
		if share.Percentage > 50 {
			recs = append(recs, "Distribua melhor seu tempo entre diferentes projetos para maior equilíbrio.")
			break
		}
	}
	if projects.TotalProjects > 5 {
		recs = append(recs, "Considere focar em menos projetos simultaneamente para maior eficiência.")
	}

	if hours := topHours(times.ProductivityByHour, 3); len(hours) > 0 {
		recs = append(recs, fmt.Sprintf("Programe suas tarefas mais importantes para seus horários mais produtivos: %s.", strings.Join(hours, ", ")))
	}

	if len(recs) == 0 {
		recs = []string{
			"Continue mantendo o equilíbrio entre produtividade e bem-estar.",
			"Revise suas metas financeiras mensalmente.",
			"Celebre suas conquistas, por menores que sejam.",
			"Mantenha a consistência nos seus hábitos de foco.",
		}
	}
	return recs
}

// topHours picks the n most productive hours, formatted as "9h".
func topHours(hours []HourProductivity, n int) []string {
	sorted := append([]HourProductivity(nil), hours...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Productivity != sorted[j].Productivity {
			return sorted[i].Productivity > sorted[j].Productivity
		}
		return sorted[i].Hour < sorted[j].Hour
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]string, 0, len(sorted))
	for _, h := range sorted {
		out = append(out, fmt.Sprintf("%dh", h.Hour))
	}
	return out
}
