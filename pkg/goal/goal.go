// Package goal keeps the two unrelated notions of "goal" apart: Simple
// check-off goals under the goals document, and Patrimonial net-worth
// targets under financialGoals.
package goal

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/store"
)

// Simple is a boolean-completion goal.
type Simple struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Patrimonial is a net-worth target, optionally tracked live against a
// linked account. Current is a derived value: Recompute re-projects it
// from the linked account whenever finance data changes.
type Patrimonial struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Target    float64 `json:"amount"`
	Current   float64 `json:"current"`
	AccountID string  `json:"account,omitempty"`
}

// Progress is Current as a share of Target, in percent.
func (g Patrimonial) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	return g.Current / g.Target * 100
}

// Store persists both goal lists.
type Store struct {
	p store.Persistence
}

func NewStore(p store.Persistence) *Store {
	return &Store{p: p}
}

// Simple goals.

func (s *Store) SimpleGoals() []Simple {
	goals := []Simple{}
	s.p.Load(store.KeyGoals, &goals)
	return goals
}

func (s *Store) AddSimple(text string) (Simple, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Simple{}, errors.New("goal: text required")
	}
	g := Simple{ID: finance.NewID(), Text: text}
	goals := append(s.SimpleGoals(), g)
	if err := s.p.Save(store.KeyGoals, goals); err != nil {
		return Simple{}, err
	}
	return g, nil
}

func (s *Store) ToggleSimple(id int64) (Simple, error) {
	goals := s.SimpleGoals()
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Completed = !goals[i].Completed
			if err := s.p.Save(store.KeyGoals, goals); err != nil {
				return Simple{}, err
			}
			return goals[i], nil
		}
	}
	return Simple{}, fmt.Errorf("goal: %d not found", id)
}

func (s *Store) RemoveSimple(id int64) error {
	goals := s.SimpleGoals()
	for i := range goals {
		if goals[i].ID == id {
			goals = append(goals[:i], goals[i+1:]...)
			return s.p.Save(store.KeyGoals, goals)
		}
	}
	return fmt.Errorf("goal: %d not found", id)
}

// Patrimonial goals.

func (s *Store) Patrimonials() []Patrimonial {
	goals := []Patrimonial{}
	s.p.Load(store.KeyFinancialGoals, &goals)
	return goals
}

// AddPatrimonial stores a new target, snapshotting Current from the
// linked account's projected balance.
func (s *Store) AddPatrimonial(name string, target float64, accountID string, accounts []finance.Account, txs []finance.Transaction) (Patrimonial, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Patrimonial{}, errors.New("goal: name required")
	}
	if target <= 0 {
		return Patrimonial{}, errors.New("goal: target must be positive")
	}
	g := Patrimonial{ID: finance.NewID(), Name: name, Target: target, AccountID: accountID}
	g.Current = linkedBalance(g, accounts, txs)
	goals := append(s.Patrimonials(), g)
	if err := s.p.Save(store.KeyFinancialGoals, goals); err != nil {
		return Patrimonial{}, err
	}
	return g, nil
}

func (s *Store) RemovePatrimonial(id int64) error {
	goals := s.Patrimonials()
	for i := range goals {
		if goals[i].ID == id {
			goals = append(goals[:i], goals[i+1:]...)
			return s.p.Save(store.KeyFinancialGoals, goals)
		}
	}
	return fmt.Errorf("goal: %d not found", id)
}

// Recompute re-derives Current for every linked goal as the linked
// account's projected balance clamped to [0, Target]. It is idempotent
// and only writes back when something actually changed.
func (s *Store) Recompute(accounts []finance.Account, txs []finance.Transaction) (bool, error) {
	goals := s.Patrimonials()
	changed := false
	for i := range goals {
		if goals[i].AccountID == "" {
			continue
		}
		current := clamp(linkedBalance(goals[i], accounts, txs), 0, goals[i].Target)
		if current != goals[i].Current {
			goals[i].Current = current
			changed = true
		}
	}
	if !changed {
		return false, nil
	}
	return true, s.p.Save(store.KeyFinancialGoals, goals)
}

// linkedBalance projects the linked account's balance; a dangling
// reference contributes only the transactions still tagged with it.
func linkedBalance(g Patrimonial, accounts []finance.Account, txs []finance.Transaction) float64 {
	if g.AccountID == "" {
		return 0
	}
	if acc, ok := finance.FindAccount(accounts, g.AccountID); ok {
		return finance.Balance(acc, txs)
	}
	net := 0.0
	for _, tx := range txs {
		if tx.AccountID == g.AccountID {
			net += tx.Signed()
		}
	}
	return net
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
