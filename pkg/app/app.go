package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/focus"
	"tableflip.dev/ritmo/pkg/goal"
	"tableflip.dev/ritmo/pkg/planner"
	"tableflip.dev/ritmo/pkg/stats"
	"tableflip.dev/ritmo/pkg/store"
)

// Service provides high-level operations over every document store.
// It wraps persistence and keeps the cross-store rules in one place,
// so UIs and CLIs can share logic: patrimonial goals are recomputed
// whenever the ledger changes.
type Service struct {
	Persistence store.Persistence

	planner *planner.Store
	finance *finance.Store
	goals   *goal.Store
	focus   *focus.Store
}

var errNoPersistence = errors.New("app: no persistence configured")

func New(p store.Persistence) *Service {
	return &Service{
		Persistence: p,
		planner:     planner.NewStore(p),
		finance:     finance.NewStore(p),
		goals:       goal.NewStore(p),
		focus:       focus.NewStore(p),
	}
}

func (s *Service) ready() error {
	if s == nil || s.Persistence == nil {
		return errNoPersistence
	}
	return nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Watch(ctx)
}

// Day returns the planner record for a date, synthesizing an empty
// one when nothing is stored.
func (s *Service) Day(ctx context.Context, date time.Time) (planner.DayRecord, error) {
	if err := s.ready(); err != nil {
		return planner.DayRecord{}, err
	}
	rec, ok := s.planner.Day(date)
	if !ok {
		rec = planner.DayRecord{Project: planner.NoProject}
	}
	return rec, nil
}

// Week returns the seven planner days around the reference date.
func (s *Service) Week(ctx context.Context, ref time.Time) ([]planner.WeekDay, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.planner.Week(ref), nil
}

// MonthGrid returns the month's calendar cells in whole weeks.
func (s *Service) MonthGrid(ctx context.Context, year int, month time.Month) ([]planner.DayCell, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.planner.MonthGrid(year, month), nil
}

// SetProject names the project for a planner day.
func (s *Service) SetProject(ctx context.Context, date time.Time, name string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.planner.SetProject(date, name)
}

// AddTask appends a task to a planner day.
func (s *Service) AddTask(ctx context.Context, date time.Time, text string) (planner.Task, error) {
	if err := s.ready(); err != nil {
		return planner.Task{}, err
	}
	return s.planner.AddTask(date, text)
}

// ToggleTask flips a task's completion.
func (s *Service) ToggleTask(ctx context.Context, date time.Time, id string) (planner.Task, error) {
	if err := s.ready(); err != nil {
		return planner.Task{}, err
	}
	return s.planner.ToggleTask(date, id)
}

// RemoveTask deletes a task from a planner day.
func (s *Service) RemoveTask(ctx context.Context, date time.Time, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.planner.RemoveTask(date, id)
}

// Projects lists distinct project names from the planner.
func (s *Service) Projects(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.planner.Projects(), nil
}

// Accounts lists the financial accounts.
func (s *Service) Accounts(ctx context.Context) ([]finance.Account, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.finance.Accounts(), nil
}

// Transactions lists the full ledger.
func (s *Service) Transactions(ctx context.Context) ([]finance.Transaction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.finance.Transactions(), nil
}

// AddAccount creates an account.
func (s *Service) AddAccount(ctx context.Context, acc finance.Account) (finance.Account, error) {
	if err := s.ready(); err != nil {
		return finance.Account{}, err
	}
	return s.finance.AddAccount(acc)
}

// EditAccount updates an account in place, then refreshes goal
// progress since linked balances may have moved.
func (s *Service) EditAccount(ctx context.Context, acc finance.Account) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.finance.EditAccount(acc); err != nil {
		return err
	}
	return s.recomputeGoals()
}

// Post appends a transaction to the ledger and refreshes goal
// progress.
func (s *Service) Post(ctx context.Context, tx finance.Transaction) (finance.Transaction, error) {
	if err := s.ready(); err != nil {
		return finance.Transaction{}, err
	}
	posted, err := s.finance.Post(tx)
	if err != nil {
		return finance.Transaction{}, err
	}
	return posted, s.recomputeGoals()
}

// RemoveTransaction deletes a transaction. The account balance
// reverses on its own since balances are projections over the log.
func (s *Service) RemoveTransaction(ctx context.Context, id int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.finance.RemoveTransaction(id); err != nil {
		return err
	}
	return s.recomputeGoals()
}

// Balance projects one account's balance from the ledger.
func (s *Service) Balance(ctx context.Context, accountID int64) (float64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	return s.finance.Balance(accountID)
}

// SimpleGoals lists the checklist goals.
func (s *Service) SimpleGoals(ctx context.Context) ([]goal.Simple, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.goals.SimpleGoals(), nil
}

// AddSimple creates a checklist goal.
func (s *Service) AddSimple(ctx context.Context, text string) (goal.Simple, error) {
	if err := s.ready(); err != nil {
		return goal.Simple{}, err
	}
	return s.goals.AddSimple(text)
}

// ToggleSimple flips a checklist goal's completion.
func (s *Service) ToggleSimple(ctx context.Context, id int64) (goal.Simple, error) {
	if err := s.ready(); err != nil {
		return goal.Simple{}, err
	}
	return s.goals.ToggleSimple(id)
}

// RemoveSimple deletes a checklist goal.
func (s *Service) RemoveSimple(ctx context.Context, id int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.goals.RemoveSimple(id)
}

// Patrimonials lists the savings targets.
func (s *Service) Patrimonials(ctx context.Context) ([]goal.Patrimonial, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.goals.Patrimonials(), nil
}

// AddPatrimonial creates a savings target, snapshotting progress from
// the linked account's projected balance.
func (s *Service) AddPatrimonial(ctx context.Context, name string, target float64, accountID string) (goal.Patrimonial, error) {
	if err := s.ready(); err != nil {
		return goal.Patrimonial{}, err
	}
	return s.goals.AddPatrimonial(name, target, accountID, s.finance.Accounts(), s.finance.Transactions())
}

// RemovePatrimonial deletes a savings target.
func (s *Service) RemovePatrimonial(ctx context.Context, id int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.goals.RemovePatrimonial(id)
}

// Sessions lists the recorded focus sessions.
func (s *Service) Sessions(ctx context.Context) ([]focus.Session, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.focus.Sessions(), nil
}

// RecordSession appends a finished or abandoned focus session.
func (s *Service) RecordSession(ctx context.Context, sess focus.Session) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.focus.Append(sess)
}

// TimerSettings returns timer durations, falling back to defaults
// per field.
func (s *Service) TimerSettings(ctx context.Context) (focus.Settings, error) {
	if err := s.ready(); err != nil {
		return focus.Settings{}, err
	}
	return s.focus.Settings(), nil
}

// SaveTimerSettings persists timer durations.
func (s *Service) SaveTimerSettings(ctx context.Context, settings focus.Settings) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.focus.SaveSettings(settings)
}

// Snapshot copies every store for the aggregation engine.
func (s *Service) Snapshot(ctx context.Context) (stats.Snapshot, error) {
	if err := s.ready(); err != nil {
		return stats.Snapshot{}, err
	}
	return stats.Snapshot{
		Calendar:     s.planner.Calendar(),
		SimpleGoals:  s.goals.SimpleGoals(),
		Patrimonials: s.goals.Patrimonials(),
		Accounts:     s.finance.Accounts(),
		Transactions: s.finance.Transactions(),
		Sessions:     s.focus.Sessions(),
	}, nil
}

// Migrate folds legacy document keys into their canonical homes.
func (s *Service) Migrate(ctx context.Context, ref time.Time) (planner.MigrationReport, error) {
	if err := s.ready(); err != nil {
		return planner.MigrationReport{}, err
	}
	return s.planner.Migrate(ref)
}

func (s *Service) recomputeGoals() error {
	_, err := s.goals.Recompute(s.finance.Accounts(), s.finance.Transactions())
	return err
}
