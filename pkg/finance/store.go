package finance

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/ritmo/pkg/store"
)

// Store persists accounts and transactions under their documents.
type Store struct {
	p store.Persistence
}

func NewStore(p store.Persistence) *Store {
	return &Store{p: p}
}

// Accounts loads the account list; missing data reads as empty.
func (s *Store) Accounts() []Account {
	accounts := []Account{}
	s.p.Load(store.KeyFinancialData, &accounts)
	return accounts
}

// Transactions loads the transaction log; missing data reads as empty.
func (s *Store) Transactions() []Transaction {
	txs := []Transaction{}
	s.p.Load(store.KeyTransactions, &txs)
	return txs
}

// AddAccount creates an account with a fresh id and stores it.
func (s *Store) AddAccount(acc Account) (Account, error) {
	if strings.TrimSpace(acc.Name) == "" {
		return Account{}, fmt.Errorf("finance: account name required")
	}
	if acc.Kind == "" {
		acc.Kind = Regular
	}
	if acc.Kind != Investment {
		acc.YieldRate = 0
		acc.YieldPeriod = ""
	} else if acc.YieldPeriod == "" {
		acc.YieldPeriod = Monthly
	}
	acc.ID = NewID()
	accounts := append(s.Accounts(), acc)
	if err := s.p.Save(store.KeyFinancialData, accounts); err != nil {
		return Account{}, err
	}
	return acc, nil
}

// EditAccount replaces the stored account with the same id.
func (s *Store) EditAccount(acc Account) error {
	accounts := s.Accounts()
	for i := range accounts {
		if accounts[i].ID == acc.ID {
			if acc.Kind != Investment {
				acc.YieldRate = 0
				acc.YieldPeriod = ""
			}
			accounts[i] = acc
			return s.p.Save(store.KeyFinancialData, accounts)
		}
	}
	return fmt.Errorf("finance: account %d not found", acc.ID)
}

// Post validates and appends a transaction. The referenced account's
// balance moves implicitly because balances are projected from the log.
func (s *Store) Post(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	if _, ok := FindAccount(s.Accounts(), tx.AccountID); !ok {
		return Transaction{}, fmt.Errorf("finance: account %s not found", tx.AccountID)
	}
	tx.ID = NewID()
	txs := append(s.Transactions(), tx)
	if err := s.p.Save(store.KeyTransactions, txs); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// RemoveTransaction deletes a transaction by id. Its balance effect
// disappears with it.
func (s *Store) RemoveTransaction(id int64) error {
	txs := s.Transactions()
	for i := range txs {
		if txs[i].ID == id {
			txs = append(txs[:i], txs[i+1:]...)
			return s.p.Save(store.KeyTransactions, txs)
		}
	}
	return fmt.Errorf("finance: transaction %d not found", id)
}

// Balance projects the live balance for the account with the given id.
func (s *Store) Balance(accountID int64) (float64, error) {
	accounts := s.Accounts()
	acc, ok := FindAccount(accounts, strconv.FormatInt(accountID, 10))
	if !ok {
		return 0, fmt.Errorf("finance: account %d not found", accountID)
	}
	return Balance(acc, s.Transactions()), nil
}
