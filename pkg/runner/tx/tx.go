// Package tx provides runners for the transaction ledger.
package tx

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

// Post appends a transaction and reprints the ledger.
type Post struct {
	Transaction finance.Transaction
	Persistence store.Persistence
}

func (n *Post) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not post, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.Post(ctx, n.Transaction); err != nil {
		return err
	}
	return list(ctx, svc)
}

// Remove deletes a transaction. Balances reverse on their own since
// they are projections over the ledger.
type Remove struct {
	ID          int64
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	svc := app.New(n.Persistence)

	if err := svc.RemoveTransaction(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, svc)
}

// List prints the ledger, most recent first.
type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	return list(ctx, app.New(n.Persistence))
}

func list(ctx context.Context, svc *app.Service) error {
	txs, err := svc.Transactions(ctx)
	if err != nil {
		return err
	}
	accounts, err := svc.Accounts(ctx)
	if err != nil {
		return err
	}

	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date > txs[j].Date
		}
		return txs[i].ID > txs[j].ID
	})

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Transactions", len(txs))
	pp.Transactions(txs, accounts)
	return nil
}
