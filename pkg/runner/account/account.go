// Package account provides runners for financial accounts.
package account

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/finance"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

// Add creates an account and reprints the list.
type Add struct {
	Account     finance.Account
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.AddAccount(ctx, n.Account); err != nil {
		return err
	}
	return list(ctx, svc)
}

// Edit replaces an account's fields in place.
type Edit struct {
	Account     finance.Account
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	svc := app.New(n.Persistence)

	if err := svc.EditAccount(ctx, n.Account); err != nil {
		return err
	}
	return list(ctx, svc)
}

// List prints every account with its projected balance.
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
	accounts, err := svc.Accounts(ctx)
	if err != nil {
		return err
	}
	txs, err := svc.Transactions(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Accounts", len(accounts))
	pp.Accounts(accounts, txs)
	return nil
}
