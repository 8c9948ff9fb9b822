// Package target provides runners for the patrimonial savings targets.
package target

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritmo/pkg/app"
	"tableflip.dev/ritmo/pkg/printers"
	"tableflip.dev/ritmo/pkg/store"
)

// Add creates a savings target, optionally linked to an account.
type Add struct {
	Name        string
	Target      float64
	Account     string
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.AddPatrimonial(ctx, n.Name, n.Target, n.Account); err != nil {
		return err
	}
	return list(ctx, svc)
}

// Remove deletes a savings target.
type Remove struct {
	ID          int64
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	svc := app.New(n.Persistence)

	if err := svc.RemovePatrimonial(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, svc)
}

// List prints the savings targets with progress.
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
	goals, err := svc.Patrimonials(ctx)
	if err != nil {
		return err
	}
	accounts, err := svc.Accounts(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Targets", len(goals))
	pp.Patrimonials(goals, accounts)
	return nil
}
