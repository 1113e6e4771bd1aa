package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

func (a *app) cmdTourists(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: travelctl tourists list|get|profile|create|update|delete [flags]")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		if err := requireRole(a.session, domain.RoleEmployee); err != nil {
			return err
		}
		ts, err := a.tourists.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(ts)

	case "profile":
		t, err := a.tourists.Profile(ctx)
		if err != nil {
			return err
		}
		return printJSON(t)

	case "get":
		if len(rest) < 1 {
			return fmt.Errorf("usage: travelctl tourists get <id>")
		}
		t, err := a.tourists.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(t)

	case "create":
		return a.cmdTouristCreate(ctx, rest)

	case "update":
		return a.cmdTouristUpdate(ctx, rest)

	case "delete":
		if err := requireRole(a.session, domain.RoleEmployee); err != nil {
			return err
		}
		if len(rest) < 1 {
			return fmt.Errorf("usage: travelctl tourists delete <id>")
		}
		if err := a.tourists.Delete(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("deleted", rest[0])
		return nil

	default:
		return fmt.Errorf("unknown tourists subcommand %q", sub)
	}
}

func (a *app) cmdTouristCreate(ctx context.Context, args []string) error {
	if err := requireRole(a.session, domain.RoleEmployee); err != nil {
		return err
	}

	fs := pflag.NewFlagSet("tourists create", pflag.ContinueOnError)
	name := fs.String("name", "", "tourist name")
	nationality := fs.String("nationality", "", "nationality")
	passport := fs.String("passport", "", "passport number")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")
	userID := fs.String("user-id", "", "backing account id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := domain.CreateTouristRequest{
		Name:           *name,
		Nationality:    *nationality,
		PassportNumber: *passport,
		PhoneNumber:    *phone,
		Email:          *email,
		UserID:         *userID,
	}
	if err := a.validate.Validate(req); err != nil {
		return err
	}

	t, err := a.tourists.Create(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(t)
}

func (a *app) cmdTouristUpdate(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("tourists update", pflag.ContinueOnError)
	name := fs.String("name", "", "tourist name")
	nationality := fs.String("nationality", "", "nationality")
	passport := fs.String("passport", "", "passport number")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: travelctl tourists update <id> [flags]")
	}
	id := fs.Arg(0)

	// Only flags the user actually set go on the wire (PATCH semantics).
	var req domain.UpdateTouristRequest
	if fs.Changed("name") {
		req.Name = name
	}
	if fs.Changed("nationality") {
		req.Nationality = nationality
	}
	if fs.Changed("passport") {
		req.PassportNumber = passport
	}
	if fs.Changed("phone") {
		req.PhoneNumber = phone
	}
	if fs.Changed("email") {
		req.Email = email
	}
	if err := a.validate.Validate(req); err != nil {
		return err
	}

	t, err := a.tourists.Update(ctx, id, req)
	if err != nil {
		return err
	}
	return printJSON(t)
}
