package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/token"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	creds := domain.LoginRequest{Username: *username, Password: *password}
	if err := a.validate.Validate(creds); err != nil {
		return err
	}

	resp, err := a.session.Login(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.User.Username, resp.User.Role)
	return nil
}

func (a *app) cmdWhoami() error {
	user := a.session.CurrentUser()
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	fmt.Printf("%s (%s)\n", user.Username, user.Role)

	// Informational only: the backend remains the authority on validity.
	if claims, err := token.Peek(a.sessionToken()); err == nil && !claims.ExpiresAt.IsZero() {
		status := "expires"
		if claims.Expired() {
			status = "expired"
		}
		fmt.Printf("token %s %s\n", status, claims.ExpiresAt.Format("2006-01-02 15:04 MST"))
	}
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: travelctl register tourist|employee [flags]")
	}
	kind, rest := args[0], args[1:]

	fs := pflag.NewFlagSet("register "+kind, pflag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	nationality := fs.String("nationality", "", "nationality")
	employeeID := fs.String("employee-id", "", "employee identifier")
	department := fs.String("department", "", "department")
	contactNumber := fs.String("contact-number", "", "contact phone number")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	switch kind {
	case "tourist":
		req := domain.RegisterTouristRequest{
			Username:    *username,
			Password:    *password,
			Role:        domain.RoleTourist,
			Nationality: *nationality,
		}
		if err := a.validate.Validate(req); err != nil {
			return err
		}
		user, err := a.session.RegisterTourist(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("registered tourist %s, log in to continue\n", user.Username)
		return nil

	case "employee":
		req := domain.RegisterEmployeeRequest{
			Username:    *username,
			Password:    *password,
			Role:        domain.RoleEmployee,
			Nationality: *nationality,
			EmployeeDetails: domain.EmployeeDetails{
				EmployeeID:    *employeeID,
				Department:    *department,
				ContactNumber: *contactNumber,
			},
		}
		if err := a.validate.Validate(req); err != nil {
			return err
		}
		user, err := a.session.RegisterEmployee(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("registered employee %s, log in to continue\n", user.Username)
		return nil

	default:
		return fmt.Errorf("unknown account type %q (want tourist or employee)", kind)
	}
}
