package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

func (a *app) cmdTravels(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: travelctl travels list|my|get|create|update|delete [flags]")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		if err := requireRole(a.session, domain.RoleEmployee); err != nil {
			return err
		}
		ts, err := a.travels.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(ts)

	case "my":
		ts, err := a.travels.MyTravels(ctx)
		if err != nil {
			return err
		}
		return printJSON(ts)

	case "get":
		if len(rest) < 1 {
			return fmt.Errorf("usage: travelctl travels get <id>")
		}
		t, err := a.travels.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(t)

	case "create":
		return a.cmdTravelCreate(ctx, rest)

	case "update":
		return a.cmdTravelUpdate(ctx, rest)

	case "delete":
		if err := requireRole(a.session, domain.RoleEmployee); err != nil {
			return err
		}
		if len(rest) < 1 {
			return fmt.Errorf("usage: travelctl travels delete <id>")
		}
		if err := a.travels.Delete(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("deleted", rest[0])
		return nil

	default:
		return fmt.Errorf("unknown travels subcommand %q", sub)
	}
}

func (a *app) cmdTravelCreate(ctx context.Context, args []string) error {
	if err := requireRole(a.session, domain.RoleEmployee); err != nil {
		return err
	}

	fs := pflag.NewFlagSet("travels create", pflag.ContinueOnError)
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	touristID := fs.String("tourist-id", "", "tourist the travel belongs to")
	destName := fs.String("destination", "", "destination name")
	city := fs.String("city", "", "destination city")
	country := fs.String("country", "", "destination country")
	description := fs.String("description", "", "destination description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	startDate, err := parseDate(*start)
	if err != nil {
		return err
	}
	endDate, err := parseDate(*end)
	if err != nil {
		return err
	}

	req := domain.CreateTravelRequest{
		StartDate: startDate,
		EndDate:   endDate,
		TouristID: *touristID,
		Destination: domain.Destination{
			Name:        *destName,
			City:        *city,
			Country:     *country,
			Description: *description,
		},
	}
	if err := a.validate.Validate(req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	t, err := a.travels.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("created travel of %d day(s)\n", t.Duration())
	return printJSON(t)
}

func (a *app) cmdTravelUpdate(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("travels update", pflag.ContinueOnError)
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	destName := fs.String("destination", "", "destination name")
	city := fs.String("city", "", "destination city")
	country := fs.String("country", "", "destination country")
	description := fs.String("description", "", "destination description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: travelctl travels update <id> [flags]")
	}
	id := fs.Arg(0)

	var req domain.UpdateTravelRequest
	if fs.Changed("start") {
		startDate, err := parseDate(*start)
		if err != nil {
			return err
		}
		req.StartDate = &startDate
	}
	if fs.Changed("end") {
		endDate, err := parseDate(*end)
		if err != nil {
			return err
		}
		req.EndDate = &endDate
	}
	if fs.Changed("destination") || fs.Changed("city") || fs.Changed("country") || fs.Changed("description") {
		req.Destination = &domain.Destination{
			Name:        *destName,
			City:        *city,
			Country:     *country,
			Description: *description,
		}
	}
	if err := req.Validate(); err != nil {
		return err
	}

	t, err := a.travels.Update(ctx, id, req)
	if err != nil {
		return err
	}
	return printJSON(t)
}
