// travelctl is the travel-agency administration front end: employees and
// tourists authenticate, browse tourist profiles, and manage travel records
// against the remote backend.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/core/ports"
	"github.com/mlakumulu/travel-admin/internal/core/service"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/api"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/httpclient"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/store"
	"github.com/mlakumulu/travel-admin/internal/pkg/config"
	"github.com/mlakumulu/travel-admin/internal/validation"
	"github.com/mlakumulu/travel-admin/pkg/logger"
)

const usage = `Usage: travelctl <command> [flags]

Commands:
  login       Authenticate and start a session
  logout      End the current session
  whoami      Show the authenticated user
  register    Create an account (tourist or employee)
  tourists    Manage tourist profiles
  travels     Manage travel records
`

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	app, err := newApp(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app wires the session pipeline together and dispatches subcommands.
type app struct {
	session  ports.Session
	store    ports.SessionStore
	tourists ports.TouristAPI
	travels  ports.TravelAPI
	validate *validation.Validator
	log      zerolog.Logger
}

// sessionToken exposes the raw bearer token for informational display.
func (a *app) sessionToken() string {
	t, _ := a.store.Token()
	return t
}

func newApp(cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{validate: validation.New(), log: log}

	sessionStore, err := newSessionStore(cfg, log)
	if err != nil {
		return nil, err
	}
	a.store = sessionStore

	// The 401 recovery hook closes over the app so the HTTP client can be
	// built before the session manager that consumes it.
	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.APIBaseURL,
		Store:   sessionStore,
		Timeout: cfg.HTTPTimeout,
		Logger:  log,
		OnSessionExpired: func() {
			if a.session != nil {
				a.session.ExpireSession()
			}
		},
	})
	if err != nil {
		return nil, err
	}

	nav := &cliNavigator{log: log}
	a.session = service.NewSessionManager(api.NewAuthClient(client), sessionStore, nav, log)
	a.tourists = api.NewTouristClient(client)
	a.travels = api.NewTravelClient(client)
	return a, nil
}

func newSessionStore(cfg *config.Config, log zerolog.Logger) (ports.SessionStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		return store.NewRedisStore(client, "travelctl", log), nil
	case "file", "":
		return store.NewFileStore(cfg.Session.Dir, log)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		a.session.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.cmdWhoami()
	case "register":
		return a.cmdRegister(ctx, args)
	case "tourists":
		return a.cmdTourists(ctx, args)
	case "travels":
		return a.cmdTravels(ctx, args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// cliNavigator is the terminal's stand-in for page navigation: route changes
// are logged instead of rendered.
type cliNavigator struct {
	log zerolog.Logger
}

func (n *cliNavigator) Redirect(path string) {
	n.log.Debug().Str("route", path).Msg("navigate")
}

// printJSON renders command results to stdout.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func requireRole(session ports.Session, role domain.Role) error {
	if !session.HasRole(role) {
		return fmt.Errorf("this command requires the %s role", role)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or RFC3339)", s)
}
