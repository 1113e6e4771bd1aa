package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/core/ports"
	"github.com/mlakumulu/travel-admin/internal/metrics"
)

// Routes the session manager redirects to. Literal paths: the navigator
// decides what they mean.
const (
	RouteDashboard       = "/dashboard"
	RouteLogin           = "/login"
	RouteLoginRegistered = "/login?registered=true"
)

// SessionManager owns the in-memory session: the authenticated user, the
// loading flag, and the last operation error. It is the sole writer of the
// session store apart from the HTTP client's 401 recovery, which the
// application wires to ExpireSession.
//
// Construct once per application instance with NewSessionManager, which also
// hydrates the user from the store.
type SessionManager struct {
	auth  ports.AuthAPI
	store ports.SessionStore
	nav   ports.Navigator
	log   zerolog.Logger

	mu       sync.Mutex
	user     *domain.User
	loading  bool
	lastErr  string
	inFlight bool
}

// NewSessionManager builds the manager and hydrates in-memory state from the
// store. The token and user entries must be mutually consistent: if one is
// present without the other the persisted session is invalid and both are
// cleared.
func NewSessionManager(auth ports.AuthAPI, store ports.SessionStore, nav ports.Navigator, log zerolog.Logger) *SessionManager {
	m := &SessionManager{auth: auth, store: store, nav: nav, log: log}
	m.hydrate()
	return m
}

func (m *SessionManager) hydrate() {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	_, hasToken := m.store.Token()
	user, hasUser := m.store.User()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	if hasToken != hasUser {
		m.log.Warn().Msg("persisted session entries diverged, clearing session")
		m.store.Clear()
		return
	}
	if hasToken {
		m.user = user
	}
}

// Login authenticates, persists the session, sets the in-memory user, and
// redirects to the dashboard — strictly in that order, so anything rendered
// after the redirect already observes the authenticated state. The error is
// both recorded in Err and returned, giving callers a state-based and a
// value-based way to react.
func (m *SessionManager) Login(ctx context.Context, creds domain.LoginRequest) (*domain.AuthResponse, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		metrics.AuthFailuresTotal.Inc()
		m.record(err)
		return nil, err
	}

	if err := m.store.SetToken(resp.AccessToken); err != nil {
		m.record(err)
		return nil, err
	}
	if err := m.store.SetUser(&resp.User); err != nil {
		// Half-written sessions are worse than none.
		m.store.Clear()
		m.record(err)
		return nil, err
	}

	m.mu.Lock()
	user := resp.User
	m.user = &user
	m.mu.Unlock()

	m.nav.Redirect(RouteDashboard)
	return resp, nil
}

// RegisterTourist creates a tourist account. Registration is decoupled from
// session creation: the new account must log in explicitly, so the in-memory
// user is never touched and the redirect lands on the login page.
func (m *SessionManager) RegisterTourist(ctx context.Context, req domain.RegisterTouristRequest) (*domain.User, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	user, err := m.auth.RegisterTourist(ctx, req)
	if err != nil {
		m.record(err)
		return nil, err
	}

	m.nav.Redirect(RouteLoginRegistered)
	return user, nil
}

// RegisterEmployee creates an employee account. Same contract as
// RegisterTourist: no session is created.
func (m *SessionManager) RegisterEmployee(ctx context.Context, req domain.RegisterEmployeeRequest) (*domain.User, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	user, err := m.auth.RegisterEmployee(ctx, req)
	if err != nil {
		m.record(err)
		return nil, err
	}

	m.nav.Redirect(RouteLoginRegistered)
	return user, nil
}

// Logout clears storage, drops the in-memory user, and redirects to the
// login page. No network call; cannot fail.
func (m *SessionManager) Logout() {
	m.store.Clear()

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	m.nav.Redirect(RouteLogin)
}

// ExpireSession is the wiring target for the HTTP client's 401 recovery.
// Logging out is always a safe state to move to, so the clear applies
// immediately regardless of what else is in flight.
func (m *SessionManager) ExpireSession() {
	m.store.Clear()

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	m.nav.Redirect(RouteLogin)
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (m *SessionManager) CurrentUser() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// IsAuthenticated reports whether an in-memory user exists.
func (m *SessionManager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// HasRole compares the session user's role. False when no session exists;
// never an error, even before hydration completed.
func (m *SessionManager) HasRole(role domain.Role) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && m.user.Role == role
}

// Loading reports whether a login/register operation (or hydration) is
// running right now.
func (m *SessionManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the last failed operation's message, or empty. Reset at the
// start of every new attempt.
func (m *SessionManager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// begin starts a mutating operation: reset the error, raise loading, and
// reject overlapping calls. One operation at a time keeps the
// storage-then-memory-then-navigation ordering observable.
func (m *SessionManager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight {
		return domain.ErrOperationInFlight
	}
	m.inFlight = true
	m.loading = true
	m.lastErr = ""
	return nil
}

// end lowers loading no matter how the operation came out.
func (m *SessionManager) end() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false
	m.loading = false
}

// record keeps the human-readable part of the failure for the Err state.
func (m *SessionManager) record(err error) {
	msg := err.Error()
	if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = msg
}
