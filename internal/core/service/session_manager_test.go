package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/api"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/httpclient"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/store"
)

// memStore is an in-memory ports.SessionStore for tests.
type memStore struct {
	token string
	user  *domain.User
}

func (s *memStore) SetToken(token string) error { s.token = token; return nil }

func (s *memStore) Token() (string, bool) {
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *memStore) SetUser(u *domain.User) error {
	clone := *u
	s.user = &clone
	return nil
}

func (s *memStore) User() (*domain.User, bool) {
	if s.user == nil {
		return nil, false
	}
	clone := *s.user
	return &clone, true
}

func (s *memStore) Clear() { s.token = ""; s.user = nil }

// stubAuthAPI scripts the three endpoints. A non-nil gate makes Login block
// until the gate is closed, for overlap and loading tests.
type stubAuthAPI struct {
	loginResp *domain.AuthResponse
	loginErr  error
	regUser   *domain.User
	regErr    error
	gate      chan struct{}
}

func (s *stubAuthAPI) Login(ctx context.Context, creds domain.LoginRequest) (*domain.AuthResponse, error) {
	if s.gate != nil {
		<-s.gate
	}
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResp, nil
}

func (s *stubAuthAPI) RegisterTourist(ctx context.Context, req domain.RegisterTouristRequest) (*domain.User, error) {
	return s.regUser, s.regErr
}

func (s *stubAuthAPI) RegisterEmployee(ctx context.Context, req domain.RegisterEmployeeRequest) (*domain.User, error) {
	return s.regUser, s.regErr
}

// recordingNav captures every redirect and optionally runs a probe at
// redirect time, so tests can assert what state the redirect target would
// already observe.
type recordingNav struct {
	routes []string
	probe  func(path string)
}

func (n *recordingNav) Redirect(path string) {
	n.routes = append(n.routes, path)
	if n.probe != nil {
		n.probe(path)
	}
}

var demoUser = domain.User{ID: "1", Username: "demo", Role: domain.RoleTourist}

func TestSessionManager_HydratesFromStore(t *testing.T) {
	st := &memStore{token: "tok1", user: &demoUser}
	m := NewSessionManager(&stubAuthAPI{}, st, &recordingNav{}, zerolog.Nop())

	if !m.IsAuthenticated() {
		t.Fatalf("expected authenticated after hydration")
	}
	user := m.CurrentUser()
	if user == nil || user.Username != "demo" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if m.Loading() {
		t.Fatalf("loading should be false after hydration")
	}
}

func TestSessionManager_DivergentEntriesClearSession(t *testing.T) {
	// Token present, user missing: the persisted session is invalid.
	st := &memStore{token: "tok1"}
	m := NewSessionManager(&stubAuthAPI{}, st, &recordingNav{}, zerolog.Nop())

	if m.IsAuthenticated() {
		t.Fatalf("divergent session hydrated as authenticated")
	}
	if _, ok := st.Token(); ok {
		t.Fatalf("stale token survived hydration")
	}
}

func TestSessionManager_LoginSuccessOrdering(t *testing.T) {
	st := &memStore{}
	auth := &stubAuthAPI{loginResp: &domain.AuthResponse{AccessToken: "tok1", User: demoUser}}

	var m *SessionManager
	nav := &recordingNav{}
	// At redirect time the store and the in-memory user must already be set.
	nav.probe = func(path string) {
		if token, ok := st.Token(); !ok || token != "tok1" {
			t.Fatalf("storage not written before navigation")
		}
		if m.CurrentUser() == nil {
			t.Fatalf("in-memory user not set before navigation")
		}
	}
	m = NewSessionManager(auth, st, nav, zerolog.Nop())

	resp, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "good"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken != "tok1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(nav.routes) != 1 || nav.routes[0] != RouteDashboard {
		t.Fatalf("expected one redirect to dashboard, got %v", nav.routes)
	}

	user, ok := st.User()
	if !ok || user.Username != "demo" {
		t.Fatalf("stored user wrong: %+v", user)
	}
	if got := m.CurrentUser(); got == nil || got.Role != domain.RoleTourist {
		t.Fatalf("unexpected session user: %+v", got)
	}
	if m.Loading() {
		t.Fatalf("loading stuck after login")
	}
	if m.Err() != "" {
		t.Fatalf("error set on success: %q", m.Err())
	}
}

func TestSessionManager_LoginFailure(t *testing.T) {
	st := &memStore{}
	auth := &stubAuthAPI{loginErr: &domain.APIError{
		Kind: domain.ErrKindHTTP, Message: "Invalid credentials", StatusCode: http.StatusUnauthorized,
	}}
	nav := &recordingNav{}
	m := NewSessionManager(auth, st, nav, zerolog.Nop())

	_, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "bad"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if m.Err() != "Invalid credentials" {
		t.Fatalf("unexpected error state: %q", m.Err())
	}
	if m.CurrentUser() != nil {
		t.Fatalf("user set after failed login")
	}
	if _, ok := st.Token(); ok {
		t.Fatalf("storage written after failed login")
	}
	if len(nav.routes) != 0 {
		t.Fatalf("navigation on failed login: %v", nav.routes)
	}
	if m.Loading() {
		t.Fatalf("loading stuck after failure")
	}
}

func TestSessionManager_RegisterDoesNotAuthenticate(t *testing.T) {
	st := &memStore{}
	auth := &stubAuthAPI{regUser: &domain.User{ID: "9", Username: "fresh", Role: domain.RoleTourist}}
	nav := &recordingNav{}
	m := NewSessionManager(auth, st, nav, zerolog.Nop())

	user, err := m.RegisterTourist(context.Background(), domain.RegisterTouristRequest{
		Username: "fresh", Password: "s3cret1", Role: domain.RoleTourist, Nationality: "Indonesian",
	})
	if err != nil {
		t.Fatalf("RegisterTourist: %v", err)
	}
	if user.Username != "fresh" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Registration is decoupled from session creation.
	if m.IsAuthenticated() {
		t.Fatalf("registration populated the session")
	}
	if _, ok := st.Token(); ok {
		t.Fatalf("registration wrote storage")
	}
	if len(nav.routes) != 1 || nav.routes[0] != RouteLoginRegistered {
		t.Fatalf("expected redirect to %s, got %v", RouteLoginRegistered, nav.routes)
	}
}

func TestSessionManager_RegisterEmployeeFailure(t *testing.T) {
	auth := &stubAuthAPI{regErr: &domain.APIError{
		Kind: domain.ErrKindHTTP, Message: "user already exists", StatusCode: http.StatusConflict,
	}}
	nav := &recordingNav{}
	m := NewSessionManager(auth, &memStore{}, nav, zerolog.Nop())

	_, err := m.RegisterEmployee(context.Background(), domain.RegisterEmployeeRequest{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if m.Err() != "user already exists" {
		t.Fatalf("unexpected error state: %q", m.Err())
	}
	if len(nav.routes) != 0 {
		t.Fatalf("navigation on failed registration: %v", nav.routes)
	}
}

func TestSessionManager_ErrorResetOnNewAttempt(t *testing.T) {
	auth := &stubAuthAPI{
		loginErr: errors.New("boom"),
		regUser:  &domain.User{ID: "9", Username: "fresh", Role: domain.RoleTourist},
	}
	m := NewSessionManager(auth, &memStore{}, &recordingNav{}, zerolog.Nop())

	_, _ = m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "bad"})
	if m.Err() == "" {
		t.Fatalf("expected error state after failed login")
	}

	if _, err := m.RegisterTourist(context.Background(), domain.RegisterTouristRequest{}); err != nil {
		t.Fatalf("RegisterTourist: %v", err)
	}
	if m.Err() != "" {
		t.Fatalf("stale error survived new attempt: %q", m.Err())
	}
}

func TestSessionManager_LogoutClearsEverything(t *testing.T) {
	st := &memStore{token: "tok1", user: &demoUser}
	nav := &recordingNav{}
	m := NewSessionManager(&stubAuthAPI{}, st, nav, zerolog.Nop())

	m.Logout()

	if m.IsAuthenticated() {
		t.Fatalf("still authenticated after logout")
	}
	if _, ok := st.Token(); ok {
		t.Fatalf("token survived logout")
	}
	if _, ok := st.User(); ok {
		t.Fatalf("user survived logout")
	}
	if len(nav.routes) != 1 || nav.routes[0] != RouteLogin {
		t.Fatalf("expected one redirect to login, got %v", nav.routes)
	}
}

func TestSessionManager_HasRole(t *testing.T) {
	m := NewSessionManager(&stubAuthAPI{}, &memStore{}, &recordingNav{}, zerolog.Nop())

	// No session: false for every role, never an error.
	if m.HasRole(domain.RoleTourist) || m.HasRole(domain.RoleEmployee) {
		t.Fatalf("role check true without a session")
	}

	st := &memStore{token: "tok1", user: &demoUser}
	m = NewSessionManager(&stubAuthAPI{}, st, &recordingNav{}, zerolog.Nop())
	if !m.HasRole(domain.RoleTourist) {
		t.Fatalf("expected tourist role")
	}
	if m.HasRole(domain.RoleEmployee) {
		t.Fatalf("employee role granted to tourist")
	}
}

func TestSessionManager_LoadingDuringLogin(t *testing.T) {
	gate := make(chan struct{})
	auth := &stubAuthAPI{
		gate:      gate,
		loginResp: &domain.AuthResponse{AccessToken: "tok1", User: demoUser},
	}
	m := NewSessionManager(auth, &memStore{}, &recordingNav{}, zerolog.Nop())

	if m.Loading() {
		t.Fatalf("loading before any operation")
	}

	done := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "good"})
		done <- err
	}()

	waitFor(t, func() bool { return m.Loading() })

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("Login: %v", err)
	}
	if m.Loading() {
		t.Fatalf("loading after operation resolved")
	}
}

func TestSessionManager_RejectsOverlappingOperations(t *testing.T) {
	gate := make(chan struct{})
	auth := &stubAuthAPI{
		gate:      gate,
		loginResp: &domain.AuthResponse{AccessToken: "tok1", User: demoUser},
	}
	m := NewSessionManager(auth, &memStore{}, &recordingNav{}, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "good"})
		done <- err
	}()
	waitFor(t, func() bool { return m.Loading() })

	if _, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "good"}); err != domain.ErrOperationInFlight {
		t.Fatalf("expected ErrOperationInFlight, got %v", err)
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	// The guard releases with the operation.
	if _, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "good"}); err != nil {
		t.Fatalf("login after release: %v", err)
	}
}

// TestSessionManager_EndToEndUnauthorized drives the full wiring: a resource
// call through the real HTTP client hits a 401, and even though the call
// originated outside the session manager, the session is torn down and a
// single redirect to the login route is recorded.
func TestSessionManager_EndToEndUnauthorized(t *testing.T) {
	e := echo.New()
	e.GET("/tourists", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	st, err := store.NewFileStore(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := st.SetToken("valid-looking"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := st.SetUser(&demoUser); err != nil {
		t.Fatalf("SetUser: %v", err)
	}

	var m *SessionManager
	client, err := httpclient.New(httpclient.Config{
		BaseURL:          srv.URL,
		Store:            st,
		Logger:           zerolog.Nop(),
		OnSessionExpired: func() { m.ExpireSession() },
	})
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}

	nav := &recordingNav{}
	m = NewSessionManager(api.NewAuthClient(client), st, nav, zerolog.Nop())
	if !m.IsAuthenticated() {
		t.Fatalf("expected hydrated session")
	}

	_, err = api.NewTouristClient(client).List(context.Background())
	apiErr, ok := domain.AsAPIError(err)
	if !ok || !apiErr.IsUnauthorized() {
		t.Fatalf("caller lost the original error: %v", err)
	}

	if m.IsAuthenticated() {
		t.Fatalf("session survived the 401")
	}
	if _, ok := st.Token(); ok {
		t.Fatalf("token survived the 401")
	}
	if _, ok := st.User(); ok {
		t.Fatalf("user survived the 401")
	}
	if len(nav.routes) != 1 || nav.routes[0] != RouteLogin {
		t.Fatalf("expected exactly one redirect to login, got %v", nav.routes)
	}
}

// TestSessionManager_EndToEndLogin is the stub-backend happy path: login
// against a scripted server lands the token and user in storage, the
// in-memory session, and the dashboard redirect.
func TestSessionManager_EndToEndLogin(t *testing.T) {
	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		var creds map[string]string
		if err := c.Bind(&creds); err != nil {
			return err
		}
		if creds["username"] != "demo" || creds["password"] != "good" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"access_token": "tok1",
			"user":         map[string]string{"id": "1", "username": "demo", "role": "tourist"},
		})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	st, err := store.NewFileStore(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	client, err := httpclient.New(httpclient.Config{BaseURL: srv.URL, Store: st, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}

	nav := &recordingNav{}
	m := NewSessionManager(api.NewAuthClient(client), st, nav, zerolog.Nop())

	// Wrong password first: state-based and value-based failure, storage
	// untouched.
	if _, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "wrong"}); err == nil {
		t.Fatalf("expected login failure")
	}
	if m.Err() == "" {
		t.Fatalf("expected error state")
	}
	if _, ok := st.Token(); ok {
		t.Fatalf("failed login wrote storage")
	}

	if _, err := m.Login(context.Background(), domain.LoginRequest{Username: "demo", Password: "good"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	token, ok := st.Token()
	if !ok || token != "tok1" {
		t.Fatalf("expected stored token tok1, got %q", token)
	}
	user, ok := st.User()
	if !ok || user.Username != "demo" {
		t.Fatalf("unexpected stored user: %+v", user)
	}
	if got := m.CurrentUser(); got == nil || got.Role != domain.RoleTourist {
		t.Fatalf("unexpected session user: %+v", got)
	}
	if nav.routes[len(nav.routes)-1] != RouteDashboard {
		t.Fatalf("expected dashboard redirect, got %v", nav.routes)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition never became true")
}
