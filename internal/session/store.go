// Package session owns the authenticated identity and token. It is the
// single writer of session state; everything else reads through the store.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the current authenticated state, replaced wholesale on every
// transition.
type Session struct {
	Token         string
	Admin         models.AdminIdentity
	Authenticated bool
}

// LoginResult is the discriminated outcome of a login attempt. Login never
// returns an error; failures are captured in Message.
type LoginResult struct {
	Success bool
	Message string
}

// Store holds the session and its persisted copy. The API client reads the
// token through a source func and signals 401s through the unauthorized
// hook; only the store mutates session state.
type Store struct {
	client  *api.Client
	persist *fileState

	mu   sync.RWMutex
	sess Session

	onInvalidate func()
}

// NewStore wires the store into the client as token source and 401 hook.
func NewStore(client *api.Client, stateDir string) *Store {
	s := &Store{
		client:  client,
		persist: newFileState(stateDir),
	}
	client.SetTokenSource(s.Token)
	client.SetUnauthorizedHook(s.Invalidate)
	return s
}

// OnInvalidate registers the shell's redirect signal, called after a 401
// teardown. The callback must not issue requests.
func (s *Store) OnInvalidate(fn func()) {
	s.mu.Lock()
	s.onInvalidate = fn
	s.mu.Unlock()
}

// Restore loads persisted credentials and verifies them against the server.
// Any failure, local or remote, leaves the store unauthenticated with the
// persisted state cleared. Callers block initial rendering until it returns.
func (s *Store) Restore(ctx context.Context) {
	token, admin, ok := s.persist.load()
	if !ok {
		return
	}
	if tokenExpired(token) {
		utils.LogEvent("", "session", "restore", "persisted token expired, clearing")
		s.persist.clear()
		return
	}

	// Temporarily adopt the token so the verify call carries it.
	s.setSession(Session{Token: token, Admin: admin, Authenticated: false})

	if _, err := s.client.Profile(ctx); err != nil {
		utils.LogEvent("", "session", "restore", "verify failed: "+domain.ErrorMessage(err))
		s.clear()
		return
	}

	s.setSession(Session{Token: token, Admin: admin, Authenticated: true})
	utils.LogEvent("", "session", "restore", "session restored for "+admin.Username)
}

// Login authenticates and persists the session. Network and rejection
// failures come back as the failure variant, never as an error.
func (s *Store) Login(ctx context.Context, username, password string) LoginResult {
	creds := api.Credentials{
		Username: strings.TrimSpace(username),
		Password: password,
	}
	if creds.Username == "" || creds.Password == "" {
		return LoginResult{Success: false, Message: "username and password are required"}
	}

	data, err := s.client.Login(ctx, creds)
	if err != nil {
		msg := domain.ErrorMessage(err)
		if msg == "" || domain.IsUnauthorized(err) && msg == "unauthorized" {
			msg = "Login failed"
		}
		return LoginResult{Success: false, Message: msg}
	}
	if strings.TrimSpace(data.Tokens.AccessToken) == "" {
		return LoginResult{Success: false, Message: "Login failed"}
	}

	if err := s.persist.save(data.Tokens.AccessToken, data.Admin); err != nil {
		utils.LogEvent("", "session", "login", "persist failed: "+err.Error())
	}
	s.setSession(Session{
		Token:         data.Tokens.AccessToken,
		Admin:         data.Admin,
		Authenticated: true,
	})
	utils.LogEvent("", "session", "login", "logged in as "+data.Admin.Username)
	return LoginResult{Success: true}
}

// Logout clears the session and the persisted copy synchronously. No server
// round-trip.
func (s *Store) Logout() {
	s.clear()
	utils.LogEvent("", "session", "logout", "session cleared")
}

// Invalidate is the 401 teardown: same clearing as Logout plus the redirect
// signal. Safe to call from any goroutine; idempotent once cleared.
func (s *Store) Invalidate() {
	s.clear()
	s.mu.RLock()
	fn := s.onInvalidate
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
	utils.LogEvent("", "session", "invalidate", "session torn down after 401")
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Authenticated && strings.TrimSpace(s.sess.Token) != ""
}

// Token is the client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

func (s *Store) setSession(sess Session) {
	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()
}

func (s *Store) clear() {
	s.mu.Lock()
	s.sess = Session{}
	s.mu.Unlock()
	s.persist.clear()
}

// tokenExpired peeks at the JWT exp claim without verifying the signature;
// verification is the server's job. Opaque (non-JWT) tokens pass through to
// the server-side verify call.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
