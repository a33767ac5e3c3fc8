// Package session is the single source of truth for who is using this
// client. It owns the bearer credential, persists it across runs and keeps
// the API client's default attachment in sync.
package session

import (
	"context"
	"errors"
	"fmt"

	"cafe-delights/internal/api"
	"cafe-delights/internal/common/logger"
	"cafe-delights/internal/domain"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// ErrAuthInFlight rejects a second login or register submit while one is
// still outstanding.
var ErrAuthInFlight = errors.New("authentication already in progress")

type Store struct {
	client *api.Client
	creds  *CredFile
	lg     *logger.Logger

	state State
	user  *domain.User
	token string
}

func NewStore(client *api.Client, creds *CredFile, lg *logger.Logger) *Store {
	return &Store{client: client, creds: creds, lg: lg, state: Anonymous}
}

func (s *Store) State() State          { return s.state }
func (s *Store) IsAuthenticated() bool { return s.state == Authenticated }

// User returns the authenticated user, or nil when anonymous. Non-nil
// exactly when a validated credential is held.
func (s *Store) User() *domain.User {
	if s.state != Authenticated {
		return nil
	}
	return s.user
}

func (s *Store) IsAdmin() bool {
	return s.state == Authenticated && s.user.Role == domain.RoleAdmin
}

// Login exchanges credentials for a token. On failure the store returns to
// anonymous and the error's Reason is suitable for inline display.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if s.state == Authenticating {
		return ErrAuthInFlight
	}
	s.state = Authenticating
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.state = Anonymous
		s.lg.Debug("login_rejected", map[string]any{"email": email})
		return fmt.Errorf("login: %w", err)
	}
	s.adopt(res)
	s.lg.Info("login_ok", map[string]any{"user_id": res.User.ID, "role": string(res.User.Role)})
	return nil
}

// Register has the same contract as Login with a full profile submitted.
func (s *Store) Register(ctx context.Context, req domain.RegisterRequest) error {
	if s.state == Authenticating {
		return ErrAuthInFlight
	}
	s.state = Authenticating
	res, err := s.client.Register(ctx, req)
	if err != nil {
		s.state = Anonymous
		return fmt.Errorf("register: %w", err)
	}
	s.adopt(res)
	s.lg.Info("register_ok", map[string]any{"user_id": res.User.ID})
	return nil
}

// Logout is purely local: no backend call, memory and persistence cleared,
// later API calls go out anonymous.
func (s *Store) Logout() {
	s.state = Anonymous
	s.user = nil
	s.token = ""
	s.client.ClearToken()
	if err := s.creds.Clear(); err != nil {
		s.lg.Error("credential_clear_failed", err, nil)
	}
}

// Initialize hydrates the session from a persisted credential, once, at
// startup. Any failure to validate the token behaves exactly like Logout:
// a stale credential means "not logged in", never a fatal error.
func (s *Store) Initialize(ctx context.Context) {
	token := s.creds.Load()
	if token == "" {
		return
	}
	s.client.SetToken(token)
	u, err := s.client.Profile(ctx)
	if err != nil {
		s.lg.Info("session_expired", map[string]any{"reason": api.Reason(err)})
		s.Logout()
		return
	}
	s.state = Authenticated
	s.user = &u
	s.token = token
	s.lg.Info("session_restored", map[string]any{"user_id": u.ID, "role": string(u.Role)})
}

func (s *Store) adopt(res domain.AuthResult) {
	u := res.User
	s.state = Authenticated
	s.user = &u
	s.token = res.Token
	s.client.SetToken(res.Token)
	if err := s.creds.Save(res.Token); err != nil {
		// The in-memory session stays valid; only the next run is affected.
		s.lg.Error("credential_save_failed", err, nil)
	}
}
