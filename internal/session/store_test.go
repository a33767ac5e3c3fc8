package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-delights/internal/api"
	"cafe-delights/internal/common/httpx"
	"cafe-delights/internal/common/logger"
	"cafe-delights/internal/domain"
)

// fakeBackend mimics the auth surface of the Café Delights API.
type fakeBackend struct {
	token string
	user  domain.User

	loginCalls   int
	profileCalls int
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		f.loginCalls++
		var req domain.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != f.user.Email || req.Password != "good-password" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(domain.AuthResult{Token: f.token, User: f.user})
	})
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email == f.user.Email {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
			return
		}
		u := domain.User{ID: "u2", Email: req.Email, Name: req.Name, Role: domain.RoleCustomer, Address: req.Address}
		_ = json.NewEncoder(w).Encode(domain.AuthResult{Token: "tok-new", User: u})
	})
	mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, r *http.Request) {
		f.profileCalls++
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(f.user)
	})
	return mux
}

func newTestStore(t *testing.T) (*Store, *fakeBackend, *CredFile, *api.Client) {
	t.Helper()
	fb := &fakeBackend{
		token: "tok-abc",
		user:  domain.User{ID: "u1", Email: "jo@example.com", Name: "Jo", Role: domain.RoleCustomer},
	}
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	lg := logger.New("session-test")
	client := api.NewClient(srv.URL, httpx.NewClient(0), lg)
	creds := NewCredFile(t.TempDir())
	return NewStore(client, creds, lg), fb, creds, client
}

func TestLoginSuccess(t *testing.T) {
	s, _, creds, client := newTestStore(t)

	require.NoError(t, s.Login(context.Background(), "jo@example.com", "good-password"))
	assert.Equal(t, Authenticated, s.State())
	require.NotNil(t, s.User())
	assert.Equal(t, "u1", s.User().ID)
	assert.Equal(t, "tok-abc", creds.Load(), "token must be persisted for the next run")
	assert.True(t, client.HasToken())
}

func TestLoginFailureKeepsAnonymous(t *testing.T) {
	s, _, creds, client := newTestStore(t)

	err := s.Login(context.Background(), "jo@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", api.Reason(err))
	assert.Equal(t, Anonymous, s.State())
	assert.Nil(t, s.User())
	assert.Equal(t, "", creds.Load())
	assert.False(t, client.HasToken())
}

func TestLoginThenLogoutRestoresAnonymous(t *testing.T) {
	s, _, creds, client := newTestStore(t)
	require.NoError(t, s.Login(context.Background(), "jo@example.com", "good-password"))

	s.Logout()

	assert.Equal(t, Anonymous, s.State())
	assert.Nil(t, s.User())
	assert.Equal(t, "", creds.Load(), "persisted credential must be removed")
	assert.False(t, client.HasToken(), "later calls must carry no bearer attachment")
}

func TestRegisterSuccess(t *testing.T) {
	s, _, creds, _ := newTestStore(t)

	err := s.Register(context.Background(), domain.RegisterRequest{
		Name: "New", Email: "new@example.com", Password: "pw", Address: "12 Oak St",
	})
	require.NoError(t, err)
	assert.Equal(t, Authenticated, s.State())
	assert.Equal(t, "12 Oak St", s.User().Address)
	assert.Equal(t, "tok-new", creds.Load())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _, _, _ := newTestStore(t)
	err := s.Register(context.Background(), domain.RegisterRequest{
		Name: "Jo", Email: "jo@example.com", Password: "pw",
	})
	require.Error(t, err)
	assert.Equal(t, "Email already registered", api.Reason(err))
	assert.Equal(t, Anonymous, s.State())
}

func TestInitializeRestoresSession(t *testing.T) {
	s, fb, creds, _ := newTestStore(t)
	require.NoError(t, creds.Save("tok-abc"))

	s.Initialize(context.Background())

	assert.Equal(t, Authenticated, s.State())
	require.NotNil(t, s.User())
	assert.Equal(t, fb.user.ID, s.User().ID)
}

func TestInitializeWithStaleTokenDegradesToAnonymous(t *testing.T) {
	s, fb, creds, client := newTestStore(t)
	require.NoError(t, creds.Save("tok-expired"))

	s.Initialize(context.Background())

	assert.Equal(t, 1, fb.profileCalls)
	assert.Equal(t, Anonymous, s.State())
	assert.Nil(t, s.User())
	assert.Equal(t, "", creds.Load(), "stale credential must be removed")
	assert.False(t, client.HasToken())
}

func TestInitializeWithoutCredentialSkipsBackend(t *testing.T) {
	s, fb, _, _ := newTestStore(t)
	s.Initialize(context.Background())
	assert.Equal(t, 0, fb.profileCalls)
	assert.Equal(t, Anonymous, s.State())
}

func TestDuplicateSubmitRejectedWhileInFlight(t *testing.T) {
	s, fb, _, _ := newTestStore(t)
	s.state = Authenticating

	err := s.Login(context.Background(), "jo@example.com", "good-password")
	assert.ErrorIs(t, err, ErrAuthInFlight)
	err = s.Register(context.Background(), domain.RegisterRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrAuthInFlight)
	assert.Equal(t, 0, fb.loginCalls, "no request may leave the client")
}

func TestIsAdmin(t *testing.T) {
	s, fb, _, _ := newTestStore(t)
	fb.user.Role = domain.RoleAdmin
	require.NoError(t, s.Login(context.Background(), "jo@example.com", "good-password"))
	assert.True(t, s.IsAdmin())
}
