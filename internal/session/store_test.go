package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cohai/studio-web/internal/api"
	"github.com/cohai/studio-web/internal/model"
)

// backendStub fakes the two endpoints the store touches: login and profile.
type backendStub struct {
	loginStatus   int
	profileStatus int
	profileCalls  atomic.Int64
}

func (b *backendStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			if b.loginStatus != 0 {
				w.WriteHeader(b.loginStatus)
				_, _ = w.Write([]byte(`{"detail":"Неверный логин или пароль"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
		case "/api/v1/me/profile":
			b.profileCalls.Add(1)
			if b.profileStatus != 0 {
				w.WriteHeader(b.profileStatus)
				_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(model.UserProfile{ID: 7, Email: "a@b.c", Role: model.RoleClient})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestStore(t *testing.T, b *backendStub) *Store {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(srv.URL, 2*time.Second, log)
	return NewStore(client, nil, time.Hour, log)
}

func TestLoginHydratesOnce(t *testing.T) {
	b := &backendStub{}
	st := newTestStore(t, b)

	sid, err := st.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sid == "" {
		t.Fatal("Login returned empty session id")
	}
	if got := b.profileCalls.Load(); got != 1 {
		t.Errorf("profile fetched %d times during login, want 1", got)
	}

	state := st.Resolve(context.Background(), sid)
	if !state.LoggedIn() {
		t.Fatal("resolved state not logged in")
	}
	if state.User == nil || state.User.Role != model.RoleClient {
		t.Errorf("resolved user = %+v, want CLIENT profile", state.User)
	}
}

func TestLoginRejectedLeavesNoSession(t *testing.T) {
	b := &backendStub{loginStatus: http.StatusUnauthorized}
	st := newTestStore(t, b)

	_, err := st.Login(context.Background(), "a@b.c", "bad")
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *api.Error, got %T (%v)", err, err)
	}
	if apiErr.Message != "Неверный логин или пароль" {
		t.Errorf("message = %q, want backend text verbatim", apiErr.Message)
	}
}

func TestProfileRejectionDropsToken(t *testing.T) {
	b := &backendStub{}
	st := newTestStore(t, b)
	sid, err := st.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Token gets revoked server-side; the next resolve must destroy the
	// session instead of looping on the placeholder.
	b.profileStatus = http.StatusUnauthorized
	state := st.Resolve(context.Background(), sid)
	if state.LoggedIn() {
		t.Fatal("state still logged in after profile rejection")
	}
	if state.Hydrating {
		t.Error("rejected profile must not read as hydrating")
	}

	b.profileStatus = 0
	if again := st.Resolve(context.Background(), sid); again.LoggedIn() {
		t.Error("token survived forced logout")
	}
}

func TestTransportFailureKeepsTokenHydrating(t *testing.T) {
	b := &backendStub{}
	srv := httptest.NewServer(b.handler())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(srv.URL, time.Second, log)
	st := NewStore(client, nil, time.Hour, log)

	sid, err := st.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	srv.Close()
	state := st.Resolve(context.Background(), sid)
	if !state.Hydrating {
		t.Fatal("transport failure must read as hydrating, not logged out")
	}
	if state.Token == "" {
		t.Error("token dropped on transport failure")
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	b := &backendStub{}
	st := newTestStore(t, b)
	sid, err := st.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	st.Logout(context.Background(), sid)
	if state := st.Resolve(context.Background(), sid); state.LoggedIn() {
		t.Error("session survived logout")
	}
}

func TestProfileOpsRequireToken(t *testing.T) {
	st := newTestStore(t, &backendStub{})

	_, err := st.UpdateProfile(context.Background(), "no-such-sid", model.ProfileUpdate{FullName: "X"})
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("UpdateProfile err = %v, want ErrNotAuthenticated", err)
	}
	_, err = st.ChangePassword(context.Background(), "no-such-sid", model.PasswordChange{})
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("ChangePassword err = %v, want ErrNotAuthenticated", err)
	}
}

func TestMemorySessionExpiry(t *testing.T) {
	b := &backendStub{}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(srv.URL, time.Second, log)
	st := NewStore(client, nil, -time.Second, log) // already expired

	sid, err := st.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if state := st.Resolve(context.Background(), sid); state.LoggedIn() {
		t.Error("expired in-memory session still resolves")
	}
}
