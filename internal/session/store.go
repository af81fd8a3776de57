// Package session owns the only state shared across views: the backend
// access token and the profile hydrated from it. Views never touch either
// directly — they go through Store operations, and everything else they
// render is per-request.
//
// A session is identified by a random UUID carried in a signed cookie. The
// token string is the sole value persisted server-side, under the key
// "session:<id>" in Redis so sessions survive process restarts. When Redis
// is unavailable the store degrades to an in-process map and sessions last
// only as long as the process.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cohai/studio-web/internal/api"
	"github.com/cohai/studio-web/internal/model"
)

const keyPrefix = "session:"

// ErrNotAuthenticated is returned by operations that need a live token when
// the session has none.
var ErrNotAuthenticated = errors.New("not authenticated")

// State is a snapshot of one session as the route guard and the views see
// it. Exactly one of these situations holds:
//
//   - Token == "" — anonymous visitor.
//   - Token != "" && User != nil — authenticated, role known.
//   - Token != "" && User == nil && Hydrating — the profile could not be
//     fetched for a transient transport reason; the caller must treat this
//     as "still authenticating", not "unauthenticated".
//
// A profile fetch that fails with an HTTP status destroys the session
// before Resolve returns, so that combination never reaches callers.
type State struct {
	ID    string
	Token string
	User  *model.UserProfile
	// Hydrating marks the token-present/profile-unresolved window.
	Hydrating bool
	// Err carries the last hydration failure message for display.
	Err string
}

// LoggedIn reports whether the state carries a usable token.
func (s State) LoggedIn() bool { return s.Token != "" }

// Store performs login, logout and profile operations against the backend
// and keeps the token persisted between requests.
type Store struct {
	api *api.Client
	rdb *redis.Client // nil enables the in-process fallback
	ttl time.Duration
	log *slog.Logger

	mu  sync.Mutex
	mem map[string]memEntry
}

type memEntry struct {
	token   string
	expires time.Time
}

// NewStore builds a Store. rdb may be nil.
func NewStore(apiClient *api.Client, rdb *redis.Client, ttl time.Duration, log *slog.Logger) *Store {
	return &Store{
		api: apiClient,
		rdb: rdb,
		ttl: ttl,
		log: log,
		mem: make(map[string]memEntry),
	}
}

// Login exchanges credentials for a token, persists the token under a fresh
// session id and hydrates the profile. On a backend rejection the error
// message is the backend's and no session state changes — the caller's
// prior session, if any, stays intact.
func (s *Store) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return "", err
	}

	sid := uuid.NewString()
	if err := s.saveToken(ctx, sid, token); err != nil {
		return "", err
	}

	// Token change always triggers a profile fetch. An HTTP failure here
	// means the token is unusable: drop it and report login as failed.
	if _, err := s.api.Profile(ctx, token); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			s.deleteToken(ctx, sid)
			return "", err
		}
		// Transport hiccup right after a successful login: keep the
		// session, Resolve will retry hydration on the next request.
		s.log.Warn("profile hydration deferred", "error", err)
	}
	return sid, nil
}

// Logout destroys the session record. It never fails: a missing record is
// already the desired end state.
func (s *Store) Logout(ctx context.Context, sid string) {
	s.deleteToken(ctx, sid)
}

// Resolve loads the session state for a request. A token with a working
// backend yields a hydrated user. An HTTP-status failure on the profile
// fetch forcibly logs the session out (token removed, error recorded). A
// transport failure keeps the token and marks the state Hydrating.
func (s *Store) Resolve(ctx context.Context, sid string) State {
	if sid == "" {
		return State{}
	}
	token := s.getToken(ctx, sid)
	if token == "" {
		return State{ID: sid}
	}

	user, err := s.api.Profile(ctx, token)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			s.log.Warn("profile fetch rejected, dropping session", "sid", sid, "status", apiErr.Status)
			s.deleteToken(ctx, sid)
			return State{ID: sid, Err: apiErr.Message}
		}
		s.log.Warn("profile fetch failed", "sid", sid, "error", err)
		return State{ID: sid, Token: token, Hydrating: true, Err: err.Error()}
	}
	return State{ID: sid, Token: token, User: &user}
}

// UpdateProfile patches contact details for the session's user and returns
// the backend's echo.
func (s *Store) UpdateProfile(ctx context.Context, sid string, upd model.ProfileUpdate) (model.UserProfile, error) {
	token := s.getToken(ctx, sid)
	if token == "" {
		return model.UserProfile{}, ErrNotAuthenticated
	}
	return s.api.UpdateProfile(ctx, token, upd)
}

// ChangePassword sends a password change through the profile endpoint.
func (s *Store) ChangePassword(ctx context.Context, sid string, ch model.PasswordChange) (model.UserProfile, error) {
	token := s.getToken(ctx, sid)
	if token == "" {
		return model.UserProfile{}, ErrNotAuthenticated
	}
	return s.api.ChangePassword(ctx, token, ch)
}

// ---- token persistence ----

func (s *Store) saveToken(ctx context.Context, sid, token string) error {
	if s.rdb != nil {
		return s.rdb.Set(ctx, keyPrefix+sid, token, s.ttl).Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem[sid] = memEntry{token: token, expires: time.Now().Add(s.ttl)}
	return nil
}

func (s *Store) getToken(ctx context.Context, sid string) string {
	if s.rdb != nil {
		v, err := s.rdb.Get(ctx, keyPrefix+sid).Result()
		if err != nil {
			return ""
		}
		return v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.mem[sid]
	if !ok {
		return ""
	}
	if time.Now().After(e.expires) {
		delete(s.mem, sid)
		return ""
	}
	return e.token
}

func (s *Store) deleteToken(ctx context.Context, sid string) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, keyPrefix+sid).Err()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mem, sid)
}
