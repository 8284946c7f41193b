// Package session owns the authentication state of the client.
//
// The persisted bearer token is the single source of truth: the store is
// AUTHENTICATED exactly when a non-empty token sits in the local store.
// Consumers read state through State/Token and subscribe to transitions via
// OnChange; only the auth flow mutates it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickworkapp/quickwork-cli/internal/client/storage"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

// State of the session machine.
type State int

const (
	// StateUnknown is the initial state, before the storage read completes.
	// No navigation decision may be taken while in it.
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// KV is the slice of the local store the session needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is the process-wide session holder.
type Store struct {
	mu    sync.Mutex
	state State
	token string

	kv        KV
	log       logging.Logger
	listeners []func(State)

	// now is a test seam for the expiry check.
	now func() time.Time
}

func NewStore(kv KV, log logging.Logger) *Store {
	return &Store{state: StateUnknown, kv: kv, log: log, now: time.Now}
}

// OnChange registers fn to be called after every committed state transition.
// Callbacks run synchronously with the lock released.
func (s *Store) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// State returns the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	return s.State() == StateAuthenticated
}

// Token returns the current bearer token ("" when unauthenticated).
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Restore resolves StateUnknown by reading the persisted token. A read
// failure is logged and treated as "not authenticated"; it never blocks
// startup. A token that is a JWT with an expiry in the past is discarded.
func (s *Store) Restore(ctx context.Context) State {
	raw, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		s.log.Error(ctx, "session restore failed, assuming logged out", "error", err)
		return s.transition(ctx, StateUnauthenticated, "")
	}

	token := string(raw)
	if token != "" && s.expired(token) {
		s.log.Info(ctx, "stored token expired, clearing")
		if err := s.kv.Delete(ctx, storage.KeyToken); err != nil {
			s.log.Error(ctx, "could not clear expired token", "error", err)
		}
		token = ""
	}

	if token == "" {
		return s.transition(ctx, StateUnauthenticated, "")
	}
	return s.transition(ctx, StateAuthenticated, token)
}

// Login durably persists the token, then flips the in-memory state and
// notifies subscribers. On a persist failure the state is left unchanged
// and the error is returned to the caller.
func (s *Store) Login(ctx context.Context, token string) error {
	if err := s.kv.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		s.log.Error(ctx, "could not persist session", "error", err)
		return err
	}
	s.transition(ctx, StateAuthenticated, token)
	return nil
}

// Logout clears the persisted token first, then flips the state. A failed
// clear leaves the session untouched so storage and memory never disagree.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyToken); err != nil {
		s.log.Error(ctx, "could not clear session", "error", err)
		return err
	}
	s.transition(ctx, StateUnauthenticated, "")
	return nil
}

func (s *Store) transition(ctx context.Context, next State, token string) State {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.token = token
	listeners := make([]func(State), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if prev != next {
		s.log.Debug(ctx, "session state changed", "from", prev.String(), "to", next.String())
		for _, fn := range listeners {
			fn(next)
		}
	}
	return next
}

// expired reports whether token is a JWT whose exp claim is in the past.
// Tokens that do not parse as JWTs are kept; the backend's token format is
// not part of the client's contract.
func (s *Store) expired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}
