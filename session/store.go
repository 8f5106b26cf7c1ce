package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Store is the process-wide owner of the current session. Every mutation
// is a single step under the lock, so concurrent in-flight requests
// observe either the pre- or post-mutation session, never a mix.
//
// The store is the single writer: the gateway requests destruction on an
// authorization failure and everything else only reads.
type Store struct {
	lock    sync.RWMutex
	current Session
	epoch   uint64
	repo    Repo
	nowTime func() time.Time
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// NewStore creates a Store backed by repo. A nil repo is valid and means
// the session lives only for the lifetime of the process.
func NewStore(repo Repo, options ...StoreOption) *Store {
	store := &Store{
		repo:    repo,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(store)
	}
	return store
}

// Set replaces the current session atomically. Both fields are required:
// a token without a user (or the reverse) would violate the no-partial-
// session invariant.
func (s *Store) Set(token string, user *User) error {
	if token == "" {
		return errors.New("[Store.Set] token is required")
	}
	if user == nil {
		return errors.New("[Store.Set] user is required")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.current = Session{Token: token, User: user}
	s.epoch++

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(s.current); err != nil {
		return errors.Wrap(err, "[Store.Set] repo.Save")
	}
	return nil
}

// Get returns the current session, which may be empty.
func (s *Store) Get() Session {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.current
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.current.Token
}

// Clear empties the session. It reports whether a session was actually
// held, so the caller can fire the invalidation notification at most
// once per expiry rather than once per trailing 401.
func (s *Store) Clear() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	cleared := !s.current.IsZero()
	s.current = Session{}
	s.epoch++

	if s.repo != nil {
		_ = s.repo.Clear()
	}
	return cleared
}

// IsAuthenticated reports whether a token is currently held.
func (s *Store) IsAuthenticated() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.current.Token != ""
}

// HasRole reports whether the current user satisfies requiredRole. An
// empty requirement always passes, and the admin role passes everything.
func (s *Store) HasRole(requiredRole string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if requiredRole == "" {
		return true
	}
	if s.current.User == nil {
		return false
	}
	return s.current.User.Role == requiredRole || s.current.User.Role == RoleAdmin
}

// Epoch returns a counter bumped on every Set and Clear. Callers that
// start a slow request capture the epoch first and drop the response if
// it changed, so a poll resolving after logout cannot repopulate
// authenticated state.
func (s *Store) Epoch() uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.epoch
}

// Restore loads a previously persisted session so a process restart does
// not force a fresh login. A persisted token whose JWT exp claim has
// already passed is discarded rather than restored; it would only earn a
// guaranteed 401 on the first call. Opaque (non-JWT) tokens are restored
// as-is and left for the server to judge.
func (s *Store) Restore() error {
	if s.repo == nil {
		return nil
	}

	persisted, err := s.repo.Load()
	if err != nil {
		return errors.Wrap(err, "[Store.Restore] repo.Load")
	}
	if persisted.Token == "" || persisted.User == nil {
		return nil
	}
	if s.tokenExpired(persisted.Token) {
		_ = s.repo.Clear()
		return nil
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.current = persisted
	s.epoch++
	return nil
}

func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.nowTime())
}
