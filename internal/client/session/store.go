// Package session is the single source of truth for "is a user authenticated,
// and which user". The state is shared by the REPL shell and every screen, and
// survives restarts through a small key-value persistence layer.
//
// Only three operations mutate or read it: Establish (login), Clear (logout)
// and Current (snapshot). All consumers see a mutation synchronously after the
// call returns; there is no asynchronous propagation. Two processes sharing
// the same database file can still diverge in memory, which is an accepted
// limitation, not a bug.
package session

import (
	"context"
	"errors"
	"fmt"

	"cardhub/internal/client/repositories/metadata"
	"cardhub/internal/logging"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey  = "token"
	userIDKey = "userId"
)

// ErrAlreadyInitialized is returned when Init is called more than once; the
// store is initialized exactly once per process lifetime.
var ErrAlreadyInitialized = errors.New("session store already initialized")

// Session is a point-in-time snapshot of the authentication state. UserID is
// non-empty only when LoggedIn is true, and may be empty even then if the
// login token carried no user id.
type Session struct {
	LoggedIn bool
	UserID   string
}

// Store holds the in-memory session state and mirrors it to durable storage.
// It is not safe for concurrent mutation; the REPL serializes all writes, the
// same way a browser event loop serializes them for the web client.
type Store struct {
	repo metadata.Repository
	log  logging.Logger

	initialized bool
	loggedIn    bool
	token       string
	userID      string
}

// NewStore returns an uninitialized Store over the given persistence layer.
// Call Init before any other method.
func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "session")}
}

// Init restores the session from durable storage: a stored token means the
// user is logged in, and a stored user id (written by a later login) is
// restored alongside it. Init must run exactly once, before the first
// Current/Establish/Clear call.
func (s *Store) Init(ctx context.Context) error {
	if s.initialized {
		return ErrAlreadyInitialized
	}

	token, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if len(token) > 0 {
		s.loggedIn = true
		s.token = string(token)

		userID, err := s.repo.Get(ctx, userIDKey)
		if err != nil {
			return fmt.Errorf("failed to restore session: %w", err)
		}
		s.userID = string(userID)
	}

	s.initialized = true
	s.log.Debug(ctx, "session restored", "logged_in", s.loggedIn)
	return nil
}

// Establish persists the token, marks the session logged in, and records the
// user id carried in the token's "_id" claim. The claim is read without
// signature verification: the client holds no key and does not need one, since
// the server re-validates the token on every request. A token without the
// claim still establishes a session; favorites filtering then matches nothing.
func (s *Store) Establish(ctx context.Context, token string) error {
	s.mustBeInitialized()

	userID := subjectFromToken(token)

	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if userID != "" {
		if err := s.repo.Set(ctx, userIDKey, []byte(userID)); err != nil {
			return fmt.Errorf("failed to persist user id: %w", err)
		}
	} else {
		s.log.Warn(ctx, "login token carries no user id; favorites will be empty")
	}

	s.loggedIn = true
	s.token = token
	s.userID = userID
	return nil
}

// Clear removes the persisted token and user id and resets the in-memory
// state. Clearing an already-cleared session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mustBeInitialized()

	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := s.repo.Delete(ctx, userIDKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.loggedIn = false
	s.token = ""
	s.userID = ""
	return nil
}

// Current returns a snapshot of the session state.
func (s *Store) Current() Session {
	s.mustBeInitialized()
	return Session{LoggedIn: s.loggedIn, UserID: s.userID}
}

// Token returns the bearer token of the current session, or "" when logged out.
func (s *Store) Token() string {
	s.mustBeInitialized()
	return s.token
}

// mustBeInitialized panics on access before Init. Such a call is a wiring
// defect in the program, not a runtime condition a caller could handle.
func (s *Store) mustBeInitialized() {
	if !s.initialized {
		panic("session: store used before Init")
	}
}

// subjectFromToken extracts the "_id" claim from a JWT without verifying its
// signature. Returns "" for opaque or malformed tokens.
func subjectFromToken(token string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}
	if id, ok := claims["_id"].(string); ok {
		return id
	}
	return ""
}
