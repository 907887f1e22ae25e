// Package screens holds one controller per screen of the card directory
// client: browse, favorites, my-cards, and profile.
//
// Each controller is a small state machine over a single resource. A refresh
// moves it from idle through loading to loaded, replacing the cache wholesale
// with the server response (last response wins), or to error on failure.
// Mutations never touch the cache speculatively: the local list changes only
// after the server confirms, and always with the server's returned document as
// the authoritative copy.
//
// Screens that require authentication refuse to fetch while logged out: they
// issue no network call and report ErrNotLoggedIn for the shell to render as
// a login prompt.
package screens

import (
	"context"
	"errors"

	"cardhub/internal/client/models"
	"cardhub/internal/client/session"
)

// ErrNotLoggedIn gates authenticated screens. It marks a refused action, not
// a failed one; no request was sent.
var ErrNotLoggedIn = errors.New("not logged in")

// State tracks where a screen is in its load cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// CardLister is the API surface shared by the read-only card screens.
type CardLister interface {
	ListCards(ctx context.Context, token string) ([]models.Card, error)
	ToggleLike(ctx context.Context, token, id string) (models.Card, error)
}

// CardManager is the API surface of the my-cards screen.
type CardManager interface {
	ListMyCards(ctx context.Context, token string) ([]models.Card, error)
	CreateCard(ctx context.Context, token string, card models.Card) (models.Card, error)
	UpdateCard(ctx context.Context, token, id string, card models.Card) (models.Card, error)
	DeleteCard(ctx context.Context, token, id string) error
}

// ProfileAPI is the API surface of the profile screen.
type ProfileAPI interface {
	GetProfile(ctx context.Context, token string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, p models.UserProfile) (models.UserProfile, error)
}

// SessionReader is the read-only slice of the session store the screens
// consume. *session.Store satisfies it.
type SessionReader interface {
	Current() session.Session
	Token() string
}
