package screens

import (
	"context"

	"cardhub/internal/client/models"
)

// BrowseScreen shows every card in the directory and lets the user toggle
// likes. It corresponds to the home route of the web client.
type BrowseScreen struct {
	api     CardLister
	session SessionReader

	state State
	cards []models.Card
	err   string
}

func NewBrowseScreen(api CardLister, session SessionReader) *BrowseScreen {
	return &BrowseScreen{api: api, session: session}
}

// Refresh fetches all cards and replaces the cache wholesale. While logged
// out it issues no network call and returns ErrNotLoggedIn with the screen
// left idle.
func (b *BrowseScreen) Refresh(ctx context.Context) error {
	if !b.session.Current().LoggedIn {
		b.state = StateIdle
		b.cards = nil
		b.err = ""
		return ErrNotLoggedIn
	}

	b.state = StateLoading
	b.err = ""

	cards, err := b.api.ListCards(ctx, b.session.Token())
	if err != nil {
		b.state = StateError
		b.err = err.Error()
		return err
	}

	b.state = StateLoaded
	b.cards = cards
	return nil
}

// ToggleLike flips the current user's like on a card. On success the local
// copy is replaced with the server's updated document; a card no longer in
// the cache (stale id) is left alone.
func (b *BrowseScreen) ToggleLike(ctx context.Context, id string) (models.Card, error) {
	updated, err := b.api.ToggleLike(ctx, b.session.Token(), id)
	if err != nil {
		return models.Card{}, err
	}
	for i := range b.cards {
		if b.cards[i].ID == updated.ID {
			b.cards[i] = updated
			break
		}
	}
	return updated, nil
}

func (b *BrowseScreen) State() State { return b.state }

// Cards returns the cached list from the last successful fetch.
func (b *BrowseScreen) Cards() []models.Card { return b.cards }

// Err returns the message of the last failed load, or "".
func (b *BrowseScreen) Err() string { return b.err }
