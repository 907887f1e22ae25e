package screens

import (
	"context"

	"cardhub/internal/client/models"
)

// CardsScreen manages the current user's own cards: list, create, edit,
// delete. It corresponds to the card-management route of the web client.
type CardsScreen struct {
	api     CardManager
	session SessionReader

	state State
	cards []models.Card
	err   string
}

func NewCardsScreen(api CardManager, session SessionReader) *CardsScreen {
	return &CardsScreen{api: api, session: session}
}

// Refresh fetches the user's own cards and replaces the cache wholesale.
// Logged out, it issues no network call.
func (c *CardsScreen) Refresh(ctx context.Context) error {
	if !c.session.Current().LoggedIn {
		c.state = StateIdle
		c.cards = nil
		c.err = ""
		return ErrNotLoggedIn
	}

	c.state = StateLoading
	c.err = ""

	cards, err := c.api.ListMyCards(ctx, c.session.Token())
	if err != nil {
		c.state = StateError
		c.err = err.Error()
		return err
	}

	c.state = StateLoaded
	c.cards = cards
	return nil
}

// Create submits a new card and appends the server's created document (with
// its assigned id) to the cache.
func (c *CardsScreen) Create(ctx context.Context, card models.Card) (models.Card, error) {
	created, err := c.api.CreateCard(ctx, c.session.Token(), card)
	if err != nil {
		return models.Card{}, err
	}
	c.cards = append(c.cards, created)
	return created, nil
}

// Update replaces the card wholesale and swaps the cached copy for the
// server's updated document.
func (c *CardsScreen) Update(ctx context.Context, id string, card models.Card) (models.Card, error) {
	updated, err := c.api.UpdateCard(ctx, c.session.Token(), id, card)
	if err != nil {
		return models.Card{}, err
	}
	for i := range c.cards {
		if c.cards[i].ID == updated.ID {
			c.cards[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the card on the server, then drops it from the cache.
func (c *CardsScreen) Delete(ctx context.Context, id string) error {
	if err := c.api.DeleteCard(ctx, c.session.Token(), id); err != nil {
		return err
	}
	kept := make([]models.Card, 0, len(c.cards))
	for _, card := range c.cards {
		if card.ID != id {
			kept = append(kept, card)
		}
	}
	c.cards = kept
	return nil
}

// Find returns the cached card with the given id.
func (c *CardsScreen) Find(id string) (models.Card, bool) {
	for _, card := range c.cards {
		if card.ID == id {
			return card, true
		}
	}
	return models.Card{}, false
}

func (c *CardsScreen) State() State { return c.state }

// Cards returns the cached list from the last successful fetch.
func (c *CardsScreen) Cards() []models.Card { return c.cards }

func (c *CardsScreen) Err() string { return c.err }
