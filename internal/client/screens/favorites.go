package screens

import (
	"context"

	"cardhub/internal/client/models"
)

// FavoritesScreen shows the cards the current user has liked. The server has
// no favorites endpoint; the screen fetches all cards and keeps the subset
// whose likes contain the current user id. A session without a user id (older
// login revisions persisted none) yields an empty list, never an error.
type FavoritesScreen struct {
	api     CardLister
	session SessionReader

	state     State
	favorites []models.Card
	err       string
}

func NewFavoritesScreen(api CardLister, session SessionReader) *FavoritesScreen {
	return &FavoritesScreen{api: api, session: session}
}

// Refresh fetches all cards and caches the liked subset, preserving server
// order. Logged out, it issues no network call.
func (f *FavoritesScreen) Refresh(ctx context.Context) error {
	if !f.session.Current().LoggedIn {
		f.state = StateIdle
		f.favorites = nil
		f.err = ""
		return ErrNotLoggedIn
	}

	f.state = StateLoading
	f.err = ""

	cards, err := f.api.ListCards(ctx, f.session.Token())
	if err != nil {
		f.state = StateError
		f.err = err.Error()
		return err
	}

	userID := f.session.Current().UserID
	liked := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if c.LikedBy(userID) {
			liked = append(liked, c)
		}
	}

	f.state = StateLoaded
	f.favorites = liked
	return nil
}

// Unlike toggles the like off. When the server's updated document no longer
// lists the current user, the card leaves the favorites cache; otherwise the
// fresh document replaces the cached one.
func (f *FavoritesScreen) Unlike(ctx context.Context, id string) error {
	updated, err := f.api.ToggleLike(ctx, f.session.Token(), id)
	if err != nil {
		return err
	}

	if updated.LikedBy(f.session.Current().UserID) {
		for i := range f.favorites {
			if f.favorites[i].ID == updated.ID {
				f.favorites[i] = updated
			}
		}
		return nil
	}

	kept := make([]models.Card, 0, len(f.favorites))
	for _, c := range f.favorites {
		if c.ID != updated.ID {
			kept = append(kept, c)
		}
	}
	f.favorites = kept
	return nil
}

func (f *FavoritesScreen) State() State { return f.state }

// Favorites returns the cached liked subset from the last successful fetch.
func (f *FavoritesScreen) Favorites() []models.Card { return f.favorites }

func (f *FavoritesScreen) Err() string { return f.err }
