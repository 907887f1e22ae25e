package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cardhub/internal/client/models"
	"cardhub/internal/client/screens"
)

// Browse fetches and prints every card in the directory. Guests get a login
// prompt instead of a request.
func (a *App) Browse(ctx context.Context) error {
	if err := a.browse.Refresh(ctx); err != nil {
		if errors.Is(err, screens.ErrNotLoggedIn) {
			printlnFn("Please log in to view the cards.")
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	cards := a.browse.Cards()
	if len(cards) == 0 {
		printlnFn("No cards in the directory yet.")
		return nil
	}

	userID := a.session.Current().UserID
	for i := range cards {
		printCard(&cards[i], userID)
	}
	return nil
}

// Favorites prints the cards the current user has liked.
func (a *App) Favorites(ctx context.Context) error {
	if err := a.favorites.Refresh(ctx); err != nil {
		if errors.Is(err, screens.ErrNotLoggedIn) {
			printlnFn("Please log in to view your favorite cards.")
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	favorites := a.favorites.Favorites()
	if len(favorites) == 0 {
		printlnFn("You have no favorite cards yet.")
		return nil
	}

	userID := a.session.Current().UserID
	for i := range favorites {
		printCard(&favorites[i], userID)
	}
	return nil
}

// Like toggles the current user's like on a card by id and reports the new
// state. The same server call handles both like and unlike.
func (a *App) Like(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter card id", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.browse.ToggleLike(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if updated.LikedBy(a.session.Current().UserID) {
		printlnFn("Liked.")
	} else {
		printlnFn("Unliked.")
	}
	return nil
}

// printCard renders one card the way the web client's card tile does:
// title line with a like marker, then subtitle, description and address.
func printCard(c *models.Card, userID string) {
	marker := ""
	if c.LikedBy(userID) {
		marker = " *"
	}
	printlnFn(fmt.Sprintf("[%s]%s %s", c.ID, marker, c.Title))
	if c.Subtitle != "" {
		printlnFn("  " + c.Subtitle)
	}
	if c.Description != "" {
		printlnFn("  " + c.Description)
	}
	printlnFn(fmt.Sprintf("  %s, %s, %s", c.Address.Street, c.Address.City, c.Address.Country))
}
