package cli

import (
	"context"
	"errors"
	"os"

	"cardhub/internal/client/models"
	"cardhub/internal/client/screens"
)

// MyCards fetches and prints the cards owned by the current user.
func (a *App) MyCards(ctx context.Context) error {
	if err := a.myCards.Refresh(ctx); err != nil {
		if errors.Is(err, screens.ErrNotLoggedIn) {
			printlnFn("Please log in to manage your cards.")
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	cards := a.myCards.Cards()
	if len(cards) == 0 {
		printlnFn("You have no cards yet.")
		return nil
	}

	userID := a.session.Current().UserID
	for i := range cards {
		printCard(&cards[i], userID)
	}
	return nil
}

// AddCard walks the user through the card form and creates the card. The
// local list gains the card only after the server confirms.
func (a *App) AddCard(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	card, err := a.promptCard(models.Card{})
	if err != nil {
		return err
	}

	created, err := a.myCards.Create(ctx, card)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Card created successfully! id:", created.ID)
	return nil
}

// EditCard re-prompts every field of an owned card (empty input keeps the
// current value) and replaces the card wholesale.
func (a *App) EditCard(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	if a.myCards.State() != screens.StateLoaded {
		if err := a.myCards.Refresh(ctx); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
	}

	id, err := getSimpleText(a.reader, "Enter card id to edit", os.Stdout)
	if err != nil {
		return err
	}

	existing, found := a.myCards.Find(id)
	if !found {
		printlnFn("Card not found:", id)
		return nil
	}

	card, err := a.promptCard(existing)
	if err != nil {
		return err
	}

	if _, err := a.myCards.Update(ctx, id, card); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Card updated successfully!")
	return nil
}

// DeleteCard removes an owned card after an explicit confirmation, the way
// the web client asks before deleting.
func (a *App) DeleteCard(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter card id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := getConfirm(a.reader, "Are you sure you want to delete this card?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.myCards.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Card deleted successfully")
	return nil
}

// promptCard steps through every card field. base provides the defaults, so
// the same prompt serves both the create form (zero base) and the edit form.
func (a *App) promptCard(base models.Card) (models.Card, error) {
	c := base

	fields := []struct {
		label string
		dst   *string
	}{
		{"Title", &c.Title},
		{"Subtitle", &c.Subtitle},
		{"Description", &c.Description},
		{"Phone", &c.Phone},
		{"Email", &c.Email},
		{"Website", &c.Web},
		{"Image URL", &c.Image.URL},
		{"Image alt", &c.Image.Alt},
		{"State", &c.Address.State},
		{"Country", &c.Address.Country},
		{"City", &c.Address.City},
		{"Street", &c.Address.Street},
		{"House number", &c.Address.HouseNumber},
		{"Zip", &c.Address.Zip},
	}
	for _, f := range fields {
		v, err := getTextWithDefault(a.reader, f.label, *f.dst, os.Stdout)
		if err != nil {
			return models.Card{}, err
		}
		*f.dst = v
	}

	return c, nil
}
