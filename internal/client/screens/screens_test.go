package screens

import (
	"context"

	"cardhub/internal/client/models"
	"cardhub/internal/client/session"
)

// fakeSession satisfies SessionReader without touching durable storage.
type fakeSession struct {
	loggedIn bool
	userID   string
	token    string
}

func (f *fakeSession) Current() session.Session {
	return session.Session{LoggedIn: f.loggedIn, UserID: f.userID}
}

func (f *fakeSession) Token() string { return f.token }

// fakeCardAPI implements CardLister and CardManager and counts every network
// round trip so gate tests can assert zero calls.
type fakeCardAPI struct {
	calls int

	listCards   []models.Card
	listErr     error
	toggleCard  models.Card
	toggleErr   error
	createdCard models.Card
	createErr   error
	updatedCard models.Card
	updateErr   error
	deleteErr   error

	lastToken string
}

func (f *fakeCardAPI) ListCards(_ context.Context, token string) ([]models.Card, error) {
	f.calls++
	f.lastToken = token
	return f.listCards, f.listErr
}

func (f *fakeCardAPI) ListMyCards(_ context.Context, token string) ([]models.Card, error) {
	f.calls++
	f.lastToken = token
	return f.listCards, f.listErr
}

func (f *fakeCardAPI) ToggleLike(_ context.Context, token, id string) (models.Card, error) {
	f.calls++
	f.lastToken = token
	return f.toggleCard, f.toggleErr
}

func (f *fakeCardAPI) CreateCard(_ context.Context, token string, card models.Card) (models.Card, error) {
	f.calls++
	f.lastToken = token
	return f.createdCard, f.createErr
}

func (f *fakeCardAPI) UpdateCard(_ context.Context, token, id string, card models.Card) (models.Card, error) {
	f.calls++
	f.lastToken = token
	return f.updatedCard, f.updateErr
}

func (f *fakeCardAPI) DeleteCard(_ context.Context, token, id string) error {
	f.calls++
	f.lastToken = token
	return f.deleteErr
}
