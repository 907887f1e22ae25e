package screens

import (
	"context"
	"errors"
	"testing"

	"cardhub/internal/client/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowse_RefusesToFetchWhenLoggedOut(t *testing.T) {
	api := &fakeCardAPI{}
	b := NewBrowseScreen(api, &fakeSession{loggedIn: false})

	err := b.Refresh(context.Background())

	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, 0, api.calls, "a logged-out browse must issue zero network calls")
	assert.Equal(t, StateIdle, b.State())
	assert.Empty(t, b.Cards())
}

func TestBrowse_CacheEqualsServerResponse(t *testing.T) {
	want := []models.Card{
		{ID: "c2", Title: "B"},
		{ID: "c1", Title: "A"},
	}
	api := &fakeCardAPI{listCards: want}
	b := NewBrowseScreen(api, &fakeSession{loggedIn: true, token: "tok"})

	require.NoError(t, b.Refresh(context.Background()))

	assert.Equal(t, StateLoaded, b.State())
	assert.Equal(t, want, b.Cards(), "no reordering, no filtering")
	assert.Equal(t, "tok", api.lastToken)
}

func TestBrowse_LoadFailureSetsErrorState(t *testing.T) {
	api := &fakeCardAPI{listErr: errors.New("Invalid credentials")}
	b := NewBrowseScreen(api, &fakeSession{loggedIn: true})

	err := b.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateError, b.State())
	assert.Equal(t, "Invalid credentials", b.Err())
	assert.Empty(t, b.Cards())
}

func TestBrowse_ToggleLikeReplacesMatchingCard(t *testing.T) {
	api := &fakeCardAPI{listCards: []models.Card{
		{ID: "c1", Likes: nil},
		{ID: "c2", Likes: []string{"other"}},
	}}
	b := NewBrowseScreen(api, &fakeSession{loggedIn: true, userID: "me"})
	require.NoError(t, b.Refresh(context.Background()))

	api.toggleCard = models.Card{ID: "c1", Likes: []string{"me"}}
	updated, err := b.ToggleLike(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, updated.LikedBy("me"))

	assert.Equal(t, []string{"me"}, b.Cards()[0].Likes)
	assert.Equal(t, []string{"other"}, b.Cards()[1].Likes, "other cards untouched")
}

func TestBrowse_LikeThenUnlikeRestoresLikes(t *testing.T) {
	before := models.Card{ID: "c1", Likes: []string{"other"}}
	api := &fakeCardAPI{listCards: []models.Card{before}}
	b := NewBrowseScreen(api, &fakeSession{loggedIn: true, userID: "me"})
	require.NoError(t, b.Refresh(context.Background()))

	// each server response is the authoritative replacement
	api.toggleCard = models.Card{ID: "c1", Likes: []string{"other", "me"}}
	_, err := b.ToggleLike(context.Background(), "c1")
	require.NoError(t, err)

	api.toggleCard = models.Card{ID: "c1", Likes: []string{"other"}}
	_, err = b.ToggleLike(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, before.Likes, b.Cards()[0].Likes)
}

func TestBrowse_ToggleLikeFailureLeavesCacheAlone(t *testing.T) {
	api := &fakeCardAPI{listCards: []models.Card{{ID: "c1"}}}
	b := NewBrowseScreen(api, &fakeSession{loggedIn: true})
	require.NoError(t, b.Refresh(context.Background()))

	api.toggleErr = errors.New("boom")
	_, err := b.ToggleLike(context.Background(), "c1")
	require.Error(t, err)
	assert.Empty(t, b.Cards()[0].Likes)
}
