package session

import (
	"context"
	"testing"

	"cardhub/internal/client/repositories/metadata"
	"cardhub/internal/logging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken builds a real HS256 JWT carrying the directory service's "_id"
// claim, the same shape the login endpoint issues.
func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{"_id": userID}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newStore(t *testing.T) (*Store, *metadata.InMemoryRepository) {
	t.Helper()
	repo := metadata.NewInMemoryRepository()
	s := NewStore(repo, logging.NewDefault())
	require.NoError(t, s.Init(context.Background()))
	return s, repo
}

func TestInit_EmptyStorageMeansLoggedOut(t *testing.T) {
	s, _ := newStore(t)

	cur := s.Current()
	assert.False(t, cur.LoggedIn)
	assert.Empty(t, cur.UserID)
	assert.Empty(t, s.Token())
}

func TestInit_RestoresTokenAndUserID(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewInMemoryRepository()
	require.NoError(t, repo.Set(ctx, "token", []byte("tok-1")))
	require.NoError(t, repo.Set(ctx, "userId", []byte("u-1")))

	s := NewStore(repo, logging.NewDefault())
	require.NoError(t, s.Init(ctx))

	cur := s.Current()
	assert.True(t, cur.LoggedIn)
	assert.Equal(t, "u-1", cur.UserID)
	assert.Equal(t, "tok-1", s.Token())
}

func TestInit_TokenWithoutUserID(t *testing.T) {
	// the earlier login revision persisted only the token
	ctx := context.Background()
	repo := metadata.NewInMemoryRepository()
	require.NoError(t, repo.Set(ctx, "token", []byte("tok-1")))

	s := NewStore(repo, logging.NewDefault())
	require.NoError(t, s.Init(ctx))

	cur := s.Current()
	assert.True(t, cur.LoggedIn)
	assert.Empty(t, cur.UserID)
}

func TestInit_SecondCallFails(t *testing.T) {
	s, _ := newStore(t)
	assert.ErrorIs(t, s.Init(context.Background()), ErrAlreadyInitialized)
}

func TestEstablish_SetsStateAndPersists(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)
	token := signedToken(t, "u-42")

	require.NoError(t, s.Establish(ctx, token))

	cur := s.Current()
	assert.True(t, cur.LoggedIn)
	assert.Equal(t, "u-42", cur.UserID)
	assert.Equal(t, token, s.Token())

	stored, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte(token), stored, "token storage must be non-empty right after login")

	storedID, err := repo.Get(ctx, "userId")
	require.NoError(t, err)
	assert.Equal(t, []byte("u-42"), storedID)
}

func TestEstablish_OpaqueTokenStillLogsIn(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)

	require.NoError(t, s.Establish(ctx, "not-a-jwt"))

	cur := s.Current()
	assert.True(t, cur.LoggedIn)
	assert.Empty(t, cur.UserID, "opaque token carries no user id")

	storedID, err := repo.Get(ctx, "userId")
	require.NoError(t, err)
	assert.Nil(t, storedID, "no user id must be persisted")
}

func TestClear_RemovesStateAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)
	require.NoError(t, s.Establish(ctx, signedToken(t, "u-1")))

	require.NoError(t, s.Clear(ctx))
	cur := s.Current()
	assert.False(t, cur.LoggedIn)
	assert.Empty(t, cur.UserID)
	assert.Empty(t, s.Token())

	stored, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, stored, "token storage must be empty right after logout")

	// a second logout leaves the same cleared state
	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.Current().LoggedIn)
}

func TestEstablish_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewInMemoryRepository()

	s := NewStore(repo, logging.NewDefault())
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Establish(ctx, signedToken(t, "u-9")))

	// "restart": a fresh store over the same durable storage
	s2 := NewStore(repo, logging.NewDefault())
	require.NoError(t, s2.Init(ctx))

	cur := s2.Current()
	assert.True(t, cur.LoggedIn)
	assert.Equal(t, "u-9", cur.UserID)
}

func TestCurrent_PanicsBeforeInit(t *testing.T) {
	s := NewStore(metadata.NewInMemoryRepository(), logging.NewDefault())
	assert.Panics(t, func() { s.Current() })
	assert.Panics(t, func() { s.Token() })
}

func TestSubjectFromToken(t *testing.T) {
	assert.Equal(t, "u-1", subjectFromToken(signedToken(t, "u-1")))
	assert.Empty(t, subjectFromToken("garbage"))

	// a valid JWT without the _id claim
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"})
	s, err := tok.SignedString([]byte("k"))
	require.NoError(t, err)
	assert.Empty(t, subjectFromToken(s))
}
