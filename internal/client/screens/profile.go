package screens

import (
	"context"

	"cardhub/internal/client/models"
)

// ProfileScreen shows and edits the current user's account document. Editing
// is a whole-document replace; the server's response becomes the new local
// copy.
type ProfileScreen struct {
	api     ProfileAPI
	session SessionReader

	state   State
	profile models.UserProfile
	err     string
}

func NewProfileScreen(api ProfileAPI, session SessionReader) *ProfileScreen {
	return &ProfileScreen{api: api, session: session}
}

// Refresh fetches the profile document.
func (p *ProfileScreen) Refresh(ctx context.Context) error {
	if !p.session.Current().LoggedIn {
		p.state = StateIdle
		p.profile = models.UserProfile{}
		p.err = ""
		return ErrNotLoggedIn
	}

	p.state = StateLoading
	p.err = ""

	profile, err := p.api.GetProfile(ctx, p.session.Token())
	if err != nil {
		p.state = StateError
		p.err = err.Error()
		return err
	}

	p.state = StateLoaded
	p.profile = profile
	return nil
}

// Update replaces the whole document on the server and adopts the returned
// copy.
func (p *ProfileScreen) Update(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	updated, err := p.api.UpdateProfile(ctx, p.session.Token(), profile)
	if err != nil {
		return models.UserProfile{}, err
	}
	p.state = StateLoaded
	p.profile = updated
	return updated, nil
}

func (p *ProfileScreen) State() State { return p.state }

// Profile returns the cached document from the last successful fetch or
// update.
func (p *ProfileScreen) Profile() models.UserProfile { return p.profile }

func (p *ProfileScreen) Err() string { return p.err }
