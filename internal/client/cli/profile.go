package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"cardhub/internal/client/models"
	"cardhub/internal/client/screens"
)

// Profile fetches and prints the current user's account document.
func (a *App) Profile(ctx context.Context) error {
	if err := a.profile.Refresh(ctx); err != nil {
		if errors.Is(err, screens.ErrNotLoggedIn) {
			printlnFn("Please log in to view your profile.")
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	printProfile(a.profile.Profile())
	return nil
}

// EditProfile re-prompts every profile field with the current value as the
// default and replaces the document wholesale on the server.
func (a *App) EditProfile(ctx context.Context) error {
	if err := a.profile.Refresh(ctx); err != nil {
		if errors.Is(err, screens.ErrNotLoggedIn) {
			printlnFn("Please log in to edit your profile.")
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	p := a.profile.Profile()

	fields := []struct {
		label string
		dst   *string
	}{
		{"First name", &p.Name.First},
		{"Middle name", &p.Name.Middle},
		{"Last name", &p.Name.Last},
		{"Email", &p.Email},
		{"Phone", &p.Phone},
		{"Country", &p.Address.Country},
		{"City", &p.Address.City},
		{"Street", &p.Address.Street},
		{"House number", &p.Address.HouseNumber},
		{"Zip", &p.Address.Zip},
		{"Image URL", &p.Image.URL},
		{"Image alt", &p.Image.Alt},
	}
	for _, f := range fields {
		v, err := getTextWithDefault(a.reader, f.label, *f.dst, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if _, err := a.profile.Update(ctx, p); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Profile updated successfully!")
	return nil
}

func printProfile(p models.UserProfile) {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Name.First, p.Name.Middle, p.Name.Last} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	printlnFn("Name:   " + strings.Join(parts, " "))
	printlnFn("Email:  " + p.Email)
	printlnFn("Phone:  " + p.Phone)
	printlnFn("Address: " + strings.Join([]string{p.Address.Street, p.Address.City, p.Address.Country}, ", "))
	if p.Image.URL != "" {
		printlnFn("Image:  " + p.Image.URL)
	}
}
