package cli

import (
	"context"
	"os"

	"cardhub/internal/client/models"
)

// Login prompts for credentials, exchanges them for a bearer token and
// establishes the session. Validation failures and rejected credentials are
// reported to the user; the session stays logged out in both cases.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if email == "" || len(password) == 0 {
		printlnFn("Email and Password are required")
		return nil
	}

	token, err := a.account.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	if err := a.session.Establish(ctx, token); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.userEmail = email
	printlnFn("Login successful! Welcome back.")
	return nil
}

// Register walks the user through the account form and creates the account.
// Registering does not log the user in; the directory service expects a
// separate login afterwards.
func (a *App) Register(ctx context.Context) error {
	req, err := a.promptRegistration()
	if err != nil {
		return err
	}
	if req == nil {
		// validation already reported to the user
		return nil
	}

	if err := a.account.Register(ctx, *req); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Registration successful!")
	return nil
}

// promptRegistration collects the registration form. It returns nil without
// an error when local validation fails, mirroring the web form that keeps the
// user on the page with a message instead of submitting.
func (a *App) promptRegistration() (*models.RegisterRequest, error) {
	var req models.RegisterRequest

	fields := []struct {
		label string
		dst   *string
	}{
		{"First name", &req.Name.First},
		{"Middle name (optional)", &req.Name.Middle},
		{"Last name", &req.Name.Last},
		{"Phone", &req.Phone},
		{"Email", &req.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.label, os.Stdout)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return nil, err
	}
	defer wipeBytes(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return nil, err
	}
	defer wipeBytes(confirm)

	addressFields := []struct {
		label string
		dst   *string
	}{
		{"Country", &req.Address.Country},
		{"City", &req.Address.City},
		{"Street", &req.Address.Street},
		{"House number", &req.Address.HouseNumber},
		{"Zip", &req.Address.Zip},
		{"Image URL", &req.Image.URL},
	}
	for _, f := range addressFields {
		v, err := getSimpleText(a.reader, f.label, os.Stdout)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	req.Image.Alt = "Business card image"

	isBusiness, err := getConfirm(a.reader, "Register as business?", os.Stdout)
	if err != nil {
		return nil, err
	}
	req.IsBusiness = isBusiness

	if req.Name.First == "" || req.Name.Last == "" || req.Email == "" ||
		len(password) == 0 || req.Phone == "" || req.Image.URL == "" {
		printlnFn("All fields are required")
		return nil, nil
	}
	if string(password) != string(confirm) {
		printlnFn("Passwords do not match")
		return nil, nil
	}

	req.Password = string(password)
	return &req, nil
}

// Logout clears the session. Logging out twice in a row leaves the same
// cleared state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.userEmail = ""
	printlnFn("Logged out.")
	return nil
}
