// Package api implements the HTTP client for the card directory service.
//
// Every call is a single request/response round trip: 2xx resolves with the
// parsed body, any other status yields an *APIError carrying the server's
// message, and transport failures yield ErrUnavailable. Nothing is retried;
// callers decide whether and when to re-issue a failed call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cardhub/internal/client/models"
	"cardhub/internal/logging"

	"github.com/google/uuid"
)

// DefaultBaseURL is the directory service endpoint used when no address is
// configured.
const DefaultBaseURL = "http://localhost:5000/api"

// Client calls the card directory service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewClient constructs a directory client. A zero timeout disables the
// client-side deadline: a hung request then hangs the invoking command until
// the user interrupts it.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "api"),
	}
}

// Register creates a new account. The endpoint requires no authentication.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/users", "", req, nil, "registration failed")
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", "", payload, &resp, "login failed"); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// GetProfile fetches the authenticated user's profile document.
func (c *Client) GetProfile(ctx context.Context, token string) (models.UserProfile, error) {
	var p models.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/users/profile", token, nil, &p, "failed to fetch profile"); err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

// UpdateProfile replaces the profile document wholesale and returns the
// server's updated copy.
func (c *Client) UpdateProfile(ctx context.Context, token string, p models.UserProfile) (models.UserProfile, error) {
	var updated models.UserProfile
	if err := c.doJSON(ctx, http.MethodPut, "/users/profile", token, p, &updated, "failed to update profile"); err != nil {
		return models.UserProfile{}, err
	}
	return updated, nil
}

// ListCards fetches every card in the directory.
func (c *Client) ListCards(ctx context.Context, token string) ([]models.Card, error) {
	var cards []models.Card
	if err := c.doJSON(ctx, http.MethodGet, "/cards", token, nil, &cards, "failed to fetch cards"); err != nil {
		return nil, err
	}
	return cards, nil
}

// ListMyCards fetches only the cards owned by the authenticated user.
func (c *Client) ListMyCards(ctx context.Context, token string) ([]models.Card, error) {
	var cards []models.Card
	if err := c.doJSON(ctx, http.MethodGet, "/cards/my-cards", token, nil, &cards, "failed to fetch cards"); err != nil {
		return nil, err
	}
	return cards, nil
}

// CreateCard submits a new card (no id) and returns the created document,
// including the server-assigned id.
func (c *Client) CreateCard(ctx context.Context, token string, card models.Card) (models.Card, error) {
	var created models.Card
	if err := c.doJSON(ctx, http.MethodPost, "/cards", token, card, &created, "failed to create card"); err != nil {
		return models.Card{}, err
	}
	return created, nil
}

// UpdateCard replaces the card with the given id and returns the server's
// updated document.
func (c *Client) UpdateCard(ctx context.Context, token, id string, card models.Card) (models.Card, error) {
	var updated models.Card
	if err := c.doJSON(ctx, http.MethodPut, "/cards/"+id, token, card, &updated, "failed to update card"); err != nil {
		return models.Card{}, err
	}
	return updated, nil
}

// DeleteCard removes the card with the given id.
func (c *Client) DeleteCard(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/cards/"+id, token, nil, nil, "failed to delete card")
}

// ToggleLike flips the authenticated user's like on the card and returns the
// server's updated document, whose likes array is authoritative.
func (c *Client) ToggleLike(ctx context.Context, token, id string) (models.Card, error) {
	var updated models.Card
	if err := c.doJSON(ctx, http.MethodPatch, "/cards/"+id, token, nil, &updated, "failed to like card"); err != nil {
		return models.Card{}, err
	}
	return updated, nil
}

// doJSON performs a single JSON round trip. A non-empty token is attached as a
// bearer credential; fallback is the user-facing message used when a non-2xx
// body carries no "message" field.
func (c *Client) doJSON(ctx context.Context, method, path, token string, payload, out any, fallback string) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fallback
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			var errResp struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(data, &errResp) == nil && errResp.Message != "" {
				msg = errResp.Message
			}
		}
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	c.log.Debug(ctx, "request ok", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
