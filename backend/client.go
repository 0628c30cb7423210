// Package backend is the typed client for the game's server API: player
// persistence, scenario content, and CSRF issuance. All game state other than
// the session streak is server-authoritative; this package only shapes
// requests and decodes responses, it holds no game logic.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks JSON over HTTP to the backend. Safe for the single cooperative
// goroutine model this client runs under; not hardened for parallel use.
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
	csrf string
}

// New builds a client rooted at baseURL (no trailing slash needed).
func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: 10 * time.Second},
		log:  log,
	}
}

// SetTimeout overrides the default per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// APIError describes a backend call that completed but did not succeed. It is
// shown to the player verbatim, so Message stays human-readable.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s failed (status %d)", e.Op, e.Status)
}

// FetchCSRF retrieves and caches the CSRF token used by mutating calls.
func (c *Client) FetchCSRF(ctx context.Context) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.get(ctx, "/api/csrf", &resp); err != nil {
		return err
	}
	c.csrf = resp.Token
	return nil
}

// Players lists the saved players on the server.
func (c *Client) Players(ctx context.Context) ([]Player, error) {
	var resp struct {
		Players []Player `json:"players"`
	}
	if err := c.get(ctx, "/api/players", &resp); err != nil {
		return nil, err
	}
	return resp.Players, nil
}

// CreatePlayerRequest is the character-creation submission.
type CreatePlayerRequest struct {
	Name           string `json:"name"`
	Password       string `json:"password,omitempty"`
	World          string `json:"world"`
	Industry       string `json:"industry"`
	CareerPath     string `json:"career_path"`
	CharacterIndex int    `json:"character_index"`
}

// CreatePlayer submits a new character and returns the created player.
func (c *Client) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*Player, error) {
	var resp playerResponse
	if err := c.post(ctx, "/api/create_player", req, &resp); err != nil {
		return nil, err
	}
	return resp.player("create player")
}

// Login resumes a saved player by id.
func (c *Client) Login(ctx context.Context, playerID int) (*Player, error) {
	body := map[string]int{"player_id": playerID}
	var resp playerResponse
	if err := c.post(ctx, "/api/login", body, &resp); err != nil {
		return nil, err
	}
	return resp.player("login")
}

// Stats fetches the logged-in player's resource counters.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var resp Stats
	if err := c.get(ctx, "/api/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Scenarios lists the encounters available in a discipline.
func (c *Client) Scenarios(ctx context.Context, discipline string) ([]ScenarioRef, error) {
	var resp struct {
		Scenarios []ScenarioRef `json:"scenarios"`
	}
	if err := c.get(ctx, "/api/scenarios/"+discipline, &resp); err != nil {
		return nil, err
	}
	return resp.Scenarios, nil
}

// Play fetches one scenario's question text and choices.
func (c *Client) Play(ctx context.Context, scenarioID string) (*Scenario, error) {
	var resp struct {
		Scenario Scenario `json:"scenario"`
	}
	if err := c.get(ctx, "/api/play/"+scenarioID, &resp); err != nil {
		return nil, err
	}
	return &resp.Scenario, nil
}

// Choose submits the player's answer and returns the scored outcome.
func (c *Client) Choose(ctx context.Context, scenarioID, choiceKey string) (*ChooseResult, error) {
	var resp struct {
		Result ChooseResult `json:"result"`
	}
	path := fmt.Sprintf("/api/choose/%s/%s", scenarioID, choiceKey)
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("building GET %s: %w", path, err)
	}
	return c.do(req, path, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding POST %s body: %w", path, err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("building POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.csrf != "" {
		req.Header.Set("X-CSRFToken", c.csrf)
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("backend call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &APIError{Op: path, Status: resp.StatusCode, Message: "the server is not answering; try again"}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

type playerResponse struct {
	Success bool    `json:"success"`
	Player  *Player `json:"player"`
	Err     string  `json:"error"`
}

func (r *playerResponse) player(op string) (*Player, error) {
	if !r.Success || r.Player == nil {
		msg := r.Err
		if msg == "" {
			msg = op + " was rejected"
		}
		return nil, &APIError{Op: op, Message: msg}
	}
	return r.Player, nil
}
