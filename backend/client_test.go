package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, zap.NewNop())
}

func TestFetchCSRFAttachesHeaderToMutations(t *testing.T) {
	var gotHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/csrf":
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
		case "/api/login":
			gotHeader = r.Header.Get("X-CSRFToken")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"player":  map[string]any{"player_id": 7, "player_name": "Ava"},
			})
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()
	require.NoError(t, c.FetchCSRF(ctx))
	_, err := c.Login(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", gotHeader)
}

func TestCreatePlayerBody(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/create_player", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"player": map[string]any{
				"player_id":       1,
				"player_name":     "Ava",
				"chosen_world":    "Fantasy",
				"chosen_industry": "Potion Shop",
			},
		})
	})

	p, err := c.CreatePlayer(context.Background(), CreatePlayerRequest{
		Name:           "Ava",
		World:          "Fantasy",
		Industry:       "Potion Shop",
		CareerPath:     "entrepreneur",
		CharacterIndex: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":            "Ava",
		"world":           "Fantasy",
		"industry":        "Potion Shop",
		"career_path":     "entrepreneur",
		"character_index": float64(0),
	}, body)
	assert.Equal(t, "Fantasy", p.World)
	assert.Equal(t, "Potion Shop", p.Industry)
}

func TestCreatePlayerServerRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "name already taken",
		})
	})

	_, err := c.CreatePlayer(context.Background(), CreatePlayerRequest{Name: "Ava"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name already taken")
}

func TestNon2xxReturnsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Players(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestChoosePathAndEnvelope(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"success":     true,
				"feedback":    "Sharp thinking.",
				"exp_gained":  25,
				"cash_change": 150,
			},
		})
	})

	res, err := c.Choose(context.Background(), "mk-101", "b")
	require.NoError(t, err)
	assert.Equal(t, "/api/choose/mk-101/b", gotPath)
	assert.True(t, res.Success)
	assert.Equal(t, "Sharp thinking.", res.Feedback)
	assert.InDelta(t, 150.0, res.CashChange, 0.001)
}

func TestPlayerDecodesBothFieldGenerations(t *testing.T) {
	old := []byte(`{"player_id":1,"player_name":"Ava","chosen_world":"Fantasy","chosen_industry":"Potion Shop","total_cash":500}`)
	cur := []byte(`{"player_id":2,"player_name":"Bo","world":"Modern","industry":"Tech Startup","cash":250}`)

	var p1, p2 Player
	require.NoError(t, json.Unmarshal(old, &p1))
	require.NoError(t, json.Unmarshal(cur, &p2))

	assert.Equal(t, "Fantasy", p1.World)
	assert.InDelta(t, 500.0, p1.Cash, 0.001)
	assert.Equal(t, "Tech Startup", p2.Industry)
	assert.InDelta(t, 250.0, p2.Cash, 0.001)
}

func TestChoiceDecodesStringOrObject(t *testing.T) {
	raw := []byte(`{"scenario_id":"mk-1","scenario_text":"Pick.","choices":{"a":"Cut prices","b":{"text":"Hold firm"}}}`)
	var s Scenario
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, "Cut prices", s.Choices["a"].Text)
	assert.Equal(t, "Hold firm", s.Choices["b"].Text)
}
