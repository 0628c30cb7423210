package scene

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturequest/worldmap"
)

func creationServer(t *testing.T, world, industry string, body *map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/create_player":
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, body))
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"player": map[string]any{
					"player_id":       11,
					"player_name":     (*body)["name"],
					"chosen_world":    world,
					"chosen_industry": industry,
				},
			})
		case "/api/stats":
			json.NewEncoder(w).Encode(map[string]any{
				"energy":    map[string]any{"current_energy": 80},
				"resources": map[string]any{"morale": 60, "brand_equity": 10, "fiscal_quarter": 1},
			})
		default:
			quietHandler(w, r)
		}
	}
}

func TestCreationSubmitBodyAndWorldEntry(t *testing.T) {
	var body map[string]any
	m := newTestManager(t, creationServer(t, "Fantasy", "Potion Shop", &body))

	c := m.mode(StateCreation).(*creationMode)
	c.name = "Ava"
	c.worldIdx = 0  // Fantasy
	c.indIdx = 0    // Potion Shop
	c.careerIdx = 0 // entrepreneur
	c.charIdx = 0
	c.submit(m)

	require.Eventually(t, func() bool {
		m.async.drain()
		return m.State() == StateWorld
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, map[string]any{
		"name":            "Ava",
		"world":           "Fantasy",
		"industry":        "Potion Shop",
		"career_path":     "entrepreneur",
		"character_index": float64(0),
	}, body)

	// Fantasy ventures begin on the hub map.
	assert.Equal(t, worldmap.Hub, m.Engine().Map().ID)
	require.NotNil(t, m.playerData)
	assert.Equal(t, "Ava", m.playerData.Name)
}

func TestCreationIndustrialWorldStartsInIronBasin(t *testing.T) {
	var body map[string]any
	m := newTestManager(t, creationServer(t, "Industrial", "Steelworks", &body))

	c := m.mode(StateCreation).(*creationMode)
	c.name = "Bo"
	c.worldIdx = 1 // Industrial
	c.indIdx = 0
	c.careerIdx = 1
	c.charIdx = 2
	c.submit(m)

	require.Eventually(t, func() bool {
		m.async.drain()
		return m.State() == StateWorld
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, worldmap.IronBasin, m.Engine().Map().ID)
	assert.Equal(t, "manager", body["career_path"])
	assert.Equal(t, float64(2), body["character_index"])
}

func TestCreationRequestTrimsName(t *testing.T) {
	c := &creationMode{name: "  Ava  ", worldIdx: 2, indIdx: 1, careerIdx: 2}
	req := c.request()
	assert.Equal(t, "Ava", req.Name)
	assert.Equal(t, "Modern", req.World)
	assert.Equal(t, "Coffee Chain", req.Industry)
	assert.Equal(t, "specialist", req.CareerPath)
	assert.Empty(t, req.Password)
}

func TestCreationFailureStaysInWizard(t *testing.T) {
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/create_player" {
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "name already taken",
			})
			return
		}
		quietHandler(w, r)
	})

	c := m.mode(StateCreation).(*creationMode)
	c.name = "Ava"
	c.submit(m)

	require.Eventually(t, func() bool {
		m.async.drain()
		return !c.busy
	}, 2*time.Second, 5*time.Millisecond)

	assert.NotEqual(t, StateWorld, m.State())
	assert.NotEmpty(t, c.err)
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 2, wrapIndex(-1, 3))
	assert.Equal(t, 0, wrapIndex(3, 3))
	assert.Equal(t, 1, wrapIndex(4, 3))
}
