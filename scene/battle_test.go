package scene

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"venturequest/backend"
)

func newTestManager(t *testing.T, handler http.HandlerFunc) *Manager {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := backend.New(srv.URL, zap.NewNop())
	return New(zap.NewNop(), client, 640, 480, false)
}

func quietHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]any{})
}

func TestBattleWinEmptiesEnemyBar(t *testing.T) {
	b := &battleMode{}
	b.Enter(nil)
	require.Equal(t, battleMaxHP, b.enemyHP)

	b.applyResult(&backend.ChooseResult{Success: true, Feedback: "Well played."})

	assert.Equal(t, 0, b.enemyHP)
	assert.Equal(t, battleMaxHP, b.playerHP)
	assert.True(t, b.won)
	assert.Equal(t, phaseResult, b.phase)
}

func TestBattleLossCostsFixedChunk(t *testing.T) {
	b := &battleMode{}
	b.Enter(nil)

	b.applyResult(&backend.ChooseResult{Success: false})

	assert.Equal(t, battleMaxHP-battleLossDmg, b.playerHP)
	assert.Equal(t, battleMaxHP, b.enemyHP)
	assert.False(t, b.won)
}

func TestBattleLossesFloorNeverBelowMin(t *testing.T) {
	b := &battleMode{}
	b.Enter(nil)

	for i := 0; i < 6; i++ {
		b.applyResult(&backend.ChooseResult{Success: false})
	}
	assert.Equal(t, battleMinHP, b.playerHP)
}

func TestHPBarEasesTowardTarget(t *testing.T) {
	shown := 100.0
	for i := 0; i < 600; i++ {
		shown = easeHP(shown, 0, frameMs)
	}
	assert.Equal(t, 0.0, shown)

	// Never overshoots.
	v := easeHP(1.0, 0, frameMs)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestStreakCountsWinsAndResetsOnLoss(t *testing.T) {
	m := newTestManager(t, quietHandler)

	m.recordBattleOutcome(true)
	m.recordBattleOutcome(true)
	m.recordBattleOutcome(true)
	assert.Equal(t, 3, m.streak)

	m.recordBattleOutcome(false)
	assert.Equal(t, 0, m.streak)

	m.recordBattleOutcome(true)
	assert.Equal(t, 1, m.streak)
}

func TestStartEncounterPicksFirstUnfinishedScenario(t *testing.T) {
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/scenarios/marketing":
			json.NewEncoder(w).Encode(map[string]any{
				"scenarios": []map[string]any{
					{"scenario_id": "mk-1", "is_completed": true},
					{"scenario_id": "mk-2", "is_completed": false},
					{"scenario_id": "mk-3", "is_completed": false},
				},
			})
		case "/api/play/mk-2":
			json.NewEncoder(w).Encode(map[string]any{
				"scenario": map[string]any{
					"scenario_id":   "mk-2",
					"scenario_text": "A rival undercuts your prices.",
					"choices": map[string]any{
						"b": "Match them",
						"a": "Hold firm",
						"c": map[string]any{"text": "Start a loyalty program"},
					},
				},
			})
		default:
			quietHandler(w, r)
		}
	})

	m.startEncounter("marketing")
	require.Eventually(t, func() bool {
		m.async.drain()
		return m.State() == StateBattle
	}, 2*time.Second, 5*time.Millisecond)

	b := m.mode(StateBattle).(*battleMode)
	assert.Equal(t, "mk-2", b.scenario.ID)
	assert.Equal(t, []string{"a", "b", "c"}, b.keys)
	assert.Equal(t, phaseIntro, b.phase)
	assert.Equal(t, battleMaxHP, b.playerHP)
}

func TestBattleCursorSafeOnEmptyChoiceSet(t *testing.T) {
	b := &battleMode{}
	b.Enter(nil)
	b.keys = nil

	b.moveCursor(1)
	b.moveCursor(-1)
	assert.Zero(t, b.cursor)

	b.keys = []string{"a", "b", "c"}
	b.moveCursor(-1)
	assert.Equal(t, 2, b.cursor)
	b.moveCursor(1)
	assert.Zero(t, b.cursor)
}

func TestStartEncounterRefusesEmptyChoiceSet(t *testing.T) {
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/scenarios/marketing":
			json.NewEncoder(w).Encode(map[string]any{
				"scenarios": []map[string]any{
					{"scenario_id": "mk-9", "is_completed": false},
				},
			})
		case "/api/play/mk-9":
			json.NewEncoder(w).Encode(map[string]any{
				"scenario": map[string]any{
					"scenario_id":   "mk-9",
					"scenario_text": "A puzzle with no answers.",
					"choices":       map[string]any{},
				},
			})
		default:
			quietHandler(w, r)
		}
	})

	before := m.State()
	m.startEncounter("marketing")

	time.Sleep(150 * time.Millisecond)
	m.async.drain()
	assert.Equal(t, before, m.State(), "empty choice set never enters battle")
}

func TestStartEncounterAllClearedStaysInWorld(t *testing.T) {
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/scenarios/finance" {
			json.NewEncoder(w).Encode(map[string]any{
				"scenarios": []map[string]any{
					{"scenario_id": "fin-1", "is_completed": true},
				},
			})
			return
		}
		quietHandler(w, r)
	})

	before := m.State()
	m.startEncounter("finance")

	time.Sleep(150 * time.Millisecond)
	m.async.drain()
	assert.Equal(t, before, m.State())
}
