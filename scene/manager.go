// Package scene is the top-level state machine sequencing loading, title,
// character creation, world exploration, pause, and battle encounters. It
// owns the single animation-frame loop, routes input to whichever mode is
// active, and mediates every backend call.
package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"venturequest/backend"
	"venturequest/effects"
	"venturequest/hud"
	"venturequest/sprite"
	"venturequest/tile"
	"venturequest/world"
	"venturequest/worldmap"
)

// State identifies the active top-level mode. Exactly one is active.
type State int

const (
	StateLoading State = iota
	StateTitle
	StateCreation
	StateWorld
	StatePause
	StateBattle
)

// frameMs is the nominal tick length; ebiten drives Update at 60 TPS.
const frameMs = 1000.0 / 60.0

// Mode is the closed per-state handler contract. The manager calls
// HandleInput then Update each tick, and Draw each frame.
type Mode interface {
	Enter(m *Manager)
	HandleInput(m *Manager)
	Update(m *Manager, dt float64)
	Draw(m *Manager, dst *ebiten.Image)
}

// Manager implements ebiten.Game and owns all cross-mode state.
type Manager struct {
	log    *zap.Logger
	client *backend.Client

	state State
	modes map[State]Mode

	engine  *world.Engine
	tiles   *tile.Renderer
	sprites *sprite.Renderer
	hud     *hud.HUD
	fx      *effects.System

	// Server-authoritative session state.
	playerData *backend.Player
	stats      *backend.Stats
	allPlayers []backend.Player

	// streak is the only client-local persisted datum: consecutive battle
	// wins, reset with the session.
	streak int

	// appearance is the hero sprite variant chosen at creation. Logins fall
	// back to the default look; the server does not echo the index back.
	appearance int

	async *asyncHub
	pad   *virtualPad

	layout Metrics
	width  int
	height int
	animMs float64
}

// New wires a manager with its renderers, engine, and sub-systems.
func New(log *zap.Logger, client *backend.Client, width, height int, audio bool) *Manager {
	m := &Manager{
		log:     log,
		client:  client,
		width:   width,
		height:  height,
		tiles:   tile.NewRenderer(world.TileSize),
		sprites: sprite.NewRenderer(world.TileSize),
		hud:     hud.New(),
		fx:      effects.NewSystem(log, audio),
		async:   newAsyncHub(),
		state:   StateLoading,
	}
	m.pad = newVirtualPad()
	m.layout = ComputeMetrics(width, height)

	m.engine = world.NewEngine(log, m.tiles, m.sprites, width, height, world.Callbacks{
		OnTransition: m.onTransition,
		OnAction:     m.onWorldAction,
	})

	m.modes = map[State]Mode{
		StateLoading:  &loadingMode{},
		StateTitle:    &titleMode{},
		StateCreation: &creationMode{},
		StateWorld:    &worldMode{},
		StatePause:    &pauseMode{},
		StateBattle:   &battleMode{},
	}
	m.modes[m.state].Enter(m)
	return m
}

// State returns the active top-level state.
func (m *Manager) State() State {
	return m.state
}

// Engine exposes the world engine (world mode and tests).
func (m *Manager) Engine() *world.Engine {
	return m.engine
}

// setState transitions the top-level machine. Entering a state invalidates
// every in-flight request so a stale completion cannot touch the new state.
func (m *Manager) setState(s State) {
	if s == m.state {
		return
	}
	m.log.Info("scene transition",
		zap.Int("from", int(m.state)),
		zap.Int("to", int(s)))
	m.async.invalidateAll()
	m.state = s
	m.layout = ComputeMetrics(m.width, m.height)
	m.modes[s].Enter(m)
}

// mode returns the handler for s (battle/creation modes keep per-encounter
// state, so other modes reach them through this).
func (m *Manager) mode(s State) Mode {
	return m.modes[s]
}

// Update is the single cooperative tick: drain finished async work, route
// input, advance the active mode, then the fire-and-forget effects.
func (m *Manager) Update() error {
	m.animMs += frameMs
	m.async.drain()
	m.pad.poll(m.layout)

	active := m.modes[m.state]
	active.HandleInput(m)
	active.Update(m, frameMs)

	m.hud.Update(frameMs)
	m.fx.Update(frameMs)
	return nil
}

// Draw renders the active mode, then the effect layer on top.
func (m *Manager) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{14, 14, 20, 255})
	m.modes[m.state].Draw(m, screen)
	m.fx.Draw(screen)
	m.pad.draw(screen, m.state == StateWorld)
}

// Layout reports the logical screen size; a resize recomputes the metrics.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.width || outsideHeight != m.height {
		m.width, m.height = outsideWidth, outsideHeight
		m.layout = ComputeMetrics(m.width, m.height)
		m.engine.SetViewport(m.width, m.height)
	}
	return m.width, m.height
}

// enterWorld starts exploration on the given map, placing the hero.
func (m *Manager) enterWorld(id worldmap.ID) {
	if m.playerData == nil {
		return
	}
	m.engine.SetPlayerAppearance(sprite.Hero, m.appearance)
	m.engine.LoadMap(id, nil)
	m.hud.SetPlayer(m.playerData)
	m.hud.SetMapName(m.engine.Map().Name)
	m.setState(StateWorld)
	m.refreshStats()
}

func (m *Manager) onTransition(to worldmap.ID, spawn worldmap.Coord) {
	m.engine.LoadMap(to, &spawn)
	m.hud.SetMapName(m.engine.Map().Name)
	m.fx.PlayTransition()
}

// onWorldAction handles high-level events raised by the world engine. The
// only routed tag today is "scenario", which opens a battle encounter.
func (m *Manager) onWorldAction(ref worldmap.ActionRef) {
	if ref.Tag != "scenario" {
		m.log.Warn("unhandled world action", zap.String("tag", ref.Tag))
		return
	}
	m.startEncounter(ref.Route)
}

// refreshStats re-fetches the HUD resource counters.
func (m *Manager) refreshStats() {
	token := m.async.begin(slotStats)
	go func() {
		stats, err := m.client.Stats(m.async.ctx)
		m.async.post(slotStats, token, func() {
			if err != nil {
				m.log.Warn("stats refresh failed", zap.Error(err))
				return
			}
			m.stats = stats
			m.hud.SetStats(stats)
		})
	}()
}

// recordBattleOutcome updates the session streak and its banner.
func (m *Manager) recordBattleOutcome(won bool) {
	if won {
		m.streak++
		m.hud.ShowStreak(m.streak)
		m.fx.PlayWin()
		m.fx.Confetti(float64(m.width)/2, float64(m.height)/3)
	} else {
		m.streak = 0
		m.fx.PlayLose()
	}
}
