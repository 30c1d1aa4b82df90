// Package game hosts a match: the authoritative game state, the action API
// callers drive it with and the step function that plays computer seats.
package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/conquest/internal/config"
	"github.com/mitchelldurbincs/conquest/internal/game/ai"
	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/conquest/internal/game/processor"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

// PlayerConfig describes one seat of a new match.
type PlayerConfig struct {
	Name       string
	Color      string // defaults to the seat colour
	IsAI       bool
	Difficulty ai.Difficulty
}

// GameConfig holds everything needed to set up a match.
type GameConfig struct {
	MatchID string
	Players []PlayerConfig

	// MapID selects an embedded map; Graph, when set, is used instead.
	MapID string
	Graph *core.Graph

	Seed   int64
	Rng    *rand.Rand // defaults to a generator seeded with Seed, or the clock when Seed is 0
	Dice   rules.Dice // defaults to Rng
	Logger zerolog.Logger
	Config *config.Config // defaults to config.Defaults()
}

// Result is what every API call returns: a snapshot after the call and the
// events it produced. Rejected actions leave the state unchanged and carry
// the reason in Err.
type Result struct {
	State   *GameState
	Events  []events.Event
	Log     []string
	Applied bool
	Waiting bool // the acting player is human and must act
	Err     error
}

// Match is one game session. It is not safe for concurrent use; callers
// serialise access, as the match manager does.
type Match struct {
	id     string
	seed   int64
	gs     *GameState
	rng    *rand.Rand
	dice   rules.Dice
	logger zerolog.Logger

	rules   rules.Config
	bonuses cards.Bonuses
	fog     bool

	eventBus        *events.EventBus
	recorder        *subscribers.Recorder
	stateMachine    *states.StateMachine
	winCondition    *rules.WinConditionChecker
	legalMoves      *rules.LegalMoveCalculator
	ai              *ai.Engine
	actionProcessor *processor.ActionProcessor
	turnProcessor   *TurnProcessor

	winnerAnnounced bool
}

var _ events.Namer = (*Match)(nil)

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// Seed returns the seed the match was created with, 0 when clock-seeded.
func (m *Match) Seed() int64 { return m.seed }

// Phase returns the current phase.
func (m *Match) Phase() states.TurnPhase { return m.gs.Phase }

// IsOver reports whether the match has a winner.
func (m *Match) IsOver() bool { return m.gs.IsOver() }

// Winner returns the winning player ID, -1 while the match runs.
func (m *Match) Winner() int { return m.gs.Winner }

// EventBus exposes the bus for additional subscribers such as loggers.
func (m *Match) EventBus() *events.EventBus { return m.eventBus }

// History returns the phase transitions of the match.
func (m *Match) History() []states.Transition { return m.stateMachine.GetHistory() }

// Snapshot returns a deep copy of the full state.
func (m *Match) Snapshot() *GameState { return m.gs.Clone() }

// VisibleSnapshot returns the state as a player may see it. With fog of war,
// a human viewer gets HiddenTroops outside the revealed set. Other players'
// hands and the draw order are never shown.
func (m *Match) VisibleSnapshot(viewer int) *GameState {
	out := m.gs.Clone()
	out.Deck = &cards.Deck{Discard: out.Deck.Discard}
	for i := range out.Players {
		if i != viewer {
			out.Players[i].Hand = nil
		}
	}

	p := m.gs.Player(viewer)
	if !m.fog || p == nil || p.IsAI {
		return out
	}
	for id, t := range out.Board.T {
		if !out.Revealed[id] {
			t.Troops = HiddenTroops
			t.EntrenchedTurns = 0
		}
	}
	return out
}

// PlayerName implements events.Namer.
func (m *Match) PlayerName(id int) string {
	if p := m.gs.Player(id); p != nil {
		return p.Name
	}
	return "Neutral"
}

// TerritoryName implements events.Namer.
func (m *Match) TerritoryName(id core.TerritoryID) string {
	if t, ok := m.gs.Board.Graph.Territory(id); ok && t.Name != "" {
		return t.Name
	}
	return string(id)
}

// LegalAttacks lists the attacks the acting player could declare now.
func (m *Match) LegalAttacks() []rules.Move {
	p := m.gs.Player(m.gs.CurrentPlayer)
	if m.gs.Phase != states.PhaseAttack || p == nil {
		return nil
	}
	return m.legalMoves.AttackMoves(m.gs.Board, p)
}

// LegalFortifies lists the transfers the acting player could make now.
func (m *Match) LegalFortifies() []rules.Move {
	p := m.gs.Player(m.gs.CurrentPlayer)
	if m.gs.Phase != states.PhaseFortify || p == nil {
		return nil
	}
	return m.legalMoves.FortifyMoves(m.gs.Board, p)
}

// Apply dispatches an explicit action for the acting player, human or AI.
func (m *Match) Apply(action core.Action) Result {
	playerID, name := core.NeutralID, "nil"
	if action != nil {
		playerID, name = action.GetPlayerID(), action.GetType().String()
	}
	return m.do(name, playerID, func() error {
		return m.apply(action)
	})
}

func (m *Match) apply(action core.Action) error {
	return m.actionProcessor.Process(actionHandler{m}, action)
}

// do runs one API operation. A failing operation must not have mutated
// anything; it is reported with an action.rejected event.
func (m *Match) do(action string, playerID int, op func() error) Result {
	var err error
	if m.gs.IsOver() {
		err = core.ErrGameOver
	} else {
		err = op()
	}
	if err != nil {
		m.reject(action, playerID, err)
		return m.finish(false, err)
	}
	return m.finish(true, nil)
}

func (m *Match) reject(action string, playerID int, err error) {
	m.logger.Debug().
		Err(err).
		Str("action", action).
		Int("player_id", playerID).
		Str("phase", m.gs.Phase.String()).
		Msg("Action rejected")
	m.eventBus.Publish(events.NewActionRejectedEvent(m.id, playerID, action, err))
}

// finish drains the events of the current call into a Result.
func (m *Match) finish(applied bool, err error) Result {
	evs := m.recorder.Drain()
	log := make([]string, 0, len(evs))
	for _, e := range evs {
		log = append(log, events.Describe(e, m))
	}
	return Result{
		State:   m.gs.Clone(),
		Events:  evs,
		Log:     log,
		Applied: applied,
		Waiting: m.waitingForHuman(),
		Err:     err,
	}
}

func (m *Match) waitingForHuman() bool {
	if m.gs.IsOver() || m.gs.Blitzing {
		return false
	}
	p := m.gs.Player(m.gs.ActingPlayer())
	return p != nil && !p.IsAI
}

// humanActor returns the acting player for calls that carry no player ID.
// Computer seats are driven by Advance or Apply, never by these calls.
func (m *Match) humanActor() (int, error) {
	pid := m.gs.ActingPlayer()
	p := m.gs.Player(pid)
	if p == nil {
		return core.NeutralID, core.ErrWrongPhase
	}
	if p.IsAI {
		return pid, core.ErrNotYourTurn
	}
	return pid, nil
}

// human wraps a human-facing call: it resolves the acting player and runs op
// for it.
func (m *Match) human(action string, op func(playerID int) error) Result {
	pid := m.gs.ActingPlayer()
	return m.do(action, pid, func() error {
		pid, err := m.humanActor()
		if err != nil {
			return err
		}
		return op(pid)
	})
}

// expect checks that playerID may act in phase.
func (m *Match) expect(playerID int, phase states.TurnPhase) error {
	if m.gs.IsOver() {
		return core.ErrGameOver
	}
	if !m.gs.Phase.CanReceiveActions() || m.gs.Phase != phase {
		return fmt.Errorf("%w: %s, expected %s", core.ErrWrongPhase, m.gs.Phase, phase)
	}
	if playerID != m.gs.ActingPlayer() {
		return core.ErrNotYourTurn
	}
	if m.gs.Blitzing {
		return core.ErrBlitzInProgress
	}
	return nil
}

func (m *Match) publish(e events.Event) {
	m.eventBus.Publish(e)
}

// transition moves the state machine and mirrors the phase into the state.
func (m *Match) transition(to states.TurnPhase, reason string) {
	ctx := m.stateMachine.GetContext()
	ctx.CurrentPlayer = m.gs.CurrentPlayer
	ctx.Round = m.gs.Round
	ctx.Winner = m.gs.Winner
	if !m.stateMachine.CanTransitionTo(to) {
		m.logger.Error().
			Str("from", m.gs.Phase.String()).
			Str("to", to.String()).
			Str("reason", reason).
			Msg("Illegal phase transition ignored")
		return
	}
	if err := m.stateMachine.TransitionTo(to, reason); err != nil {
		m.logger.Error().
			Err(err).
			Str("from", m.gs.Phase.String()).
			Str("to", to.String()).
			Msg("Phase transition failed")
	}
	m.gs.Phase = m.stateMachine.CurrentPhase()
}

// selection holds the transient attack and fortify choices of the acting
// player.
type selection struct {
	attackSource  core.TerritoryID
	attack        *AttackContext
	fortifySource core.TerritoryID
	fortifyTarget core.TerritoryID
}

func (m *Match) saveSelection() selection {
	return selection{
		attackSource:  m.gs.AttackSource,
		attack:        m.gs.Attack,
		fortifySource: m.gs.FortifySource,
		fortifyTarget: m.gs.FortifyTarget,
	}
}

// restoreSelection undoes the selections of an action rejected part-way.
func (m *Match) restoreSelection(s selection) {
	m.gs.AttackSource = s.attackSource
	m.gs.Attack = s.attack
	m.gs.FortifySource = s.fortifySource
	m.gs.FortifyTarget = s.fortifyTarget
}

// actionHandler adapts a match to processor.Handler.
type actionHandler struct {
	m *Match
}

func (h actionHandler) ActingPlayer() int      { return h.m.gs.ActingPlayer() }
func (h actionHandler) Board() *core.Board      { return h.m.gs.Board }
func (h actionHandler) SkipCards(pid int) error { return h.m.skipCards(pid) }
func (h actionHandler) EndPhase(pid int) error  { return h.m.endPhase(pid) }

func (h actionHandler) Deploy(pid int, territory core.TerritoryID, amount int) error {
	return h.m.deploy(pid, territory, amount)
}

func (h actionHandler) Attack(pid int, a *core.AttackAction) (err error) {
	m := h.m
	if err := m.expect(pid, states.PhaseAttack); err != nil {
		return err
	}
	saved := m.saveSelection()
	defer func() {
		if err != nil {
			m.restoreSelection(saved)
		}
	}()

	if a.Quick {
		if err := m.selectAttackSource(pid, a.From); err != nil {
			return err
		}
		return m.quickAttack(pid, a.To)
	}
	if err := m.selectAttackSource(pid, a.From); err != nil {
		return err
	}
	if err := m.declareAttack(pid, a.To, a.Dice); err != nil {
		return err
	}
	if a.Blitz {
		return m.startBlitz(pid)
	}
	return m.resolveOneBattleRound(pid)
}

func (h actionHandler) Fortify(pid int, from, to core.TerritoryID, amount int) (err error) {
	m := h.m
	if err := m.expect(pid, states.PhaseFortify); err != nil {
		return err
	}
	saved := m.saveSelection()
	defer func() {
		if err != nil {
			m.restoreSelection(saved)
		}
	}()

	if err := m.selectFortifySource(pid, from); err != nil {
		return err
	}
	if err := m.selectFortifyTarget(pid, to); err != nil {
		return err
	}
	return m.confirmFortify(pid, amount)
}

func (h actionHandler) PlayCards(pid int, indices []int) error {
	return h.m.playCards(pid, indices)
}

func (h actionHandler) DiscardCard(pid, index int) error {
	return h.m.discardCard(pid, index)
}

func (h actionHandler) Surrender(pid, to int) error {
	return h.m.surrender(pid, to)
}
