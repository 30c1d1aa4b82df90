// Package ai decides every move of computer-controlled players: card play,
// deployment, attacks, fortification and surrender. Decisions are returned as
// core actions and never mutate the board.
package ai

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/conquest/internal/common"
	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
)

// Settings are the tunables shared by every AI player of a match.
type Settings struct {
	MaxAttacksPerTurn  int
	EasyContinueChance float64
	AttackGate         map[Difficulty]float64

	SurrenderEnabled        bool
	SurrenderStrongestShare float64
	SurrenderOwnShare       float64
}

// DefaultSettings returns the stock AI tunables.
func DefaultSettings() Settings {
	return Settings{
		MaxAttacksPerTurn:  30,
		EasyContinueChance: 0.8,
		AttackGate: map[Difficulty]float64{
			Easy:   0.5,
			Medium: 0.8,
			Hard:   1.0,
		},
		SurrenderEnabled:        true,
		SurrenderStrongestShare: 0.65,
		SurrenderOwnShare:       0.20,
	}
}

// View is the information one decision may use.
type View struct {
	Board       *core.Board
	PlayerID    int
	Difficulty  Difficulty
	AttackBonus int
	Humans      []int
	Rules       rules.Config
}

func (v View) isHuman(playerID int) bool {
	for _, id := range v.Humans {
		if id == playerID {
			return true
		}
	}
	return false
}

// Engine produces decisions for AI players.
type Engine struct {
	settings Settings
	rng      *rand.Rand
	logger   zerolog.Logger
}

// NewEngine creates an engine drawing all of its randomness from rng.
func NewEngine(settings Settings, rng *rand.Rand, logger zerolog.Logger) *Engine {
	return &Engine{
		settings: settings,
		rng:      rng,
		logger:   logger.With().Str("component", "AIEngine").Logger(),
	}
}

// Settings returns the engine tunables.
func (e *Engine) Settings() Settings { return e.settings }

// ChooseCards plays the best three-card hand if one exists, otherwise
// discards a random card. An empty hand skips.
func (e *Engine) ChooseCards(playerID int, hand []cards.Card, bonuses cards.Bonuses) core.Action {
	if combo, ok := cards.BestCombination(hand, bonuses); ok {
		e.logger.Debug().
			Int("player_id", playerID).
			Str("hand", combo.Kind.String()).
			Int("bonus", combo.Bonus).
			Msg("AI plays cards")
		return &core.PlayCardsAction{PlayerID: playerID, Indices: combo.Indices[:]}
	}
	if len(hand) == 0 {
		return &core.SkipCardsAction{PlayerID: playerID}
	}
	return &core.DiscardCardAction{PlayerID: playerID, Index: e.rng.Intn(len(hand))}
}

// Deploy splits a reinforcement pool over the player's territories. The
// result holds one action per reinforced territory in territory order and
// always sums to pool.
func (e *Engine) Deploy(v View, pool int) []*core.DeployAction {
	a := Analyze(v.Board, v.PlayerID)
	if len(a.Owned) == 0 || pool <= 0 {
		return nil
	}

	placed := make(map[core.TerritoryID]int, len(a.Owned))
	s := StrategyFor(v.Difficulty)

	if s.Random {
		for i := 0; i < pool; i++ {
			placed[a.Owned[e.rng.Intn(len(a.Owned))]]++
		}
	} else {
		target, hasTarget := s.targetContinent(a)
		base := make(map[core.TerritoryID]float64, len(a.Owned))
		for _, id := range a.Owned {
			base[id] = s.deployScore(v.Board, a, id, target, hasTarget)
		}

		for i := 0; i < pool; i++ {
			best := a.Owned[0]
			bestScore := -1.0
			for _, id := range a.Owned {
				current := v.Board.TroopsOf(id) + placed[id]
				score := s.diminish(base[id], current, a.Threat[id])
				if score > bestScore {
					bestScore = score
					best = id
				}
			}
			placed[best]++
		}
	}

	var out []*core.DeployAction
	for _, id := range a.Owned {
		if placed[id] > 0 {
			out = append(out, &core.DeployAction{PlayerID: v.PlayerID, Territory: id, Amount: placed[id]})
		}
	}
	return out
}

// AttackCandidates scores every owned territory with spare troops against
// each adjacent enemy and keeps the positive ones, in enumeration order.
func (e *Engine) AttackCandidates(v View) []AttackCandidate {
	s := StrategyFor(v.Difficulty)
	b := v.Board

	var out []AttackCandidate
	for _, from := range b.OwnedBy(v.PlayerID) {
		src := b.TroopsOf(from)
		if src <= 1 {
			continue
		}
		for _, to := range b.Graph.Neighbors(from) {
			owner := b.OwnerOf(to)
			if owner == v.PlayerID {
				continue
			}
			cid := b.Graph.ContinentOf(to)
			held, total := continentHold(b, cid, owner)
			target := b.Get(to)
			in := attackInput{
				source:        src + v.AttackBonus,
				target:        target.Troops + rules.EntrenchmentBonus(target, v.Rules),
				targetTroops:  target.Troops,
				breaksBonus:   owner != core.NeutralID && held == total,
				nearBonus:     owner != core.NeutralID && held >= total-1,
				targetIsHuman: v.isHuman(owner),
				sameContinent: b.Graph.ContinentOf(from) == cid,
			}
			if score := s.attackScore(in, e.rng); score > 0 {
				out = append(out, AttackCandidate{From: from, To: to, Score: score})
			}
		}
	}
	return out
}

// NextAttack returns the next attack to launch, or nil when the player
// should stop. Attacks are resolved as decisive assaults.
func (e *Engine) NextAttack(v View) *core.AttackAction {
	candidates := e.AttackCandidates(v)
	if len(candidates) == 0 {
		return nil
	}
	c := StrategyFor(v.Difficulty).pick(candidates, e.rng)

	e.logger.Debug().
		Int("player_id", v.PlayerID).
		Str("from", string(c.From)).
		Str("to", string(c.To)).
		Float64("score", c.Score).
		Msg("AI selected attack")

	return &core.AttackAction{PlayerID: v.PlayerID, From: c.From, To: c.To, Quick: true}
}

// WillAttack rolls the per-turn gate deciding whether the player attacks at all.
func (e *Engine) WillAttack(d Difficulty) bool {
	gate, ok := e.settings.AttackGate[d]
	if !ok {
		gate = 1
	}
	return gate >= 1 || e.rng.Float64() < gate
}

// ContinueAttacking reports whether the player launches another attack after
// having made attacks already this turn.
func (e *Engine) ContinueAttacking(d Difficulty, attacks int) bool {
	limit := StrategyFor(d).MaxAttacks
	if e.settings.MaxAttacksPerTurn > 0 {
		limit = min(limit, e.settings.MaxAttacksPerTurn)
	}
	if attacks >= limit {
		return false
	}
	if d == Easy && attacks > 0 {
		return e.rng.Float64() < e.settings.EasyContinueChance
	}
	return true
}

// Fortify returns the single best transfer toward danger, moving every
// troop but one, or nil when the player should not fortify.
func (e *Engine) Fortify(v View) *core.FortifyAction {
	s := StrategyFor(v.Difficulty)
	if !s.Fortifies {
		return nil
	}
	a := Analyze(v.Board, v.PlayerID)

	var best *core.FortifyAction
	bestScore := 0.0
	sources := append(append([]core.TerritoryID(nil), a.Internal...), a.Borders...)
	for _, from := range sources {
		troops := v.Board.TroopsOf(from)
		if troops <= 1 {
			continue
		}
		for _, to := range v.Board.Graph.Neighbors(from) {
			if v.Board.OwnerOf(to) != v.PlayerID {
				continue
			}
			if score := s.fortifyScore(a, from, to); score > bestScore {
				bestScore = score
				best = &core.FortifyAction{PlayerID: v.PlayerID, From: from, To: to, Amount: troops - 1}
			}
		}
	}
	return best
}

// Surrender reports whether the player gives up, and to whom: when the
// strongest other player holds more than the strongest share of the map and
// this player holds less than its own share.
func (e *Engine) Surrender(b *core.Board, playerID int, players []int) (int, bool) {
	if !e.settings.SurrenderEnabled {
		return core.NeutralID, false
	}
	total := b.Graph.Len()
	own := b.CountOwned(playerID)
	if total == 0 || own == 0 {
		return core.NeutralID, false
	}

	strongest, most := core.NeutralID, 0
	for _, id := range players {
		if id == playerID {
			continue
		}
		if n := b.CountOwned(id); n > most {
			strongest, most = id, n
		}
	}
	if strongest == core.NeutralID {
		return core.NeutralID, false
	}

	if common.Ratio(most, total) > e.settings.SurrenderStrongestShare &&
		common.Ratio(own, total) < e.settings.SurrenderOwnShare {
		e.logger.Info().
			Int("player_id", playerID).
			Int("to_player_id", strongest).
			Int("owned", own).
			Int("strongest_owned", most).
			Msg("AI surrenders")
		return strongest, true
	}
	return core.NeutralID, false
}
