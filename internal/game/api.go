package game

import (
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

// Deploy places amount troops from the acting player's pool on an owned
// territory. Emptying the pool opens the attack phase.
func (m *Match) Deploy(territory core.TerritoryID, amount int) Result {
	return m.human("deploy", func(pid int) error {
		return m.deploy(pid, territory, amount)
	})
}

// SelectAttackSource picks the territory the next attack is launched from.
func (m *Match) SelectAttackSource(territory core.TerritoryID) Result {
	return m.human("select_attack_source", func(pid int) error {
		return m.selectAttackSource(pid, territory)
	})
}

// DeclareAttack targets an adjacent enemy territory from the selected source
// with the given number of dice.
func (m *Match) DeclareAttack(target core.TerritoryID, dice int) Result {
	return m.human("declare_attack", func(pid int) error {
		return m.declareAttack(pid, target, dice)
	})
}

// ResolveOneBattleRound rolls one dice exchange of the declared attack.
func (m *Match) ResolveOneBattleRound() Result {
	return m.human("resolve_battle_round", m.resolveOneBattleRound)
}

// QuickAttack settles a whole battle against target with one decisive roll.
func (m *Match) QuickAttack(target core.TerritoryID) Result {
	return m.human("quick_attack", func(pid int) error {
		return m.quickAttack(pid, target)
	})
}

// StartBlitz switches the declared attack to blitz mode. Each following
// Advance rolls one round with maximum dice.
func (m *Match) StartBlitz() Result {
	return m.human("start_blitz", m.startBlitz)
}

// StopBlitz cancels blitz mode before the next roll.
func (m *Match) StopBlitz() Result {
	return m.human("stop_blitz", m.stopBlitz)
}

// SelectFortifySource picks the territory troops leave from.
func (m *Match) SelectFortifySource(territory core.TerritoryID) Result {
	return m.human("select_fortify_source", func(pid int) error {
		return m.selectFortifySource(pid, territory)
	})
}

// SelectFortifyTarget picks the adjacent owned territory troops move to.
func (m *Match) SelectFortifyTarget(territory core.TerritoryID) Result {
	return m.human("select_fortify_target", func(pid int) error {
		return m.selectFortifyTarget(pid, territory)
	})
}

// ConfirmFortify moves amount troops between the selected territories and
// ends the turn.
func (m *Match) ConfirmFortify(amount int) Result {
	return m.human("confirm_fortify", func(pid int) error {
		return m.confirmFortify(pid, amount)
	})
}

// EndPhase closes the attack phase, or ends the turn from the fortify phase.
func (m *Match) EndPhase() Result {
	return m.human("end_phase", m.endPhase)
}

// PlayCards turns in three cards of the acting player's hand.
func (m *Match) PlayCards(indices []int) Result {
	return m.human("play_cards", func(pid int) error {
		return m.playCards(pid, indices)
	})
}

// DiscardCard exchanges one card of the acting player's hand.
func (m *Match) DiscardCard(index int) Result {
	return m.human("discard_card", func(pid int) error {
		return m.discardCard(pid, index)
	})
}

// SkipCardPhase passes the acting player's card sub-turn.
func (m *Match) SkipCardPhase() Result {
	return m.human("skip_cards", m.skipCards)
}

func (m *Match) deploy(pid int, territory core.TerritoryID, amount int) error {
	if err := m.expect(pid, states.PhaseReinforce); err != nil {
		return err
	}
	p := m.gs.Player(pid)
	if amount < 1 || amount > p.ArmiesToDeploy {
		return core.ErrInvalidAmount
	}
	if err := m.gs.Board.Place(pid, territory, amount); err != nil {
		return err
	}

	p.ArmiesToDeploy -= amount
	p.Stats.TroopsDeployed += amount
	m.publish(events.NewTroopsDeployedEvent(m.id, pid, territory, amount, p.ArmiesToDeploy))

	if p.ArmiesToDeploy == 0 {
		m.transition(states.PhaseAttack, "reinforcements placed")
	}
	return nil
}

func (m *Match) selectFortifySource(pid int, territory core.TerritoryID) error {
	if err := m.expect(pid, states.PhaseFortify); err != nil {
		return err
	}
	t := m.gs.Board.Get(territory)
	if t == nil {
		return core.ErrUnknownTerritory
	}
	if t.Owner != pid {
		return core.ErrNotOwned
	}
	if t.Troops <= 1 {
		return core.ErrInsufficientTroops
	}
	m.gs.FortifySource = territory
	m.gs.FortifyTarget = ""
	return nil
}

func (m *Match) selectFortifyTarget(pid int, territory core.TerritoryID) error {
	if err := m.expect(pid, states.PhaseFortify); err != nil {
		return err
	}
	if m.gs.FortifySource == "" {
		return core.ErrNoFortifySelection
	}
	t := m.gs.Board.Get(territory)
	if t == nil {
		return core.ErrUnknownTerritory
	}
	if t.Owner != pid {
		return core.ErrNotOwned
	}
	if territory == m.gs.FortifySource || !m.gs.Board.Graph.IsAdjacent(m.gs.FortifySource, territory) {
		return core.ErrNotAdjacent
	}
	m.gs.FortifyTarget = territory
	return nil
}

func (m *Match) confirmFortify(pid, amount int) error {
	if err := m.expect(pid, states.PhaseFortify); err != nil {
		return err
	}
	from, to := m.gs.FortifySource, m.gs.FortifyTarget
	if from == "" || to == "" {
		return core.ErrNoFortifySelection
	}
	if err := m.gs.Board.Transfer(pid, from, to, amount); err != nil {
		return err
	}
	m.publish(events.NewFortifiedEvent(m.id, pid, from, to, amount))
	m.turnProcessor.endTurn(pid)
	return nil
}

func (m *Match) endPhase(pid int) error {
	switch m.gs.Phase {
	case states.PhaseReinforce:
		if err := m.expect(pid, states.PhaseReinforce); err != nil {
			return err
		}
		return core.ErrUndeployedTroops
	case states.PhaseAttack:
		if err := m.expect(pid, states.PhaseAttack); err != nil {
			return err
		}
		m.clearAttack()
		m.transition(states.PhaseFortify, "attack phase ended")
		return nil
	case states.PhaseFortify:
		if err := m.expect(pid, states.PhaseFortify); err != nil {
			return err
		}
		m.turnProcessor.endTurn(pid)
		return nil
	case states.PhaseGameOver:
		return core.ErrGameOver
	default:
		return core.ErrWrongPhase
	}
}

// surrender hands every territory of pid to another living player during
// the reinforce phase and passes the turn on.
func (m *Match) surrender(pid, to int) error {
	if err := m.expect(pid, states.PhaseReinforce); err != nil {
		return err
	}
	receiver := m.gs.Player(to)
	if receiver == nil || !receiver.Alive || to == pid {
		return core.ErrInvalidPlayer
	}

	moved := m.gs.Board.TransferAll(pid, to)
	m.gs.Player(pid).ArmiesToDeploy = 0
	m.publish(events.NewPlayerSurrenderedEvent(m.id, pid, to, len(moved)))
	m.logger.Info().
		Int("player_id", pid).
		Int("to_player_id", to).
		Int("territories", len(moved)).
		Msg("Player surrendered")

	m.turnProcessor.afterOwnershipChange(to)
	if !m.gs.IsOver() {
		m.turnProcessor.advanceFrom(pid)
	}
	return nil
}
