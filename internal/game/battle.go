package game

import (
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

func (m *Match) selectAttackSource(pid int, territory core.TerritoryID) error {
	if err := m.expect(pid, states.PhaseAttack); err != nil {
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
	m.gs.AttackSource = territory
	m.gs.Attack = nil
	return nil
}

func (m *Match) declareAttack(pid int, target core.TerritoryID, dice int) error {
	if err := m.expect(pid, states.PhaseAttack); err != nil {
		return err
	}
	if m.gs.AttackSource == "" {
		return core.ErrNoAttackContext
	}
	a := &core.AttackAction{PlayerID: pid, From: m.gs.AttackSource, To: target, Dice: dice}
	if err := a.Validate(m.gs.Board); err != nil {
		return err
	}

	m.gs.Attack = &AttackContext{From: a.From, To: a.To, Dice: dice}
	m.publish(events.NewAttackDeclaredEvent(m.id, pid, m.gs.Board.OwnerOf(target), a.From, a.To, dice))
	return nil
}

// liveAttack returns the declared attack if it can still be rolled.
func (m *Match) liveAttack(pid int) (*AttackContext, error) {
	ctx := m.gs.Attack
	if ctx == nil {
		return nil, core.ErrNoAttackContext
	}
	if m.gs.Board.OwnerOf(ctx.To) == pid {
		return nil, core.ErrNoAttackContext
	}
	if m.gs.Board.TroopsOf(ctx.From) <= 1 {
		return nil, core.ErrInsufficientTroops
	}
	return ctx, nil
}

func (m *Match) resolveOneBattleRound(pid int) error {
	if err := m.expect(pid, states.PhaseAttack); err != nil {
		return err
	}
	ctx, err := m.liveAttack(pid)
	if err != nil {
		return err
	}
	dice := min(ctx.Dice, rules.MaxAttackDice(m.gs.Board.TroopsOf(ctx.From)))
	m.rollRound(pid, ctx, dice)
	return nil
}

// rollRound resolves one dice exchange and reports whether the target fell.
func (m *Match) rollRound(pid int, ctx *AttackContext, dice int) bool {
	from, to := ctx.From, ctx.To
	src, dst := m.gs.Board.Get(from), m.gs.Board.Get(to)
	defender := dst.Owner

	attBonus := m.attackBonus(pid)
	defBonus := rules.EntrenchmentBonus(dst, m.rules)
	res := rules.RollRound(m.dice, dice, rules.DefenderDice(dst.Troops), attBonus, defBonus)

	src.Troops -= res.AttackerLosses
	dst.Troops -= res.DefenderLosses
	src.Touch()
	dst.Touch()
	m.recordBattle(pid, defender, res.AttackerLosses, res.DefenderLosses)

	conquered := dst.Troops <= 0
	ev := events.NewBattleResolvedEvent(m.id, pid, defender, from, to)
	ev.AttackerRolls = res.AttackerRolls
	ev.DefenderRolls = res.DefenderRolls
	ev.AttackerBonus = attBonus
	ev.DefenderBonus = defBonus
	ev.AttackerLosses = res.AttackerLosses
	ev.DefenderLosses = res.DefenderLosses
	ev.Conquered = conquered
	m.publish(ev)

	if conquered {
		m.conquer(pid, from, to, rules.ConquestMoveIn(dice, src.Troops))
	}
	return conquered
}

func (m *Match) quickAttack(pid int, target core.TerritoryID) error {
	if err := m.expect(pid, states.PhaseAttack); err != nil {
		return err
	}
	if m.gs.AttackSource == "" {
		return core.ErrNoAttackContext
	}
	a := &core.AttackAction{PlayerID: pid, From: m.gs.AttackSource, To: target, Quick: true}
	if err := a.Validate(m.gs.Board); err != nil {
		return err
	}

	src, dst := m.gs.Board.Get(a.From), m.gs.Board.Get(a.To)
	defender := dst.Owner
	attBonus := m.attackBonus(pid)
	defBonus := m.rules.DecisiveDefenderBonus + rules.EntrenchmentBonus(dst, m.rules)
	res := rules.ResolveDecisive(m.dice, src.Troops, dst.Troops, attBonus, defBonus)

	// the source always keeps one troop
	loss := min(res.AttackerLoss, src.Troops-1)

	src.Touch()
	dst.Touch()
	m.recordBattle(pid, defender, loss, res.DefenderLoss)

	ev := events.NewBattleResolvedEvent(m.id, pid, defender, a.From, a.To)
	ev.AttackerRolls = []int{res.AttackerRoll}
	ev.DefenderRolls = []int{res.DefenderRoll}
	ev.AttackerBonus = attBonus
	ev.DefenderBonus = defBonus
	ev.AttackerLosses = loss
	ev.DefenderLosses = res.DefenderLoss
	ev.Decisive = true
	ev.Conquered = res.Success

	if !res.Success {
		src.Troops -= loss
		m.publish(ev)
		return nil
	}
	dst.Troops = 0
	m.publish(ev)
	m.conquer(pid, a.From, a.To, res.MoveIn)
	return nil
}

// conquer hands an emptied territory to the attacker and settles every
// consequence of the ownership change.
func (m *Match) conquer(pid int, from, to core.TerritoryID, moveIn int) {
	previous, err := m.gs.Board.Occupy(from, to, moveIn)
	if err != nil {
		m.logger.Error().
			Err(err).
			Str("from", string(from)).
			Str("territory_id", string(to)).
			Int("move_in", moveIn).
			Msg("Conquest could not be applied")
		return
	}
	m.recordConquest(pid, previous)
	m.publish(events.NewTerritoryConqueredEvent(m.id, pid, previous, from, to, moveIn))

	for _, p := range m.gs.Players {
		if p.Capital == to {
			m.publish(events.NewCapitalCapturedEvent(m.id, pid, previous, p.ID, to))
		}
	}

	m.gs.Attack = nil
	if m.gs.Board.TroopsOf(from) <= 1 {
		m.gs.AttackSource = ""
	}
	m.turnProcessor.afterOwnershipChange(pid)
}

func (m *Match) startBlitz(pid int) error {
	if err := m.expect(pid, states.PhaseAttack); err != nil {
		return err
	}
	ctx, err := m.liveAttack(pid)
	if err != nil {
		return err
	}
	m.gs.Blitzing = true
	m.gs.BlitzRounds = 0
	m.publish(events.NewBlitzStartedEvent(m.id, pid, ctx.From, ctx.To))
	return nil
}

func (m *Match) stopBlitz(pid int) error {
	if m.gs.IsOver() {
		return core.ErrGameOver
	}
	if !m.gs.Blitzing {
		return core.ErrNoAttackContext
	}
	if pid != m.gs.CurrentPlayer {
		return core.ErrNotYourTurn
	}
	m.endBlitz(events.BlitzCancelled)
	return nil
}

// blitzStep rolls one maximum-dice round of the running blitz.
func (m *Match) blitzStep() {
	pid := m.gs.CurrentPlayer
	ctx, err := m.liveAttack(pid)
	if err != nil {
		m.endBlitz(events.BlitzExhausted)
		return
	}

	dice := rules.MaxAttackDice(m.gs.Board.TroopsOf(ctx.From))
	from, to := ctx.From, ctx.To
	conquered := m.rollRound(pid, ctx, dice)
	m.gs.BlitzRounds++

	switch {
	case conquered:
		m.endBlitzAt(from, to, events.BlitzConquered)
	case m.gs.Board.TroopsOf(from) <= 1:
		m.endBlitzAt(from, to, events.BlitzExhausted)
	}
}

func (m *Match) endBlitz(reason string) {
	var from, to core.TerritoryID
	if m.gs.Attack != nil {
		from, to = m.gs.Attack.From, m.gs.Attack.To
	}
	m.endBlitzAt(from, to, reason)
}

func (m *Match) endBlitzAt(from, to core.TerritoryID, reason string) {
	if !m.gs.Blitzing {
		return
	}
	m.gs.Blitzing = false
	m.publish(events.NewBlitzStoppedEvent(m.id, m.gs.CurrentPlayer, from, to, m.gs.BlitzRounds, reason))
}

func (m *Match) clearAttack() {
	m.gs.AttackSource = ""
	m.gs.Attack = nil
}

// attackBonus is the hand bonus added to the player's highest attack die.
func (m *Match) attackBonus(pid int) int {
	if p := m.gs.Player(pid); p != nil && p.AttackBonus != nil {
		return p.AttackBonus.Value
	}
	return 0
}
