package game

import (
	"context"

	"github.com/mitchelldurbincs/conquest/internal/game/ai"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

// Advance performs one unit of automated work: one blitz roll, or one
// decision of the computer seat that has to act. When a human has to act
// nothing happens and the result reports Waiting.
func (m *Match) Advance() Result {
	if m.gs.IsOver() {
		return m.finish(false, core.ErrGameOver)
	}
	applied, err := m.step()
	return m.finish(applied, err)
}

// Run drives Advance until a human has to act, the match ends, ctx is
// cancelled or maxSteps steps were taken (maxSteps <= 0 means no limit).
// The result carries every event produced along the way.
func (m *Match) Run(ctx context.Context, maxSteps int) (Result, error) {
	applied := false
	for steps := 0; maxSteps <= 0 || steps < maxSteps; steps++ {
		if err := checkContext(ctx); err != nil {
			m.logger.Warn().Err(err).Int("steps", steps).Msg("Match run cancelled")
			return m.finish(applied, err), err
		}
		if m.gs.IsOver() || m.waitingForHuman() {
			break
		}
		ok, err := m.step()
		applied = applied || ok
		if err != nil {
			return m.finish(applied, err), err
		}
	}
	return m.finish(applied, nil), nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// step is Advance without building a result.
func (m *Match) step() (bool, error) {
	if m.gs.Blitzing {
		m.blitzStep()
		return true, nil
	}

	pid := m.gs.ActingPlayer()
	p := m.gs.Player(pid)
	if p == nil {
		return false, core.ErrWrongPhase
	}
	if !p.IsAI {
		return false, nil
	}

	if err := m.aiStep(p); err != nil {
		m.logger.Error().
			Err(err).
			Int("player_id", pid).
			Str("phase", m.gs.Phase.String()).
			Msg("AI decision rejected")
		m.reject("ai", pid, err)
		// a rejected decision must not stall the match
		if m.gs.Phase == states.PhaseAttack || m.gs.Phase == states.PhaseFortify {
			if endErr := m.apply(&core.EndPhaseAction{PlayerID: pid}); endErr != nil {
				return false, endErr
			}
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (m *Match) aiView(p *Player) ai.View {
	var humans []int
	for _, id := range m.gs.HumanIDs() {
		if m.gs.Players[id].Alive {
			humans = append(humans, id)
		}
	}
	return ai.View{
		Board:       m.gs.Board,
		PlayerID:    p.ID,
		Difficulty:  p.Difficulty,
		AttackBonus: m.attackBonus(p.ID),
		Humans:      humans,
		Rules:       m.rules,
	}
}

// aiStep applies one decision of a computer seat.
func (m *Match) aiStep(p *Player) error {
	switch m.gs.Phase {
	case states.PhaseCardPlayRound:
		return m.apply(m.ai.ChooseCards(p.ID, p.Hand, m.bonuses))

	case states.PhaseReinforce:
		if !m.gs.Turn.SurrenderChecked {
			m.gs.Turn.SurrenderChecked = true
			if to, ok := m.ai.Surrender(m.gs.Board, p.ID, m.gs.AliveIDs()); ok {
				return m.apply(&core.SurrenderAction{PlayerID: p.ID, To: to})
			}
		}
		for _, d := range m.ai.Deploy(m.aiView(p), p.ArmiesToDeploy) {
			if err := m.apply(d); err != nil {
				return err
			}
		}
		return nil

	case states.PhaseAttack:
		turn := &m.gs.Turn
		if !turn.GateRolled {
			turn.GateRolled = true
			turn.WillAttack = m.ai.WillAttack(p.Difficulty)
		}
		if turn.WillAttack && m.legalMoves.CanAttack(m.gs.Board, p) && m.ai.ContinueAttacking(p.Difficulty, turn.Attacks) {
			if a := m.ai.NextAttack(m.aiView(p)); a != nil {
				turn.Attacks++
				return m.apply(a)
			}
		}
		return m.apply(&core.EndPhaseAction{PlayerID: p.ID})

	case states.PhaseFortify:
		if f := m.ai.Fortify(m.aiView(p)); f != nil {
			return m.apply(f)
		}
		return m.apply(&core.EndPhaseAction{PlayerID: p.ID})

	default:
		return core.ErrWrongPhase
	}
}
