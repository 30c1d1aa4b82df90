package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

// TurnProcessor handles the turn structure of a match: card rounds, the
// start and end of each player's turn, eliminations and the win check.
type TurnProcessor struct {
	match  *Match
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(m *Match) *TurnProcessor {
	return &TurnProcessor{
		match:  m,
		logger: m.logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// startRound opens the card play round of the next round.
func (tp *TurnProcessor) startRound() {
	m := tp.match
	gs := m.gs
	gs.Round++
	for i := range gs.Players {
		p := &gs.Players[i]
		p.HasPlayedCardsThisRound = false
		p.AttackBonus = nil
		p.PlayedHand = nil
	}

	tp.logger.Debug().Int("round", gs.Round).Msg("Starting round")
	m.publish(events.NewRoundStartedEvent(m.id, gs.Round))
	m.transition(states.PhaseCardPlayRound, fmt.Sprintf("round %d", gs.Round))

	gs.CardTurn = 0
	tp.settleCardTurn()
}

func (tp *TurnProcessor) nextCardTurn() {
	tp.match.gs.CardTurn++
	tp.settleCardTurn()
}

// settleCardTurn moves the card turn to the next player who still has to
// act. Players without territory are passed and lose their hand. Once every
// player has acted the first living player starts its turn.
func (tp *TurnProcessor) settleCardTurn() {
	m := tp.match
	gs := m.gs
	for gs.CardTurn < len(gs.Players) {
		p := &gs.Players[gs.CardTurn]
		if p.HasPlayedCardsThisRound {
			gs.CardTurn++
			continue
		}
		if m.gs.Board.CountOwned(p.ID) == 0 {
			discarded := m.discardHand(p)
			p.HasPlayedCardsThisRound = true
			m.publish(events.NewCardsSkippedEvent(m.id, p.ID, skipReasonEliminated, discarded))
			gs.CardTurn++
			continue
		}
		return
	}

	alive := gs.AliveIDs()
	if len(alive) == 0 {
		tp.logger.Error().Int("round", gs.Round).Msg("Card round finished without living players")
		return
	}
	tp.startTurn(alive[0], "card round complete")
}

// startTurn hands the main turn to a player and grants its reinforcements.
func (tp *TurnProcessor) startTurn(pid int, reason string) {
	m := tp.match
	gs := m.gs
	gs.CurrentPlayer = pid
	gs.Turn = TurnState{}
	gs.FortifySource, gs.FortifyTarget = "", ""
	m.clearAttack()
	for _, t := range gs.Board.T {
		t.Touched = false
	}

	bd := rules.Reinforcements(gs.Board, pid, gs.Capitals(), m.rules)
	gs.Players[pid].ArmiesToDeploy = bd.Total

	m.transition(states.PhaseReinforce, reason)
	m.publish(events.NewTurnStartedEvent(m.id, pid, gs.Round))
	m.publish(events.NewReinforcementsGrantedEvent(m.id, pid, bd.Base, bd.ContinentBonus, bd.CapitalBonus))

	tp.logger.Debug().
		Int("player_id", pid).
		Int("round", gs.Round).
		Int("territories", bd.Territories).
		Int("reinforcements", bd.Total).
		Msg("Turn started")
}

// endTurn entrenches every territory of the player left untouched this turn
// and passes the turn on.
func (tp *TurnProcessor) endTurn(pid int) {
	m := tp.match
	gs := m.gs
	entrenched := 0
	for _, id := range gs.Board.OwnedBy(pid) {
		t := gs.Board.Get(id)
		if !t.Touched {
			t.EntrenchedTurns++
			entrenched++
		}
	}
	gs.FortifySource, gs.FortifyTarget = "", ""
	m.publish(events.NewTurnEndedEvent(m.id, pid, gs.Round, entrenched))

	tp.advanceFrom(pid)
}

// advanceFrom starts the turn of the next living player after pid, or a new
// round when pid was the last one in seat order.
func (tp *TurnProcessor) advanceFrom(pid int) {
	gs := tp.match.gs
	for next := pid + 1; next < len(gs.Players); next++ {
		if gs.Players[next].Alive {
			tp.startTurn(next, fmt.Sprintf("player %d turn", next))
			return
		}
	}
	tp.startRound()
}

// afterOwnershipChange runs after territories changed hands: it eliminates
// players left without territory, extends the fog reveal and checks for a
// winner. by is the player who caused the change.
func (tp *TurnProcessor) afterOwnershipChange(by int) {
	m := tp.match
	for _, pid := range m.updatePlayerStats() {
		tp.eliminate(pid, by)
	}
	m.revealFog()
	tp.checkGameOver()
}

func (tp *TurnProcessor) eliminate(pid, by int) {
	m := tp.match
	p := m.gs.Player(pid)
	if p == nil || !p.Alive {
		return
	}
	p.Alive = false
	p.ArmiesToDeploy = 0
	p.AttackBonus = nil
	discarded := m.discardHand(p)
	rank := len(m.gs.AliveIDs()) + 1

	tp.logger.Info().
		Int("player_id", pid).
		Int("eliminated_by", by).
		Int("rank", rank).
		Int("cards_discarded", discarded).
		Msg("Player eliminated")
	m.publish(events.NewPlayerEliminatedEvent(m.id, pid, by, rank))
}

// checkGameOver ends the match once a single player remains. The winner is
// announced exactly once.
func (tp *TurnProcessor) checkGameOver() {
	m := tp.match
	if m.gs.IsOver() {
		return
	}
	players := make([]rules.Player, len(m.gs.Players))
	for i := range m.gs.Players {
		players[i] = m.gs.Players[i]
	}
	over, winner := m.winCondition.CheckGameOver(m.gs.Board, players)
	if !over || winner < 0 {
		return
	}

	m.gs.Winner = winner
	m.gs.FortifySource, m.gs.FortifyTarget = "", ""
	m.transition(states.PhaseGameOver, fmt.Sprintf("player %d is the last player standing", winner))
	if m.winnerAnnounced {
		return
	}
	m.winnerAnnounced = true

	ctx := m.stateMachine.GetContext()
	m.publish(events.NewPlayerWonEvent(m.id, winner))
	m.publish(events.NewMatchEndedEvent(m.id, winner, m.gs.Round, ctx.GetElapsedTime()))
}
