package events

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/conquest/internal/common"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// Namer resolves display names for log lines.
type Namer interface {
	PlayerName(id int) string
	TerritoryName(id core.TerritoryID) string
}

type rawNamer struct{}

func (rawNamer) PlayerName(id int) string {
	if id == core.NeutralID {
		return "neutral"
	}
	return fmt.Sprintf("player %d", id)
}

func (rawNamer) TerritoryName(id core.TerritoryID) string { return string(id) }

// Describe renders an event as a human-readable log line. A nil Namer falls
// back to ids. Events without a useful description return "".
func Describe(event Event, n Namer) string {
	if n == nil {
		n = rawNamer{}
	}
	p, t := n.PlayerName, n.TerritoryName

	switch e := event.(type) {
	case *MatchStartedEvent:
		return fmt.Sprintf("Match started with %d players.", e.NumPlayers)
	case *MatchEndedEvent:
		if e.Winner < 0 {
			return "The match ended without a winner."
		}
		return fmt.Sprintf("The match is over after %d rounds.", e.Rounds)
	case *RoundStartedEvent:
		return fmt.Sprintf("Round %d: card play.", e.Round)
	case *TurnStartedEvent:
		return fmt.Sprintf("%s's turn.", p(e.Metadata.PlayerID))
	case *ReinforcementsGrantedEvent:
		var extras []string
		if e.ContinentBonus > 0 {
			extras = append(extras, fmt.Sprintf("+%d continents", e.ContinentBonus))
		}
		if e.CapitalBonus > 0 {
			extras = append(extras, fmt.Sprintf("+%d capitals", e.CapitalBonus))
		}
		if len(extras) == 0 {
			return fmt.Sprintf("%s receives %d reinforcements.", p(e.PlayerID), e.Total)
		}
		return fmt.Sprintf("%s receives %d reinforcements (%s).", p(e.PlayerID), e.Total, strings.Join(extras, ", "))
	case *TroopsDeployedEvent:
		return fmt.Sprintf("%s deployed %d to %s.", p(e.PlayerID), e.Amount, t(e.Territory))
	case *CardsPlayedEvent:
		return fmt.Sprintf("%s played a %s for +%d attack.", p(e.PlayerID), e.Hand, e.Bonus)
	case *CardDiscardedEvent:
		return fmt.Sprintf("%s discarded %s.", p(e.PlayerID), e.Card)
	case *CardsSkippedEvent:
		if e.Reason != "" && e.Reason != "skip" {
			return fmt.Sprintf("%s skips card play (%s).", p(e.PlayerID), e.Reason)
		}
		return fmt.Sprintf("%s skips card play.", p(e.PlayerID))
	case *DeckReshuffledEvent:
		return fmt.Sprintf("The discard pile was shuffled into a new deck of %d cards.", e.Cards)
	case *DeckExhaustedEvent:
		return fmt.Sprintf("No cards left to draw for %s.", p(e.PlayerID))
	case *AttackDeclaredEvent:
		return fmt.Sprintf("%s attacks %s from %s.", p(e.PlayerID), t(e.To), t(e.From))
	case *BattleResolvedEvent:
		if e.Decisive {
			if e.Conquered {
				return fmt.Sprintf("%s wins the battle for %s (%d vs %d).", p(e.AttackerID), t(e.To), common.Sum(e.AttackerRolls), common.Sum(e.DefenderRolls))
			}
			return fmt.Sprintf("%s's assault on %s fails and loses %d troops.", p(e.AttackerID), t(e.To), e.AttackerLosses)
		}
		return fmt.Sprintf("%s rolls %v vs %v: attacker loses %d, defender loses %d.",
			p(e.AttackerID), e.AttackerRolls, e.DefenderRolls, e.AttackerLosses, e.DefenderLosses)
	case *TerritoryConqueredEvent:
		return fmt.Sprintf("%s conquered %s from %s and moved in %d troops.", p(e.PlayerID), t(e.Territory), p(e.PreviousOwner), e.MovedIn)
	case *CapitalCapturedEvent:
		return fmt.Sprintf("%s captured the capital of %s at %s!", p(e.PlayerID), p(e.CapitalOf), t(e.Territory))
	case *BlitzStartedEvent:
		return fmt.Sprintf("%s blitzes %s from %s.", p(e.PlayerID), t(e.To), t(e.From))
	case *BlitzStoppedEvent:
		return fmt.Sprintf("Blitz on %s stopped after %d rounds (%s).", t(e.To), e.Rounds, e.Reason)
	case *FortifiedEvent:
		return fmt.Sprintf("%s fortified %s with %d troops from %s.", p(e.PlayerID), t(e.To), e.Amount, t(e.From))
	case *PlayerEliminatedEvent:
		return fmt.Sprintf("%s has been eliminated.", p(e.PlayerID))
	case *PlayerSurrenderedEvent:
		return fmt.Sprintf("%s surrenders %d territories to %s.", p(e.PlayerID), e.Territories, p(e.To))
	case *PlayerWonEvent:
		return fmt.Sprintf("%s wins the game!", p(e.PlayerID))
	case *ActionRejectedEvent:
		return fmt.Sprintf("Ignored %s from %s: %s.", e.Action, p(e.PlayerID), e.Reason)
	default:
		return ""
	}
}

