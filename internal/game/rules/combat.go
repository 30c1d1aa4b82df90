package rules

import (
	"math"
	"sort"

	"github.com/mitchelldurbincs/conquest/internal/common"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// Dice is the random source of the battle resolver. *rand.Rand satisfies it.
type Dice interface {
	Intn(n int) int
	Float64() float64
}

// MaxAttackDice is the most dice a territory with the given troops may roll.
func MaxAttackDice(troops int) int {
	return common.Clamp(troops-1, 0, 3)
}

// DefenderDice is the number of dice rolled by a defender.
func DefenderDice(troops int) int {
	return common.Clamp(troops, 0, 2)
}

// EntrenchmentBonus returns the defender's top-die bonus for a territory.
func EntrenchmentBonus(t *core.TerritoryState, cfg Config) int {
	if t == nil || t.IsNeutral() {
		return 0
	}
	if t.EntrenchedTurns >= cfg.TurnsToEntrench {
		return cfg.EntrenchmentDefenseBonus
	}
	return 0
}

// RoundResult is the outcome of one dice exchange.
type RoundResult struct {
	AttackerRolls  []int
	DefenderRolls  []int
	AttackerLosses int
	DefenderLosses int
}

// RollRound rolls one exchange. Both sides sort descending, the bonuses are
// added to each side's highest die, then dice are compared pairwise with ties
// going to the defender.
func RollRound(d Dice, attackerDice, defenderDice, attackerBonus, defenderBonus int) RoundResult {
	res := RoundResult{
		AttackerRolls: roll(d, attackerDice),
		DefenderRolls: roll(d, defenderDice),
	}
	if len(res.AttackerRolls) > 0 {
		res.AttackerRolls[0] += attackerBonus
	}
	if len(res.DefenderRolls) > 0 {
		res.DefenderRolls[0] += defenderBonus
	}

	pairs := len(res.AttackerRolls)
	if len(res.DefenderRolls) < pairs {
		pairs = len(res.DefenderRolls)
	}
	for i := 0; i < pairs; i++ {
		if res.AttackerRolls[i] > res.DefenderRolls[i] {
			res.DefenderLosses++
		} else {
			res.AttackerLosses++
		}
	}
	return res
}

func roll(d Dice, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = d.Intn(6) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// ConquestMoveIn is the number of troops that follow a dice-round conquest:
// the dice used, capped so the source keeps one troop, and at least one.
func ConquestMoveIn(diceUsed, sourceTroops int) int {
	move := diceUsed
	if move > sourceTroops-1 {
		move = sourceTroops - 1
	}
	if move < 1 {
		move = 1
	}
	return move
}

// DecisiveResult is the outcome of a single-roll assault.
type DecisiveResult struct {
	AttackerRoll int
	DefenderRoll int
	Success      bool
	AttackerLoss int
	DefenderLoss int
	MoveIn       int
}

// ResolveDecisive settles a whole battle with one scaled roll per side.
// Each side rolls floor(r*troops*10) plus its bonus; the attacker needs a
// strictly higher total. A win wipes the defender and moves in half of the
// attacker's spare troops (at least one). A loss costs half the attackers,
// rounded up.
func ResolveDecisive(d Dice, attackers, defenders, attackerBonus, defenderBonus int) DecisiveResult {
	res := DecisiveResult{
		AttackerRoll: int(math.Floor(d.Float64()*float64(attackers)*10)) + attackerBonus,
		DefenderRoll: int(math.Floor(d.Float64()*float64(defenders)*10)) + defenderBonus,
	}
	if res.AttackerRoll > res.DefenderRoll {
		res.Success = true
		res.DefenderLoss = defenders
		res.MoveIn = max(1, (attackers-1)/2)
		return res
	}
	res.AttackerLoss = min(attackers, common.CeilDiv(attackers, 2))
	return res
}
