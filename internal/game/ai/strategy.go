package ai

import (
	"math/rand"
	"sort"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// Strategy is the weighting table of one difficulty. Candidate generation
// and map analysis are shared; only these numbers differ between tiers.
type Strategy struct {
	Difficulty Difficulty

	// Random strategies ignore every weight below.
	Random bool

	// Deployment
	Chokepoint             float64
	ChokepointUnderManned  float64
	ChokepointSafetyRatio  float64
	TargetContinent        float64
	EnemyInTargetContinent float64
	ContinentMinShare      float64
	ContinentBonusWeight   float64
	Border                 float64
	ThreatDeficitFactor    float64
	StackThresholdRatio    float64
	StackThresholdBase     float64
	StackDivisor           float64

	// Attack
	MaxAttacks          int
	Advantage           float64
	StrongAdvantage     float64
	StrongAdvantageAt   float64
	Disadvantage        float64
	BreakBonus          float64
	BreakHumanBonus     float64
	NearBonus           float64
	SameContinent       float64
	Momentum            float64
	MomentumMinTroops   int
	MomentumRatio       int
	WeakTarget          float64
	WeakTargetMinSource int
	VetoMargin          int
	VetoScore           float64
	TopN                int

	// Fortify
	Fortifies             bool
	FortifyThreatFactor   float64
	FortifyInternalBorder float64
}

var (
	easyStrategy = Strategy{
		Difficulty: Easy,
		Random:     true,
		MaxAttacks: 3,
	}

	mediumStrategy = Strategy{
		Difficulty:             Medium,
		Chokepoint:             200,
		ChokepointUnderManned:  50,
		ChokepointSafetyRatio:  1.3,
		TargetContinent:        40,
		EnemyInTargetContinent: 50,
		ContinentMinShare:      0.4,
		Border:                 15,
		ThreatDeficitFactor:    1,
		StackThresholdRatio:    1.5,
		StackThresholdBase:     3,
		StackDivisor:           1.5,

		MaxAttacks:          5,
		Advantage:           15,
		StrongAdvantage:     30,
		StrongAdvantageAt:   1.3,
		Disadvantage:        -100,
		BreakBonus:          100,
		NearBonus:           40,
		SameContinent:       30,
		WeakTarget:          10,
		WeakTargetMinSource: 3,
		VetoMargin:          0,
		VetoScore:           -500,
		TopN:                3,

		Fortifies:             true,
		FortifyThreatFactor:   5,
		FortifyInternalBorder: 30,
	}

	hardStrategy = Strategy{
		Difficulty:             Hard,
		Chokepoint:             500,
		ChokepointUnderManned:  200,
		ChokepointSafetyRatio:  1.5,
		TargetContinent:        100,
		EnemyInTargetContinent: 150,
		ContinentMinShare:      0,
		ContinentBonusWeight:   0.1,
		Border:                 20,
		ThreatDeficitFactor:    2,
		StackThresholdRatio:    2,
		StackThresholdBase:     5,
		StackDivisor:           2,

		MaxAttacks:          10,
		Advantage:           20,
		StrongAdvantage:     40,
		StrongAdvantageAt:   1.5,
		Disadvantage:        -200,
		BreakBonus:          300,
		BreakHumanBonus:     200,
		NearBonus:           100,
		SameContinent:       50,
		Momentum:            60,
		MomentumMinTroops:   9,
		MomentumRatio:       2,
		WeakTarget:          15,
		WeakTargetMinSource: 2,
		VetoMargin:          1,
		VetoScore:           -1000,
		TopN:                1,

		Fortifies:             true,
		FortifyThreatFactor:   10,
		FortifyInternalBorder: 50,
	}
)

// StrategyFor returns the weighting table of a difficulty.
func StrategyFor(d Difficulty) Strategy {
	switch d {
	case Easy:
		return easyStrategy
	case Hard:
		return hardStrategy
	default:
		return mediumStrategy
	}
}

// targetContinent picks the unfinished continent to push into: the highest
// share plus weighted bonus among continents held above the minimum share.
func (s Strategy) targetContinent(a *Analysis) (core.ContinentID, bool) {
	var best core.ContinentID
	bestScore := -1.0
	for _, c := range a.Continents {
		if c.Complete {
			continue
		}
		share := c.Share()
		if share <= s.ContinentMinShare {
			continue
		}
		score := share + float64(c.Bonus)*s.ContinentBonusWeight
		if score > bestScore {
			bestScore = score
			best = c.ID
		}
	}
	return best, bestScore >= 0
}

// deployScore is the static priority of reinforcing one owned territory.
func (s Strategy) deployScore(b *core.Board, a *Analysis, id core.TerritoryID, target core.ContinentID, hasTarget bool) float64 {
	score := 0.0
	threat := a.Threat[id]
	troops := b.TroopsOf(id)

	if a.Chokepoints[id] {
		score += s.Chokepoint
		if float64(troops) < float64(threat)*s.ChokepointSafetyRatio {
			score += s.ChokepointUnderManned
		}
	}

	if hasTarget && b.Graph.ContinentOf(id) == target {
		score += s.TargetContinent
		for _, n := range b.Graph.Neighbors(id) {
			if b.OwnerOf(n) != a.PlayerID && b.Graph.ContinentOf(n) == target {
				score += s.EnemyInTargetContinent
				break
			}
		}
	}

	if a.IsBorder(id) {
		score += s.Border
		if threat > troops {
			score += float64(threat-troops) * s.ThreatDeficitFactor
		}
	}
	return score
}

// diminish lowers a score once a stack comfortably exceeds its local threat.
func (s Strategy) diminish(score float64, current, threat int) float64 {
	if threat > 0 && float64(current) > float64(threat)*s.StackThresholdRatio+s.StackThresholdBase {
		return score / s.StackDivisor
	}
	return score
}

// AttackCandidate is one scored source/target pair.
type AttackCandidate struct {
	From  core.TerritoryID
	To    core.TerritoryID
	Score float64
}

// attackInput is everything the scoring of one pair looks at.
type attackInput struct {
	source, target         int // effective strength, bonuses included
	targetTroops           int
	breaksBonus, nearBonus bool
	targetIsHuman          bool
	sameContinent          bool
}

func (s Strategy) attackScore(in attackInput, rng *rand.Rand) float64 {
	if s.Random {
		return rng.Float64() * 10
	}

	score := 0.0
	if in.source > in.target {
		score += s.Advantage
	}
	if float64(in.source) >= float64(in.target)*s.StrongAdvantageAt {
		score += s.StrongAdvantage
	}
	if in.source < in.target {
		score += s.Disadvantage
	}

	if in.breaksBonus {
		score += s.BreakBonus
		if in.targetIsHuman {
			score += s.BreakHumanBonus
		}
	} else if in.nearBonus {
		score += s.NearBonus
	}

	if in.sameContinent {
		score += s.SameContinent
	}
	if s.Momentum != 0 && in.source >= s.MomentumMinTroops && in.source > in.target*s.MomentumRatio {
		score += s.Momentum
	}
	if in.targetTroops == 1 && in.source >= s.WeakTargetMinSource {
		score += s.WeakTarget
	}

	if in.source <= in.target+s.VetoMargin && !in.breaksBonus {
		score = s.VetoScore
	}
	return score
}

// pick chooses among positive candidates: uniformly for random strategies,
// otherwise uniformly among the TopN best.
func (s Strategy) pick(candidates []AttackCandidate, rng *rand.Rand) AttackCandidate {
	if s.Random {
		return candidates[rng.Intn(len(candidates))]
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
	n := min(len(candidates), max(1, s.TopN))
	if n == 1 {
		return candidates[0]
	}
	return candidates[rng.Intn(n)]
}

// fortifyScore rates moving troops from one owned territory to an adjacent one.
func (s Strategy) fortifyScore(a *Analysis, from, to core.TerritoryID) float64 {
	score := 0.0
	if diff := a.Threat[to] - a.Threat[from]; diff > 0 {
		score += float64(diff) * s.FortifyThreatFactor
	}
	if a.IsInternal(from) && a.IsBorder(to) {
		score += s.FortifyInternalBorder
	}
	return score
}
