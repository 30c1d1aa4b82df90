package cards

import "sort"

// HandKind is a recognised three-card combination, ordered by strength.
type HandKind int

const (
	HandNone HandKind = iota
	HandPair
	HandFlush
	HandStraight
	HandThreeOfAKind
	HandStraightFlush
)

func (k HandKind) String() string {
	switch k {
	case HandPair:
		return "Pair"
	case HandFlush:
		return "Flush"
	case HandStraight:
		return "Straight"
	case HandThreeOfAKind:
		return "Three of a Kind"
	case HandStraightFlush:
		return "Straight Flush"
	default:
		return "None"
	}
}

// Bonuses maps each hand kind to the attack-die bonus it grants.
type Bonuses struct {
	Pair          int `mapstructure:"pair"`
	Flush         int `mapstructure:"flush"`
	Straight      int `mapstructure:"straight"`
	ThreeOfAKind  int `mapstructure:"three_of_a_kind"`
	StraightFlush int `mapstructure:"straight_flush"`
}

// DefaultBonuses are the stock attack bonuses.
func DefaultBonuses() Bonuses {
	return Bonuses{Pair: 1, Flush: 2, Straight: 2, ThreeOfAKind: 3, StraightFlush: 4}
}

// For returns the bonus of a kind; HandNone grants nothing.
func (b Bonuses) For(k HandKind) int {
	switch k {
	case HandPair:
		return b.Pair
	case HandFlush:
		return b.Flush
	case HandStraight:
		return b.Straight
	case HandThreeOfAKind:
		return b.ThreeOfAKind
	case HandStraightFlush:
		return b.StraightFlush
	default:
		return 0
	}
}

// Evaluate classifies exactly three cards. Ace counts low in A-2-3.
func Evaluate(hand []Card) HandKind {
	if len(hand) != 3 {
		return HandNone
	}
	ranks := []int{int(hand[0].Rank), int(hand[1].Rank), int(hand[2].Rank)}
	sort.Ints(ranks)

	flush := hand[0].Suit == hand[1].Suit && hand[1].Suit == hand[2].Suit
	aceLow := ranks[0] == 2 && ranks[1] == 3 && ranks[2] == int(Ace)
	straight := aceLow || (ranks[0]+1 == ranks[1] && ranks[1]+1 == ranks[2])

	switch {
	case straight && flush:
		return HandStraightFlush
	case ranks[0] == ranks[2]:
		return HandThreeOfAKind
	case straight:
		return HandStraight
	case flush:
		return HandFlush
	case ranks[0] == ranks[1] || ranks[1] == ranks[2]:
		return HandPair
	default:
		return HandNone
	}
}

// Combo is a three-card selection from a hand.
type Combo struct {
	Indices [3]int
	Kind    HandKind
	Bonus   int
}

// BestCombination searches every three-card combination of hand and returns
// the one with the highest bonus. Ties go to the stronger kind, then to the
// lexicographically first indices.
func BestCombination(hand []Card, bonuses Bonuses) (Combo, bool) {
	var best Combo
	found := false
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			for k := j + 1; k < len(hand); k++ {
				kind := Evaluate([]Card{hand[i], hand[j], hand[k]})
				if kind == HandNone {
					continue
				}
				c := Combo{Indices: [3]int{i, j, k}, Kind: kind, Bonus: bonuses.For(kind)}
				if !found || c.Bonus > best.Bonus || (c.Bonus == best.Bonus && c.Kind > best.Kind) {
					best = c
					found = true
				}
			}
		}
	}
	return best, found
}
