package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test naming convention: TestFunction_Scenario_ExpectedBehavior
func TestAttackAction_ValidateBasicAttack_Success(t *testing.T) {
	// Arrange
	b := ownedBoard(t)
	action := &AttackAction{PlayerID: 0, From: "b", To: "c", Dice: 1}

	// Act
	err := action.Validate(b)

	// Assert
	assert.NoError(t, err)
}

func TestAttackAction_Validate_ReturnsErrors(t *testing.T) {
	tests := []struct {
		name   string
		action AttackAction
		err    error
	}{
		{"too many dice for troops", AttackAction{PlayerID: 0, From: "b", To: "c", Dice: 2}, ErrInvalidDice},
		{"zero dice", AttackAction{PlayerID: 0, From: "b", To: "c", Dice: 0}, ErrInvalidDice},
		{"own territory", AttackAction{PlayerID: 0, From: "a", To: "b", Dice: 1}, ErrOwnTerritory},
		{"not adjacent", AttackAction{PlayerID: 0, From: "a", To: "c", Dice: 1}, ErrNotAdjacent},
		{"not owned source", AttackAction{PlayerID: 0, From: "c", To: "b", Dice: 1}, ErrNotOwned},
		{"distant enemy", AttackAction{PlayerID: 1, From: "d", To: "b", Dice: 1}, ErrNotAdjacent},
		{"unknown", AttackAction{PlayerID: 0, From: "b", To: "zzz", Dice: 1}, ErrUnknownTerritory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ownedBoard(t)
			assert.ErrorIs(t, tt.action.Validate(b), tt.err)
		})
	}
}

func TestAttackAction_ValidateQuickIgnoresDice(t *testing.T) {
	b := ownedBoard(t)
	action := &AttackAction{PlayerID: 0, From: "b", To: "c", Quick: true}

	assert.NoError(t, action.Validate(b))
}

func TestFortifyAction_Validate(t *testing.T) {
	b := ownedBoard(t)

	assert.NoError(t, (&FortifyAction{PlayerID: 0, From: "a", To: "b", Amount: 4}).Validate(b))
	assert.ErrorIs(t, (&FortifyAction{PlayerID: 0, From: "a", To: "b", Amount: 5}).Validate(b), ErrInsufficientTroops)
	assert.ErrorIs(t, (&FortifyAction{PlayerID: 0, From: "b", To: "c", Amount: 1}).Validate(b), ErrNotOwned)
}

func TestCardActions_Validate(t *testing.T) {
	assert.NoError(t, (&PlayCardsAction{Indices: []int{0, 1, 2}}).Validate(nil))
	assert.ErrorIs(t, (&PlayCardsAction{Indices: []int{0, 1}}).Validate(nil), ErrInvalidCardSelection)
	assert.ErrorIs(t, (&PlayCardsAction{Indices: []int{0, 1, 1}}).Validate(nil), ErrInvalidCardSelection)
	assert.ErrorIs(t, (&PlayCardsAction{Indices: []int{0, 1, -1}}).Validate(nil), ErrInvalidCardSelection)
	assert.ErrorIs(t, (&DiscardCardAction{Index: -1}).Validate(nil), ErrInvalidCardSelection)
	assert.ErrorIs(t, (&SurrenderAction{PlayerID: 1, To: 1}).Validate(nil), ErrInvalidPlayer)
}

func TestActionType_String(t *testing.T) {
	assert.Equal(t, "deploy", ActionDeploy.String())
	assert.Equal(t, "play_cards", ActionPlayCards.String())
	assert.Equal(t, "unknown(99)", ActionType(99).String())
}
