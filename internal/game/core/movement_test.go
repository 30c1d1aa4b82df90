package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownedBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(lineGraph(t))
	b.T["a"].Owner, b.T["a"].Troops = 0, 5
	b.T["b"].Owner, b.T["b"].Troops = 0, 2
	b.T["c"].Owner, b.T["c"].Troops = 1, 3
	b.T["d"].Owner, b.T["d"].Troops = 1, 1
	for _, ts := range b.T {
		ts.EntrenchedTurns = 2
	}
	return b
}

func TestBoard_Place(t *testing.T) {
	b := ownedBoard(t)

	require.NoError(t, b.Place(0, "a", 3))
	assert.Equal(t, 8, b.T["a"].Troops)
	assert.Equal(t, 0, b.T["a"].EntrenchedTurns)
	assert.True(t, b.T["a"].Touched)

	assert.ErrorIs(t, b.Place(0, "c", 1), ErrNotOwned)
	assert.ErrorIs(t, b.Place(0, "a", 0), ErrInvalidAmount)
	assert.ErrorIs(t, b.Place(0, "zzz", 1), ErrUnknownTerritory)
}

func TestBoard_Transfer(t *testing.T) {
	tests := []struct {
		name     string
		from, to TerritoryID
		amount   int
		err      error
	}{
		{"valid move", "a", "b", 4, nil},
		{"source must keep one", "a", "b", 5, ErrInsufficientTroops},
		{"zero amount", "a", "b", 0, ErrInvalidAmount},
		{"distant enemy", "a", "c", 1, ErrNotOwned},
		{"enemy target", "b", "c", 1, ErrNotOwned},
		{"same territory", "a", "a", 1, ErrNotAdjacent},
		{"unknown", "a", "zzz", 1, ErrUnknownTerritory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ownedBoard(t)
			err := b.Transfer(0, tt.from, tt.to, tt.amount)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Equal(t, 5, b.T["a"].Troops)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, b.T["a"].Troops)
			assert.Equal(t, 6, b.T["b"].Troops)
			assert.Equal(t, 0, b.T["a"].EntrenchedTurns)
			assert.Equal(t, 0, b.T["b"].EntrenchedTurns)
		})
	}
}

func TestBoard_Occupy(t *testing.T) {
	b := ownedBoard(t)
	b.T["c"].Troops = 0

	prev, err := b.Occupy("b", "c", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 0, b.T["c"].Owner)
	assert.Equal(t, 1, b.T["c"].Troops)
	assert.Equal(t, 1, b.T["b"].Troops)
	assert.Equal(t, 0, b.T["b"].EntrenchedTurns)

	t.Run("defended territory cannot be occupied", func(t *testing.T) {
		b := ownedBoard(t)
		_, err := b.Occupy("b", "c", 1)
		assert.ErrorIs(t, err, ErrInsufficientTroops)
	})

	t.Run("source must keep one troop", func(t *testing.T) {
		b := ownedBoard(t)
		b.T["c"].Troops = 0
		_, err := b.Occupy("b", "c", 2)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestBoard_TransferAll(t *testing.T) {
	b := ownedBoard(t)

	moved := b.TransferAll(1, 0)

	assert.Equal(t, []TerritoryID{"c", "d"}, moved)
	assert.Equal(t, 4, b.CountOwned(0))
	assert.Equal(t, 0, b.CountOwned(1))
	assert.Equal(t, 3, b.T["c"].Troops)
}
