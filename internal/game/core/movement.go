package core

// Place adds troops from a reinforcement pool onto an owned territory.
func (b *Board) Place(playerID int, id TerritoryID, amount int) error {
	t := b.Get(id)
	if t == nil {
		return ErrUnknownTerritory
	}
	if t.Owner != playerID {
		return ErrNotOwned
	}
	if amount < 1 {
		return ErrInvalidAmount
	}
	t.Troops += amount
	t.Touch()
	return nil
}

// Transfer moves troops between two adjacent territories owned by the same
// player. The source keeps at least one troop.
func (b *Board) Transfer(playerID int, from, to TerritoryID, amount int) error {
	src, dst := b.Get(from), b.Get(to)
	if src == nil || dst == nil {
		return ErrUnknownTerritory
	}
	if src.Owner != playerID || dst.Owner != playerID {
		return ErrNotOwned
	}
	if from == to || !b.Graph.IsAdjacent(from, to) {
		return ErrNotAdjacent
	}
	if amount < 1 {
		return ErrInvalidAmount
	}
	if src.Troops-amount < 1 {
		return ErrInsufficientTroops
	}
	src.Troops -= amount
	dst.Troops += amount
	src.Touch()
	dst.Touch()
	return nil
}

// Occupy hands an emptied territory to the conqueror and moves troops in from
// the attacking territory. It returns the previous owner.
func (b *Board) Occupy(from, to TerritoryID, moveIn int) (int, error) {
	src, dst := b.Get(from), b.Get(to)
	if src == nil || dst == nil {
		return NeutralID, ErrUnknownTerritory
	}
	if dst.Troops > 0 {
		return NeutralID, ErrInsufficientTroops
	}
	if moveIn < 1 || src.Troops-moveIn < 1 {
		return NeutralID, ErrInvalidAmount
	}
	previous := dst.Owner
	dst.Owner = src.Owner
	dst.Troops = moveIn
	src.Troops -= moveIn
	src.Touch()
	dst.Touch()
	return previous, nil
}

// TransferAll gives every territory of one player to another without battle.
// It returns the territories that changed hands.
func (b *Board) TransferAll(fromPlayer, toPlayer int) []TerritoryID {
	moved := b.OwnedBy(fromPlayer)
	for _, id := range moved {
		t := b.T[id]
		t.Owner = toPlayer
		t.Touch()
	}
	return moved
}
