package core

// TerritoryState is the per-match mutable record of a territory.
// A territory with an owner always holds at least one troop.
type TerritoryState struct {
	Owner           int  `json:"owner"`
	Troops          int  `json:"troops"`
	EntrenchedTurns int  `json:"entrenched_turns"`
	Touched         bool `json:"-"` // modified during the current turn
}

// IsNeutral reports whether no player owns the territory.
func (t *TerritoryState) IsNeutral() bool { return t.Owner == NeutralID }

// Touch records a troop change: entrenchment is lost immediately.
func (t *TerritoryState) Touch() {
	t.EntrenchedTurns = 0
	t.Touched = true
}

// Board is the ownership layer of a match laid over an immutable Graph.
type Board struct {
	Graph *Graph
	T     map[TerritoryID]*TerritoryState
}

// NewBoard creates a board with every territory neutral and empty.
func NewBoard(g *Graph) *Board {
	b := &Board{Graph: g, T: make(map[TerritoryID]*TerritoryState, g.Len())}
	for _, id := range g.TerritoryIDs() {
		b.T[id] = &TerritoryState{Owner: NeutralID}
	}
	return b
}

// Get returns the mutable state of a territory, nil when unknown.
func (b *Board) Get(id TerritoryID) *TerritoryState {
	return b.T[id]
}

// OwnerOf returns the owner of a territory or NeutralID.
func (b *Board) OwnerOf(id TerritoryID) int {
	if t, ok := b.T[id]; ok {
		return t.Owner
	}
	return NeutralID
}

// TroopsOf returns the troop count of a territory.
func (b *Board) TroopsOf(id TerritoryID) int {
	if t, ok := b.T[id]; ok {
		return t.Troops
	}
	return 0
}

// OwnedBy returns the territories owned by a player in sorted order.
func (b *Board) OwnedBy(playerID int) []TerritoryID {
	var out []TerritoryID
	for _, id := range b.Graph.order {
		if b.T[id].Owner == playerID {
			out = append(out, id)
		}
	}
	return out
}

// CountOwned returns how many territories a player owns.
func (b *Board) CountOwned(playerID int) int {
	n := 0
	for _, t := range b.T {
		if t.Owner == playerID {
			n++
		}
	}
	return n
}

// TotalTroops returns the sum of troops over a player's territories.
func (b *Board) TotalTroops(playerID int) int {
	n := 0
	for _, t := range b.T {
		if t.Owner == playerID {
			n += t.Troops
		}
	}
	return n
}

// OwnsContinent reports whether a player holds every territory of a continent.
func (b *Board) OwnsContinent(playerID int, cid ContinentID) bool {
	c, ok := b.Graph.continents[cid]
	if !ok || len(c.TerritoryIDs) == 0 {
		return false
	}
	for _, id := range c.TerritoryIDs {
		if b.T[id].Owner != playerID {
			return false
		}
	}
	return true
}

// EnemyNeighbors returns the neighbors of a territory held by someone other than its owner.
func (b *Board) EnemyNeighbors(id TerritoryID) []TerritoryID {
	owner := b.OwnerOf(id)
	var out []TerritoryID
	for _, n := range b.Graph.Neighbors(id) {
		if b.T[n].Owner != owner {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy sharing the immutable graph.
func (b *Board) Clone() *Board {
	out := &Board{Graph: b.Graph, T: make(map[TerritoryID]*TerritoryState, len(b.T))}
	for id, t := range b.T {
		cp := *t
		out.T[id] = &cp
	}
	return out
}
