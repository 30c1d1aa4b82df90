package core

import (
	"fmt"
	"sort"
)

// TerritoryID identifies a territory on a map, e.g. "alaska".
type TerritoryID string

// ContinentID identifies a continent, e.g. "north-america".
type ContinentID string

// NeutralID marks a territory that no player owns.
const NeutralID = -1

// Territory is the static description of one map region.
type Territory struct {
	ID          TerritoryID   `json:"id"`
	Name        string        `json:"name"`
	ContinentID ContinentID   `json:"continent"`
	Neighbors   []TerritoryID `json:"adj"`
}

// Continent groups territories and grants a bonus to a player holding all of them.
type Continent struct {
	ID           ContinentID   `json:"id"`
	Name         string        `json:"name"`
	Bonus        int           `json:"bonus"`
	TerritoryIDs []TerritoryID `json:"-"`
}

// Graph is the immutable territory adjacency graph of a map.
// It is safe for concurrent reads once built.
type Graph struct {
	territories    map[TerritoryID]*Territory
	adjacency      map[TerritoryID]map[TerritoryID]struct{}
	continents     map[ContinentID]*Continent
	order          []TerritoryID
	continentOrder []ContinentID
}

// NewGraph builds a graph and validates it. Continent membership is derived
// from each territory's ContinentID.
func NewGraph(territories []Territory, continents []Continent) (*Graph, error) {
	g := &Graph{
		territories: make(map[TerritoryID]*Territory, len(territories)),
		adjacency:   make(map[TerritoryID]map[TerritoryID]struct{}, len(territories)),
		continents:  make(map[ContinentID]*Continent, len(continents)),
	}

	for _, c := range continents {
		if _, dup := g.continents[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate continent %q", ErrInvalidMap, c.ID)
		}
		cont := c
		cont.TerritoryIDs = nil
		g.continents[c.ID] = &cont
		g.continentOrder = append(g.continentOrder, c.ID)
	}

	for _, t := range territories {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: territory with empty id", ErrInvalidMap)
		}
		if _, dup := g.territories[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate territory %q", ErrInvalidMap, t.ID)
		}
		cont, ok := g.continents[t.ContinentID]
		if !ok {
			return nil, fmt.Errorf("%w: territory %q references unknown continent %q", ErrInvalidMap, t.ID, t.ContinentID)
		}
		terr := t
		terr.Neighbors = append([]TerritoryID(nil), t.Neighbors...)
		sortIDs(terr.Neighbors)
		g.territories[t.ID] = &terr
		g.order = append(g.order, t.ID)
		cont.TerritoryIDs = append(cont.TerritoryIDs, t.ID)

		adj := make(map[TerritoryID]struct{}, len(t.Neighbors))
		for _, n := range t.Neighbors {
			adj[n] = struct{}{}
		}
		g.adjacency[t.ID] = adj
	}

	sortIDs(g.order)
	sort.Slice(g.continentOrder, func(i, j int) bool { return g.continentOrder[i] < g.continentOrder[j] })
	for _, c := range g.continents {
		sortIDs(c.TerritoryIDs)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the structural invariants: known, symmetric, loop-free
// adjacency, non-empty continents and a connected graph.
func (g *Graph) Validate() error {
	if len(g.territories) == 0 {
		return fmt.Errorf("%w: map has no territories", ErrInvalidMap)
	}
	for _, id := range g.order {
		for n := range g.adjacency[id] {
			if n == id {
				return fmt.Errorf("%w: territory %q is adjacent to itself", ErrInvalidMap, id)
			}
			back, ok := g.adjacency[n]
			if !ok {
				return fmt.Errorf("%w: territory %q lists unknown neighbor %q", ErrInvalidMap, id, n)
			}
			if _, ok := back[id]; !ok {
				return fmt.Errorf("%w: adjacency %q -> %q is not symmetric", ErrInvalidMap, id, n)
			}
		}
	}
	for _, cid := range g.continentOrder {
		if len(g.continents[cid].TerritoryIDs) == 0 {
			return fmt.Errorf("%w: continent %q has no territories", ErrInvalidMap, cid)
		}
	}

	// Every territory must be reachable from the first one.
	seen := map[TerritoryID]bool{g.order[0]: true}
	queue := []TerritoryID{g.order[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.territories[cur].Neighbors {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(seen) != len(g.territories) {
		return fmt.Errorf("%w: graph is disconnected (%d of %d territories reachable)", ErrInvalidMap, len(seen), len(g.territories))
	}
	return nil
}

// Len returns the number of territories.
func (g *Graph) Len() int { return len(g.order) }

// Has reports whether the territory exists on this map.
func (g *Graph) Has(id TerritoryID) bool {
	_, ok := g.territories[id]
	return ok
}

// Territory returns a copy of the static territory record.
func (g *Graph) Territory(id TerritoryID) (Territory, bool) {
	t, ok := g.territories[id]
	if !ok {
		return Territory{}, false
	}
	out := *t
	out.Neighbors = append([]TerritoryID(nil), t.Neighbors...)
	return out, true
}

// TerritoryIDs returns all territory ids in sorted order.
func (g *Graph) TerritoryIDs() []TerritoryID {
	return append([]TerritoryID(nil), g.order...)
}

// Neighbors returns the sorted neighbors of a territory. The slice must not be modified.
func (g *Graph) Neighbors(id TerritoryID) []TerritoryID {
	t, ok := g.territories[id]
	if !ok {
		return nil
	}
	return t.Neighbors
}

// IsAdjacent reports whether two territories share a border.
func (g *Graph) IsAdjacent(a, b TerritoryID) bool {
	adj, ok := g.adjacency[a]
	if !ok {
		return false
	}
	_, ok = adj[b]
	return ok
}

// ContinentOf returns the continent a territory belongs to.
func (g *Graph) ContinentOf(id TerritoryID) ContinentID {
	t, ok := g.territories[id]
	if !ok {
		return ""
	}
	return t.ContinentID
}

// Continent returns a copy of a continent record.
func (g *Graph) Continent(id ContinentID) (Continent, bool) {
	c, ok := g.continents[id]
	if !ok {
		return Continent{}, false
	}
	out := *c
	out.TerritoryIDs = append([]TerritoryID(nil), c.TerritoryIDs...)
	return out, true
}

// Continents returns all continents sorted by id.
func (g *Graph) Continents() []Continent {
	out := make([]Continent, 0, len(g.continentOrder))
	for _, id := range g.continentOrder {
		c, _ := g.Continent(id)
		out = append(out, c)
	}
	return out
}
