// Package mapgen loads territory maps and prepares the opening position of a match.
package mapgen

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

//go:embed data/*.json
var mapFiles embed.FS

// ClassicMapID is the id of the built-in 42-territory world map.
const ClassicMapID = "classic"

// RawMap is the on-disk JSON form of a map.
type RawMap struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Continents  []core.Continent `json:"continents"`
	Territories []core.Territory `json:"territories"`
}

// Map is a validated map ready to host matches.
type Map struct {
	ID    string
	Name  string
	Graph *core.Graph
}

// Load loads a single embedded map by id.
func Load(id string) (*Map, error) {
	data, err := mapFiles.ReadFile(path.Join("data", id+".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	return LoadFromJSON(data)
}

// Classic loads the built-in world map.
func Classic() (*Map, error) {
	return Load(ClassicMapID)
}

// MustClassic is Classic for callers that treat a broken embedded map as fatal.
func MustClassic() *Map {
	m, err := Classic()
	if err != nil {
		panic("mapgen: classic map: " + err.Error())
	}
	return m
}

// List returns the ids of all embedded maps in sorted order.
func List() ([]string, error) {
	entries, err := mapFiles.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		ids = append(ids, entry.Name()[:len(entry.Name())-len(".json")])
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadFromJSON parses and validates a map from JSON bytes.
func LoadFromJSON(data []byte) (*Map, error) {
	var raw RawMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse map JSON: %w", err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("%w: map ID is required", core.ErrInvalidMap)
	}
	g, err := core.NewGraph(raw.Territories, raw.Continents)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", raw.ID, err)
	}
	name := raw.Name
	if name == "" {
		name = raw.ID
	}
	return &Map{ID: raw.ID, Name: name, Graph: g}, nil
}
