// Package maps handles raw map loading, terrain processing, and procedural
// generation.
package maps

import "shorebound/internal/game"

// RawMap is the format stored in JSON files. Grid cells hold 0 for water and
// a positive region ID for land.
type RawMap struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Width   int                  `json:"width"`
	Height  int                  `json:"height"`
	Grid    [][]int              `json:"grid"`
	Regions map[string]RawRegion `json:"regions,omitempty"`
}

// RawRegion is region metadata from the JSON file.
type RawRegion struct {
	Name string `json:"name"`
}

// Map is the processed, runtime map: classified terrain plus the land
// regions used to hand out starting territory.
type Map struct {
	ID      string
	Name    string
	Terrain *game.Grid
	Regions map[int]*Region
}

// Region is a named group of land tiles.
type Region struct {
	ID    int
	Name  string
	Cells []game.Tile
}

// Region returns a region by ID, or nil.
func (m *Map) Region(id int) *Region {
	return m.Regions[id]
}

// RegionCount returns the number of land regions.
func (m *Map) RegionCount() int {
	return len(m.Regions)
}

// NewGame builds a fresh game over this map's terrain.
func (m *Map) NewGame(config game.Config) *game.Game {
	return game.NewGame(m.Terrain, config)
}

// ClaimRegion assigns every tile of a region to a player. It is how games
// hand out starting territory and how tests set up ownership.
func (m *Map) ClaimRegion(g *game.Game, regionID int, player game.PlayerID) {
	r := m.Regions[regionID]
	if r == nil {
		return
	}
	for _, t := range r.Cells {
		g.SetOwner(t, player)
	}
}
