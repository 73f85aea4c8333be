package maps

import (
	"strconv"

	"shorebound/internal/game"
)

// Process takes a raw map and computes the runtime terrain and regions.
func Process(raw *RawMap) *Map {
	m := &Map{
		ID:      raw.ID,
		Name:    raw.Name,
		Regions: make(map[int]*Region),
	}

	// Build the water mask and collect region cells in one pass.
	water := make([]bool, raw.Width*raw.Height)
	regionCells := make(map[int][]game.Tile)
	for y := 0; y < raw.Height; y++ {
		for x := 0; x < raw.Width; x++ {
			t := game.Tile(y*raw.Width + x)
			id := raw.Grid[y][x]
			if id == 0 {
				water[t] = true
			} else {
				regionCells[id] = append(regionCells[id], t)
			}
		}
	}

	// Flood fill and ocean/lake/shore classification happen inside the grid.
	m.Terrain = game.NewGrid(raw.Width, raw.Height, water)

	for id, cells := range regionCells {
		m.Regions[id] = &Region{
			ID:    id,
			Name:  regionName(raw, id),
			Cells: cells,
		}
	}

	return m
}

// regionName resolves a region's name from raw metadata, defaulting to a
// numbered placeholder.
func regionName(raw *RawMap, id int) string {
	if r, ok := raw.Regions[strconv.Itoa(id)]; ok && r.Name != "" {
		return r.Name
	}
	return "Region " + strconv.Itoa(id)
}
