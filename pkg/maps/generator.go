package maps

import (
	"fmt"
	"math/rand"

	"shorebound/internal/game"
)

// GeneratorOptions contains settings for procedural map generation.
type GeneratorOptions struct {
	Width   int   // Map width: 16-256
	Height  int   // Map height; defaults to 3/4 of width when zero
	Islands int   // Number of landmasses: 1-8
	Lakes   int   // Number of carved inland lakes: 0-4
	Seed    int64 // RNG seed; identical options generate identical maps
}

// Generator produces random maps with an ocean border, grown islands, and
// optional enclosed lakes.
type Generator struct {
	opts   GeneratorOptions
	rng    *rand.Rand
	width  int
	height int
	land   []bool
}

// NewGenerator creates a map generator.
func NewGenerator(opts GeneratorOptions) *Generator {
	g := &Generator{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	g.width = clamp(opts.Width, 16, 256)
	g.height = opts.Height
	if g.height == 0 {
		g.height = g.width * 3 / 4
	}
	g.height = clamp(g.height, 12, 256)
	return g
}

// clamp restricts a value to a range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Generate creates the map. Everything not grown into land stays ocean;
// carved lakes become enclosed water once classification runs.
func (g *Generator) Generate() *Map {
	g.land = make([]bool, g.width*g.height)

	islands := clamp(g.opts.Islands, 1, 8)
	cellsPerIsland := len(g.land) / (islands * 3)
	for i := 0; i < islands; i++ {
		g.growIsland(cellsPerIsland)
	}
	for i := 0; i < clamp(g.opts.Lakes, 0, 4); i++ {
		g.carveLake()
	}

	return g.buildMap()
}

// growIsland grows one landmass from a random interior seed by repeatedly
// claiming a random frontier cell. The outermost ring is never claimed, so
// the map keeps its ocean border.
func (g *Generator) growIsland(target int) {
	seed := g.randInterior()
	if seed < 0 {
		return
	}
	g.land[seed] = true
	frontier := []int{seed}

	for grown := 1; grown < target && len(frontier) > 0; {
		i := g.rng.Intn(len(frontier))
		cell := frontier[i]

		next := g.claimableNeighbor(cell)
		if next < 0 {
			frontier[i] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			continue
		}

		g.land[next] = true
		frontier = append(frontier, next)
		grown++
	}
}

// claimableNeighbor returns a random interior water neighbor, or -1.
func (g *Generator) claimableNeighbor(cell int) int {
	x, y := cell%g.width, cell/g.width
	var options []int
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if nx < 1 || nx >= g.width-1 || ny < 1 || ny >= g.height-1 {
			continue
		}
		n := ny*g.width + nx
		if !g.land[n] {
			options = append(options, n)
		}
	}
	if len(options) == 0 {
		return -1
	}
	return options[g.rng.Intn(len(options))]
}

// carveLake turns a small patch of inland land back into water. The patch
// only becomes a lake if land fully encloses it; patches that merge with
// the ocean are just coastline.
func (g *Generator) carveLake() {
	for attempt := 0; attempt < 50; attempt++ {
		cell := g.randInterior()
		x, y := cell%g.width, cell/g.width
		if x < 2 || x >= g.width-2 || y < 2 || y >= g.height-2 {
			continue
		}
		if !g.land[cell] {
			continue
		}
		w := 1 + g.rng.Intn(3)
		h := 1 + g.rng.Intn(2)
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				nx, ny := clamp(x+dx, 1, g.width-2), clamp(y+dy, 1, g.height-2)
				g.land[ny*g.width+nx] = false
			}
		}
		return
	}
}

// randInterior returns a random cell not on the outer ring.
func (g *Generator) randInterior() int {
	if g.width < 3 || g.height < 3 {
		return -1
	}
	x := 1 + g.rng.Intn(g.width-2)
	y := 1 + g.rng.Intn(g.height-2)
	return y*g.width + x
}

// buildMap classifies the terrain and slices the land into regions, one per
// connected landmass.
func (g *Generator) buildMap() *Map {
	water := make([]bool, len(g.land))
	for i, l := range g.land {
		water[i] = !l
	}
	terrain := game.NewGrid(g.width, g.height, water)

	m := &Map{
		ID:      fmt.Sprintf("generated-%d", g.opts.Seed),
		Name:    fmt.Sprintf("Generated %dx%d", g.width, g.height),
		Terrain: terrain,
		Regions: make(map[int]*Region),
	}

	// One region per connected landmass, found by flood fill.
	assigned := make([]bool, len(g.land))
	nextID := 1
	for start := 0; start < len(g.land); start++ {
		if !g.land[start] || assigned[start] {
			continue
		}
		region := &Region{ID: nextID, Name: fmt.Sprintf("Island %d", nextID)}
		queue := []game.Tile{game.Tile(start)}
		assigned[start] = true
		for len(queue) > 0 {
			t := queue[0]
			queue = queue[1:]
			region.Cells = append(region.Cells, t)

			var buf [4]game.Tile
			for _, n := range terrain.AppendNeighbors(buf[:0], t) {
				if g.land[n] && !assigned[n] {
					assigned[n] = true
					queue = append(queue, n)
				}
			}
		}
		m.Regions[nextID] = region
		nextID++
	}

	return m
}
