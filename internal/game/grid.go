// Package game contains the map grid, ownership and player state that the
// pathfinding engine operates on. This package is shared between the query
// server and the map tooling.
package game

// Per-tile terrain class bits. A tile is either land or water; water belongs
// to exactly one body (ocean or lake); shore bits are derived for land tiles
// from the water bodies they touch.
const (
	classWater uint8 = 1 << iota
	classOcean
	classLake
	classShore
	classOceanShore
	classLakeShore
)

// Grid is the processed map terrain: dimensions plus a terrain class per tile.
// It is immutable after construction.
type Grid struct {
	width  int
	height int
	class  []uint8
}

// NewGrid builds a grid from a water mask (true = water, row-major, length
// width*height). Water bodies are found by flood fill; a body that touches
// the map border is ocean, an enclosed body is a lake. Shores are land tiles
// adjacent to at least one water tile.
func NewGrid(width, height int, water []bool) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		class:  make([]uint8, width*height),
	}
	g.classifyWater(water)
	g.classifyShores()
	return g
}

// classifyWater flood fills each connected water region and marks it as
// ocean or lake.
func (g *Grid) classifyWater(water []bool) {
	visited := make([]bool, len(g.class))
	queue := make([]Tile, 0, len(g.class)/4)

	for start := Tile(0); int(start) < len(g.class); start++ {
		if !water[start] || visited[start] {
			continue
		}

		// Collect the whole body, tracking whether it touches the border.
		queue = append(queue[:0], start)
		visited[start] = true
		body := []Tile{start}
		touchesBorder := g.onBorder(start)

		for len(queue) > 0 {
			t := queue[0]
			queue = queue[1:]

			var buf [4]Tile
			for _, n := range g.AppendNeighbors(buf[:0], t) {
				if water[n] && !visited[n] {
					visited[n] = true
					if g.onBorder(n) {
						touchesBorder = true
					}
					body = append(body, n)
					queue = append(queue, n)
				}
			}
		}

		mark := classWater | classLake
		if touchesBorder {
			mark = classWater | classOcean
		}
		for _, t := range body {
			g.class[t] = mark
		}
	}
}

// classifyShores marks every land tile that touches water, recording which
// kind of water body it touches. A land tile between an ocean and a lake is
// both an ocean shore and a lake shore.
func (g *Grid) classifyShores() {
	for t := Tile(0); int(t) < len(g.class); t++ {
		if g.class[t]&classWater != 0 {
			continue
		}
		var buf [4]Tile
		for _, n := range g.AppendNeighbors(buf[:0], t) {
			switch {
			case g.class[n]&classOcean != 0:
				g.class[t] |= classShore | classOceanShore
			case g.class[n]&classLake != 0:
				g.class[t] |= classShore | classLakeShore
			}
		}
	}
}

// onBorder reports whether the tile lies on the outer edge of the map.
func (g *Grid) onBorder(t Tile) bool {
	x, y := g.X(t), g.Y(t)
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// Size returns the total tile count.
func (g *Grid) Size() int { return len(g.class) }

// X returns the column of a tile.
func (g *Grid) X(t Tile) int { return int(t) % g.width }

// Y returns the row of a tile.
func (g *Grid) Y(t Tile) int { return int(t) / g.width }

// Ref returns the tile at the given coordinates.
func (g *Grid) Ref(x, y int) Tile { return Tile(y*g.width + x) }

// InBounds reports whether the tile is a valid index.
func (g *Grid) InBounds(t Tile) bool { return t >= 0 && int(t) < len(g.class) }

// IsWater reports whether the tile is water of any kind.
func (g *Grid) IsWater(t Tile) bool { return g.class[t]&classWater != 0 }

// IsLand reports whether the tile is land.
func (g *Grid) IsLand(t Tile) bool { return g.class[t]&classWater == 0 }

// IsOcean reports whether the tile is ocean water.
func (g *Grid) IsOcean(t Tile) bool { return g.class[t]&classOcean != 0 }

// IsLake reports whether the tile is lake water.
func (g *Grid) IsLake(t Tile) bool { return g.class[t]&classLake != 0 }

// IsShore reports whether the tile is land adjacent to any water.
func (g *Grid) IsShore(t Tile) bool { return g.class[t]&classShore != 0 }

// IsOceanShore reports whether the tile is land adjacent to ocean water.
func (g *Grid) IsOceanShore(t Tile) bool { return g.class[t]&classOceanShore != 0 }

// IsLakeShore reports whether the tile is land adjacent to lake water.
func (g *Grid) IsLakeShore(t Tile) bool { return g.class[t]&classLakeShore != 0 }

// AppendNeighbors appends the in-bounds orthogonal neighbors of t to dst and
// returns it. The grid does not wrap: edge tiles have fewer than 4 neighbors.
// Passing a stack-allocated buffer keeps neighbor enumeration allocation-free.
func (g *Grid) AppendNeighbors(dst []Tile, t Tile) []Tile {
	x, y := g.X(t), g.Y(t)
	if y > 0 {
		dst = append(dst, t-Tile(g.width))
	}
	if x > 0 {
		dst = append(dst, t-1)
	}
	if x < g.width-1 {
		dst = append(dst, t+1)
	}
	if y < g.height-1 {
		dst = append(dst, t+Tile(g.width))
	}
	return dst
}
