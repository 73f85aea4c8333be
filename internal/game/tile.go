package game

// Tile is a dense index into the row-major map grid.
// Row = Tile / width, column = Tile % width.
type Tile int

// NoTile is returned alongside a false ok-flag; it is never a valid index.
const NoTile Tile = -1

// TileSet is an unordered set of tiles, used as a search target set.
type TileSet map[Tile]struct{}

// NewTileSet creates a set from the given tiles.
func NewTileSet(tiles ...Tile) TileSet {
	s := make(TileSet, len(tiles))
	for _, t := range tiles {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a tile into the set.
func (s TileSet) Add(t Tile) {
	s[t] = struct{}{}
}

// Contains reports whether the tile is in the set.
func (s TileSet) Contains(t Tile) bool {
	_, ok := s[t]
	return ok
}
