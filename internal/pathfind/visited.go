package pathfind

import (
	"math"

	"shorebound/internal/game"
)

// visitedSet marks tiles visited during a search without clearing memory
// between searches. Each tile carries a generation stamp; a tile is visited
// in the current search iff its stamp equals the current generation. Zero
// means "never visited since allocation".
type visitedSet struct {
	stamps []uint32
	gen    uint32
}

// ensureCapacity (re)allocates the stamp buffer when the grid size changes
// and resets the generation counter. Fresh memory reads as never visited.
func (v *visitedSet) ensureCapacity(size int) {
	if len(v.stamps) == size {
		return
	}
	v.stamps = make([]uint32, size)
	v.gen = 0
}

// begin opens a new search. Incrementing the generation invalidates every
// stamp from earlier searches in O(1). When the counter would hit the 32-bit
// maximum the whole buffer is cleared and the counter restarts; this is the
// only O(size) operation here, amortized over ~4 billion searches.
func (v *visitedSet) begin() {
	v.gen++
	if v.gen == math.MaxUint32 {
		for i := range v.stamps {
			v.stamps[i] = 0
		}
		v.gen = 1
	}
}

// visit marks a tile visited in the current search.
func (v *visitedSet) visit(t game.Tile) {
	v.stamps[t] = v.gen
}

// seen reports whether the tile was visited in the current search.
func (v *visitedSet) seen(t game.Tile) bool {
	return v.stamps[t] == v.gen
}
