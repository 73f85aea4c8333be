// Package pathfind computes water routes and shore landing points for
// amphibious transports. It answers questions of the form "from this tile,
// what is the nearest tile satisfying some water-connectivity condition?"
// and layers the transport targeting rules on top.
package pathfind

import "shorebound/internal/game"

// Engine owns the state shared by all searches: the generation-stamped
// visited buffer and the two frontier buffers. Exactly one search may run
// at a time; a search must never start another search from inside its own
// traversal. Callers that need concurrency serialize access to the engine
// at their own boundary.
type Engine struct {
	visited  visitedSet
	frontier []game.Tile
	next     []game.Tile
}

// NewEngine creates an engine. Buffers are sized lazily on first use and
// reallocated only when the grid size changes, so steady-state searches
// allocate nothing.
func NewEngine() *Engine {
	return &Engine{}
}

// rule is the strategy a search is instantiated with: passable decides
// whether the traversal may continue through a tile, match decides whether
// a tile satisfies the goal. Concrete rule types are monomorphized into the
// kernel, so the three variants pay no dynamic-dispatch cost.
type rule interface {
	passable(t game.Tile) bool
	match(t game.Tile) bool
}

// bfsSearch runs one level-synchronous breadth-first traversal over the
// 4-directional grid adjacency, out to at most maxDepth steps from start.
// It returns the matching tile at the minimum BFS distance from start;
// among matches tied at that distance the highest tile index wins, which
// keeps results deterministic. The match predicate is applied to every
// newly discovered tile, passable or not, so searches confined to water
// can still land on shore tiles.
func bfsSearch[R rule](e *Engine, g *game.Grid, start game.Tile, maxDepth int, r R) (game.Tile, bool) {
	if r.match(start) {
		return start, true
	}

	e.visited.ensureCapacity(g.Size())
	e.visited.begin()
	e.visited.visit(start)
	e.frontier = append(e.frontier[:0], start)

	var buf [4]game.Tile
	for depth := 1; depth <= maxDepth && len(e.frontier) > 0; depth++ {
		best := game.NoTile
		e.next = e.next[:0]

		for _, t := range e.frontier {
			for _, n := range g.AppendNeighbors(buf[:0], t) {
				if e.visited.seen(n) {
					continue
				}
				e.visited.visit(n)
				if r.match(n) && n > best {
					best = n
				}
				if r.passable(n) {
					e.next = append(e.next, n)
				}
			}
		}

		if best != game.NoTile {
			return best, true
		}
		e.frontier, e.next = e.next, e.frontier
	}

	return game.NoTile, false
}

// ownedWaterRule searches lake and shore tiles for territory of one player
// without crossing open land, used to route lake transports home.
type ownedWaterRule struct {
	g     *game.Game
	owner game.PlayerID
}

func (r ownedWaterRule) passable(t game.Tile) bool {
	return r.g.Grid().IsLake(t) || r.g.Grid().IsShore(t)
}

func (r ownedWaterRule) match(t game.Tile) bool {
	return r.g.Owner(t) == r.owner
}

// openWaterRule searches across unowned tiles for the nearest shore of any
// owner, used for landings on open coasts and terra nullius.
type openWaterRule struct {
	g *game.Game
}

func (r openWaterRule) passable(t game.Tile) bool {
	return !r.g.HasOwner(t)
}

func (r openWaterRule) match(t game.Tile) bool {
	return r.g.Grid().IsShore(t)
}

// targetSetRule searches across water for the nearest member of a
// precomputed tile set, never crossing land.
type targetSetRule struct {
	grid *game.Grid
	set  game.TileSet
}

func (r targetSetRule) passable(t game.Tile) bool {
	return !r.grid.IsLand(t)
}

func (r targetSetRule) match(t game.Tile) bool {
	return r.set.Contains(t)
}

// NearestOwnedWater finds the nearest tile owned by the given player,
// traversing only lake and shore tiles.
func (e *Engine) NearestOwnedWater(g *game.Game, start game.Tile, owner game.PlayerID, maxDepth int) (game.Tile, bool) {
	return bfsSearch(e, g.Grid(), start, maxDepth, ownedWaterRule{g: g, owner: owner})
}

// NearestShore finds the nearest shore tile reachable across unowned
// territory, including the coasts of other players.
func (e *Engine) NearestShore(g *game.Game, start game.Tile, maxDepth int) (game.Tile, bool) {
	return bfsSearch(e, g.Grid(), start, maxDepth, openWaterRule{g: g})
}

// NearestInSet finds the nearest member of the target set reachable without
// crossing land. An empty set never matches and returns immediately.
func (e *Engine) NearestInSet(g *game.Game, start game.Tile, set game.TileSet, maxDepth int) (game.Tile, bool) {
	if len(set) == 0 {
		return game.NoTile, false
	}
	return bfsSearch(e, g.Grid(), start, maxDepth, targetSetRule{grid: g.Grid(), set: set})
}
