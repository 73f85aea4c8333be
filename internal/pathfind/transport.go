package pathfind

import (
	"errors"

	"shorebound/internal/game"
)

// Targeting errors
var (
	ErrTransportLimit = errors.New("transport ship limit reached")
	ErrNoTargetShore  = errors.New("no shore reachable from target")
	ErrOwnTerritory   = errors.New("target is own territory")
	ErrCannotAttack   = errors.New("diplomacy forbids attacking target owner")
	ErrNoOceanAccess  = errors.New("no ocean access")
	ErrNoLakeRoute    = errors.New("no lake route to own territory")
	ErrNoSpawnShore   = errors.New("no border shore to deploy from")
)

// Search depth bounds. These are tuning knobs, not physics: the terra
// nullius bound keeps open-water clicks responsive, the lake bound covers
// any lake a map can contain, and the border bound is large enough to span
// the largest supported map so border-shore searches only fail when truly
// disconnected.
const (
	terraNulliusDepth = 200
	lakeDepth         = 800
	borderShoreDepth  = 1 << 14
)

// TargetTransportTile resolves a clicked tile to the shore a transport
// should land on. Clicks on owned territory resolve to the owner's nearest
// border shore reachable over water; clicks on unowned tiles run a short
// open-water shore search.
func (e *Engine) TargetTransportTile(g *game.Game, click game.Tile) (game.Tile, bool) {
	if g.HasOwner(click) {
		shores := e.borderShores(g, g.Owner(click))
		return e.NearestInSet(g, click, shores.set, borderShoreDepth)
	}
	return e.NearestShore(g, click, terraNulliusDepth)
}

// TransportSpawnTile finds the player's border shore nearest to the resolved
// target, which is where the transport is launched from. The target must
// itself be a shore tile, and the player must have at least one border
// shore.
func (e *Engine) TransportSpawnTile(g *game.Game, player game.PlayerID, target game.Tile) (game.Tile, error) {
	if !g.Grid().IsShore(target) {
		return game.NoTile, ErrNoTargetShore
	}
	shores := e.borderShores(g, player)
	spawn, ok := e.NearestInSet(g, target, shores.set, borderShoreDepth)
	if !ok {
		return game.NoTile, ErrNoSpawnShore
	}
	return spawn, nil
}

// CanBuildTransportShip applies every gate on building a transport toward
// the clicked tile and returns the spawn shore on success. Gates fail with
// a sentinel error; a valid tile is returned only when the build is
// permitted.
func (e *Engine) CanBuildTransportShip(g *game.Game, player game.PlayerID, click game.Tile) (game.Tile, error) {
	p := g.Player(player)
	if p == nil || p.UnitCount(game.UnitTransportShip) >= g.Config().TransportShipCap {
		return game.NoTile, ErrTransportLimit
	}

	target, ok := e.TargetTransportTile(g, click)
	if !ok {
		return game.NoTile, ErrNoTargetShore
	}

	owner := g.Owner(target)
	if owner == player {
		return game.NoTile, ErrOwnTerritory
	}
	if owner != game.NoPlayer && !g.CanAttack(player, owner) {
		return game.NoTile, ErrCannotAttack
	}

	if g.Grid().IsOceanShore(target) {
		if !g.HasOceanBorderTile(player) {
			return game.NoTile, ErrNoOceanAccess
		}
		if owner != game.NoPlayer && !g.HasOceanBorderTile(owner) {
			return game.NoTile, ErrNoOceanAccess
		}
		return e.TransportSpawnTile(g, player, target)
	}

	// Lake landing: route from the target back toward the player's own
	// territory across the lake, then deploy from the shore that reached.
	reached, ok := e.NearestOwnedWater(g, target, player, lakeDepth)
	if !ok {
		return game.NoTile, ErrNoLakeRoute
	}
	return e.TransportSpawnTile(g, player, reached)
}

// SourceDstOceanShore resolves both ends of a prospective crossing
// independently: the player's border shore nearest to the tile, and the
// destination-side shore (the owner's nearest border shore when the tile is
// owned, otherwise a short open-water search). Either end may be absent.
func (e *Engine) SourceDstOceanShore(g *game.Game, player game.PlayerID, t game.Tile) (src game.Tile, srcOK bool, dst game.Tile, dstOK bool) {
	own := e.borderShores(g, player)
	src, srcOK = e.NearestInSet(g, t, own.set, borderShoreDepth)

	if g.HasOwner(t) {
		theirs := e.borderShores(g, g.Owner(t))
		dst, dstOK = e.NearestInSet(g, t, theirs.set, borderShoreDepth)
	} else {
		dst, dstOK = e.NearestShore(g, t, terraNulliusDepth)
	}
	return src, srcOK, dst, dstOK
}

// CandidateShoreTiles enumerates deployment candidates among the player's
// border shores: the BFS-nearest shore to the target first, then the four
// axis-extremal shores, then a uniform sample of the rest. The result is
// deduplicated preserving that order, and empty only when the player has no
// border shore at all.
func (e *Engine) CandidateShoreTiles(g *game.Game, player game.PlayerID, target game.Tile) []game.Tile {
	shores := e.borderShores(g, player)
	if len(shores.tiles) == 0 {
		return nil
	}

	candidates := make([]game.Tile, 0, 8)
	if nearest, ok := e.NearestInSet(g, target, shores.set, borderShoreDepth); ok {
		candidates = append(candidates, nearest)
	}
	candidates = append(candidates, e.extremalShores(g.Grid(), shores.tiles)...)

	// Sample the remaining shores at a stride that caps the candidate count
	// on large coastlines.
	stride := (len(shores.tiles) + 49) / 50
	if stride < 10 {
		stride = 10
	}
	for i := 0; i < len(shores.tiles); i += stride {
		candidates = append(candidates, shores.tiles[i])
	}

	return dedupTiles(candidates)
}

// extremalShores picks the shores at minimum and maximum x and y. Ties on a
// coordinate go to the higher tile index, matching the kernel's tie-break.
func (e *Engine) extremalShores(grid *game.Grid, tiles []game.Tile) []game.Tile {
	minX, maxX, minY, maxY := tiles[0], tiles[0], tiles[0], tiles[0]
	for _, t := range tiles[1:] {
		x, y := grid.X(t), grid.Y(t)
		if x < grid.X(minX) || (x == grid.X(minX) && t > minX) {
			minX = t
		}
		if x > grid.X(maxX) || (x == grid.X(maxX) && t > maxX) {
			maxX = t
		}
		if y < grid.Y(minY) || (y == grid.Y(minY) && t > minY) {
			minY = t
		}
		if y > grid.Y(maxY) || (y == grid.Y(maxY) && t > maxY) {
			maxY = t
		}
	}
	return []game.Tile{minX, maxX, minY, maxY}
}

// borderShoreSet holds a player's border shores both as an ordered slice
// (ascending tile index) and as a set for kernel matching. It is rebuilt on
// every query; ownership can change between searches, so caching it would
// go stale.
type borderShoreSet struct {
	tiles []game.Tile
	set   game.TileSet
}

func (e *Engine) borderShores(g *game.Game, player game.PlayerID) borderShoreSet {
	s := borderShoreSet{set: make(game.TileSet)}
	g.ForEachBorderTile(player, func(t game.Tile) {
		if g.Grid().IsShore(t) {
			s.tiles = append(s.tiles, t)
			s.set.Add(t)
		}
	})
	return s
}

// dedupTiles removes duplicates preserving first occurrence.
func dedupTiles(tiles []game.Tile) []game.Tile {
	seen := make(game.TileSet, len(tiles))
	out := tiles[:0]
	for _, t := range tiles {
		if seen.Contains(t) {
			continue
		}
		seen.Add(t)
		out = append(out, t)
	}
	return out
}
