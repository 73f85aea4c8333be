package game

// Config contains the configurable game parameters that gate unit builds.
type Config struct {
	TransportShipCap int `json:"transportShipCap"`
}

// DefaultConfig returns the standard ruleset.
func DefaultConfig() Config {
	return Config{TransportShipCap: 3}
}

// Game is the complete state of one running game: immutable terrain, mutable
// per-tile ownership, and the players. Ownership may change between searches
// but never during one; the pathfinding engine only reads this state.
type Game struct {
	grid    *Grid
	owner   []PlayerID
	players map[PlayerID]*Player
	config  Config
	nextID  PlayerID
}

// NewGame creates a game over the given terrain with no players and all
// tiles unowned.
func NewGame(grid *Grid, config Config) *Game {
	return &Game{
		grid:    grid,
		owner:   make([]PlayerID, grid.Size()),
		players: make(map[PlayerID]*Player),
		config:  config,
		nextID:  1,
	}
}

// Grid returns the game's terrain.
func (g *Game) Grid() *Grid { return g.grid }

// Config returns the game's ruleset.
func (g *Game) Config() Config { return g.config }

// AddPlayer creates a new player and adds it to the game.
func (g *Game) AddPlayer(name string) *Player {
	p := NewPlayer(g.nextID, name)
	g.nextID++
	g.players[p.ID] = p
	return p
}

// Player returns a player by ID, or nil if not present.
func (g *Game) Player(id PlayerID) *Player {
	return g.players[id]
}

// Owner returns the owner of a tile, NoPlayer if unclaimed.
func (g *Game) Owner(t Tile) PlayerID {
	return g.owner[t]
}

// HasOwner reports whether the tile is claimed by any player.
func (g *Game) HasOwner(t Tile) bool {
	return g.owner[t] != NoPlayer
}

// SetOwner assigns a tile to a player. Water tiles stay unowned; land can
// change hands freely between searches.
func (g *Game) SetOwner(t Tile, id PlayerID) {
	if g.grid.IsWater(t) {
		return
	}
	g.owner[t] = id
}

// SetRelation records the diplomatic stance between two players, in both
// directions.
func (g *Game) SetRelation(a, b PlayerID, rel Relation) {
	if pa := g.players[a]; pa != nil {
		pa.relations[b] = rel
	}
	if pb := g.players[b]; pb != nil {
		pb.relations[a] = rel
	}
}

// CanAttack reports whether diplomacy permits the first player to attack
// the second. Allies and truce partners may not be attacked.
func (g *Game) CanAttack(attacker, defender PlayerID) bool {
	p := g.players[attacker]
	if p == nil {
		return false
	}
	rel := p.RelationTo(defender)
	return rel != RelationAllied && rel != RelationTruce
}

// ForEachBorderTile calls fn for every border tile of the player, in
// ascending tile order. A border tile is an owned tile with at least one
// in-bounds neighbor not owned by the same player.
func (g *Game) ForEachBorderTile(id PlayerID, fn func(Tile)) {
	for t := Tile(0); int(t) < len(g.owner); t++ {
		if g.owner[t] != id {
			continue
		}
		var buf [4]Tile
		for _, n := range g.grid.AppendNeighbors(buf[:0], t) {
			if g.owner[n] != id {
				fn(t)
				break
			}
		}
	}
}

// HasOceanBorderTile reports whether the player owns at least one border
// tile adjacent to ocean water. Building an ocean-going transport requires
// ocean access on both ends.
func (g *Game) HasOceanBorderTile(id PlayerID) bool {
	found := false
	g.ForEachBorderTile(id, func(t Tile) {
		if g.grid.IsOceanShore(t) {
			found = true
		}
	})
	return found
}
