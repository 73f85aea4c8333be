package server

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"shorebound/internal/game"
	"shorebound/internal/pathfind"
	"shorebound/pkg/maps"
)

// Session is one running game: the game state, the pathfinding engine that
// serves its queries, and the players seated in it. The engine supports
// exactly one search at a time, so every query goes through the session
// mutex; concurrency stops here and never reaches the engine.
type Session struct {
	ID    string
	MapID string

	mu      sync.Mutex
	gameMap *maps.Map
	game    *game.Game
	engine  *pathfind.Engine
	seats   map[string]game.PlayerID // client token -> player
	claimed int                      // regions handed out so far
}

// NewSession starts a game on the given map.
func NewSession(m *maps.Map) *Session {
	return &Session{
		ID:      uuid.New().String(),
		MapID:   m.ID,
		gameMap: m,
		game:    m.NewGame(game.DefaultConfig()),
		engine:  pathfind.NewEngine(),
		seats:   make(map[string]game.PlayerID),
	}
}

// Join seats a client in the session, claiming the next free starting
// region for a new player. Rejoining with the same token keeps the seat.
func (s *Session) Join(token, name string) game.PlayerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.seats[token]; ok {
		return id
	}

	p := s.game.AddPlayer(name)
	s.seats[token] = p.ID

	// Hand out the lowest-numbered unclaimed region as starting territory.
	regionIDs := make([]int, 0, len(s.gameMap.Regions))
	for id := range s.gameMap.Regions {
		regionIDs = append(regionIDs, id)
	}
	sort.Ints(regionIDs)
	for _, id := range regionIDs {
		if !s.regionTaken(id) {
			s.gameMap.ClaimRegion(s.game, id, p.ID)
			s.claimed++
			break
		}
	}

	return p.ID
}

// regionTaken reports whether any tile of the region is already owned.
func (s *Session) regionTaken(id int) bool {
	r := s.gameMap.Region(id)
	if r == nil || len(r.Cells) == 0 {
		return true
	}
	return s.game.HasOwner(r.Cells[0])
}

// Player resolves a client token to its seat.
func (s *Session) Player(token string) (game.PlayerID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.seats[token]
	return id, ok
}

// InBounds reports whether a tile index is valid for this session's map.
func (s *Session) InBounds(tile int) bool {
	return s.game.Grid().InBounds(game.Tile(tile))
}

// TransportTarget resolves a clicked tile to a landing shore.
func (s *Session) TransportTarget(click game.Tile) (game.Tile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.TargetTransportTile(s.game, click)
}

// BuildTransport runs the full build gate for a player's click and, on
// success, records the new unit.
func (s *Session) BuildTransport(player game.PlayerID, click game.Tile) (game.Tile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spawn, err := s.engine.CanBuildTransportShip(s.game, player, click)
	if err != nil {
		return game.NoTile, err
	}
	s.game.Player(player).AddUnit(game.UnitTransportShip)
	return spawn, nil
}

// CandidateShores enumerates deployment candidates for a player toward a
// target tile.
func (s *Session) CandidateShores(player game.PlayerID, target game.Tile) []game.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CandidateShoreTiles(s.game, player, target)
}
