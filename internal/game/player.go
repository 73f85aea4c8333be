package game

import "github.com/google/uuid"

// PlayerID identifies a player. Zero is reserved for unowned territory
// (terra nullius) and never assigned to a player.
type PlayerID uint16

// NoPlayer is the owner of unclaimed tiles.
const NoPlayer PlayerID = 0

// Relation is the diplomatic stance between two players.
type Relation int

const (
	RelationNeutral Relation = iota
	RelationHostile
	RelationTruce
	RelationAllied
)

// String returns the relation name.
func (r Relation) String() string {
	switch r {
	case RelationNeutral:
		return "Neutral"
	case RelationHostile:
		return "Hostile"
	case RelationTruce:
		return "Truce"
	case RelationAllied:
		return "Allied"
	default:
		return "Unknown"
	}
}

// UnitType identifies a buildable unit kind.
type UnitType int

const (
	UnitTransportShip UnitType = iota
	UnitWarship
	UnitPort
)

// String returns the unit type name.
func (u UnitType) String() string {
	switch u {
	case UnitTransportShip:
		return "Transport Ship"
	case UnitWarship:
		return "Warship"
	case UnitPort:
		return "Port"
	default:
		return "Unknown"
	}
}

// Player represents one participant in a game.
type Player struct {
	ID    PlayerID `json:"id"`
	Token string   `json:"token"` // Opaque identity token handed to the client
	Name  string   `json:"name"`

	relations map[PlayerID]Relation
	units     map[UnitType]int
}

// NewPlayer creates a player with a fresh identity token.
func NewPlayer(id PlayerID, name string) *Player {
	return &Player{
		ID:        id,
		Token:     uuid.New().String(),
		Name:      name,
		relations: make(map[PlayerID]Relation),
		units:     make(map[UnitType]int),
	}
}

// RelationTo returns the diplomatic stance toward another player.
// Unknown players default to neutral.
func (p *Player) RelationTo(other PlayerID) Relation {
	return p.relations[other]
}

// UnitCount returns how many units of the given type the player has.
func (p *Player) UnitCount(ut UnitType) int {
	return p.units[ut]
}

// AddUnit records a newly built unit.
func (p *Player) AddUnit(ut UnitType) {
	p.units[ut]++
}

// RemoveUnit records a lost unit.
func (p *Player) RemoveUnit(ut UnitType) {
	if p.units[ut] > 0 {
		p.units[ut]--
	}
}
