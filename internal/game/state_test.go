package game

import "testing"

// lakeAndCoast is a landmass with an enclosed lake on the west side and
// open coast all around.
func lakeAndCoast() *Game {
	grid := gridFromArt([]string{
		"~~~~~~~~",
		"~######~",
		"~#..###~",
		"~######~",
		"~~~~~~~~",
	})
	return NewGame(grid, DefaultConfig())
}

func TestAddPlayerAssignsSequentialIDs(t *testing.T) {
	g := lakeAndCoast()

	a := g.AddPlayer("Ada")
	b := g.AddPlayer("Brin")
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", a.ID, b.ID)
	}
	if a.Token == "" || a.Token == b.Token {
		t.Error("players must get distinct non-empty tokens")
	}
	if g.Player(a.ID) != a {
		t.Error("Player lookup should return the added player")
	}
	if g.Player(99) != nil {
		t.Error("unknown ID should return nil")
	}
}

func TestSetOwnerIgnoresWater(t *testing.T) {
	g := lakeAndCoast()
	p := g.AddPlayer("Ada")

	land := g.Grid().Ref(4, 2)
	g.SetOwner(land, p.ID)
	if g.Owner(land) != p.ID || !g.HasOwner(land) {
		t.Error("land claim should stick")
	}

	ocean := g.Grid().Ref(0, 0)
	lake := g.Grid().Ref(2, 2)
	g.SetOwner(ocean, p.ID)
	g.SetOwner(lake, p.ID)
	if g.HasOwner(ocean) || g.HasOwner(lake) {
		t.Error("water tiles must stay unowned")
	}
}

func TestCanAttackFollowsDiplomacy(t *testing.T) {
	g := lakeAndCoast()
	a := g.AddPlayer("Ada")
	b := g.AddPlayer("Brin")

	if !g.CanAttack(a.ID, b.ID) {
		t.Error("neutral players may attack each other")
	}

	g.SetRelation(a.ID, b.ID, RelationAllied)
	if g.CanAttack(a.ID, b.ID) || g.CanAttack(b.ID, a.ID) {
		t.Error("alliance must block attacks in both directions")
	}

	g.SetRelation(a.ID, b.ID, RelationTruce)
	if g.CanAttack(a.ID, b.ID) {
		t.Error("truce must block attacks")
	}

	g.SetRelation(a.ID, b.ID, RelationHostile)
	if !g.CanAttack(a.ID, b.ID) {
		t.Error("hostile players may attack")
	}

	if g.CanAttack(99, b.ID) {
		t.Error("unknown attacker can never attack")
	}
}

func TestForEachBorderTileSkipsInterior(t *testing.T) {
	grid := gridFromArt([]string{
		"~~~~~~~",
		"~#####~",
		"~#####~",
		"~#####~",
		"~~~~~~~",
	})
	g := NewGame(grid, DefaultConfig())
	p := g.AddPlayer("Ada")
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 5; x++ {
			g.SetOwner(grid.Ref(x, y), p.ID)
		}
	}

	var borders []Tile
	g.ForEachBorderTile(p.ID, func(tile Tile) {
		borders = append(borders, tile)
	})

	// The 5x3 block has exactly one interior tile, (3,2).
	if len(borders) != 14 {
		t.Fatalf("expected 14 border tiles, got %d", len(borders))
	}
	interior := grid.Ref(3, 2)
	for i, tile := range borders {
		if tile == interior {
			t.Error("interior tile reported as border")
		}
		if i > 0 && borders[i-1] >= tile {
			t.Error("border tiles must come in ascending order")
		}
	}
}

func TestBorderAgainstAnotherPlayer(t *testing.T) {
	grid := gridFromArt([]string{
		"~~~~~~",
		"~####~",
		"~~~~~~",
	})
	g := NewGame(grid, DefaultConfig())
	a := g.AddPlayer("Ada")
	b := g.AddPlayer("Brin")
	g.SetOwner(grid.Ref(1, 1), a.ID)
	g.SetOwner(grid.Ref(2, 1), a.ID)
	g.SetOwner(grid.Ref(3, 1), b.ID)
	g.SetOwner(grid.Ref(4, 1), b.ID)

	// (2,1) touches water above and below but also player B to the east;
	// either way it is a border tile of A.
	count := 0
	g.ForEachBorderTile(a.ID, func(Tile) { count++ })
	if count != 2 {
		t.Errorf("expected both of A's tiles to be borders, got %d", count)
	}
}

func TestHasOceanBorderTile(t *testing.T) {
	grid := gridFromArt([]string{
		"~~~~~~~~",
		"~######~",
		"~#..###~",
		"~######~",
		"~~~~~~~~",
	})
	g := NewGame(grid, DefaultConfig())
	coastal := g.AddPlayer("Coastal")
	lakeside := g.AddPlayer("Lakeside")

	g.SetOwner(grid.Ref(6, 1), coastal.ID)
	g.SetOwner(grid.Ref(4, 2), lakeside.ID) // touches the lake only

	if !g.HasOceanBorderTile(coastal.ID) {
		t.Error("coastal player should have an ocean border tile")
	}
	if g.HasOceanBorderTile(lakeside.ID) {
		t.Error("lake-only player must not count as having ocean access")
	}
}

func TestUnitCounts(t *testing.T) {
	p := NewPlayer(1, "Ada")

	if p.UnitCount(UnitTransportShip) != 0 {
		t.Error("new player should have no units")
	}
	p.AddUnit(UnitTransportShip)
	p.AddUnit(UnitTransportShip)
	p.AddUnit(UnitWarship)
	if p.UnitCount(UnitTransportShip) != 2 || p.UnitCount(UnitWarship) != 1 {
		t.Error("unit counts off after adding")
	}
	p.RemoveUnit(UnitTransportShip)
	if p.UnitCount(UnitTransportShip) != 1 {
		t.Error("remove should decrement")
	}
	p.RemoveUnit(UnitPort)
	if p.UnitCount(UnitPort) != 0 {
		t.Error("removing a unit the player lacks must not go negative")
	}
}
