package maps

import (
	"strings"
	"testing"

	"shorebound/internal/game"
)

func TestLoadAllRegistersEmbeddedMaps(t *testing.T) {
	if err := LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	m := Get("inland-sea")
	if m == nil {
		t.Fatal("inland-sea should be registered")
	}
	if m.Name != "Inland Sea" {
		t.Errorf("name: got %q", m.Name)
	}
	if m.Terrain.Width() != 20 || m.Terrain.Height() != 14 {
		t.Errorf("dimensions: got %dx%d", m.Terrain.Width(), m.Terrain.Height())
	}
}

func TestInlandSeaClassification(t *testing.T) {
	m, err := Load("inland_sea.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	stats := m.TerrainStats()
	if stats.Lake != 12 {
		t.Errorf("the inland sea should classify as a 12-tile lake, got %d", stats.Lake)
	}
	if stats.Ocean != 120 || stats.Land != 148 {
		t.Errorf("ocean/land: got %d/%d, want 120/148", stats.Ocean, stats.Land)
	}
	if stats.OceanShore != 48 {
		t.Errorf("ocean shore: got %d, want 48", stats.OceanShore)
	}
	if stats.LakeShore != 14 {
		t.Errorf("lake shore: got %d, want 14", stats.LakeShore)
	}
	if stats.Shore != stats.OceanShore+stats.LakeShore {
		t.Errorf("no tile touches both waters on this map, shore should be %d, got %d",
			stats.OceanShore+stats.LakeShore, stats.Shore)
	}
}

func TestInlandSeaRegions(t *testing.T) {
	m, err := Load("inland_sea.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.RegionCount() != 2 {
		t.Fatalf("region count: got %d, want 2", m.RegionCount())
	}
	west, east := m.Region(1), m.Region(2)
	if west == nil || west.Name != "Westmark" {
		t.Errorf("region 1 should be Westmark, got %+v", west)
	}
	if east == nil || east.Name != "Eastmark" {
		t.Errorf("region 2 should be Eastmark, got %+v", east)
	}
	if len(west.Cells) != 74 || len(east.Cells) != 74 {
		t.Errorf("cell counts: got %d/%d, want 74/74", len(west.Cells), len(east.Cells))
	}
	for _, c := range west.Cells {
		if !m.Terrain.IsLand(c) {
			t.Fatalf("region cell %d is not land", c)
		}
	}
}

func TestClaimRegion(t *testing.T) {
	m, err := Load("inland_sea.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	g := m.NewGame(game.DefaultConfig())
	p := g.AddPlayer("Ada")
	m.ClaimRegion(g, 1, p.ID)

	for _, c := range m.Region(1).Cells {
		if g.Owner(c) != p.ID {
			t.Fatalf("tile %d not claimed", c)
		}
	}
	for _, c := range m.Region(2).Cells {
		if g.HasOwner(c) {
			t.Fatalf("tile %d of the other region should stay unowned", c)
		}
	}

	// Claiming a region that does not exist is a no-op.
	m.ClaimRegion(g, 99, p.ID)
}

func TestLoadFromJSONDefaultsRegionNames(t *testing.T) {
	m, err := LoadFromJSON([]byte(`{
		"id": "tiny", "name": "Tiny", "width": 4, "height": 3,
		"grid": [[0,0,0,0],[0,5,5,0],[0,0,0,0]]
	}`))
	if err != nil {
		t.Fatalf("LoadFromJSON: %v", err)
	}
	r := m.Region(5)
	if r == nil || r.Name != "Region 5" {
		t.Errorf("unnamed region should get a placeholder name, got %+v", r)
	}
	if len(r.Cells) != 2 {
		t.Errorf("cells: got %d, want 2", len(r.Cells))
	}
}

func TestLoadFromJSONRejectsBadMaps(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"missing id", `{"name":"X","width":2,"height":1,"grid":[[0,0]]}`},
		{"missing name", `{"id":"x","width":2,"height":1,"grid":[[0,0]]}`},
		{"zero width", `{"id":"x","name":"X","width":0,"height":1,"grid":[]}`},
		{"height mismatch", `{"id":"x","name":"X","width":2,"height":2,"grid":[[0,0]]}`},
		{"row width mismatch", `{"id":"x","name":"X","width":2,"height":1,"grid":[[0]]}`},
		{"negative region", `{"id":"x","name":"X","width":2,"height":1,"grid":[[0,-1]]}`},
		{"not json", `{`},
	}
	for _, tc := range cases {
		if _, err := LoadFromJSON([]byte(tc.json)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	opts := GeneratorOptions{Width: 48, Islands: 3, Lakes: 2, Seed: 7}
	a := NewGenerator(opts).Generate()
	b := NewGenerator(opts).Generate()

	if a.Debug() != b.Debug() {
		t.Error("identical options must generate identical maps")
	}
}

func TestGeneratorKeepsOceanBorder(t *testing.T) {
	m := NewGenerator(GeneratorOptions{Width: 32, Islands: 4, Lakes: 1, Seed: 42}).Generate()
	g := m.Terrain

	for x := 0; x < g.Width(); x++ {
		if !g.IsOcean(g.Ref(x, 0)) || !g.IsOcean(g.Ref(x, g.Height()-1)) {
			t.Fatalf("border column %d is not ocean", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if !g.IsOcean(g.Ref(0, y)) || !g.IsOcean(g.Ref(g.Width()-1, y)) {
			t.Fatalf("border row %d is not ocean", y)
		}
	}
}

func TestGeneratorRegionsCoverAllLand(t *testing.T) {
	m := NewGenerator(GeneratorOptions{Width: 32, Islands: 2, Seed: 3}).Generate()
	g := m.Terrain

	covered := make(map[game.Tile]bool)
	for _, r := range m.Regions {
		if len(r.Cells) == 0 {
			t.Fatalf("region %d is empty", r.ID)
		}
		for _, c := range r.Cells {
			if !g.IsLand(c) {
				t.Fatalf("region %d contains water tile %d", r.ID, c)
			}
			if covered[c] {
				t.Fatalf("tile %d appears in two regions", c)
			}
			covered[c] = true
		}
	}

	land := 0
	for ti := game.Tile(0); int(ti) < g.Size(); ti++ {
		if g.IsLand(ti) {
			land++
		}
	}
	if len(covered) != land {
		t.Errorf("regions cover %d tiles, map has %d land tiles", len(covered), land)
	}
}

func TestDebugRendering(t *testing.T) {
	m, err := Load("inland_sea.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := m.Debug()
	if !strings.Contains(out, "Inland Sea") {
		t.Error("debug output should include the map name")
	}
	for _, glyph := range []string{"~", "o", "+", "#"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("debug output should contain %q on this map", glyph)
		}
	}
}
