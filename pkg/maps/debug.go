package maps

import (
	"fmt"
	"strings"

	"shorebound/internal/game"
)

// Debug returns a string visualization of the processed map.
// Legend: '~' ocean, 'o' lake, '+' shore, '#' inland land.
func (m *Map) Debug() string {
	var sb strings.Builder
	g := m.Terrain

	sb.WriteString(fmt.Sprintf("Map: %s (%s)\n", m.Name, m.ID))
	sb.WriteString(fmt.Sprintf("Size: %dx%d\n", g.Width(), g.Height()))
	sb.WriteString(fmt.Sprintf("Regions: %d\n\n", len(m.Regions)))

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t := g.Ref(x, y)
			switch {
			case g.IsOcean(t):
				sb.WriteByte('~')
			case g.IsLake(t):
				sb.WriteByte('o')
			case g.IsShore(t):
				sb.WriteByte('+')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteString("\n")
	}

	stats := m.TerrainStats()
	sb.WriteString(fmt.Sprintf("\nOcean: %d  Lake: %d  Land: %d  Shore: %d (ocean %d, lake %d)\n",
		stats.Ocean, stats.Lake, stats.Land, stats.Shore, stats.OceanShore, stats.LakeShore))

	return sb.String()
}

// TerrainStats counts tiles per terrain class.
type TerrainStats struct {
	Ocean      int
	Lake       int
	Land       int
	Shore      int
	OceanShore int
	LakeShore  int
}

// TerrainStats tallies the map's terrain classification.
func (m *Map) TerrainStats() TerrainStats {
	g := m.Terrain
	var s TerrainStats
	for t := game.Tile(0); int(t) < g.Size(); t++ {
		switch {
		case g.IsOcean(t):
			s.Ocean++
		case g.IsLake(t):
			s.Lake++
		default:
			s.Land++
			if g.IsShore(t) {
				s.Shore++
			}
			if g.IsOceanShore(t) {
				s.OceanShore++
			}
			if g.IsLakeShore(t) {
				s.LakeShore++
			}
		}
	}
	return s
}
