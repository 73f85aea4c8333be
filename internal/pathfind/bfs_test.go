package pathfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shorebound/internal/game"
)

func TestNearestShore_ZeroDepthHit(t *testing.T) {
	g := gameFromArt([]string{
		"~~~~~",
		"~###~",
		"~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	// The start tile is itself a shore: returned without any traversal.
	start := at(g, 2, 1)
	got, ok := e.NearestShore(g, start, 0)
	require.True(t, ok)
	assert.Equal(t, start, got)
}

func TestNearestInSet_StartInSet(t *testing.T) {
	g := gameFromArt([]string{
		"~~~~~",
		"~###~",
		"~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	start := at(g, 1, 1)
	set := game.NewTileSet(start, at(g, 3, 1))
	got, ok := e.NearestInSet(g, start, set, 0)
	require.True(t, ok)
	assert.Equal(t, start, got)
}

func TestNearestInSet_EmptySet(t *testing.T) {
	g := gameFromArt([]string{
		"~~~~~",
		"~###~",
		"~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	_, ok := e.NearestInSet(g, at(g, 0, 0), game.TileSet{}, 100)
	assert.False(t, ok)
}

func TestNearestInSet_TieBreaksToHighestIndex(t *testing.T) {
	// Both shores are one step from the start; the higher index wins.
	g := gameFromArt([]string{
		"~~~~~",
		"~#~#~",
		"~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	start := at(g, 2, 1)
	left, right := at(g, 1, 1), at(g, 3, 1)
	set := game.NewTileSet(left, right)

	got, ok := e.NearestInSet(g, start, set, 5)
	require.True(t, ok)
	assert.Equal(t, right, got, "equal-depth tie must resolve to the higher tile index")
}

func TestNearestInSet_ReturnsMinimumDepthMatch(t *testing.T) {
	// A shore 2 steps away beats one 4 steps away even though the farther
	// tile has the higher index.
	g := gameFromArt([]string{
		"~~~~~~~~",
		"~#~~~~#~",
		"~~~~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	near, far := at(g, 1, 1), at(g, 6, 1)
	set := game.NewTileSet(near, far)

	got, ok := e.NearestInSet(g, at(g, 3, 1), set, 10)
	require.True(t, ok)
	assert.Equal(t, near, got)
}

func TestNearestInSet_RespectsMaxDepth(t *testing.T) {
	g := gameFromArt([]string{
		"~~~~~~~~",
		"~~~~~~#~",
		"~~~~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	start := at(g, 1, 1)
	set := game.NewTileSet(at(g, 6, 1))

	_, ok := e.NearestInSet(g, start, set, 4)
	assert.False(t, ok, "target 5 steps out must not be found at depth 4")

	got, ok := e.NearestInSet(g, start, set, 5)
	require.True(t, ok)
	assert.Equal(t, at(g, 6, 1), got)
}

func TestNearestInSet_NeverCrossesLand(t *testing.T) {
	// Lake on the left, ocean on the right, a land wall between them.
	g := gameFromArt([]string{
		"~~~~~~~~~",
		"~#####~~~",
		"~#...#~~~",
		"~#...#~~~",
		"~#####~~~",
		"~~~~~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	require.True(t, g.Grid().IsLake(at(g, 2, 2)))
	require.True(t, g.Grid().IsOcean(at(g, 7, 2)))

	// An ocean tile can never be reached from inside the lake.
	set := game.NewTileSet(at(g, 7, 2))
	_, ok := e.NearestInSet(g, at(g, 2, 2), set, 1000)
	assert.False(t, ok)

	// And a lake tile can never be reached from the ocean.
	set = game.NewTileSet(at(g, 2, 2))
	_, ok = e.NearestInSet(g, at(g, 7, 2), set, 1000)
	assert.False(t, ok)
}

func TestNearestOwnedWater_WalksLakeAndShoreTiles(t *testing.T) {
	// Player 1 territory lies beyond the lake's southern shore row. The
	// ownership-restricted search walks lake water and shore tiles to
	// reach it.
	g := gameFromArt([]string{
		"~~~~~~~~",
		"~######~",
		"~#....#~",
		"~######~",
		"~111111~",
		"~~~~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	got, ok := e.NearestOwnedWater(g, at(g, 3, 2), 1, 100)
	require.True(t, ok)
	assert.Equal(t, at(g, 3, 4), got)
	assert.Equal(t, game.PlayerID(1), g.Owner(got))
}

func TestNearestShore_FindsOnlyShore(t *testing.T) {
	g := gameFromArt([]string{
		"~~~~~~",
		"~~~#~~",
		"~~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	got, ok := e.NearestShore(g, at(g, 1, 1), 10)
	require.True(t, ok)
	assert.Equal(t, at(g, 3, 1), got)
}

func TestSearch_IdempotentAcrossHistory(t *testing.T) {
	g := gameFromArt([]string{
		"~~~~~~~~",
		"~#~~~~#~",
		"~~~~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	start := at(g, 3, 1)
	set := game.NewTileSet(at(g, 1, 1), at(g, 6, 1))

	first, ok := e.NearestInSet(g, start, set, 10)
	require.True(t, ok)

	// Interleave unrelated searches, then repeat the original; prior
	// search history must not influence the result.
	for i := 0; i < 50; i++ {
		e.NearestShore(g, at(g, 5, 0), 3)
		got, ok := e.NearestInSet(g, start, set, 10)
		require.True(t, ok)
		require.Equal(t, first, got)
	}
}

func TestSearch_SurvivesGenerationRollover(t *testing.T) {
	g := gameFromArt([]string{
		"~~~~~~~~",
		"~#~~~~#~",
		"~~~~~~~~",
	}, game.DefaultConfig())
	e := NewEngine()

	start := at(g, 3, 1)
	set := game.NewTileSet(at(g, 1, 1), at(g, 6, 1))

	first, ok := e.NearestInSet(g, start, set, 10)
	require.True(t, ok)

	// Force the generation counter to the edge of the 32-bit range; the
	// next searches must clear and keep working.
	e.visited.gen = math.MaxUint32 - 2
	for i := 0; i < 6; i++ {
		got, ok := e.NearestInSet(g, start, set, 10)
		require.True(t, ok)
		require.Equal(t, first, got)
	}
	assert.Less(t, e.visited.gen, uint32(10), "generation must have wrapped")
}

func BenchmarkNearestInSet(b *testing.B) {
	rows := make([]string, 64)
	for y := range rows {
		row := make([]byte, 64)
		for x := range row {
			row[x] = '~'
		}
		if y == 32 {
			row[63] = '#'
		}
		rows[y] = string(row)
	}
	g := gameFromArt(rows, game.DefaultConfig())
	e := NewEngine()
	set := game.NewTileSet(at(g, 63, 32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := e.NearestInSet(g, at(g, 0, 32), set, 1<<10); !ok {
			b.Fatal("target not found")
		}
	}
}
